package main

import (
	"errors"
	"testing"

	"github.com/Magicianred/BubbleEngine/camera"
	"github.com/Magicianred/BubbleEngine/scene"
)

func newTestConsole(t *testing.T) *console {
	t.Helper()
	s, err := scene.New(scene.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return newConsole(s, newView())
}

func TestConsole_Run(t *testing.T) {
	testCases := []struct {
		lines    []string
		expected string
		err      error
	}{
		{[]string{""}, "", nil},
		{[]string{"translate"}, "0.000 0.000 -6.000", nil},
		{[]string{"translate 1 2 -3", "translate"}, "1.000 2.000 -3.000", nil},
		{[]string{"rotate 0 90 0"}, "0.000 90.000 0.000", nil},
		{[]string{"scale"}, "1.000 1.000 1.000", nil},
		{[]string{"fov"}, "45.000", nil},
		{[]string{"fov 60", "fov"}, "60.000", nil},
		{[]string{"clip"}, "0.100 100.000", nil},
		{[]string{"clip 1 10"}, "1.000 10.000", nil},
		{[]string{"viewport 1024 768"}, "1024.000 768.000", nil},
		{[]string{"ortho", "projection"},
			"0.003 0.000 0.000 0.000\n" +
				"0.000 -0.003 0.000 0.000\n" +
				"0.000 0.000 0.020 0.000\n" +
				"-1.000 1.000 0.000 1.000", nil},
		{[]string{"modelview"},
			"1.000 0.000 0.000 0.000\n" +
				"0.000 1.000 0.000 0.000\n" +
				"0.000 0.000 1.000 0.000\n" +
				"0.000 0.000 -6.000 1.000", nil},
		{[]string{"translate 1 2"}, "", errArgumentNumber},
		{[]string{"fov 1 2"}, "", errArgumentNumber},
		{[]string{"projection 1"}, "", errArgumentNumber},
		{[]string{"zoom"}, "", errInvalidCommand},
		{[]string{"clip 10 1"}, "", camera.ErrClipRange},
		{[]string{"viewport 0 1"}, "", camera.ErrViewport},
	}
	for _, tt := range testCases {
		c := newTestConsole(t)
		var res string
		var err error
		for _, l := range tt.lines {
			res, err = c.Run(l)
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("%v: expected error %v, got %v", tt.lines, tt.err, err)
			continue
		}
		if res != tt.expected {
			t.Errorf("%v: expected:\n%s\ngot:\n%s", tt.lines, tt.expected, res)
		}
	}
}

func TestConsole_ParseError(t *testing.T) {
	c := newTestConsole(t)
	if _, err := c.Run("translate a b c"); err == nil {
		t.Error("non-numeric arguments must fail")
	}
}

func TestConsole_InvalidChangeKeepsCamera(t *testing.T) {
	c := newTestConsole(t)
	if _, err := c.Run("clip 10 1"); err == nil {
		t.Fatal("expected error")
	}
	if c.scene.Camera.ZNear != 0.1 || c.scene.Camera.ZFar != 100 {
		t.Errorf("camera must be unchanged, got near %f far %f", c.scene.Camera.ZNear, c.scene.Camera.ZFar)
	}

	// Orthographic projection accepts any clip order, switching back
	// to perspective must be rejected.
	if _, err := c.Run("ortho"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run("clip 10 1"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run("perspective"); !errors.Is(err, camera.ErrClipRange) {
		t.Errorf("expected %v, got %v", camera.ErrClipRange, err)
	}
	if c.scene.Camera.Projection != camera.Orthographic {
		t.Errorf("projection must stay %v, got %v", camera.Orthographic, c.scene.Camera.Projection)
	}
}

func TestConsole_Reset(t *testing.T) {
	c := newTestConsole(t)
	for _, l := range []string{"translate 1 1 1", "ortho", "fov 10"} {
		if _, err := c.Run(l); err != nil {
			t.Fatal(err)
		}
	}
	c.view.yaw = 30

	if _, err := c.Run("reset"); err != nil {
		t.Fatal(err)
	}
	if c.scene.Model.Offset != [3]float64{0, 0, -6} {
		t.Errorf("offset must be restored, got %v", c.scene.Model.Offset)
	}
	if c.scene.Camera.Projection != camera.Perspective {
		t.Errorf("projection must be restored, got %v", c.scene.Camera.Projection)
	}
	if c.view.yaw != 0 {
		t.Errorf("view must be restored, got yaw %f", c.view.yaw)
	}
}

func TestConsole_MVP(t *testing.T) {
	c := newTestConsole(t)
	res, err := c.Run("mvp")
	if err != nil {
		t.Fatal(err)
	}
	// f/aspect, f, (n+f)/(f-n), -1, 2nf/(f-n) for the default camera.
	expected := "1.811 0.000 0.000 0.000\n" +
		"0.000 2.414 0.000 0.000\n" +
		"0.000 0.000 1.002 -1.000\n" +
		"0.000 0.000 -5.812 6.000"
	if res != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, res)
	}
}
