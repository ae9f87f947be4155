package main

import (
	"fmt"
	"syscall/js"
	"time"

	webgl "github.com/seqsense/webgl-go"

	"github.com/Magicianred/BubbleEngine/scene"
)

const fps = 30

type consoleCommand struct {
	line    string
	resolve func(string)
	reject  func(error)
}

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "sceneCanvas")

	logDiv := doc.Call("getElementById", "log")
	logPrint := func(msg interface{}) {
		println(fmt.Sprint(msg))
		if logDiv.IsNull() {
			return
		}
		html := logDiv.Get("innerHTML").String()
		logDiv.Set("innerHTML", fmt.Sprintf("%s%v<br/>", html, msg))
	}

	if canvas.IsNull() {
		logPrint("sceneCanvas not found")
		return
	}

	src := defaultScene
	if path := canvas.Call("getAttribute", "data-scene"); !path.IsNull() {
		b, err := fetchGet(path.String())
		if err != nil {
			logPrint(err)
			return
		}
		src = b
	}
	s, err := scene.Parse(src)
	if err != nil {
		logPrint(err)
		return
	}

	gl, err := webgl.New(canvas)
	if err != nil {
		logPrint(err)
		return
	}
	maxWidth, maxHeight := contextLimits(gl)

	program, err := initProgram(gl, vsSource, fsSource)
	if err != nil {
		logPrint(err)
		return
	}
	gl.UseProgram(program)
	projectionMatrixLocation := gl.GetUniformLocation(program, "uProjectionMatrix")
	modelViewMatrixLocation := gl.GetUniformLocation(program, "uModelViewMatrix")

	posBuf := gl.CreateBuffer()
	colorBuf := gl.CreateBuffer()

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.ClearDepth(1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	vi := newView()
	con := newConsole(s, vi)

	chConsole := make(chan consoleCommand)
	js.Global().Set("sceneConsole",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			line := args[0].String()
			return js.Global().Get("Promise").New(js.FuncOf(func(this js.Value, cb []js.Value) interface{} {
				resolve, reject := cb[0], cb[1]
				go func() {
					chConsole <- consoleCommand{
						line:    line,
						resolve: func(res string) { resolve.Invoke(res) },
						reject:  func(err error) { reject.Invoke(errorToJS(err)) },
					}
				}()
				return nil
			}))
		}),
	)

	chWheel := make(chan webgl.WheelEvent)
	gl.Canvas.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chWheel <- e
	})
	chMouseDown := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseDown(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseDown <- e
	})
	chMouseMove := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseMove(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseMove <- e
	})
	chMouseUp := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseUp(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseUp <- e
	})
	gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
	})

	toDrag := func(e webgl.MouseEvent) dragEvent {
		return dragEvent{x: e.OffsetX, y: e.OffsetY, button: int(e.Button)}
	}

	tick := time.NewTicker(time.Second / fps)
	defer tick.Stop()

	var clientWidth, clientHeight int
	uploaded := false
	for {
		newWidth := gl.Canvas.ClientWidth()
		newHeight := gl.Canvas.ClientHeight()
		if newWidth != clientWidth || newHeight != clientHeight {
			width, height := fitViewport(newWidth, newHeight, maxWidth, maxHeight)
			if err := s.Camera.Resize(float64(width), float64(height)); err == nil {
				clientWidth, clientHeight = newWidth, newHeight
				gl.Canvas.SetWidth(width)
				gl.Canvas.SetHeight(height)
				gl.Viewport(0, 0, width, height)
			}
		}

		f := s.Frame(vi.matrix())
		if !uploaded {
			gl.BindBuffer(gl.ARRAY_BUFFER, posBuf)
			gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(f.Positions), gl.STATIC_DRAW)
			gl.BindBuffer(gl.ARRAY_BUFFER, colorBuf)
			gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(f.Colors), gl.STATIC_DRAW)
			uploaded = true
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.UseProgram(program)
		gl.BindBuffer(gl.ARRAY_BUFFER, posBuf)
		gl.VertexAttribPointer(attribVertexPosition, scene.PositionSize, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(attribVertexPosition)
		gl.BindBuffer(gl.ARRAY_BUFFER, colorBuf)
		gl.VertexAttribPointer(attribVertexColor, scene.ColorSize, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(attribVertexColor)
		gl.UniformMatrix4fv(projectionMatrixLocation, false, f.Projection.Uniform())
		gl.UniformMatrix4fv(modelViewMatrixLocation, false, f.ModelView.Uniform())
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, f.VertexCount)

		select {
		case c := <-chConsole:
			res, err := con.Run(c.line)
			if err != nil {
				c.reject(err)
				continue
			}
			// reset rebuilds the rectangle.
			uploaded = false
			c.resolve(res)
		case e := <-chWheel:
			vi.wheel(e.DeltaY)
		case e := <-chMouseDown:
			vi.dragStart(toDrag(e))
		case e := <-chMouseUp:
			vi.dragEnd(toDrag(e))
		case e := <-chMouseMove:
			vi.drag(toDrag(e))
		case <-tick.C:
		}
	}
}
