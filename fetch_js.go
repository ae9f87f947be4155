package main

import (
	"errors"
	"fmt"
	"syscall/js"
)

// fetchGet downloads path with the browser fetch API.
func fetchGet(path string) ([]byte, error) {
	type result struct {
		b   []byte
		err error
	}
	ch := make(chan result, 1)

	onError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- result{err: errors.New("failed to fetch " + path)}
		return nil
	})
	defer onError.Release()
	onResponse := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if !args[0].Get("ok").Bool() {
			ch <- result{err: fmt.Errorf("failed to fetch %s: %s", path, args[0].Get("statusText").String())}
			return nil
		}
		return args[0].Call("arrayBuffer").Call("then", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			array := js.Global().Get("Uint8Array").New(args[0])
			b := make([]byte, array.Get("byteLength").Int())
			js.CopyBytesToGo(b, array)
			ch <- result{b: b}
			return nil
		}))
	})
	defer onResponse.Release()

	js.Global().Call("fetch", path).Call("then", onResponse, onError)

	r := <-ch
	return r.b, r.err
}
