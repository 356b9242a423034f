//go:build js || wasm

package console

import (
	"io"
	"strings"
	"syscall/js"
)

func Log(args ...any) {
	console := js.Global().Get("console")
	console.Call("log", args...)
}

func Warn(args ...any) {
	console := js.Global().Get("console")
	console.Call("warn", args...)
}

func Error(args ...any) {
	console := js.Global().Get("console")
	console.Call("error", args...)
}

type writer struct{}

// Write sends each complete line of p to console.log.
func (writer) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		Log(line)
	}
	return len(p), nil
}

// Writer returns an io.Writer backed by the browser console.
func Writer() io.Writer {
	return writer{}
}
