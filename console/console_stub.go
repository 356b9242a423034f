//go:build !js && !wasm

package console

import (
	"io"
	"os"
)

// Writer returns the process's standard error outside the browser.
func Writer() io.Writer {
	return os.Stderr
}
