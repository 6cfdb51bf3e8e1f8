//go:build !cgo

package hal

import "errors"

func RunWindow(_ string, _ Runner) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), try -headless or -term")
}
