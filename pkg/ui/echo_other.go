//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package ui

// disableInputEcho is a no-op where termios is unavailable; typed keys may echo.
func disableInputEcho(int) (func(), error) {
	return nil, nil
}
