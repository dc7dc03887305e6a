//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package ui

import "golang.org/x/sys/unix"

// disableInputEcho turns off stdin echo so the alternate-screen view stays clean.
// Signal generation and output processing are left alone so Ctrl+C still
// interrupts and newlines still return to column 0.
func disableInputEcho(fd int) (func(), error) {
	termState, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	updated := withoutEcho(*termState)
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &updated); err != nil {
		return nil, err
	}

	return func() {
		_ = unix.IoctlSetTermios(fd, ioctlSetTermios, termState)
	}, nil
}

func withoutEcho(t unix.Termios) unix.Termios {
	t.Lflag &^= unix.ECHO
	return t
}
