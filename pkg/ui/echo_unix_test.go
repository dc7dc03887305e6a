//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package ui

import (
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestWithoutEchoKeepsSignalsAndOutputProcessing(t *testing.T) {
	var in unix.Termios
	in.Lflag |= unix.ECHO | unix.ISIG | unix.ICANON
	in.Oflag |= unix.OPOST
	in.Iflag |= unix.ICRNL

	out := withoutEcho(in)
	if out.Lflag&unix.ECHO != 0 {
		t.Fatalf("echo should be cleared")
	}
	if out.Lflag&unix.ISIG == 0 {
		t.Fatalf("ISIG must stay set so Ctrl+C raises SIGINT")
	}
	if out.Lflag&unix.ICANON == 0 {
		t.Fatalf("canonical mode should be untouched")
	}
	if out.Oflag != in.Oflag || out.Iflag != in.Iflag {
		t.Fatalf("output and input flags must be untouched, got oflag=%#x iflag=%#x", out.Oflag, out.Iflag)
	}
	if in.Lflag&unix.ECHO == 0 {
		t.Fatalf("input termios must not be modified")
	}
}

func TestDisableInputEchoFailsOnNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	defer f.Close()

	undo, err := disableInputEcho(int(f.Fd()))
	if err == nil {
		t.Fatalf("expected an error for a regular file")
	}
	if undo != nil {
		t.Fatalf("no restore func expected on failure")
	}
}
