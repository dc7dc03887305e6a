package ui

import (
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// PrimingIndicator shows a spinner while the first sampling interval elapses.
// A nil indicator is valid and does nothing.
type PrimingIndicator struct {
	s    *spinner.Spinner
	once sync.Once
}

// NewPrimingIndicator returns an indicator writing to w.
func NewPrimingIndicator(w io.Writer) *PrimingIndicator {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " sampling processes..."
	return &PrimingIndicator{s: s}
}

// Start begins the animation.
func (p *PrimingIndicator) Start() {
	if p == nil {
		return
	}
	p.s.Start()
}

// Stop halts the animation. Only the first call has an effect.
func (p *PrimingIndicator) Stop() {
	if p == nil {
		return
	}
	p.once.Do(p.s.Stop)
}
