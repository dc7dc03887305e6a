// Package monitor drives the sample, derive and render cycle.
//
// The controller is a two-state machine. In Priming it captures the baseline
// snapshot and renders nothing. In Sampling it sleeps one interval, captures
// again, derives rows against the previous snapshot, renders them and hands the
// new snapshot over as the next baseline. Everything runs on the caller's
// goroutine; the sleep is the only suspension point.
package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/srodi/proctop/pkg/metrics"
	"github.com/srodi/proctop/pkg/report"
	"github.com/srodi/proctop/pkg/snapshot"
	"github.com/srodi/proctop/pkg/types"
)

// State is the controller's position in its cycle.
type State int

const (
	Priming State = iota
	Sampling
)

func (s State) String() string {
	if s == Sampling {
		return "sampling"
	}
	return "priming"
}

// RenderFunc draws one frame of already sorted rows.
type RenderFunc func(rows []types.DerivedRow) error

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Controller owns the previous snapshot between cycles.
type Controller struct {
	system snapshot.SystemReader
	table  snapshot.TableReader
	render RenderFunc

	sleep       Sleeper
	now         func() time.Time
	until       func(cycles int) bool
	derive      report.Options
	filter      report.FilterConfig
	logger      zerolog.Logger
	recorder    *metrics.Recorder
	metricsFile string

	state  State
	prev   snapshot.Snapshot
	cycles int
}

// Option configures a Controller.
type Option func(*Controller)

// WithSleeper replaces the interval wait, mainly for tests.
func WithSleeper(s Sleeper) Option { return func(c *Controller) { c.sleep = s } }

// WithClock replaces the snapshot timestamp source.
func WithClock(now func() time.Time) Option { return func(c *Controller) { c.now = now } }

// WithStopCondition ends Run once until returns true. It is checked before
// every sampling cycle with the number of frames rendered so far.
func WithStopCondition(until func(cycles int) bool) Option {
	return func(c *Controller) { c.until = until }
}

// WithDeriveOptions sets the delta engine options.
func WithDeriveOptions(opts report.Options) Option { return func(c *Controller) { c.derive = opts } }

// WithFilter sets the presentation filter applied after sorting.
func WithFilter(cfg report.FilterConfig) Option { return func(c *Controller) { c.filter = cfg } }

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option { return func(c *Controller) { c.logger = l } }

// WithMetrics records loop metrics and, when textfile is set, rewrites it every cycle.
func WithMetrics(r *metrics.Recorder, textfile string) Option {
	return func(c *Controller) {
		c.recorder = r
		c.metricsFile = textfile
	}
}

// New returns a controller in the Priming state.
func New(system snapshot.SystemReader, table snapshot.TableReader, render RenderFunc, opts ...Option) *Controller {
	c := &Controller{
		system: system,
		table:  table,
		render: render,
		sleep:  sleepContext,
		now:    time.Now,
		logger: zerolog.Nop(),
		state:  Priming,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the current state.
func (c *Controller) State() State { return c.state }

// Cycles reports how many frames have been rendered.
func (c *Controller) Cycles() int { return c.cycles }

// Baseline returns the snapshot the next cycle will be derived against.
func (c *Controller) Baseline() snapshot.Snapshot { return c.prev }

// Run loops until ctx is cancelled or the stop condition holds. Interruption
// is the normal way out and returns nil; no per-cycle failure ends the loop.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		switch c.state {
		case Priming:
			c.prev = c.capture()
			c.state = Sampling
			c.logger.Debug().Int("processes", c.prev.Len()).Msg("baseline captured")
		case Sampling:
			if c.until != nil && c.until(c.cycles) {
				return nil
			}
			if err := c.sleep(ctx, types.SampleInterval); err != nil {
				return nil
			}
			c.step()
		}
	}
}

// step runs one sampling cycle against the held baseline.
func (c *Controller) step() {
	curr := c.capture()
	rows, stats := report.Derive(c.prev, curr, c.derive)
	rows = report.FilterRows(report.SortByCPU(rows), c.filter)

	if err := c.render(rows); err != nil {
		c.logger.Error().Err(err).Msg("rendering frame")
	}
	c.logger.Debug().
		Int("considered", stats.Considered).
		Int("new", stats.New).
		Int("vanished", stats.Vanished).
		Int("regressed", stats.Regressed).
		Int("unnamed", stats.Unnamed).
		Int("suppressed", stats.Suppressed).
		Int("rendered", len(rows)).
		Dur("window", curr.Taken().Sub(c.prev.Taken())).
		Msg("cycle")

	c.recorder.ObserveCycle(stats, len(rows))
	if err := c.recorder.WriteTextfile(c.metricsFile); err != nil {
		c.logger.Warn().Err(err).Str("path", c.metricsFile).Msg("metrics textfile")
	}

	c.prev = curr
	c.cycles++
}

func (c *Controller) capture() snapshot.Snapshot {
	start := time.Now()
	snap, err := snapshot.Capture(c.system, c.table, c.now())
	if err != nil {
		c.logger.Warn().Err(err).Msg("degraded snapshot")
	}
	c.recorder.ObserveCapture(time.Since(start), snap.Len(), err != nil)
	return snap
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
