// Package gate controls whether incidental output reaches stdout while a
// handler runs.
//
// In synchronous mode stdout carries exactly one JSON document, so for the
// duration of the handler the gate points os.Stdout at the null device and
// raises zerolog's global level so only fatal records are emitted. Writes
// are discarded silently rather than failing. In interactive mode the gate
// does nothing.
//
// Gates follow stack discipline: Open before invoking the handler and defer
// Close, which restores the previous stdout and log level.
package gate

import (
	"os"

	"github.com/arthur-debert/kbcomponent/pkg/errors"
	"github.com/arthur-debert/kbcomponent/pkg/types"
	"github.com/rs/zerolog"
)

// Gate is an open output gate
type Gate struct {
	mode       types.ExecutionMode
	prevStdout *os.File
	prevLevel  zerolog.Level
	sink       *os.File
	closed     bool
}

// Open opens a gate for the given mode
func Open(mode types.ExecutionMode) (*Gate, error) {
	g := &Gate{mode: mode}
	if !mode.IsSynchronous() {
		return g, nil
	}

	sink, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot open %s", os.DevNull)
	}

	g.sink = sink
	g.prevStdout = os.Stdout
	g.prevLevel = zerolog.GlobalLevel()

	os.Stdout = sink
	zerolog.SetGlobalLevel(zerolog.FatalLevel)
	return g, nil
}

// Mode returns the mode the gate was opened for
func (g *Gate) Mode() types.ExecutionMode {
	return g.mode
}

// Suppressing reports whether the gate is currently discarding output
func (g *Gate) Suppressing() bool {
	return g.sink != nil && !g.closed
}

// Close restores stdout and the log level. It is safe to call more than once.
func (g *Gate) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if g.sink == nil {
		return nil
	}

	os.Stdout = g.prevStdout
	zerolog.SetGlobalLevel(g.prevLevel)
	return g.sink.Close()
}
