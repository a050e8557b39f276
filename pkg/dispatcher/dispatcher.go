// Package dispatcher runs one action: it resolves the action name against
// the registry, invokes the handler behind an output gate, and applies the
// output contract of the action's execution mode.
//
// Interactive dispatch (the "run" action) returns the handler's value and
// error untouched. Synchronous dispatch writes exactly one JSON document to
// the output writer on success; on failure it writes the error message to
// the error writer and exits the process with status 1.
package dispatcher

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/kbcomponent/pkg/actions"
	"github.com/arthur-debert/kbcomponent/pkg/errors"
	"github.com/arthur-debert/kbcomponent/pkg/gate"
	"github.com/arthur-debert/kbcomponent/pkg/logging"
	"github.com/arthur-debert/kbcomponent/pkg/result"
	"github.com/arthur-debert/kbcomponent/pkg/types"
	"github.com/rs/zerolog"
)

// SyncFailureExitCode is the process exit status of a failed sync action
const SyncFailureExitCode = 1

// ExitError is returned by Dispatch when a synchronous failure has been
// reported and the exit function returned instead of terminating.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithOutput sets the writer that receives sync action payloads
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) { d.out = w }
}

// WithErrorOutput sets the writer that receives sync action failure messages
func WithErrorOutput(w io.Writer) Option {
	return func(d *Dispatcher) { d.errOut = w }
}

// WithExit replaces os.Exit for sync action failures
func WithExit(exit func(code int)) Option {
	return func(d *Dispatcher) { d.exit = exit }
}

// Dispatcher routes action names to handlers
type Dispatcher struct {
	registry *actions.Registry
	out      io.Writer
	errOut   io.Writer
	exit     func(code int)
	openGate func(types.ExecutionMode) (io.Closer, error)
	logger   zerolog.Logger
}

func openGate(mode types.ExecutionMode) (io.Closer, error) {
	return gate.Open(mode)
}

// New creates a dispatcher over reg. The default writers are the process
// stdout and stderr as they are at construction time, before any gate
// replaces os.Stdout.
func New(reg *actions.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		out:      os.Stdout,
		errOut:   os.Stderr,
		exit:     os.Exit,
		openGate: openGate,
		logger:   logging.GetLogger("dispatcher"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch executes the named action; an empty name means the default
// action. Resolution errors are returned in every mode.
func (d *Dispatcher) Dispatch(ctx context.Context, action string) (any, error) {
	if action == "" {
		action = types.DefaultAction
	}

	handler, err := d.registry.Lookup(action)
	if err != nil {
		return nil, err
	}

	mode := types.ModeFor(action)
	d.logger.Debug().
		Str("action", action).
		Str("mode", string(mode)).
		Msg("Dispatching action")

	value, err := d.invoke(ctx, mode, handler)
	if err != nil {
		if mode.IsSynchronous() {
			return nil, d.fail(err)
		}
		return nil, err
	}

	if !mode.IsSynchronous() {
		return value, nil
	}

	payload, err := result.Encode(value)
	if err != nil {
		// handlers must return encodable values
		panic(fmt.Sprintf("action %s returned an unencodable result: %v", action, err))
	}
	if _, err := d.out.Write(payload); err != nil {
		return nil, d.fail(errors.Wrap(err, errors.ErrInternal, "cannot write sync action result"))
	}
	return value, nil
}

// invoke runs handler behind a gate for mode. A panic in a synchronous
// handler becomes an error; in interactive mode it is re-raised once the
// gate is closed.
func (d *Dispatcher) invoke(ctx context.Context, mode types.ExecutionMode, handler types.Handler) (value any, err error) {
	g, err := d.openGate(mode)
	if err != nil {
		return nil, err
	}

	defer func() {
		r := recover()
		if cerr := g.Close(); cerr != nil {
			d.logger.Debug().Err(cerr).Msg("Failed to close output gate")
		}
		if r == nil {
			return
		}
		if !mode.IsSynchronous() {
			panic(r)
		}
		value = nil
		err = errors.Newf(errors.ErrInternal, "handler panicked: %v", r)
	}()

	return handler(ctx)
}

// fail reports a synchronous failure on the error writer and exits
func (d *Dispatcher) fail(err error) error {
	_, _ = io.WriteString(d.errOut, err.Error())
	d.exit(SyncFailureExitCode)
	return &ExitError{Code: SyncFailureExitCode, Err: err}
}
