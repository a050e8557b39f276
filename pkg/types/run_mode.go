package types

// DefaultAction is the action executed when the configuration names none.
// It is the component's main body and is never registered explicitly.
const DefaultAction = "run"

// ExecutionMode indicates how a dispatch treats handler output and failures
type ExecutionMode string

const (
	// ModeInteractive is the normal pipeline run: output passes through and
	// failures propagate to the caller
	ModeInteractive ExecutionMode = "interactive"

	// ModeSynchronous is a sync action: the handler result is the only thing
	// written to stdout and failures terminate the process
	ModeSynchronous ExecutionMode = "synchronous"
)

// ModeFor derives the execution mode from the requested action name
func ModeFor(action string) ExecutionMode {
	if action == "" || action == DefaultAction {
		return ModeInteractive
	}
	return ModeSynchronous
}

// IsSynchronous reports whether the mode is ModeSynchronous
func (m ExecutionMode) IsSynchronous() bool {
	return m == ModeSynchronous
}
