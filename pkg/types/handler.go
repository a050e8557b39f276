package types

import "context"

// Handler implements one action. It returns a sync action result, a
// sequence of results, a plain mapping, or nil.
//
// A handler signals an expected failure by returning an errors.UserError;
// any other error is treated as unexpected.
type Handler func(ctx context.Context) (any, error)

// Action binds an external action name to the identifier of the handler
// that implements it.
type Action struct {
	Name      string `json:"name" yaml:"name"`
	HandlerID string `json:"handler" yaml:"handler"`
}

// Mode returns the execution mode a dispatch of this action runs in
func (a Action) Mode() ExecutionMode {
	return ModeFor(a.Name)
}
