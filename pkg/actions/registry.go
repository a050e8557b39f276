package actions

import (
	"github.com/arthur-debert/kbcomponent/pkg/errors"
	"github.com/arthur-debert/kbcomponent/pkg/registry"
	"github.com/arthur-debert/kbcomponent/pkg/types"
)

// Registry resolves external action names to bound handlers
type Registry struct {
	names    registry.Registry[string]
	handlers registry.Registry[types.Handler]
}

// New creates a registry containing only the default action
func New() *Registry {
	r := &Registry{
		names:    registry.New[string](),
		handlers: registry.New[types.Handler](),
	}
	registry.MustRegister(r.names, types.DefaultAction, types.DefaultAction)
	return r
}

// Register maps an external action name to a handler identifier.
// Registering the default action name is a configuration error, as is
// registering the same name twice.
func (r *Registry) Register(name, handlerID string) error {
	if name == types.DefaultAction {
		return errors.Newf(errors.ErrReservedAction,
			"sync action name %q is reserved for the base action, use a different name", name).
			WithDetail("action", name)
	}
	if handlerID == "" {
		return errors.Newf(errors.ErrInvalidInput, "action %q has no handler identifier", name)
	}
	return r.names.Register(name, handlerID)
}

// Bind attaches the implementation for a handler identifier
func (r *Registry) Bind(handlerID string, handler types.Handler) error {
	if handler == nil {
		return errors.Newf(errors.ErrInvalidInput, "handler %q is nil", handlerID)
	}
	return r.handlers.Register(handlerID, handler)
}

// Resolve returns the handler identifier registered for name
func (r *Registry) Resolve(name string) (string, error) {
	handlerID, err := r.names.Get(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrUnknownAction, "unknown action %q", name).
			WithDetail("action", name)
	}
	return handlerID, nil
}

// Lookup resolves name and returns the handler bound to its identifier
func (r *Registry) Lookup(name string) (types.Handler, error) {
	handlerID, err := r.Resolve(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotImplemented, "The defined action %s is not implemented!", name).
			WithDetail("action", name)
	}
	handler, err := r.handlers.Get(handlerID)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotImplemented, "The defined action %s is not implemented!", name).
			WithDetail("action", name).
			WithDetail("handler", handlerID)
	}
	return handler, nil
}

// Actions returns every registered action, sorted by name
func (r *Registry) Actions() []types.Action {
	names := r.names.List()
	actions := make([]types.Action, 0, len(names))
	for _, name := range names {
		handlerID, _ := r.names.Get(name)
		actions = append(actions, types.Action{Name: name, HandlerID: handlerID})
	}
	return actions
}

// Has reports whether name resolves
func (r *Registry) Has(name string) bool {
	return r.names.Has(name)
}
