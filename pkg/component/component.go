// Package component is the batch component: it registers its actions once
// at construction and executes the action named by the configuration.
package component

import (
	"context"
	"time"

	"github.com/arthur-debert/kbcomponent/pkg/actions"
	"github.com/arthur-debert/kbcomponent/pkg/config"
	"github.com/arthur-debert/kbcomponent/pkg/datadir"
	"github.com/arthur-debert/kbcomponent/pkg/dispatcher"
	"github.com/arthur-debert/kbcomponent/pkg/logging"
	"github.com/arthur-debert/kbcomponent/pkg/types"
	"github.com/rs/zerolog"
)

// RequiredParameters must be present in every configuration
var RequiredParameters []string

// Component executes configured actions
type Component struct {
	cfg        *config.Config
	dataDir    *datadir.DataDir
	registry   *actions.Registry
	dispatcher *dispatcher.Dispatcher
	logger     zerolog.Logger
	now        func() time.Time
}

// New creates a component for cfg. Dispatcher options are passed through,
// which lets callers redirect sync action output.
func New(cfg *config.Config, dd *datadir.DataDir, opts ...dispatcher.Option) (*Component, error) {
	if err := cfg.ValidateRequired(RequiredParameters...); err != nil {
		return nil, err
	}

	c := &Component{
		cfg:      cfg,
		dataDir:  dd,
		registry: actions.New(),
		logger:   logging.GetLogger("component"),
		now:      time.Now,
	}
	if err := c.registerActions(); err != nil {
		return nil, err
	}
	c.dispatcher = dispatcher.New(c.registry, opts...)
	return c, nil
}

// registerActions binds every action this component exposes
func (c *Component) registerActions() error {
	bindings := []struct {
		action    string
		handlerID string
		handler   types.Handler
	}{
		{types.DefaultAction, "run", c.run},
		{"testColumns", "getColumns", c.getColumns},
		{"testConnection", "testConnection", c.testConnection},
		{"test_input_columns", "listTableColumns", c.listTableColumns},
		{"validate_report", "validateAction", c.validateAction},
	}

	for _, b := range bindings {
		if b.action != types.DefaultAction {
			if err := c.registry.Register(b.action, b.handlerID); err != nil {
				return err
			}
		}
		if err := c.registry.Bind(b.handlerID, b.handler); err != nil {
			return err
		}
	}
	return nil
}

// Registry returns the component's action registry
func (c *Component) Registry() *actions.Registry {
	return c.registry
}

// ExecuteAction runs the action defined in the configuration, defaulting
// to the run action.
func (c *Component) ExecuteAction(ctx context.Context) (any, error) {
	action := c.cfg.Action
	if action == "" {
		c.logger.Warn().Msg("No action defined in the configuration, using the default run action.")
		action = types.DefaultAction
	}
	return c.dispatcher.Dispatch(ctx, action)
}
