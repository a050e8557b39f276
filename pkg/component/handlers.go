package component

import (
	"context"
	"fmt"
	"time"

	"github.com/arthur-debert/kbcomponent/pkg/errors"
	"github.com/arthur-debert/kbcomponent/pkg/logging"
	"github.com/arthur-debert/kbcomponent/pkg/result"
)

// Parameter keys read by the handlers
const (
	paramConnection     = "connection"
	paramTestValue      = "test_value"
	paramValidation     = "test_validation"
	stateLastRun        = "last_run"
	stateRuns           = "runs"
	noInputTableMessage = "No input table specified. Please provide one input table in the input mapping!"
)

// run is the batch entry point. It records the run in the output state.
func (c *Component) run(ctx context.Context) (any, error) {
	done := logging.LogOperationStart(c.logger, "run")
	defer done()

	c.logger.Info().Msg("running")

	state, err := c.dataDir.ReadState()
	if err != nil {
		return nil, err
	}

	runs := 0
	if n, ok := state[stateRuns].(float64); ok {
		runs = int(n)
	}

	return nil, c.dataDir.WriteState(map[string]any{
		stateLastRun: c.now().UTC().Format(time.RFC3339),
		stateRuns:    runs + 1,
	})
}

func (c *Component) getColumns(ctx context.Context) (any, error) {
	return result.Results{
		result.NewSelectElement(c.cfg.ParamString(paramTestValue), "Loaded from config parameters"),
		result.NewSelectElement("joe", "Joe"),
		result.NewSelectElement("doe", ""),
	}, nil
}

// testConnection succeeds or fails depending on the connection parameter.
// The print is discarded by the output gate.
func (c *Component) testConnection(ctx context.Context) (any, error) {
	c.logger.Info().Msg("Testing Connection")
	fmt.Println("test print")

	switch c.cfg.ParamString(paramConnection) {
	case "fail":
		return nil, errors.User("failed")
	case "succeed":
		c.logger.Info().Msg("succeed")
	}
	return nil, nil
}

// listTableColumns lists the columns of the first input table as select options
func (c *Component) listTableColumns(ctx context.Context) (any, error) {
	tables := c.cfg.InputTables()
	if len(tables) == 0 {
		return nil, errors.User(noInputTableMessage)
	}

	columns := make([]map[string]any, 0, len(tables[0].Columns))
	for _, col := range tables[0].Columns {
		columns = append(columns, map[string]any{"value": col, "label": col})
	}
	return columns, nil
}

func (c *Component) validateAction(ctx context.Context) (any, error) {
	messageType := result.MessageInfo
	if token := c.cfg.ParamString(paramValidation + ".message_type"); token != "" {
		parsed, err := result.ParseMessageType(token)
		if err != nil {
			return nil, errors.User(err.Error())
		}
		messageType = parsed
	}

	res := result.NewValidationResult(c.cfg.ParamString(paramValidation+".message"), messageType)
	if status := c.cfg.ParamString(paramValidation + ".status"); status != "" {
		res.SetStatus(status)
	}

	if !c.cfg.ParamBool(paramValidation + ".fail") {
		return res, nil
	}

	encoded, err := result.Encode(res)
	if err != nil {
		return nil, err
	}
	return nil, errors.Userf("This is user exception, only stderr content: %s", encoded).WithPayload(res)
}
