package config

import (
	"testing"

	"github.com/arthur-debert/kbcomponent/pkg/datadir"
	"github.com/arthur-debert/kbcomponent/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataDirWith(t *testing.T, name, content string) *datadir.DataDir {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/"+name, []byte(content), 0644))
	return datadir.New(fs, "/data")
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "config.json",
			content: `{
				"action": "testConnection",
				"parameters": {"connection": "succeed", "test_validation": {"fail": true}},
				"storage": {"input": {"tables": [{"source": "in.c-main.t", "destination": "t.csv", "columns": ["id", "name"]}]}}
			}`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `
action: testConnection
parameters:
  connection: succeed
  test_validation:
    fail: true
storage:
  input:
    tables:
      - source: in.c-main.t
        destination: t.csv
        columns: [id, name]
`,
		},
		{
			name: "toml",
			file: "config.toml",
			content: `
action = "testConnection"

[parameters]
connection = "succeed"

[parameters.test_validation]
fail = true

[[storage.input.tables]]
source = "in.c-main.t"
destination = "t.csv"
columns = ["id", "name"]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(dataDirWith(t, tt.file, tt.content), nil)
			require.NoError(t, err)

			assert.Equal(t, "testConnection", cfg.Action)
			assert.Equal(t, "succeed", cfg.ParamString("connection"))
			assert.True(t, cfg.ParamBool("test_validation.fail"))
			assert.True(t, cfg.HasParam("test_validation"))
			assert.False(t, cfg.HasParam("missing"))
			require.Len(t, cfg.InputTables(), 1)
			assert.Equal(t, TableMapping{
				Source:      "in.c-main.t",
				Destination: "t.csv",
				Columns:     []string{"id", "name"},
			}, cfg.InputTables()[0])
		})
	}
}

func TestLoad_NoAction(t *testing.T) {
	cfg, err := Load(dataDirWith(t, "config.json", `{"parameters": {}}`), nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Action)
	assert.NotNil(t, cfg.Parameters)
	assert.Empty(t, cfg.InputTables())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("KBCOMPONENT_ACTION", "testColumns")
	t.Setenv("KBCOMPONENT_PARAMETERS__CONNECTION", "fail")

	cfg, err := Load(dataDirWith(t, "config.json", `{"action": "run", "parameters": {"connection": "succeed"}}`), nil)
	require.NoError(t, err)

	assert.Equal(t, "testColumns", cfg.Action)
	assert.Equal(t, "fail", cfg.ParamString("connection"))
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("KBCOMPONENT_ACTION", "testColumns")

	cfg, err := Load(dataDirWith(t, "config.json", `{"action": "run"}`), map[string]interface{}{
		"action": "validate_report",
	})
	require.NoError(t, err)
	assert.Equal(t, "validate_report", cfg.Action)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(datadir.New(afero.NewMemMapFs(), "/data"), nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.True(t, errors.IsConfiguration(err))
	})

	t.Run("invalid_json", func(t *testing.T) {
		_, err := Load(dataDirWith(t, "config.json", `{"action": `), nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("wrong_shape", func(t *testing.T) {
		_, err := Load(dataDirWith(t, "config.json", `{"storage": {"input": {"tables": "nope"}}}`), nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]interface{}{
		"action": "testColumns",
		"parameters": map[string]interface{}{
			"test_value": "x",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "testColumns", cfg.Action)
	assert.Equal(t, "x", cfg.ParamString("test_value"))
	assert.Equal(t, "x", cfg.Param("test_value"))
}

func TestAccessorsWithoutKoanf(t *testing.T) {
	cfg := &Config{Parameters: map[string]interface{}{
		"connection": "fail",
		"nested":     map[string]interface{}{"flag": true, "n": 3},
	}}

	assert.Equal(t, "fail", cfg.ParamString("connection"))
	assert.Equal(t, "3", cfg.ParamString("nested.n"))
	assert.True(t, cfg.ParamBool("nested.flag"))
	assert.False(t, cfg.ParamBool("connection"))
	assert.True(t, cfg.HasParam("nested.flag"))
	assert.Nil(t, cfg.Param("nested.missing"))
	assert.Empty(t, cfg.ParamString("missing"))
}

func TestValidateRequired(t *testing.T) {
	cfg, err := FromMap(map[string]interface{}{
		"parameters": map[string]interface{}{"connection": "succeed"},
	})
	require.NoError(t, err)

	assert.NoError(t, cfg.ValidateRequired())
	assert.NoError(t, cfg.ValidateRequired("connection"))

	err = cfg.ValidateRequired("token", "connection", "host")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, []string{"host", "token"}, errors.GetErrorDetails(err)["missing"])
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "action", envKey("KBCOMPONENT_ACTION"))
	assert.Equal(t, "parameters.test_value", envKey("KBCOMPONENT_PARAMETERS__TEST_VALUE"))
	assert.Equal(t, "image_parameters.url", envKey("KBCOMPONENT_IMAGE_PARAMETERS__URL"))
}
