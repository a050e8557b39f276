// Package datadir gives access to the component's data directory: the
// configuration file and the input/output state files.
//
//	<root>/config.json    (or config.yaml, config.yml, config.toml)
//	<root>/in/state.json  state left by the previous run
//	<root>/out/state.json state stored for the next run
package datadir

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/kbcomponent/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// EnvDataDir overrides the data directory location
	EnvDataDir = "KBC_DATADIR"

	// DefaultRoot is the data directory inside the component container
	DefaultRoot = "/data"
)

// ConfigFileNames are tried in order when locating the configuration
var ConfigFileNames = []string{"config.json", "config.yaml", "config.yml", "config.toml"}

// DataDir is a data directory on some filesystem
type DataDir struct {
	fs   afero.Fs
	root string
}

// New creates a DataDir rooted at root on fs
func New(fs afero.Fs, root string) *DataDir {
	return &DataDir{fs: fs, root: root}
}

// FromEnv creates a DataDir rooted at $KBC_DATADIR, or DefaultRoot
func FromEnv(fs afero.Fs) *DataDir {
	root := os.Getenv(EnvDataDir)
	if root == "" {
		root = DefaultRoot
	}
	return New(fs, root)
}

// Root returns the data directory path
func (d *DataDir) Root() string {
	return d.root
}

// Path joins elem onto the data directory path
func (d *DataDir) Path(elem ...string) string {
	return filepath.Join(append([]string{d.root}, elem...)...)
}

// ConfigFile returns the path of the first configuration file present
func (d *DataDir) ConfigFile() (string, error) {
	for _, name := range ConfigFileNames {
		path := d.Path(name)
		if ok, _ := afero.Exists(d.fs, path); ok {
			return path, nil
		}
	}
	return "", errors.Newf(errors.ErrConfigLoad, "no configuration file found in %s", d.root).
		WithDetail("candidates", ConfigFileNames)
}

// ReadFile reads a file from the data directory's filesystem
func (d *DataDir) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(d.fs, path)
}

// ReadState returns the input state. A missing state file is an empty state.
func (d *DataDir) ReadState() (map[string]any, error) {
	path := d.Path("in", "state.json")
	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStateRead, "cannot read state file %s", path)
	}

	state := map[string]any{}
	if len(data) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateRead, "state file %s is not a JSON object", path)
	}
	return state, nil
}

// WriteState stores the output state, creating the out directory if needed
func (d *DataDir) WriteState(state map[string]any) error {
	path := d.Path("out", "state.json")
	if state == nil {
		state = map[string]any{}
	}

	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, errors.ErrStateWrite, "cannot encode state")
	}
	if err := d.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrStateWrite, "cannot create %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(d.fs, path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStateWrite, "cannot write state file %s", path)
	}
	return nil
}
