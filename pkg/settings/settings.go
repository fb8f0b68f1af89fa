// Package settings persists user preferences as a TOML file in the user
// config directory.
package settings

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
)

// MaxRecent caps the recent-files list.
const MaxRecent = 10

// Settings is the persisted configuration.
type Settings struct {
	// RecentFiles lists recently opened models, most recent first.
	RecentFiles []string `toml:"recent_files"`

	Takeoff TakeoffSettings `toml:"takeoff"`
	TUI     TUISettings     `toml:"tui"`
}

// TakeoffSettings are the takeoff command defaults. An empty Columns list
// means the built-in column set.
type TakeoffSettings struct {
	Class   string   `toml:"class"`
	Columns []string `toml:"columns"`
}

// TUISettings tune the interactive browser.
type TUISettings struct {
	// ExpandDepth is how many hierarchy levels start expanded.
	ExpandDepth int `toml:"expand_depth"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Takeoff: TakeoffSettings{Class: "IfcElement"},
		TUI:     TUISettings{ExpandDepth: 2},
	}
}

// DefaultPath is the standard settings location, ifcwalk/config.toml under
// the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "cannot locate user config directory")
	}
	return filepath.Join(dir, "ifcwalk", "config.toml"), nil
}

// Load reads settings from path. A missing file yields the defaults; a file
// that does not parse is an error, not a silent reset.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to read settings from %s", path)
	}

	s := Default()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "corrupt settings file %s", path)
	}
	return s, nil
}

// Save writes the settings atomically, via a temp file renamed into place.
func (s *Settings) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode settings")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to create temp settings file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "failed to write settings")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to write settings")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to replace %s", path)
	}
	return nil
}

// AddRecent puts path at the front of the recent list, removing duplicates
// and clipping to MaxRecent.
func (s *Settings) AddRecent(path string) {
	out := make([]string, 0, MaxRecent)
	out = append(out, path)
	for _, p := range s.RecentFiles {
		if p == path {
			continue
		}
		out = append(out, p)
		if len(out) == MaxRecent {
			break
		}
	}
	s.RecentFiles = out
}
