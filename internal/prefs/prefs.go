// Package prefs remembers choices made inside the viewer, currently the
// colour theme, in ~/.config/streamtabs/prefs.toml. The file is written by
// streamtabs itself; settings a user edits by hand live in the config file.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/streamtabs/internal/config"
)

// Prefs holds remembered viewer choices. Empty fields mean "not chosen".
type Prefs struct {
	Theme string `toml:"theme"`
}

const defaultPath = "~/.config/streamtabs/prefs.toml"

// Path resolves path, or the default location when path is empty.
func Path(path string) (string, error) {
	if path == "" {
		path = defaultPath
	}
	return config.ExpandPath(path)
}

// Load reads remembered choices. A missing or unreadable file yields empty
// Prefs: losing a remembered theme is not worth failing startup over.
func Load(path string) Prefs {
	resolved, err := Path(path)
	if err != nil {
		return Prefs{}
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Prefs{}
	}
	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	return p
}

// Save writes p, replacing the file in one rename so a crash mid-write never
// leaves a truncated file behind.
func Save(path string, p Prefs) error {
	resolved, err := Path(path)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
