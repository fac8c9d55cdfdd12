// Package prefs handles roster user preferences persistence.
// Preferences are stored in ~/.config/roster/prefs.toml and only cover how
// the directory is presented, never the directory data itself.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/directory"
)

// Prefs holds user preferences for roster.
type Prefs struct {
	Theme string `toml:"theme"`
	View  string `toml:"view"`
	Sort  string `toml:"sort"`
	Order string `toml:"order"`
}

const (
	defaultPrefsPath = "~/.config/roster/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultView      = "table"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{
		Theme: defaultTheme,
		View:  defaultView,
		Sort:  directory.SortByName.String(),
		Order: directory.Ascending.String(),
	}
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Defaults(), nil // Graceful degradation
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults(), nil // Graceful degradation
	}

	return p.normalize(), nil
}

// SortKey returns the stored sort key, or name when unset or unknown.
func (p Prefs) SortKey() directory.SortKey {
	key, err := directory.ParseSortKey(p.Sort)
	if err != nil {
		return directory.SortByName
	}
	return key
}

// SortOrder returns the stored order, or ascending when unset or unknown.
func (p Prefs) SortOrder() directory.SortOrder {
	order, err := directory.ParseSortOrder(p.Order)
	if err != nil {
		return directory.Ascending
	}
	return order
}

// GridView reports whether the card grid was the last used view.
func (p Prefs) GridView() bool {
	return p.View == "grid"
}

func (p Prefs) normalize() Prefs {
	def := Defaults()
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = def.Theme
	}
	switch v := strings.ToLower(strings.TrimSpace(p.View)); v {
	case "table", "grid":
		p.View = v
	default:
		p.View = def.View
	}
	p.Sort = p.SortKey().String()
	p.Order = p.SortOrder().String()
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
