package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Layout values. An empty layout means "follow the window width".
const (
	LayoutAuto   = ""
	LayoutTable  = "table"
	LayoutMobile = "mobile"
)

// Prefs are choices remembered between sessions. The comparison selection
// itself is never saved.
type Prefs struct {
	Layout string `json:"layout,omitempty"`
}

// Store reads and writes Prefs as JSON at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store { return &Store{path: path} }

func (s *Store) Path() string { return s.path }

// Load returns saved prefs. A missing file yields zero Prefs; an unknown
// layout is reset to auto.
func (s *Store) Load() (Prefs, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Prefs{}, nil
		}
		return Prefs{}, err
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	switch p.Layout {
	case LayoutAuto, LayoutTable, LayoutMobile:
	default:
		p.Layout = LayoutAuto
	}
	return p, nil
}

// Save writes p through a temp file so a crash never leaves a torn file.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
