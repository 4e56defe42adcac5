// Package save keeps lifetime totals across sessions in the per-user data
// directory.
package save

import (
	"fmt"
	"log/slog"

	"github.com/plus3/astro/shooter"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "astro"

	recordObject   = "scores"
	recordProperty = "lifetime"
)

// Record is the persisted lifetime summary.
type Record struct {
	Sessions   int `yaml:"sessions"`
	Kills      int `yaml:"kills"`
	Deaths     int `yaml:"deaths"`
	Shots      int `yaml:"shots"`
	BestStreak int `yaml:"bestStreak"`
}

// Merge folds one session's scoreboard into the record.
func (r *Record) Merge(s shooter.Scoreboard) {
	r.Sessions++
	r.Kills += s.Kills
	r.Deaths += s.Deaths
	r.Shots += s.Shots
	r.BestStreak = max(r.BestStreak, s.BestStreak)
}

// Store reads and writes the record. A Store without a manager keeps the
// record in memory only.
type Store struct {
	manager *gdata.Manager
	record  Record
}

// Open opens the data directory of appName and loads the saved record. A
// directory that cannot be opened degrades to an in-memory store.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		slog.Warn("save data unavailable, scores will not persist", "error", err)
		m = nil
	}
	s := NewStore(m)
	if err := s.Load(); err != nil {
		slog.Warn("failed to load saved scores", "error", err)
	}
	return s
}

func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

// Persistent reports whether the store writes to disk.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Record returns the current record.
func (s *Store) Record() Record {
	return s.record
}

// Load replaces the in-memory record with the saved one. A missing save
// leaves an empty record.
func (s *Store) Load() error {
	s.record = Record{}
	if s.manager == nil || !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	s.record = r
	return nil
}

// Merge adds a session to the in-memory record; call Save to persist it.
func (s *Store) Merge(score shooter.Scoreboard) {
	s.record.Merge(score)
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	slog.Debug("scores saved", "sessions", s.record.Sessions, "kills", s.record.Kills)
	return nil
}
