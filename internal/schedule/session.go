package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"scheduleView/internal/lib/logger/sl"
	"scheduleView/internal/models"
)

// Mode selects which representation of the listings is visible.
type Mode int

const (
	ModeTable Mode = iota
	ModeSchedule
)

func (m Mode) String() string {
	if m == ModeSchedule {
		return "schedule"
	}
	return "table"
}

// Label is the caption of the control that switches away from m.
func (m Mode) Label() string {
	if m == ModeSchedule {
		return "Show Table"
	}
	return "Show Schedule"
}

// TableFetcher provides the current listing table.
type TableFetcher interface {
	Fetch(ctx context.Context) (Table, error)
}

// Session owns the display mode and the last rendered fragment. All
// renders are serialised by mu.
type Session struct {
	log      *slog.Logger
	src      TableFetcher
	renderer *Renderer

	mu       sync.Mutex
	mode     Mode
	fragment string
	table    [][]string
}

func NewSession(log *slog.Logger, src TableFetcher, renderer *Renderer) *Session {
	return &Session{
		log:      log.With(slog.String("component", "schedule/session")),
		src:      src,
		renderer: renderer,
		fragment: EmptyFragment,
	}
}

// Init performs the first render. A missing table is fatal for the caller.
func (s *Session) Init(ctx context.Context) error {
	const op = "schedule.Session.Init"

	if err := s.Rebuild(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Rebuild fetches the table and replaces the fragment.
func (s *Session) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rebuildLocked(ctx)
}

func (s *Session) rebuildLocked(ctx context.Context) error {
	const op = "schedule.Session.Rebuild"

	t, err := s.src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	fragment, err := s.renderer.Render(t)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.fragment = fragment
	s.table = t.Rows()

	s.log.Info("schedule rebuilt", slog.Int("rows", len(s.table)))

	return nil
}

// OnChange reacts to a source mutation. Only the schedule view is kept
// current; in table mode the notification is ignored.
func (s *Session) OnChange(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeSchedule {
		s.log.Debug("table changed, schedule view inactive")
		return
	}

	if err := s.rebuildLocked(ctx); err != nil {
		s.log.Error("failed to rebuild schedule", sl.Err(err))
	}
}

// Toggle flips the display mode. Entering schedule mode rebuilds first so a
// stale fragment is never shown.
func (s *Session) Toggle(ctx context.Context) (Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeSchedule {
		s.mode = ModeTable
		return s.mode, nil
	}

	if err := s.rebuildLocked(ctx); err != nil {
		return s.mode, err
	}
	s.mode = ModeSchedule

	return s.mode, nil
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

func (s *Session) Fragment() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fragment
}

// TableRows returns the rows seen by the last successful rebuild.
func (s *Session) TableRows() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.table
}

// RenderRecords renders records without touching session state.
func (s *Session) RenderRecords(records []models.EventRecord) (string, error) {
	return s.renderer.RenderRecords(records)
}
