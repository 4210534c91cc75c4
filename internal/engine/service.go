package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/p119ro/dopelganger/internal/config"
	"github.com/p119ro/dopelganger/internal/storage"
)

// Service owns the live State and serializes every mutation behind a mutex.
// Mutations run to completion against the in-memory state, which is
// authoritative; the blob write afterwards is best-effort, so a crash in
// between loses at most that one mutation.
type Service struct {
	mu      sync.Mutex
	store   *storage.Store
	cfg     config.Config
	log     *slog.Logger
	now     func() time.Time
	limiter *rate.Limiter

	state *State
}

func NewService(store *storage.Store, cfg config.Config) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:   time.Now,
		// At most one day-change ledger scan per poll interval.
		limiter: rate.NewLimiter(rate.Every(cfg.PollInterval()), 1),
	}
}

// SetLogger installs a logger for settlement and persistence events.
func (s *Service) SetLogger(log *slog.Logger) {
	if log != nil {
		s.log = log
	}
}

// SetClock overrides the wall clock, for tests.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Init loads the persisted state (falling back to a fresh one when absent or
// corrupt), catches up the authoritative date to the wall clock, and settles
// any days that elapsed while the app was closed.
func (s *Service) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrCorrupt):
		s.log.Warn("state blob corrupt, starting fresh", "err", err)
		if err := s.store.Clear(ctx); err != nil {
			return err
		}
		blob = nil
	case err != nil:
		return err
	}

	if blob == nil {
		s.state = NewState(s.now())
	} else {
		s.state = fromSerialized(blob, s.now())
	}

	// Startup pins the viewing cursor back to the real today, so a stale
	// cursor from a previous session cannot silently edit the past. With
	// past edits allowed the saved cursor keeps its place instead.
	if !s.cfg.AllowPastEdits {
		s.state.Viewing = s.state.Today
	}
	if results, changed := CatchUp(s.state, DateKey(s.now())); changed {
		s.logSettlements(results)
	}
	s.logSettlements(Reconcile(s.state))
	CheckAchievements(s.state)
	s.persist(ctx)
	return nil
}

// State returns a point-in-time snapshot for read-only derivations (balance,
// streaks, summaries). The copy shares nothing with the live state, so a UI
// goroutine can render from it while a mutation runs behind the mutex. All
// writes go through Service methods.
func (s *Service) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Toggle flips a habit on the viewing date, reconciles any other elapsed
// unsettled days, and persists.
func (s *Service) Toggle(ctx context.Context, habitID string, completed bool) ToggleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := ToggleHabit(s.state, habitID, completed, s.cfg.AllowPastEdits)
	if res.Applied {
		s.log.Info("habit toggled",
			"habit", res.Habit.ID,
			"date", s.state.Viewing,
			"completed", res.Completed,
			"userDelta", res.UserDelta,
		)
	}
	s.logSettlements(Reconcile(s.state))
	CheckAchievements(s.state)
	s.persist(ctx)
	return res
}

// ChangeViewing moves the viewing cursor by delta days, clamped at today.
func (s *Service) ChangeViewing(ctx context.Context, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved := s.state.ChangeViewing(delta)
	if moved {
		s.persist(ctx)
	}
	return moved
}

// AdvanceDay is the debug day skip: settle today, advance the authoritative
// date, pin viewing to the new today.
func (s *Service) AdvanceDay(ctx context.Context) SettleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := AdvanceDay(s.state)
	s.logSettlements([]SettleResult{res})
	CheckAchievements(s.state)
	s.persist(ctx)
	return res
}

// ReconcileNow settles all elapsed unsettled days and persists.
func (s *Service) ReconcileNow(ctx context.Context) []SettleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := Reconcile(s.state)
	s.logSettlements(results)
	if len(results) > 0 {
		CheckAchievements(s.state)
		s.persist(ctx)
	}
	return results
}

// CheckDayChange is the periodic day-rollover probe. It is debounced to at
// most one check per poll interval and short-circuits without touching the
// ledger when the calendar date has not moved. Returns true when a rollover
// was processed.
func (s *Service) CheckDayChange(ctx context.Context) bool {
	if !s.limiter.Allow() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	results, changed := CatchUp(s.state, DateKey(s.now()))
	if !changed {
		return false
	}
	s.log.Info("day rolled over", "today", s.state.Today)
	s.logSettlements(results)
	CheckAchievements(s.state)
	s.persist(ctx)
	return true
}

// SetUserName records the profile name and clears the first-run flag.
func (s *Service) SetUserName(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.state.UserName = name
	s.state.FirstTime = false
	s.persist(ctx)
}

// CreateTeam starts a team and persists.
func (s *Service) CreateTeam(ctx context.Context, name string) (*Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := CreateTeam(s.state, name)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return team, nil
}

// JoinTeam joins a team by code and persists.
func (s *Service) JoinTeam(ctx context.Context, code string) (*Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := JoinTeam(s.state, code)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)
	return team, nil
}

// Reset wipes the persisted blob and starts a fresh state.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.state = NewState(s.now())
	return nil
}

func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, toSerialized(s.state)); err != nil {
		s.log.Warn("state save failed", "err", err)
	}
}

func (s *Service) logSettlements(results []SettleResult) {
	for _, r := range results {
		if !r.Applied {
			continue
		}
		s.log.Info("day settled",
			"date", r.DateKey,
			"missedPoints", r.MissedPoints,
			"tier", r.Tier,
			"punishment", r.Punishment,
		)
	}
}
