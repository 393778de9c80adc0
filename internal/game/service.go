package game

import (
	"context"
	"fmt"
	"time"

	"github.com/aldenjg/cornharvest/internal/action"
	"github.com/aldenjg/cornharvest/internal/concurrency"
	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/event"
	"github.com/aldenjg/cornharvest/internal/logger"
	"github.com/aldenjg/cornharvest/internal/night"
)

// Service runs many farm sessions side by side. Calls for one session are
// serialized; different sessions proceed in parallel.
type Service interface {
	Create(ctx context.Context, seed int64) (*Snapshot, error)
	Get(ctx context.Context, id string) (*Snapshot, error)
	SetAction(ctx context.Context, id string, kind domain.ActionKind) (*Snapshot, error)
	Select(ctx context.Context, id string, plots []int) (*Snapshot, error)
	Execute(ctx context.Context, id string) (*ExecuteResult, error)
	Cancel(ctx context.Context, id string) (*Snapshot, error)
	Purchase(ctx context.Context, id string, order map[domain.ItemKind]int) (*PurchaseResult, error)
	EndDay(ctx context.Context, id string) (*DayReport, error)
	Forecast(ctx context.Context, id string) ([]string, error)
	Delete(ctx context.Context, id string) error
	Shutdown(ctx context.Context) error
}

// ServiceConfig carries the settings shared by every session.
type ServiceConfig struct {
	Tables    night.Tables
	Rules     domain.Rules
	FarmSize  int
	FixedSeed int64 // used when Create gets seed 0; 0 means clock based
	CacheSize int
	TTL       time.Duration
}

// ExecuteResult is the outcome of one Execute call.
type ExecuteResult struct {
	action.Result
	Message  string    `json:"message"`
	Snapshot *Snapshot `json:"snapshot"`
}

// PurchaseResult is the outcome of one shop order.
type PurchaseResult struct {
	Spent    int       `json:"spent"`
	Snapshot *Snapshot `json:"snapshot"`
}

type service struct {
	cfg   ServiceConfig
	store *sessionStore
	locks *concurrency.LockManager
	bus   event.Bus
}

// NewService creates a session service. bus may be nil.
func NewService(cfg ServiceConfig, bus event.Bus) Service {
	if len(cfg.Tables.Weather) == 0 {
		cfg.Tables = night.DefaultTables()
	}
	locks := concurrency.NewLockManager()
	return &service{
		cfg:   cfg,
		store: newSessionStore(cfg.CacheSize, cfg.TTL, locks),
		locks: locks,
		bus:   bus,
	}
}

func (s *service) Create(ctx context.Context, seed int64) (*Snapshot, error) {
	log := logger.FromContext(ctx)

	if seed == 0 {
		seed = s.cfg.FixedSeed
	}
	tables := s.cfg.Tables
	sess, err := NewSession(Options{
		Seed:     seed,
		Tables:   &tables,
		Rules:    s.cfg.Rules,
		FarmSize: s.cfg.FarmSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.store.Put(sess)
	snap := sess.Snapshot()
	log.Info(LogMsgSessionCreated, "session_id", snap.ID, "seed", snap.Seed, "temperature", snap.Temperature)

	s.publish(ctx, event.NewSessionStartedEvent(snap.ID, snap.Seed, snap.Money, snap.Temperature))
	return snap, nil
}

// withSession runs fn while holding the session's lock.
func (s *service) withSession(id string, fn func(sess *Session) error) error {
	if !s.store.Contains(id) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	// Deleted or evicted while we waited.
	sess, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	if err := fn(sess); err != nil {
		return err
	}
	s.store.Touch(sess)
	return nil
}

func (s *service) Get(_ context.Context, id string) (*Snapshot, error) {
	var snap *Snapshot
	err := s.withSession(id, func(sess *Session) error {
		snap = sess.Snapshot()
		return nil
	})
	return snap, err
}

func (s *service) SetAction(ctx context.Context, id string, kind domain.ActionKind) (*Snapshot, error) {
	var snap *Snapshot
	err := s.withSession(id, func(sess *Session) error {
		if err := sess.SetAction(kind); err != nil {
			return err
		}
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgActionSet, "session_id", id, "action", kind)
	return snap, nil
}

func (s *service) Select(_ context.Context, id string, plots []int) (*Snapshot, error) {
	var snap *Snapshot
	err := s.withSession(id, func(sess *Session) error {
		if err := sess.Select(plots...); err != nil {
			return err
		}
		snap = sess.Snapshot()
		return nil
	})
	return snap, err
}

func (s *service) Execute(ctx context.Context, id string) (*ExecuteResult, error) {
	var out *ExecuteResult
	err := s.withSession(id, func(sess *Session) error {
		res, err := sess.Execute()
		if err != nil {
			return err
		}
		out = &ExecuteResult{Result: res, Message: res.Message(), Snapshot: sess.Snapshot()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgActionExecuted,
		"session_id", id, "action", out.Action, "applied", out.Applied, "earned", out.Earned)
	s.publish(ctx, event.NewActionAppliedEvent(id, out.Action, out.Applied, out.Earned, out.Snapshot.Money, out.Message))
	return out, nil
}

func (s *service) Cancel(_ context.Context, id string) (*Snapshot, error) {
	var snap *Snapshot
	err := s.withSession(id, func(sess *Session) error {
		sess.CancelAction()
		snap = sess.Snapshot()
		return nil
	})
	return snap, err
}

func (s *service) Purchase(ctx context.Context, id string, order map[domain.ItemKind]int) (*PurchaseResult, error) {
	var out *PurchaseResult
	err := s.withSession(id, func(sess *Session) error {
		spent, err := sess.Purchase(order)
		if err != nil {
			return err
		}
		out = &PurchaseResult{Spent: spent, Snapshot: sess.Snapshot()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPurchaseCompleted, "session_id", id, "spent", out.Spent, "money", out.Snapshot.Money)
	s.publish(ctx, event.NewItemsPurchasedEvent(id, order, out.Spent, out.Snapshot.Money))
	return out, nil
}

func (s *service) EndDay(ctx context.Context, id string) (*DayReport, error) {
	log := logger.FromContext(ctx)

	var report *DayReport
	err := s.withSession(id, func(sess *Session) error {
		r, err := sess.EndDay()
		if err != nil {
			return err
		}
		report = r
		return nil
	})
	if err != nil {
		log.Error(LogMsgNightFailed, "session_id", id, "error", err)
		return nil, err
	}

	log.Info(LogMsgDayEnded, "session_id", id, "day", report.Day, "money", report.Money,
		"events", len(report.Events), "outcome", report.Outcome)
	s.publish(ctx, event.NewDayEndedEvent(dayEndedPayload(report)))

	if report.Outcome.Terminal() {
		log.Info(LogMsgGameOver, "session_id", id, "outcome", report.Outcome, "day", report.Day, "money", report.Money)
		s.publish(ctx, event.NewGameOverEvent(id, report.Outcome, report.Money, report.Day))
	}
	return report, nil
}

func dayEndedPayload(r *DayReport) event.DayEndedPayloadV1 {
	p := event.DayEndedPayloadV1{
		SessionID:   r.SessionID,
		Day:         r.Day,
		Events:      r.Events,
		Peaceful:    r.Peaceful,
		MoneyLost:   r.MoneyLost,
		Money:       r.Money,
		Temperature: r.Temperature,
		Outcome:     string(r.Outcome),
	}
	if r.Night != nil {
		p.NightEvent = string(r.Night.Event)
		p.Disaster = string(r.Night.Disaster)
		p.Destroyed = r.Night.Destroyed
	}
	return p
}

func (s *service) Forecast(_ context.Context, id string) ([]string, error) {
	var lines []string
	err := s.withSession(id, func(sess *Session) error {
		lines = sess.Forecast()
		return nil
	})
	return lines, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !s.store.Contains(id) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	mu := s.locks.GetLock(id)
	mu.Lock()
	removed := s.store.Remove(id)
	mu.Unlock()

	if !removed {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	logger.FromContext(ctx).Info(LogMsgSessionDeleted, "session_id", id)
	return nil
}

// Shutdown drops every session.
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgServiceShutdown)

	n := s.store.Len()
	s.store.Purge()
	log.Info(LogMsgSessionsPurged, "count", n)
	return ctx.Err()
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "session_id", evt.SessionID(), "error", err)
	}
}
