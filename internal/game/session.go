// Package game sequences a farm session: daytime actions and purchases, then
// the night, growth and the win/loss check at day end.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/aldenjg/cornharvest/internal/action"
	"github.com/aldenjg/cornharvest/internal/crop"
	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/farm"
	"github.com/aldenjg/cornharvest/internal/inventory"
	"github.com/aldenjg/cornharvest/internal/night"
	"github.com/aldenjg/cornharvest/internal/outcome"
	"github.com/aldenjg/cornharvest/internal/rng"
)

// Options configures a new session. The zero value plays the classic game
// with a time-based seed.
type Options struct {
	Seed     int64
	Source   rng.Source // overrides Seed when set
	Tables   *night.Tables
	Rules    domain.Rules
	FarmSize int
}

// Session is one farmer's game. It is not safe for concurrent use; Service
// serializes access per session.
type Session struct {
	id      string
	seed    int64
	src     rng.Source
	day     int
	money   int
	farm    *farm.Farm
	inv     *inventory.Inventory
	engine  *night.Engine
	rules   domain.Rules
	pending domain.ActionKind
	outcome domain.Outcome
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	ID                   string                  `json:"id"`
	Seed                 int64                   `json:"seed"`
	Day                  int                     `json:"day"`
	Money                int                     `json:"money"`
	Temperature          int                     `json:"temperature"`
	Weather              night.Kind              `json:"weather"`
	DroughtActive        bool                    `json:"drought_active"`
	DroughtDaysRemaining int                     `json:"drought_days_remaining"`
	PendingAction        domain.ActionKind       `json:"pending_action"`
	PendingActionName    string                  `json:"pending_action_name"`
	Plots                []crop.View             `json:"plots"`
	Inventory            map[domain.ItemKind]int `json:"inventory"`
	InventoryValue       int                     `json:"inventory_value"`
	Outcome              domain.Outcome          `json:"outcome"`
	Rules                domain.Rules            `json:"rules"`
}

// DayReport is what the farmer learns on waking up.
type DayReport struct {
	SessionID   string         `json:"session_id"`
	Day         int            `json:"day"`
	Events      []string       `json:"events"`
	Peaceful    bool           `json:"peaceful"`
	MoneyLost   int            `json:"money_lost,omitempty"`
	Money       int            `json:"money"`
	Temperature int            `json:"temperature"`
	Outcome     domain.Outcome `json:"outcome"`
	Night       *night.Report  `json:"night"`
}

// Lines returns the night's messages, or the peaceful line when nothing happened.
func (r *DayReport) Lines() []string {
	if r.Peaceful {
		return []string{PeacefulMessage}
	}
	return r.Events
}

func startingInventory() map[domain.ItemKind]int {
	return map[domain.ItemKind]int{
		domain.ItemSeed:       10,
		domain.ItemFertilizer: 3,
		domain.ItemBugKiller:  2,
	}
}

// NewSession starts day one. The night engine draws the first day's weather
// from the session's source.
func NewSession(opts Options) (*Session, error) {
	seed := opts.Seed
	src := opts.Source
	if src == nil {
		if seed == 0 {
			seed = rng.NewSeed()
		}
		src = rng.New(seed)
	}

	tables := night.DefaultTables()
	if opts.Tables != nil {
		tables = *opts.Tables
	}

	engine, err := night.NewEngine(src, tables, opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create night engine: %w", err)
	}

	inv, err := inventory.NewWith(startingInventory())
	if err != nil {
		return nil, err
	}

	return &Session{
		id:      uuid.NewString(),
		seed:    seed,
		src:     src,
		day:     StartingDay,
		money:   StartingMoney,
		farm:    farm.New(opts.FarmSize),
		inv:     inv,
		engine:  engine,
		rules:   opts.Rules,
		pending: domain.ActionNone,
		outcome: domain.OutcomeContinue,
	}, nil
}

func (s *Session) ID() string                 { return s.id }
func (s *Session) Day() int                   { return s.day }
func (s *Session) Money() int                 { return s.money }
func (s *Session) Outcome() domain.Outcome    { return s.outcome }
func (s *Session) Pending() domain.ActionKind { return s.pending }

func (s *Session) checkPlayable() error {
	if s.outcome.Terminal() {
		return fmt.Errorf("%w: %s on day %d", domain.ErrGameOver, s.outcome, s.day)
	}
	return nil
}

// SetAction chooses the action the next Execute applies. Plant, Fertilize
// and Protect are refused when the farmer holds none of the needed supply.
func (s *Session) SetAction(kind domain.ActionKind) error {
	if err := s.checkPlayable(); err != nil {
		return err
	}
	if err := action.Precheck(kind, s.inv); err != nil {
		return err
	}
	s.pending = kind
	return nil
}

// Select marks plots for the next Execute.
func (s *Session) Select(indices ...int) error {
	if err := s.checkPlayable(); err != nil {
		return err
	}
	return s.farm.Select(indices...)
}

// Execute applies the pending action to the selection and banks earnings.
// The pending action stays set when nothing was applied so the farmer can
// pick different plots and try again.
func (s *Session) Execute() (action.Result, error) {
	if err := s.checkPlayable(); err != nil {
		return action.Result{}, err
	}
	if s.pending == domain.ActionNone {
		return action.Result{}, domain.ErrNoActionSelected
	}

	cond := action.Conditions{
		WateringBlocked: s.rules.DroughtBlocksWatering && s.engine.DroughtActive(),
	}
	res, err := action.Apply(s.pending, s.farm, s.inv, cond)
	if err != nil {
		return action.Result{}, err
	}

	s.money += res.Earned
	if res.Applied > 0 {
		s.pending = domain.ActionNone
	}
	return res, nil
}

// CancelAction drops the pending action and the selection.
func (s *Session) CancelAction() {
	s.pending = domain.ActionNone
	s.farm.DeselectAll()
}

// Purchase buys from the shop. Each quantity must be in [0,100]; the order
// is all or nothing. It returns the amount spent.
func (s *Session) Purchase(order map[domain.ItemKind]int) (int, error) {
	if err := s.checkPlayable(); err != nil {
		return 0, err
	}

	total := 0
	for kind, qty := range order {
		if !kind.Valid() {
			return 0, fmt.Errorf("%w: %q", domain.ErrUnknownItem, kind)
		}
		if qty < 0 || qty > MaxPurchaseQty {
			return 0, fmt.Errorf("%w: %d %s (allowed 0-%d)", domain.ErrInvalidQuantity, qty, kind, MaxPurchaseQty)
		}
		total += qty * kind.Price()
	}

	if total == 0 {
		return 0, domain.ErrEmptyPurchase
	}
	if total > s.money {
		return 0, fmt.Errorf("%w: order costs $%d, have $%d", domain.ErrInsufficientFunds, total, s.money)
	}

	for kind, qty := range order {
		if err := s.inv.Add(kind, qty); err != nil {
			return 0, err
		}
	}
	s.money -= total
	return total, nil
}

// EndDay runs the night, grows every plot, advances the day and checks for
// a win or loss. A night error aborts before growth; the night engine
// rolls its own effects back, so the session is left as it was.
func (s *Session) EndDay() (*DayReport, error) {
	if err := s.checkPlayable(); err != nil {
		return nil, err
	}

	nr, err := s.engine.ProcessNight(s.farm, s.inv)
	if err != nil {
		return nil, err
	}

	report := &DayReport{
		SessionID: s.id,
		Events:    nr.Messages,
		Peaceful:  len(nr.Messages) == 0,
		Night:     nr,
	}

	if s.rules.RobberyTakesMoney && nr.RobberyPercent > 0 && s.money > 0 {
		report.MoneyLost = s.money * nr.RobberyPercent / 100
		s.money -= report.MoneyLost
	}

	s.farm.Each(func(_ int, p *crop.Plot) {
		p.Grow(s.src)
	})

	s.day++
	s.outcome = outcome.Evaluate(s.money, s.farm)

	report.Day = s.day
	report.Money = s.money
	report.Temperature = s.engine.Temperature()
	report.Outcome = s.outcome
	return report, nil
}

// Forecast lists tonight's odds.
func (s *Session) Forecast() []string {
	return s.engine.Forecast()
}

// Snapshot copies the session state.
func (s *Session) Snapshot() *Snapshot {
	state := s.engine.State()
	return &Snapshot{
		ID:                   s.id,
		Seed:                 s.seed,
		Day:                  s.day,
		Money:                s.money,
		Temperature:          state.Temperature,
		Weather:              night.WeatherFor(state.Temperature),
		DroughtActive:        state.DroughtActive,
		DroughtDaysRemaining: state.DroughtDaysRemaining,
		PendingAction:        s.pending,
		PendingActionName:    s.pending.DisplayName(),
		Plots:                s.farm.Views(),
		Inventory:            s.inv.Snapshot(),
		InventoryValue:       s.inv.TotalValue(),
		Outcome:              s.outcome,
		Rules:                s.rules,
	}
}
