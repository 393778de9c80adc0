// Package night runs the nightly weather, event and disaster rolls that
// perturb a farm and its owner's inventory between days.
package night

import (
	"fmt"

	"github.com/aldenjg/cornharvest/internal/crop"
	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/farm"
	"github.com/aldenjg/cornharvest/internal/inventory"
	"github.com/aldenjg/cornharvest/internal/rng"
)

// State persists across nights for one session.
type State struct {
	Temperature          int  `json:"temperature"`
	DroughtActive        bool `json:"drought_active"`
	DroughtDaysRemaining int  `json:"drought_days_remaining"`
}

// Report describes one processed night. Messages is empty on a peaceful night.
type Report struct {
	Messages        []string `json:"messages"`
	Weather         Kind     `json:"weather"`
	Event           Kind     `json:"event"`
	Disaster        Kind     `json:"disaster"`
	Destroyed       int      `json:"destroyed"`
	RobberyPercent  int      `json:"robbery_percent,omitempty"`
	Temperature     int      `json:"temperature"`
	NextTemperature int      `json:"next_temperature"`
}

// Engine evaluates the nightly probability tables. It holds no reference to
// the farm or inventory between calls.
type Engine struct {
	src    rng.Source
	tables Tables
	rules  domain.Rules
	state  State
}

// NewEngine creates an engine and draws the first day's weather.
func NewEngine(src rng.Source, tables Tables, rules domain.Rules) (*Engine, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{src: src, tables: tables, rules: rules}
	if err := e.updateWeather(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEngineAt resumes an engine from a known state without drawing.
func NewEngineAt(src rng.Source, tables Tables, rules domain.Rules, state State) (*Engine, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return &Engine{src: src, tables: tables, rules: rules, state: state}, nil
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Temperature() int {
	return e.state.Temperature
}

func (e *Engine) DroughtActive() bool {
	return e.state.DroughtActive
}

func (e *Engine) Rules() domain.Rules {
	return e.rules
}

// WeatherFor classifies a temperature by its effect on crops. The bands are
// checked on temperature, not on the roll that produced it, so a warm
// neutral day of 30°C still counts as good.
func WeatherFor(temp int) Kind {
	switch {
	case temp >= GoodTempMin && temp <= GoodTempMax:
		return KindGood
	case temp < BadColdBelow || temp > BadHotAbove:
		return KindBad
	default:
		return KindNeutral
	}
}

// ProcessNight runs one night against f and inv. The steps run in a fixed
// order: weather effect, drought countdown, event roll, disaster roll, then
// tomorrow's weather. Growth is left to the caller.
//
// An error means a roll fell outside its table. The farm, inventory and
// engine state are then put back as they were, so a retry starts clean.
func (e *Engine) ProcessNight(f *farm.Farm, inv *inventory.Inventory) (*Report, error) {
	plots, counts, state := f.Plots(), inv.Snapshot(), e.state

	report, err := e.night(f, inv)
	if err != nil {
		f.Restore(plots)
		inv.Restore(counts)
		e.state = state
		return nil, err
	}
	return report, nil
}

func (e *Engine) night(f *farm.Farm, inv *inventory.Inventory) (*Report, error) {
	report := &Report{
		Messages:    []string{},
		Event:       KindNothing,
		Disaster:    KindNothing,
		Temperature: e.state.Temperature,
		Weather:     WeatherFor(e.state.Temperature),
	}

	e.applyWeather(f, report)
	e.tickDrought(report)

	if err := e.rollEvent(f, inv, report); err != nil {
		return nil, err
	}
	if err := e.rollDisaster(f, inv, report); err != nil {
		return nil, err
	}
	if err := e.updateWeather(); err != nil {
		return nil, err
	}

	report.NextTemperature = e.state.Temperature
	return report, nil
}

func (e *Engine) applyWeather(f *farm.Farm, report *Report) {
	switch report.Weather {
	case KindGood:
		eachLive(f, func(p *crop.Plot) { p.AccelerateGrowth(GoodWeatherAcceleration) })
		report.Messages = append(report.Messages, MsgGoodWeather)
	case KindBad:
		eachLive(f, func(p *crop.Plot) { p.DelayGrowth(BadWeatherDelay) })
		report.Messages = append(report.Messages, MsgBadWeather)
	}
}

func (e *Engine) tickDrought(report *Report) {
	if !e.state.DroughtActive {
		return
	}
	e.state.DroughtDaysRemaining--
	if e.state.DroughtDaysRemaining <= 0 {
		e.state.DroughtActive = false
		e.state.DroughtDaysRemaining = 0
		report.Messages = append(report.Messages, MsgDroughtEnded)
		return
	}
	report.Messages = append(report.Messages, fmt.Sprintf(MsgDroughtContinuesFmt, e.state.DroughtDaysRemaining))
}

func (e *Engine) rollEvent(f *farm.Farm, inv *inventory.Inventory, report *Report) error {
	kind, err := e.tables.Events.Resolve(e.src.IntN(rollSpace))
	if err != nil {
		return fmt.Errorf("event roll: %w", err)
	}
	report.Event = kind

	switch kind {
	case KindPestInvasion:
		target := PestMinDestroyed + e.src.IntN(PestExtraSpan)
		destroyed := destroyLive(f, target, false)
		report.Destroyed += destroyed
		if destroyed > 0 {
			report.Messages = append(report.Messages, fmt.Sprintf(MsgPestInvasionFmt, destroyed))
		}
	case KindRobbery:
		percent := RobberyMinPercent + e.src.IntN(RobberyPercentSpan)
		inv.RemovePercent(percent)
		report.RobberyPercent = percent
		msg := MsgRobberyFmt
		if e.rules.RobberyTakesMoney {
			msg = MsgRobberyWithMoneyFmt
		}
		report.Messages = append(report.Messages, fmt.Sprintf(msg, percent))
	case KindGoodBugs:
		eachLive(f, func(p *crop.Plot) { p.AccelerateGrowth(GoodBugsAcceleration) })
		report.Messages = append(report.Messages, MsgGoodBugs)
	}
	return nil
}

func (e *Engine) rollDisaster(f *farm.Farm, inv *inventory.Inventory, report *Report) error {
	kind, err := e.tables.Disasters.Resolve(e.src.IntN(rollSpace))
	if err != nil {
		return fmt.Errorf("disaster roll: %w", err)
	}
	report.Disaster = kind

	switch kind {
	case KindDrought:
		e.state.DroughtActive = true
		e.state.DroughtDaysRemaining = DroughtDays
		report.Messages = append(report.Messages, fmt.Sprintf(MsgDroughtStartedFmt, DroughtDays))
	case KindFlood:
		target := f.LiveCount() * FloodPercent / 100
		destroyed := destroyLive(f, target, true)
		report.Destroyed += destroyed
		if destroyed > 0 {
			report.Messages = append(report.Messages, fmt.Sprintf(MsgFloodFmt, destroyed))
		}
	case KindTornado:
		f.Reset()
		inv.Clear()
		report.Messages = append(report.Messages, MsgTornado)
	}
	return nil
}

// updateWeather draws tomorrow's temperature.
func (e *Engine) updateWeather() error {
	kind, err := e.tables.Weather.Resolve(e.src.IntN(rollSpace))
	if err != nil {
		return fmt.Errorf("weather roll: %w", err)
	}

	switch kind {
	case KindGood:
		e.state.Temperature = GoodTempMin + e.src.IntN(goodTempSpan)
	case KindBad:
		if e.coinFlip() {
			e.state.Temperature = e.src.IntN(coldTempSpan)
		} else {
			e.state.Temperature = hotTempBase + e.src.IntN(hotTempSpan)
		}
	default:
		if e.coinFlip() {
			e.state.Temperature = mildTempBase + e.src.IntN(mildTempSpan)
		} else {
			e.state.Temperature = warmTempBase + e.src.IntN(warmTempSpan)
		}
	}
	return nil
}

func (e *Engine) coinFlip() bool {
	return e.src.IntN(coinFlipOutcome) == 0
}

func eachLive(f *farm.Farm, fn func(p *crop.Plot)) {
	f.Each(func(_ int, p *crop.Plot) {
		if p.IsLive() {
			fn(p)
		}
	})
}

// destroyLive kills up to n live plots in farm order. Protected plots are
// spared unless ignoreProtection is set.
func destroyLive(f *farm.Farm, n int, ignoreProtection bool) int {
	destroyed := 0
	f.Each(func(_ int, p *crop.Plot) {
		if destroyed >= n || !p.IsLive() {
			return
		}
		if p.Protected() && !ignoreProtection {
			return
		}
		p.Destroy()
		destroyed++
	})
	return destroyed
}
