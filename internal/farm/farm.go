// Package farm is the fixed-size ordered collection of plots a session plays on.
package farm

import (
	"fmt"

	"github.com/aldenjg/cornharvest/internal/crop"
	"github.com/aldenjg/cornharvest/internal/domain"
)

// DefaultSize is the classic 4x4 field.
const DefaultSize = 16

// Farm owns its plots. The number of plots never changes after New.
type Farm struct {
	plots []crop.Plot
}

// New builds a farm of size empty plots. A non-positive size uses DefaultSize.
func New(size int) *Farm {
	if size <= 0 {
		size = DefaultSize
	}
	return &Farm{plots: make([]crop.Plot, size)}
}

func (f *Farm) Len() int {
	return len(f.plots)
}

// At returns the plot at index i for in-place mutation.
func (f *Farm) At(i int) (*crop.Plot, error) {
	if i < 0 || i >= len(f.plots) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", domain.ErrPlotOutOfRange, i, len(f.plots))
	}
	return &f.plots[i], nil
}

// Each visits every plot in farm order.
func (f *Farm) Each(fn func(i int, p *crop.Plot)) {
	for i := range f.plots {
		fn(i, &f.plots[i])
	}
}

// Select marks the given plots. Every index is checked before any plot is
// touched, so a bad index leaves the selection unchanged.
func (f *Farm) Select(indices ...int) error {
	for _, i := range indices {
		if _, err := f.At(i); err != nil {
			return err
		}
	}
	for _, i := range indices {
		f.plots[i].SetSelected(true)
	}
	return nil
}

// Selected returns the selected indices in farm order.
func (f *Farm) Selected() []int {
	var out []int
	for i := range f.plots {
		if f.plots[i].Selected() {
			out = append(out, i)
		}
	}
	return out
}

func (f *Farm) DeselectAll() {
	for i := range f.plots {
		f.plots[i].SetSelected(false)
	}
}

// LiveCount counts plots holding a growing crop.
func (f *Farm) LiveCount() int {
	n := 0
	for i := range f.plots {
		if f.plots[i].IsLive() {
			n++
		}
	}
	return n
}

// AllBarren reports whether every plot is empty or dead.
func (f *Farm) AllBarren() bool {
	return f.LiveCount() == 0
}

// Views copies every plot for display.
func (f *Farm) Views() []crop.View {
	out := make([]crop.View, len(f.plots))
	for i := range f.plots {
		out[i] = f.plots[i].View()
	}
	return out
}

// Reset clears every plot to empty.
func (f *Farm) Reset() {
	for i := range f.plots {
		f.plots[i].Clear()
	}
}

// Plots copies every plot so the field can be put back with Restore.
func (f *Farm) Plots() []crop.Plot {
	return append([]crop.Plot(nil), f.plots...)
}

// Restore overwrites the field with plots taken by Plots. A copy of a
// different size is ignored.
func (f *Farm) Restore(plots []crop.Plot) {
	if len(plots) != len(f.plots) {
		return
	}
	copy(f.plots, plots)
}
