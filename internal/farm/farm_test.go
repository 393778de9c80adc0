package farm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenjg/cornharvest/internal/crop"
	"github.com/aldenjg/cornharvest/internal/domain"
)

func TestNewDefaults(t *testing.T) {
	assert.Equal(t, DefaultSize, New(0).Len())
	assert.Equal(t, 9, New(9).Len())
	assert.True(t, New(0).AllBarren())
}

func TestAtBounds(t *testing.T) {
	f := New(4)
	_, err := f.At(4)
	assert.ErrorIs(t, err, domain.ErrPlotOutOfRange)
	_, err = f.At(-1)
	assert.ErrorIs(t, err, domain.ErrPlotOutOfRange)

	p, err := f.At(3)
	require.NoError(t, err)
	p.Plant()
	assert.Equal(t, 1, f.LiveCount(), "At returns the farm's own plot")
}

func TestSelect(t *testing.T) {
	f := New(4)
	require.NoError(t, f.Select(2, 0))
	assert.Equal(t, []int{0, 2}, f.Selected())

	err := f.Select(1, 9)
	assert.ErrorIs(t, err, domain.ErrPlotOutOfRange)
	assert.Equal(t, []int{0, 2}, f.Selected(), "bad index leaves selection unchanged")

	f.DeselectAll()
	assert.Empty(t, f.Selected())
}

func TestLivenessAndReset(t *testing.T) {
	f := New(3)
	f.Each(func(i int, p *crop.Plot) {
		p.Plant()
		if i == 1 {
			p.Destroy()
		}
	})
	assert.Equal(t, 2, f.LiveCount())
	assert.False(t, f.AllBarren())

	views := f.Views()
	assert.Equal(t, domain.StageDead, views[1].Stage)

	f.Reset()
	assert.True(t, f.AllBarren())
	for _, v := range f.Views() {
		assert.Equal(t, domain.StageEmpty, v.Stage)
	}
}

func TestPlotsAndRestore(t *testing.T) {
	f := New(3)
	p, err := f.At(1)
	require.NoError(t, err)
	p.Plant()
	saved := f.Plots()

	p.AccelerateGrowth(2)
	f.Reset()
	assert.Equal(t, domain.StageEmpty, f.Views()[1].Stage)

	f.Restore(saved)
	assert.Equal(t, domain.StageSeed, f.Views()[1].Stage)
	assert.Equal(t, 0, f.Views()[1].AccelerationDays)

	f.Restore(make([]crop.Plot, 5))
	assert.Equal(t, domain.StageSeed, f.Views()[1].Stage, "wrong size is ignored")
}
