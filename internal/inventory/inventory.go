// Package inventory holds the player's counted stock of catalog items.
package inventory

import (
	"fmt"

	"github.com/aldenjg/cornharvest/internal/domain"
)

// Inventory is a counted multiset of item kinds. Counts never go negative.
type Inventory struct {
	counts map[domain.ItemKind]int
}

// New returns an inventory with every catalog kind at zero.
func New() *Inventory {
	inv := &Inventory{counts: make(map[domain.ItemKind]int)}
	for _, k := range domain.ItemKinds() {
		inv.counts[k] = 0
	}
	return inv
}

// NewWith returns an inventory seeded with the given counts.
func NewWith(start map[domain.ItemKind]int) (*Inventory, error) {
	inv := New()
	for k, n := range start {
		if err := inv.Add(k, n); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// Add increases the count of kind by n.
func (inv *Inventory) Add(kind domain.ItemKind, n int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownItem, kind)
	}
	if n < 0 {
		return fmt.Errorf("%w: cannot add %d", domain.ErrInvalidQuantity, n)
	}
	inv.counts[kind] += n
	return nil
}

// Use consumes n of kind. It fails without changing anything when fewer than
// n are held.
func (inv *Inventory) Use(kind domain.ItemKind, n int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownItem, kind)
	}
	if n < 0 {
		return fmt.Errorf("%w: cannot use %d", domain.ErrInvalidQuantity, n)
	}
	have := inv.counts[kind]
	if have < n {
		return fmt.Errorf("%w: have %d %s, need %d", domain.ErrInsufficientQuantity, have, kind, n)
	}
	inv.counts[kind] = have - n
	return nil
}

// TryUse consumes one of kind and reports whether it could.
func (inv *Inventory) TryUse(kind domain.ItemKind) bool {
	return inv.Use(kind, 1) == nil
}

func (inv *Inventory) Count(kind domain.ItemKind) int {
	return inv.counts[kind]
}

func (inv *Inventory) Has(kind domain.ItemKind) bool {
	return inv.counts[kind] > 0
}

// TotalValue is the shop value of everything held.
func (inv *Inventory) TotalValue() int {
	total := 0
	for k, n := range inv.counts {
		total += n * k.Price()
	}
	return total
}

// RemovePercent drops percent of every kind's count, truncating per kind.
// It returns how many of each kind were removed.
func (inv *Inventory) RemovePercent(percent int) map[domain.ItemKind]int {
	removed := make(map[domain.ItemKind]int)
	if percent <= 0 {
		return removed
	}
	if percent > 100 {
		percent = 100
	}
	for k, n := range inv.counts {
		drop := n * percent / 100
		if drop > 0 {
			inv.counts[k] = n - drop
			removed[k] = drop
		}
	}
	return removed
}

// Clear zeroes every count.
func (inv *Inventory) Clear() {
	for k := range inv.counts {
		inv.counts[k] = 0
	}
}

// Snapshot copies the counts for read-only display.
func (inv *Inventory) Snapshot() map[domain.ItemKind]int {
	out := make(map[domain.ItemKind]int, len(inv.counts))
	for k, n := range inv.counts {
		out[k] = n
	}
	return out
}

// Restore replaces every count with the ones in counts, as taken by Snapshot.
func (inv *Inventory) Restore(counts map[domain.ItemKind]int) {
	inv.Clear()
	for k, n := range counts {
		if n > 0 {
			inv.counts[k] = n
		}
	}
}
