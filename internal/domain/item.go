package domain

import (
	"fmt"
	"strings"
)

// ItemKind identifies something the player can buy and hold in inventory.
type ItemKind string

const (
	ItemSeed          ItemKind = "seed"
	ItemFertilizer    ItemKind = "fertilizer"
	ItemBugKiller     ItemKind = "bug_killer"
	ItemFarmHelper    ItemKind = "farm_helper"
	ItemSecurityFence ItemKind = "security_fence"
)

// Item is a catalog entry. Prices are fixed for the lifetime of the process.
type Item struct {
	Kind        ItemKind `json:"kind"`
	DisplayName string   `json:"display_name"`
	Price       int      `json:"price"`
}

var catalog = []Item{
	{Kind: ItemSeed, DisplayName: "Corn Seed", Price: 10},
	{Kind: ItemFertilizer, DisplayName: "Fertilizer", Price: 25},
	{Kind: ItemBugKiller, DisplayName: "Bug Killer", Price: 30},
	{Kind: ItemFarmHelper, DisplayName: "Farm Helper", Price: 150},
	{Kind: ItemSecurityFence, DisplayName: "Security Fence", Price: 200},
}

// Catalog returns every item kind in shop order.
func Catalog() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}

// ItemKinds returns the kinds in catalog order.
func ItemKinds() []ItemKind {
	kinds := make([]ItemKind, len(catalog))
	for i, it := range catalog {
		kinds[i] = it.Kind
	}
	return kinds
}

func (k ItemKind) lookup() (Item, bool) {
	for _, it := range catalog {
		if it.Kind == k {
			return it, true
		}
	}
	return Item{}, false
}

// Price returns the unit price, or 0 for an unknown kind.
func (k ItemKind) Price() int {
	it, _ := k.lookup()
	return it.Price
}

// DisplayName returns the shop label for the kind.
func (k ItemKind) DisplayName() string {
	if it, ok := k.lookup(); ok {
		return it.DisplayName
	}
	return string(k)
}

// Valid reports whether k is part of the catalog.
func (k ItemKind) Valid() bool {
	_, ok := k.lookup()
	return ok
}

// ParseItemKind accepts the kind name case-insensitively.
func ParseItemKind(s string) (ItemKind, error) {
	k := ItemKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, s)
	}
	return k, nil
}
