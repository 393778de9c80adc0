package night

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aldenjg/cornharvest/internal/domain"
)

// Kind names the outcome of a table roll.
type Kind string

// Bucket is one outcome with its share of the 100-point roll space. Buckets
// are laid out cumulatively in the order they appear in the table.
type Bucket struct {
	Kind   Kind   `json:"kind"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// Table is an ordered list of buckets covering [0,100).
type Table []Bucket

// Tables holds the three independent nightly rolls.
type Tables struct {
	Weather   Table `json:"weather"`
	Events    Table `json:"events"`
	Disasters Table `json:"disasters"`
}

// DefaultTables returns the classic odds.
func DefaultTables() Tables {
	return Tables{
		Weather: Table{
			{Kind: KindGood, Label: "Good Weather (24-30°C)", Weight: 15},
			{Kind: KindBad, Label: "Bad Weather (<20°C or >35°C)", Weight: 15},
			{Kind: KindNeutral, Label: "Neutral Weather", Weight: 70},
		},
		Events: Table{
			{Kind: KindPestInvasion, Label: "Pest Invasion", Weight: 10},
			{Kind: KindRobbery, Label: "Robbery", Weight: 3},
			{Kind: KindGoodBugs, Label: "Good Bugs", Weight: 7},
			{Kind: KindNothing, Label: "Nothing", Weight: 80},
		},
		Disasters: Table{
			{Kind: KindDrought, Label: "Drought", Weight: 5},
			{Kind: KindFlood, Label: "Flood", Weight: 4},
			{Kind: KindTornado, Label: "Tornado", Weight: 1},
			{Kind: KindNothing, Label: "Nothing", Weight: 90},
		},
	}
}

// LoadTables reads and validates tables from a JSON file.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to read night tables: %w", err)
	}

	var tables Tables
	if err := json.Unmarshal(data, &tables); err != nil {
		return Tables{}, fmt.Errorf("failed to parse night tables: %w", err)
	}

	if err := tables.Validate(); err != nil {
		return Tables{}, err
	}

	return tables, nil
}

// Resolve maps a roll in [0,100) to its bucket. A roll outside every bucket
// is a logic error and returns ErrRollOutOfRange.
func (t Table) Resolve(roll int) (Kind, error) {
	if roll < 0 {
		return "", fmt.Errorf("%w: %d", domain.ErrRollOutOfRange, roll)
	}
	upper := 0
	for _, b := range t {
		upper += b.Weight
		if roll < upper {
			return b.Kind, nil
		}
	}
	return "", fmt.Errorf("%w: %d", domain.ErrRollOutOfRange, roll)
}

// Weight returns the share of kind, or 0 when the table lacks it.
func (t Table) Weight(kind Kind) int {
	for _, b := range t {
		if b.Kind == kind {
			return b.Weight
		}
	}
	return 0
}

var allowedKinds = map[string][]Kind{
	"weather":   {KindGood, KindBad, KindNeutral},
	"events":    {KindPestInvasion, KindRobbery, KindGoodBugs, KindNothing},
	"disasters": {KindDrought, KindFlood, KindTornado, KindNothing},
}

// Validate checks that every table covers exactly [0,100) with known,
// non-repeated kinds.
func (ts Tables) Validate() error {
	for _, named := range []struct {
		name  string
		table Table
	}{
		{"weather", ts.Weather},
		{"events", ts.Events},
		{"disasters", ts.Disasters},
	} {
		if err := validateTable(named.name, named.table); err != nil {
			return err
		}
	}
	return nil
}

func validateTable(name string, t Table) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: %s table is empty", domain.ErrInvalidTables, name)
	}

	seen := make(map[Kind]bool, len(t))
	sum := 0
	for _, b := range t {
		if !kindAllowed(name, b.Kind) {
			return fmt.Errorf("%w: %s table has unknown kind %q", domain.ErrInvalidTables, name, b.Kind)
		}
		if seen[b.Kind] {
			return fmt.Errorf("%w: %s table repeats kind %q", domain.ErrInvalidTables, name, b.Kind)
		}
		if b.Weight < 0 {
			return fmt.Errorf("%w: %s/%s has negative weight %d", domain.ErrInvalidTables, name, b.Kind, b.Weight)
		}
		seen[b.Kind] = true
		sum += b.Weight
	}

	if sum != rollSpace {
		return fmt.Errorf("%w: %s weights sum to %d, want %d", domain.ErrInvalidTables, name, sum, rollSpace)
	}
	return nil
}

func kindAllowed(table string, k Kind) bool {
	for _, allowed := range allowedKinds[table] {
		if allowed == k {
			return true
		}
	}
	return false
}
