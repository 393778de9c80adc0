package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	items := itemNames()
	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"seeds", "seed", true},
		{"fertiliser", "fertilizer", true},
		{"bugkiller", "bug_killer", true},
		{"secu", "security_fence", true},
		{"FARM_HELPER", "farm_helper", true},
		{"tractor", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, found := suggest(tt.input, items)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValidationError_Suggestions(t *testing.T) {
	req := SetActionRequest{Action: "plnat"}
	err := GetValidator().ValidateStruct(req)
	require.Error(t, err)
	assert.Equal(t, `Unknown action "plnat". Did you mean "plant"?`, FormatValidationError(err)["action"])

	req = SetActionRequest{Action: "dance"}
	err = GetValidator().ValidateStruct(req)
	require.Error(t, err)
	assert.Contains(t, FormatValidationError(err)["action"], "Must be one of: plant, water")

	order := PurchaseRequest{Items: map[string]int{"seeds": 1}}
	err = GetValidator().ValidateStruct(order)
	require.Error(t, err)
	assert.Equal(t, `Unknown item "seeds". Did you mean "seed"?`, FormatValidationError(err)["items[seeds]"])
}
