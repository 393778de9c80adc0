package handler

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggest returns the candidate closest to input when it is near enough to
// be a typo. Prefix matches win over edit distance.
func suggest(input string, candidates []string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, cand := range candidates {
		if len(in) >= 2 && strings.HasPrefix(cand, in) {
			return cand, true
		}
		dist := levenshtein.ComputeDistance(in, cand)
		if dist > typoLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && cand < best) {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

// typoLimit scales the accepted edit distance with the word length
func typoLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// unknownChoiceMessage names the closest valid choice, or lists them all
func unknownChoiceMessage(kind string, value interface{}, choices []string) string {
	if s, ok := value.(string); ok {
		if hint, found := suggest(s, choices); found {
			return fmt.Sprintf("Unknown %s %q. Did you mean %q?", kind, s, hint)
		}
	}
	return "Must be one of: " + strings.Join(choices, ", ")
}
