// Package classify holds the shared event predicates used by every fold.
//
// Category strings are free text and vary between vendor feeds, so matching
// is case-insensitive and, for markers and rebound sub-types, by substring.
// Shot outcome is the exception: vendors always emit the literal "Made".
package classify

import (
	"strings"

	"github.com/okian/courtside/internal/domain/model"
)

// Vendor tokens.
const (
	ShotMade         = "Made"
	ThreePointMarker = "3pt"
	FreeThrowMarker  = "free"
	ReboundType      = "rebound"
	SubstitutionType = "substitution"
	SubstitutionOut  = "out"
	SubstitutionIn   = "in"
	offensiveMarker  = "off"
	defensiveMarker  = "def"
)

// IsFieldGoalAttempt reports whether e carries a true field-goal flag.
func IsFieldGoalAttempt(e model.Event) bool {
	return e.FieldGoal
}

// IsThreePointAttempt reports a field-goal attempt whose action type names a three.
func IsThreePointAttempt(e model.Event) bool {
	return IsFieldGoalAttempt(e) && containsFold(e.ActionType, ThreePointMarker)
}

// IsMade reports whether the shot result is exactly "Made".
func IsMade(e model.Event) bool {
	return e.ShotResult == ShotMade
}

// IsFreeThrowAttempt reports whether the action type names a free throw.
func IsFreeThrowAttempt(e model.Event) bool {
	return containsFold(e.ActionType, FreeThrowMarker)
}

// IsReboundOffensive reports an offensive rebound.
func IsReboundOffensive(e model.Event) bool {
	return isRebound(e) && containsFold(e.SubType, offensiveMarker)
}

// IsReboundDefensive reports a defensive rebound.
func IsReboundDefensive(e model.Event) bool {
	return isRebound(e) && containsFold(e.SubType, defensiveMarker)
}

// IsAssistedMadeFieldGoal reports a made field goal credited with an assist.
func IsAssistedMadeFieldGoal(e model.Event) bool {
	return IsFieldGoalAttempt(e) && IsMade(e) && e.AssistPersonID > 0
}

// IsSubstitutionOut reports a complete outgoing substitution half.
func IsSubstitutionOut(e model.Event) bool {
	return isSubstitution(e) && strings.EqualFold(e.SubType, SubstitutionOut)
}

// IsSubstitutionIn reports a complete incoming substitution half.
func IsSubstitutionIn(e model.Event) bool {
	return isSubstitution(e) && strings.EqualFold(e.SubType, SubstitutionIn)
}

// Points returns the value of a made shot by type: 3 for a made three, 2 for
// any other made field goal, 1 for a made free throw, otherwise 0.
func Points(e model.Event) int {
	if !IsMade(e) {
		return 0
	}
	switch {
	case IsThreePointAttempt(e):
		return 3
	case IsFieldGoalAttempt(e):
		return 2
	case IsFreeThrowAttempt(e):
		return 1
	default:
		return 0
	}
}

func isRebound(e model.Event) bool {
	return strings.EqualFold(e.ActionType, ReboundType)
}

func isSubstitution(e model.Event) bool {
	return strings.EqualFold(e.ActionType, SubstitutionType) &&
		e.PlayerName != "" &&
		e.TeamID != 0 &&
		e.TeamTricode != "" &&
		e.TimeActual != ""
}

func containsFold(s, marker string) bool {
	return strings.Contains(strings.ToLower(s), marker)
}
