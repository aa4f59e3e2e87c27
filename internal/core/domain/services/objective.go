package services

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Objective selects what route optimisation minimises.
type Objective int

const (
	UnknownObjective Objective = iota
	// ObjectiveDistance is greedy nearest neighbour on great-circle distance.
	ObjectiveDistance
	ObjectiveTime
	ObjectiveBalanced
)

func getObjectiveStrings() map[Objective]string {
	return map[Objective]string{
		UnknownObjective:  "unknown",
		ObjectiveDistance: "distance",
		ObjectiveTime:     "time",
		ObjectiveBalanced: "balanced",
	}
}

// ParseObjective maps "distance", "time" or "balanced". Empty means distance.
func ParseObjective(s string) (Objective, error) {
	if strings.TrimSpace(s) == "" {
		return ObjectiveDistance, nil
	}
	for o, name := range getObjectiveStrings() {
		if o != UnknownObjective && strings.EqualFold(name, strings.TrimSpace(s)) {
			return o, nil
		}
	}
	return UnknownObjective, errs.NewValueIsInvalidErrorWithCause("objective", fmt.Errorf("%q is not a known objective", s))
}

func (o Objective) String() string {
	if str, ok := getObjectiveStrings()[o]; ok {
		return str
	}
	return "unknown"
}

// ValidateSupported rejects objectives that have no sequencing strategy yet.
func (o Objective) ValidateSupported() error {
	if o != ObjectiveDistance {
		return errs.NewValueIsInvalidErrorWithCause("objective",
			fmt.Errorf("%s optimisation is not supported, use distance", o))
	}
	return nil
}
