package transfer

import (
	"errors"
	"fmt"
	"strings"
)

// ResourceType names one submittable resource group, using the tokens the
// trigger surface accepts.
type ResourceType string

const (
	Demographics ResourceType = "demo"
	Diagnoses    ResourceType = "dx"
	Labs         ResourceType = "lab"
	Encounters   ResourceType = "enc"
	Medications  ResourceType = "med"
	Procedures   ResourceType = "px"
	Vitals       ResourceType = "vitals"
	Allergies    ResourceType = "allergy"
)

// submissionOrder is the fixed per-record submission sequence. Encounters
// come before procedures and vitals because both need a resolved encounter
// reference; medications come before their statements.
var submissionOrder = []ResourceType{
	Demographics,
	Diagnoses,
	Labs,
	Encounters,
	Medications,
	Procedures,
	Vitals,
	Allergies,
}

// ErrNoneSelected is returned when the selection string names no resources.
var ErrNoneSelected = errors.New("no resource types selected")

// Selection is the set of resource types to submit in a run.
type Selection map[ResourceType]bool

// ParseSelection parses a comma-separated resource-type selection. "all"
// expands to every type. Selecting procedures or vitals force-includes
// encounters: both need encounter ids to exist before they can link.
func ParseSelection(s string) (Selection, error) {
	sel := Selection{}
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if token == "all" {
			for _, rt := range submissionOrder {
				sel[rt] = true
			}
			continue
		}
		switch rt := ResourceType(token); rt {
		case Demographics, Diagnoses, Labs, Encounters, Medications, Procedures, Vitals:
			sel[rt] = true
		default:
			return nil, fmt.Errorf("unknown resource type %q", token)
		}
	}
	if len(sel) == 0 {
		return nil, ErrNoneSelected
	}
	if sel[Procedures] || sel[Vitals] {
		sel[Encounters] = true
	}
	return sel, nil
}

// String renders the selection in submission order, for logging.
func (s Selection) String() string {
	var parts []string
	for _, rt := range submissionOrder {
		if s[rt] {
			parts = append(parts, string(rt))
		}
	}
	return strings.Join(parts, ",")
}
