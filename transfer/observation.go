package transfer

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

func (s *Service) sendLabs(ctx context.Context, sub Submitter, p redcap.Participant) Outcome {
	var out Outcome
	if !s.host.Configured(redcap.FormLab) {
		return out
	}
	rows, err := s.host.Labs(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch labs")
		return out
	}
	for _, row := range rows {
		doc := encodeLab(row, p.StudyID)
		if _, err := s.submitInstance(ctx, sub, p, row.Instance.Int(), "/Observation/"+row.LabID, doc); err != nil {
			out.Failed++
			continue
		}
		if err := s.host.SaveLabStatus(ctx, p.RecordID, row.Instance.Int(), s.now()); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Int("instance", row.Instance.Int()).Msg("Failed to save lab status")
		}
		out.Sent++
	}
	return out
}

func encodeLab(row redcap.LabRow, studyID string) fhir.Observation {
	units := row.Units
	// INR results arrive with "INR" as the unit, which the endpoint
	// rejects; they are ratios, so the unit is forced to %.
	if units == "INR" {
		units = "%"
	}

	code := concept(systemLOINC, row.LoincCode, row.Description)
	if row.LoincCode == "" {
		// No LOINC known for this result; fall back to the local
		// component identifier.
		code = concept(systemLocal, row.ComponentID, row.Description)
	}

	value := labQuantity(row.Result, units)
	var refRange []fhir.ReferenceRange
	if row.RefLow != "" || row.RefHigh != "" {
		var rr fhir.ReferenceRange
		if row.RefLow != "" {
			rr.Low = rangeBound(row.RefLow, units)
		}
		if row.RefHigh != "" {
			rr.High = rangeBound(row.RefHigh, units)
		}
		refRange = []fhir.ReferenceRange{rr}
	}

	return fhir.Observation{
		ResourceType: "Observation",
		ID:           row.LabID,
		Status:       row.Status,
		Code:         code,
		Category: []fhir.CodeableConcept{
			{Coding: []fhir.Coding{{System: systemObsCategory, Code: "laboratory", Display: "Laboratory"}}},
		},
		Subject:           subjectReference(studyID),
		EffectiveDateTime: row.DateTime,
		ValueQuantity:     &value,
		ReferenceRange:    refRange,
	}
}

// labQuantity builds the value part of a lab observation: numeric results go
// into value, everything else into valueString.
func labQuantity(raw, units string) fhir.Quantity {
	q := fhir.Quantity{Unit: units, System: systemUCUM, Code: units}
	value, comparator := parseLabResult(raw)
	if isNumeric(value) {
		q.Value = fhir.Number(value)
	} else {
		q.ValueString = value
	}
	q.Comparator = comparator
	return q
}

// rangeBound builds a reference-range bound. Comparators only qualify the
// result itself, so one found on a bound is stripped and not carried over.
func rangeBound(raw, units string) *fhir.Quantity {
	q := labQuantity(raw, units)
	q.Comparator = ""
	return &q
}

// parseLabResult strips a leading comparator (<, <=, >, >=) off a raw result
// and normalizes "N/D" fractions left over from upstream unit conversions by
// performing the division when both sides are numeric and the divisor is not
// zero. The returned comparator is empty when the result has none.
func parseLabResult(raw string) (string, string) {
	value := strings.TrimSpace(raw)
	var comparator string
	switch {
	case strings.HasPrefix(value, "<=") || strings.HasPrefix(value, ">="):
		comparator = value[:2]
		value = value[2:]
	case strings.HasPrefix(value, "<") || strings.HasPrefix(value, ">"):
		comparator = value[:1]
		value = value[1:]
	}
	value = strings.TrimSpace(value)

	if num, den, found := strings.Cut(value, "/"); found {
		n, errN := decimal.NewFromString(num)
		d, errD := decimal.NewFromString(den)
		if errN == nil && errD == nil && !d.IsZero() {
			value = n.Div(d).String()
		}
	}
	return value, comparator
}

func isNumeric(s string) bool {
	_, err := decimal.NewFromString(s)
	return err == nil
}
