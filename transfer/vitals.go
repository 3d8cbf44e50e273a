package transfer

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

// vitalType describes one entry of the fixed vital-sign catalog: which row
// field carries it, how it is coded and which unit the endpoint expects.
type vitalType struct {
	name    string
	loinc   string
	display string
	unit    string
	ucum    string
	value   func(redcap.VitalSignsRow) string
}

var vitalTypes = []vitalType{
	{"weight", "29463-7", "Body Weight", "lbs", "[lb_av]", func(r redcap.VitalSignsRow) string { return r.Weight }},
	{"rr", "9279-1", "Respiratory Rate", "/min", "/min", func(r redcap.VitalSignsRow) string { return r.RespiratoryRate }},
	{"pulse", "8867-4", "Pulse", "/min", "/min", func(r redcap.VitalSignsRow) string { return r.Pulse }},
	{"temp", "8310-5", "Body Temperature", "Cel or [degF]", "[degF]", func(r redcap.VitalSignsRow) string { return r.Temperature }},
	{"height", "8302-2", "Height", "inches", "[in_i]", func(r redcap.VitalSignsRow) string { return r.Height }},
	{"o2", "59408-5", "Oxygen Saturation", "%", "%", func(r redcap.VitalSignsRow) string { return r.O2Saturation }},
	{"bmi", "39156-5", "BMI", "kg/m2", "kg/m2", func(r redcap.VitalSignsRow) string { return r.BMI }},
	{"bps", "8480-6", "BP Systolic", "mm[Hg]", "mm[Hg]", func(r redcap.VitalSignsRow) string { return r.BPSystolic }},
	{"bpd", "8462-4", "BP Diastolic", "mm[Hg]", "mm[Hg]", func(r redcap.VitalSignsRow) string { return r.BPDiastolic }},
}

// sendVitalSigns submits one Observation per non-empty vital field, so a
// single encounter instance can partially succeed. The instance is marked
// sent as soon as at least one of its vitals went through.
func (s *Service) sendVitalSigns(ctx context.Context, sub Submitter, p redcap.Participant) Outcome {
	var out Outcome
	if !s.host.Configured(redcap.FormEncounter) {
		return out
	}
	rows, err := s.host.VitalSigns(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch vital signs")
		return out
	}
	for _, row := range rows {
		if row.EncID == "" {
			// The owning encounter has not been submitted yet, so
			// there is no id to derive the vital ids from.
			log.Ctx(ctx).Warn().Str("record", p.RecordID).Int("instance", row.Instance.Int()).
				Msg("Vital signs without an encounter id, skipping instance")
			out.Skipped++
			continue
		}
		var sent int
		for _, vt := range vitalTypes {
			raw := vt.value(row)
			if raw == "" {
				continue
			}
			vitalID := strings.Replace(row.EncID, "enc", "vital", 1) + "-" + vt.name
			doc := encodeVitalSign(row, vt, vitalID, p.StudyID)
			if _, err := s.submitInstance(ctx, sub, p, row.Instance.Int(), "/Observation/"+vitalID, doc); err != nil {
				out.Failed++
				continue
			}
			sent++
			out.Sent++
		}
		if sent > 0 {
			if err := s.host.SaveVitalSignsStatus(ctx, p.RecordID, row.Instance.Int(), s.now()); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Int("instance", row.Instance.Int()).Msg("Failed to save vital signs status")
			}
		}
	}
	return out
}

func encodeVitalSign(row redcap.VitalSignsRow, vt vitalType, vitalID, studyID string) fhir.Observation {
	quantity := fhir.Quantity{Unit: vt.unit, System: systemUCUM, Code: vt.ucum}
	// Values the converter passed through unparsed go out verbatim as text.
	if value := convertVital(vt.name, vt.value(row)); isNumeric(value) {
		quantity.Value = fhir.Number(value)
	} else {
		quantity.ValueString = value
	}
	return fhir.Observation{
		ResourceType: "Observation",
		ID:           vitalID,
		Status:       "final",
		Category: []fhir.CodeableConcept{
			{Coding: []fhir.Coding{{System: systemVitalsCategory, Code: "vital-signs", Display: "Vital Signs"}}},
		},
		Code:              concept(systemLOINC, vt.loinc, vt.display),
		Subject:           subjectReference(studyID),
		Context:           &fhir.Reference{Reference: "urn:Encounter/" + row.EncID},
		EffectiveDateTime: row.StartDateTime,
		ValueQuantity:     &quantity,
	}
}

// convertVital normalizes the two vitals that arrive in the wrong shape:
// weight comes in ounces and is converted to kilograms, height comes as a
// free-text feet-and-inches string and is converted to total inches.
func convertVital(name, value string) string {
	switch name {
	case "weight":
		oz, err := decimal.NewFromString(value)
		if err != nil {
			return value
		}
		return oz.Div(decimal.NewFromFloat(35.274)).Round(2).String()
	case "height":
		return parseHeight(value)
	}
	return value
}

// parseHeight converts a `5' 7"` style string into total inches. Values that
// do not match the pattern pass through unchanged.
func parseHeight(value string) string {
	feetLoc := strings.Index(value, "'")
	inchLoc := strings.Index(value, `"`)
	if feetLoc < 0 || inchLoc < feetLoc+2 {
		return value
	}
	feet, errF := decimal.NewFromString(strings.TrimSpace(value[:feetLoc]))
	inch, errI := decimal.NewFromString(strings.TrimSpace(value[feetLoc+2 : inchLoc]))
	if errF != nil || errI != nil {
		return value
	}
	return feet.Mul(decimal.NewFromInt(12)).Add(inch).Round(2).String()
}
