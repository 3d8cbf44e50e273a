package transfer

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

// OMB race categories, keyed by the registry's race labels. The deprecated
// "Other Race" code is still what the upstream source uses.
var raceCodings = map[string]fhir.Coding{
	"Native American":  {Code: "1002-5", Display: "American Indian or Alaska Native", System: systemRaceCoding},
	"Asian":            {Code: "2028-9", Display: "Asian", System: systemRaceCoding},
	"Black":            {Code: "2054-5", Display: "Black or African American", System: systemRaceCoding},
	"Pacific Islander": {Code: "2076-8", Display: "Native Hawaiian or Other Pacific Islander", System: systemRaceCoding},
	"White":            {Code: "2106-3", Display: "White", System: systemRaceCoding},
	"Other":            {Code: "2131-1", Display: "Other Race", System: systemRaceCoding},
	"Unknown":          {Code: "UNK", Display: "Unknown", System: "http://terminology.hl7.org/CodeSystem/v3-NullFlavor"},
}

var ethnicityCodings = map[string]fhir.Coding{
	"Non-Hispanic":    {Code: "2186-5", Display: "Non Hispanic or Latino", System: systemRaceCoding},
	"Hispanic/Latino": {Code: "2135-2", Display: "Hispanic or Latino", System: systemRaceCoding},
	"Unknown":         {Code: "UNK", Display: "Unknown", System: systemRaceCoding},
}

const (
	raceExtensionURL      = "http://hl7.org/fhir/us/core/ValueSet/omb-race-category"
	ethnicityExtensionURL = "http://hl7.org/fhir/us/core/ValueSet/omb-ethnicity-category"
)

func (s *Service) sendDemographics(ctx context.Context, sub Submitter, p redcap.Participant) Outcome {
	var out Outcome
	if !s.host.Configured(redcap.FormDemographics) {
		return out
	}
	row, err := s.host.Demographics(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch demographics")
		return out
	}
	if row == nil {
		return out
	}

	doc := encodePatient(*row, p.StudyID, s.params.Assigner)
	if _, err := s.submitInstance(ctx, sub, p, 0, "/Patient/"+p.StudyID, doc); err != nil {
		out.Failed++
		return out
	}
	if err := s.host.SaveDemographicsStatus(ctx, p.RecordID, s.now()); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to save demographics status")
	}
	out.Sent++
	return out
}

func encodePatient(row redcap.DemographicsRow, studyID, assigner string) fhir.Patient {
	var extensions []fhir.Extension
	if coding, ok := raceCodings[row.Race]; ok {
		extensions = append(extensions, fhir.Extension{
			URL:                  raceExtensionURL,
			ValueCodeableConcept: &fhir.CodeableConcept{Coding: []fhir.Coding{coding}},
		})
	}
	if coding, ok := ethnicityCodings[row.Ethnicity]; ok {
		extensions = append(extensions, fhir.Extension{
			URL:                  ethnicityExtensionURL,
			ValueCodeableConcept: &fhir.CodeableConcept{Coding: []fhir.Coding{coding}},
		})
	}

	return fhir.Patient{
		ResourceType: "Patient",
		Active:       "true",
		ID:           studyID,
		Name: []fhir.HumanName{{
			Text:   row.FirstName + " " + row.LastName,
			Given:  []string{row.FirstName},
			Family: row.LastName,
		}},
		Extension: extensions,
		Gender:    row.Gender,
		BirthDate: row.BirthDate,
		Identifier: []fhir.Identifier{{
			System:   "urn:ietf:rfc:3986",
			Type:     concept(systemIDType, "MR", "Medical Record"),
			Use:      "usual",
			Assigner: &fhir.Reference{Reference: assigner},
			Value:    row.MRN,
		}},
		Address: []fhir.Address{{
			Use:        "home",
			Line:       []string{row.Street},
			City:       row.City,
			State:      row.State,
			PostalCode: row.Zip,
			Country:    row.Country,
		}},
	}
}
