package transfer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

func (s *Service) sendAllergies(ctx context.Context, sub Submitter, p redcap.Participant) Outcome {
	var out Outcome
	if !s.host.Configured(redcap.FormAllergy) {
		return out
	}
	rows, err := s.host.Allergies(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch allergies")
		return out
	}
	for _, row := range rows {
		allergyID := fmt.Sprintf("all-%s-%d", p.RecordID, row.Instance.Int())
		doc := encodeAllergy(row, allergyID, p.StudyID)
		if _, err := s.submitInstance(ctx, sub, p, row.Instance.Int(), "/AllergyIntolerance/"+allergyID, doc); err != nil {
			out.Failed++
			continue
		}
		if err := s.host.SaveAllergyStatus(ctx, p.RecordID, row.Instance.Int(), allergyID, s.now()); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Int("instance", row.Instance.Int()).Msg("Failed to save allergy status")
		}
		out.Sent++
	}
	return out
}

func encodeAllergy(row redcap.AllergyRow, allergyID, studyID string) fhir.AllergyIntolerance {
	status := "inactive"
	if row.Status == "Active" {
		status = "active"
	}
	return fhir.AllergyIntolerance{
		ResourceType:       "AllergyIntolerance",
		ID:                 allergyID,
		ClinicalStatus:     status,
		VerificationStatus: "confirmed",
		Type:               "allergy",
		Code: &fhir.CodeableConcept{
			// The allergen arrives as free text, so the coding carries
			// only a display.
			Coding: []fhir.Coding{{Display: row.Description}},
		},
		Reaction: []fhir.Reaction{
			{Manifestation: []fhir.CodeableConcept{
				{Coding: []fhir.Coding{{Display: row.Reaction}}},
			}},
		},
		Patient:       subjectReference(studyID),
		OnsetDateTime: row.DateNoted,
	}
}
