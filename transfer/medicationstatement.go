package transfer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

// sendMedicationStatements submits the per-patient drug occurrences. The
// fetch filter only returns rows whose catalog id has been back-filled, so
// the referenced Medication resource already exists at the endpoint.
func (s *Service) sendMedicationStatements(ctx context.Context, sub Submitter, p redcap.Participant) Outcome {
	var out Outcome
	if !s.host.Configured(redcap.FormMedication) {
		return out
	}
	rows, err := s.host.MedicationStatements(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch medication statements")
		return out
	}
	for _, row := range rows {
		medID := fmt.Sprintf("med-%s-%d", p.RecordID, row.Instance.Int())
		doc := encodeMedicationStatement(row, medID, p.StudyID)
		if _, err := s.submitInstance(ctx, sub, p, row.Instance.Int(), "/MedicationStatement/"+medID, doc); err != nil {
			out.Failed++
			continue
		}
		if err := s.host.SaveMedicationStatementStatus(ctx, p.RecordID, row.Instance.Int(), medID, s.now()); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Int("instance", row.Instance.Int()).Msg("Failed to save medication statement status")
		}
		out.Sent++
	}
	return out
}

func encodeMedicationStatement(row redcap.MedicationRow, medID, studyID string) fhir.MedicationStatement {
	status := "active"
	if row.EndDate != "" {
		status = "completed"
	}
	taken := "unk"
	if row.Administered == "1" {
		taken = "y"
	}
	return fhir.MedicationStatement{
		ResourceType: "MedicationStatement",
		ID:           medID,
		Text: &fhir.Narrative{
			Status: "generated",
			Div:    "<div xmlns='http://www.w3.org/1999/xhtml'><p>" + row.Description + "</p></div>",
		},
		Status:              status,
		MedicationReference: fhir.Reference{Reference: "urn:Medication/" + row.ListID},
		EffectiveDateTime:   row.StartDate,
		DateAsserted:        row.OrderDate,
		Subject:             subjectReference(studyID),
		Taken:               taken,
	}
}
