package transfer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

// sendConditions submits the record's pending diagnoses. The source only
// carries problem-list codes; verification status is always "confirmed"
// because the source verification codes have no agreed mapping.
func (s *Service) sendConditions(ctx context.Context, sub Submitter, p redcap.Participant) Outcome {
	var out Outcome
	if !s.host.Configured(redcap.FormDiagnosis) {
		return out
	}
	rows, err := s.host.Conditions(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch conditions")
		return out
	}
	for _, row := range rows {
		dxID := fmt.Sprintf("dx-%s-%d", p.RecordID, row.Instance.Int())
		doc := encodeCondition(row, dxID, p.StudyID)
		if _, err := s.submitInstance(ctx, sub, p, row.Instance.Int(), "/Condition/"+dxID, doc); err != nil {
			out.Failed++
			continue
		}
		if err := s.host.SaveConditionStatus(ctx, p.RecordID, row.Instance.Int(), dxID, s.now()); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Int("instance", row.Instance.Int()).Msg("Failed to save condition status")
		}
		out.Sent++
	}
	return out
}

func encodeCondition(row redcap.ConditionRow, dxID, studyID string) fhir.Condition {
	status := "active"
	if row.ResolvedDate != "" {
		status = "resolved"
	}
	return fhir.Condition{
		ResourceType:       "Condition",
		ID:                 dxID,
		ClinicalStatus:     status,
		VerificationStatus: "confirmed",
		Category:           concept(systemSNOMED, "439401001", "Diagnosis"),
		Code:               concept(systemICD10CM, row.Code, row.Description),
		Subject:            subjectReference(studyID),
		OnsetDateTime:      row.StartDate,
		AbatementDateTime:  row.ResolvedDate,
	}
}
