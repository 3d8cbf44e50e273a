package transfer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

func (s *Service) sendEncounters(ctx context.Context, sub Submitter, p redcap.Participant) Outcome {
	var out Outcome
	if !s.host.Configured(redcap.FormEncounter) {
		return out
	}
	rows, err := s.host.Encounters(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch encounters")
		return out
	}
	for _, row := range rows {
		encID := fmt.Sprintf("enc-%s-%d", p.RecordID, row.Instance.Int())
		doc := encodeEncounter(row, encID, p.StudyID)
		if _, err := s.submitInstance(ctx, sub, p, row.Instance.Int(), "/Encounter/"+encID, doc); err != nil {
			out.Failed++
			continue
		}
		if err := s.host.SaveEncounterStatus(ctx, p.RecordID, row.Instance.Int(), encID, s.now()); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Int("instance", row.Instance.Int()).Msg("Failed to save encounter status")
		}
		out.Sent++
	}
	return out
}

func encodeEncounter(row redcap.EncounterRow, encID, studyID string) fhir.Encounter {
	period := fhir.Period{Start: row.StartDateTime, End: row.EndDateTime}
	return fhir.Encounter{
		ResourceType: "Encounter",
		ID:           encID,
		Status:       row.Status,
		Text: &fhir.Narrative{
			Status: "generated",
			Div:    "<div>" + row.Reason + "</div>",
		},
		Subject:   subjectReference(studyID),
		Period:    &period,
		Specialty: row.Specialty,
		Provider:  row.Provider,
	}
}
