package transfer

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

func (s *Service) sendProcedures(ctx context.Context, sub Submitter, p redcap.Participant) Outcome {
	var out Outcome
	if !s.host.Configured(redcap.FormProcedure) {
		return out
	}
	rows, err := s.host.Procedures(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch procedures")
		return out
	}
	if len(rows) == 0 {
		return out
	}

	encounters, err := s.host.AllEncounters(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch encounters for procedure linkage")
		return out
	}
	windows := buildWindows(encounters)

	for _, row := range rows {
		encID := resolveEncounter(windows, row.Date)
		doc := encodeProcedure(row, encID, p.StudyID)
		if _, err := s.submitInstance(ctx, sub, p, row.Instance.Int(), "/Procedure/"+row.ProcID, doc); err != nil {
			out.Failed++
			continue
		}
		if err := s.host.SaveProcedureStatus(ctx, p.RecordID, row.Instance.Int(), encID, s.now()); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Int("instance", row.Instance.Int()).Msg("Failed to save procedure status")
		}
		out.Sent++
	}
	return out
}

func encodeProcedure(row redcap.ProcedureRow, encID, studyID string) fhir.Procedure {
	system := systemCDC
	if row.CodeType == "CPT" {
		system = systemCPT
	}
	// Procedures that happened outside any known encounter still carry a
	// context reference, with the literal id "unk".
	if encID == "" {
		encID = "unk"
	}
	return fhir.Procedure{
		ResourceType:      "Procedure",
		ID:                row.ProcID,
		Status:            row.Status,
		Code:              concept(system, row.Code, row.Description),
		Subject:           subjectReference(studyID),
		PerformedDateTime: row.Date,
		Context:           fhir.Reference{Reference: "urn:Encounter/" + encID},
	}
}
