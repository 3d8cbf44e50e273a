package transfer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

// sendMedications maintains the shared medication catalog. Medication
// resources are global: each distinct drug is submitted once across the whole
// population, and every patient medication row is back-filled with the
// catalog id its MedicationStatement will reference.
func (s *Service) sendMedications(ctx context.Context, sub Submitter, p redcap.Participant) Outcome {
	var out Outcome
	if !s.host.Configured(redcap.FormMedication) {
		return out
	}
	rows, err := s.host.Medications(ctx, p.RecordID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Msg("Failed to fetch medications")
		return out
	}
	if len(rows) == 0 {
		return out
	}

	catalog, err := s.host.MedicationCatalog(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to read medication catalog")
		return out
	}
	byCode := catalogByCode(catalog)
	next := nextCatalogRecord(catalog)

	// Stage one catalog entry per drug code the catalog has not seen,
	// deduplicating within this batch as well.
	var staged []redcap.CatalogEntry
	for _, row := range rows {
		if row.SnomedCode == "" {
			log.Ctx(ctx).Warn().Str("record", p.RecordID).Int("instance", row.Instance.Int()).
				Msg("Medication without a drug code, skipping")
			out.Skipped++
			continue
		}
		if _, known := byCode[row.SnomedCode]; known {
			continue
		}
		entry := redcap.CatalogEntry{
			RecordID:          redcap.FlexInt(next),
			ListID:            fmt.Sprintf("medlist-%d", next),
			NDCCode:           row.NDCCode,
			LocalCode:         row.LocalCode,
			SnomedCode:        row.SnomedCode,
			Description:       row.Description,
			SnomedDescription: row.SnomedDescription,
			BrandName:         row.BrandName,
			OTC:               row.OTC,
		}
		next++
		byCode[row.SnomedCode] = entry
		staged = append(staged, entry)
	}

	for _, entry := range staged {
		doc := encodeMedication(entry)
		if _, err := s.submitInstance(ctx, sub, p, entry.RecordID.Int(), "/Medication/"+entry.ListID, doc); err != nil {
			out.Failed++
			continue
		}
		if err := s.host.AppendCatalogEntry(ctx, entry, s.now()); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("listID", entry.ListID).Msg("Failed to append medication catalog entry")
		}
		out.Sent++
	}

	// Re-read the catalog so back-filling picks up both the entries just
	// appended and any pre-existing ones.
	catalog, err = s.host.MedicationCatalog(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to re-read medication catalog")
		return out
	}
	byCode = catalogByCode(catalog)
	for _, row := range rows {
		entry, ok := byCode[row.SnomedCode]
		if !ok {
			continue
		}
		if err := s.host.SetMedicationListID(ctx, p.RecordID, row.Instance.Int(), entry.ListID); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("record", p.RecordID).Int("instance", row.Instance.Int()).Msg("Failed to back-fill medication list id")
		}
	}
	return out
}

func catalogByCode(entries []redcap.CatalogEntry) map[string]redcap.CatalogEntry {
	byCode := make(map[string]redcap.CatalogEntry, len(entries))
	for _, e := range entries {
		byCode[e.SnomedCode] = e
	}
	return byCode
}

// nextCatalogRecord returns max(record ids)+1, or 1 for an empty catalog.
func nextCatalogRecord(entries []redcap.CatalogEntry) int {
	next := 1
	for _, e := range entries {
		if e.RecordID.Int() >= next {
			next = e.RecordID.Int() + 1
		}
	}
	return next
}

func encodeMedication(entry redcap.CatalogEntry) fhir.Medication {
	code := concept(systemNDC, entry.NDCCode, entry.Description)
	if entry.NDCCode == "" {
		code = concept(systemLocalMed, entry.LocalCode, entry.Description)
	}
	doc := fhir.Medication{
		ResourceType: "Medication",
		ID:           entry.ListID,
		Code:         code,
	}
	if entry.SnomedCode != "" {
		doc.Ingredient = []fhir.Ingredient{
			{ItemCodeableConcept: *concept(systemSNOMED, entry.SnomedCode, entry.SnomedDescription)},
		}
	}
	if entry.BrandName == "1" || entry.OTC == "1" {
		doc.IsBrand = "true"
	}
	return doc
}
