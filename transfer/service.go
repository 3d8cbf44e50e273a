// Package transfer implements the resource transformation and submission
// pipeline: per-record mapping of registry rows into clinical resource
// documents and their idempotent submission to the exchange endpoint.
package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/redcap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock

// Host is the narrow boundary to the data-capture platform: typed row
// queries and status write-back. An empty result set is (nil, nil), never an
// error.
type Host interface {
	Cohort(ctx context.Context) ([]redcap.Participant, error)
	Configured(kind string) bool

	Demographics(ctx context.Context, recordID string) (*redcap.DemographicsRow, error)
	SaveDemographicsStatus(ctx context.Context, recordID string, sentAt time.Time) error

	Conditions(ctx context.Context, recordID string) ([]redcap.ConditionRow, error)
	SaveConditionStatus(ctx context.Context, recordID string, instance int, dxID string, sentAt time.Time) error

	Labs(ctx context.Context, recordID string) ([]redcap.LabRow, error)
	SaveLabStatus(ctx context.Context, recordID string, instance int, sentAt time.Time) error

	Encounters(ctx context.Context, recordID string) ([]redcap.EncounterRow, error)
	AllEncounters(ctx context.Context, recordID string) ([]redcap.EncounterRow, error)
	SaveEncounterStatus(ctx context.Context, recordID string, instance int, encID string, sentAt time.Time) error

	Procedures(ctx context.Context, recordID string) ([]redcap.ProcedureRow, error)
	SaveProcedureStatus(ctx context.Context, recordID string, instance int, encID string, sentAt time.Time) error

	VitalSigns(ctx context.Context, recordID string) ([]redcap.VitalSignsRow, error)
	SaveVitalSignsStatus(ctx context.Context, recordID string, instance int, sentAt time.Time) error

	Medications(ctx context.Context, recordID string) ([]redcap.MedicationRow, error)
	MedicationCatalog(ctx context.Context) ([]redcap.CatalogEntry, error)
	AppendCatalogEntry(ctx context.Context, entry redcap.CatalogEntry, sentAt time.Time) error
	SetMedicationListID(ctx context.Context, recordID string, instance int, listID string) error
	MedicationStatements(ctx context.Context, recordID string) ([]redcap.MedicationRow, error)
	SaveMedicationStatementStatus(ctx context.Context, recordID string, instance int, medID string, sentAt time.Time) error

	Allergies(ctx context.Context, recordID string) ([]redcap.AllergyRow, error)
	SaveAllergyStatus(ctx context.Context, recordID string, instance int, allergyID string, sentAt time.Time) error
}

// Submitter performs one certificate-authenticated PUT against the exchange
// endpoint. A nil error means the endpoint answered HTTP 200.
type Submitter interface {
	Put(ctx context.Context, path string, body []byte) error
}

// SubmitterFactory materializes the run-scoped connection context. The
// returned close function destroys the ephemeral certificate material and is
// called exactly once per run.
type SubmitterFactory func(ctx context.Context) (Submitter, func() error, error)

// Params carries the endpoint-agreement constants shared by the codecs.
type Params struct {
	// Assigner is the submitting organization, referenced from Patient
	// identifiers.
	Assigner string
}

// Service drives a run: cohort selection, then per-record submission of each
// selected resource type in the fixed order.
type Service struct {
	host         Host
	newSubmitter SubmitterFactory
	params       Params
	now          func() time.Time
}

func New(host Host, factory SubmitterFactory, params Params) *Service {
	return &Service{
		host:         host,
		newSubmitter: factory,
		params:       params,
		now:          time.Now,
	}
}

// Run processes the whole cohort for the selected resource types and returns
// the per-type aggregate. Individual instance failures are logged and
// counted, never fatal; only cohort selection and connection setup abort the
// run.
func (s *Service) Run(ctx context.Context, sel Selection) (Report, error) {
	submitter, closeConn, err := s.newSubmitter(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare exchange connection: %w", err)
	}
	defer func() {
		if err := closeConn(); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to clean up connection context")
		}
	}()

	cohort, err := s.host.Cohort(ctx)
	if err != nil {
		return nil, fmt.Errorf("select cohort: %w", err)
	}
	log.Ctx(ctx).Info().Int("records", len(cohort)).Stringer("selection", sel).Msg("Starting transfer run")

	report := Report{}
	for _, participant := range cohort {
		if participant.StudyID == "" {
			log.Ctx(ctx).Warn().Str("record", participant.RecordID).Msg("Record has no study id, skipping")
			continue
		}
		for _, rt := range submissionOrder {
			if !sel[rt] {
				continue
			}
			report.add(rt, s.submit(ctx, submitter, participant, rt))
		}
	}
	log.Ctx(ctx).Info().Interface("report", report).Msg("Transfer run finished")
	return report, nil
}

func (s *Service) submit(ctx context.Context, sub Submitter, p redcap.Participant, rt ResourceType) Outcome {
	switch rt {
	case Demographics:
		return s.sendDemographics(ctx, sub, p)
	case Diagnoses:
		return s.sendConditions(ctx, sub, p)
	case Labs:
		return s.sendLabs(ctx, sub, p)
	case Encounters:
		return s.sendEncounters(ctx, sub, p)
	case Medications:
		var out Outcome
		out.add(s.sendMedications(ctx, sub, p))
		out.add(s.sendMedicationStatements(ctx, sub, p))
		return out
	case Procedures:
		return s.sendProcedures(ctx, sub, p)
	case Vitals:
		return s.sendVitalSigns(ctx, sub, p)
	case Allergies:
		return s.sendAllergies(ctx, sub, p)
	}
	return Outcome{}
}

// submitInstance PUTs one document and logs the full payload on failure.
func (s *Service) submitInstance(ctx context.Context, sub Submitter, p redcap.Participant, instance int, path string, doc any) ([]byte, error) {
	body, err := marshalDocument(doc)
	if err != nil {
		return nil, err
	}
	if err := sub.Put(ctx, path, body); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("record", p.RecordID).
			Int("instance", instance).
			Str("path", path).
			RawJSON("payload", body).
			Msg("Submission failed")
		return body, err
	}
	return body, nil
}
