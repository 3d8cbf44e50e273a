// Package redcap implements the boundary to the host data-capture platform.
// The core reads typed rows out of it and writes completion flags back; all
// other knowledge about the platform stays inside this package.
package redcap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

const metadataCacheTTL = 15 * time.Minute

// Client talks to the REDCap REST API. It is safe for sequential use only,
// matching the single-run constraint of the pipeline.
type Client struct {
	cfg        Config
	httpClient *http.Client
	// metadata caches per-project data dictionaries, keyed by API token.
	// Dictionaries change rarely; a TTL keeps manual changes from being
	// invisible forever.
	metadata *ttlcache.Cache[string, map[string]struct{}]
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metadata: ttlcache.New[string, map[string]struct{}](
			ttlcache.WithTTL[string, map[string]struct{}](metadataCacheTTL),
		),
	}
}

// Configured reports whether the instrument for the given form kind is bound.
// An unbound form means the resource type is disabled for this project.
func (c *Client) Configured(kind string) bool {
	return c.binding(kind).Configured()
}

func (c *Client) binding(kind string) FormBinding {
	switch kind {
	case FormDemographics:
		return c.cfg.Forms.Demographics
	case FormDiagnosis:
		return c.cfg.Forms.Diagnosis
	case FormLab:
		return c.cfg.Forms.Lab
	case FormEncounter:
		return c.cfg.Forms.Encounter
	case FormProcedure:
		return c.cfg.Forms.Procedure
	case FormMedication:
		return c.cfg.Forms.Medication
	case FormAllergy:
		return c.cfg.Forms.Allergy
	}
	return FormBinding{}
}

// Cohort returns every record marked as participating, with its externally
// shared study identifier. The whole cohort is loaded in one call; registry
// projects are hundreds to low thousands of records.
func (c *Client) Cohort(ctx context.Context) ([]Participant, error) {
	params := c.exportParams()
	params.Set("fields", "record_id,"+c.cfg.StudyIDField)
	params.Set("filterLogic", fmt.Sprintf("[%s(1)] = '1'", c.cfg.EnrollmentField))

	var rows []map[string]string
	if err := c.call(ctx, c.cfg.Token, params, &rows); err != nil {
		return nil, fmt.Errorf("fetch cohort: %w", err)
	}
	var cohort []Participant
	for _, row := range rows {
		// Repeating-form rows echo the record id with an instance set;
		// only the base row carries the enrollment fields.
		if inst := row["redcap_repeat_instance"]; inst != "" && inst != "0" {
			continue
		}
		cohort = append(cohort, Participant{
			RecordID: row["record_id"],
			StudyID:  row[c.cfg.StudyIDField],
		})
	}
	return cohort, nil
}

// Demographics returns the record's pending demographics row, or nil when the
// demographics were already sent.
func (c *Client) Demographics(ctx context.Context, recordID string) (*DemographicsRow, error) {
	var rows []DemographicsRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Demographics, recordID,
		"[demo_sent_to_curesma(1)] = '0'", &rows)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.RecordID != "" {
			return &row, nil
		}
	}
	return nil, nil
}

func (c *Client) SaveDemographicsStatus(ctx context.Context, recordID string, sentAt time.Time) error {
	return c.importRow(ctx, c.cfg.Token, map[string]string{
		"record_id":                recordID,
		"demo_sent_to_curesma___1": "1",
		"demo_date_sent_curesma":   formatTimestamp(sentAt),
	})
}

func (c *Client) Conditions(ctx context.Context, recordID string) ([]ConditionRow, error) {
	var rows []ConditionRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Diagnosis, recordID,
		"[dx_sent_to_curesma(1)] = '0'", &rows)
	if err != nil {
		return nil, err
	}
	return keepInstances(rows), nil
}

func (c *Client) SaveConditionStatus(ctx context.Context, recordID string, instance int, dxID string, sentAt time.Time) error {
	return c.saveInstance(ctx, c.cfg.Token, c.cfg.Forms.Diagnosis.Form, recordID, instance, map[string]string{
		"dx_sent_to_curesma___1": "1",
		"dx_date_data_curesma":   formatTimestamp(sentAt),
		"dx_id":                  dxID,
	})
}

func (c *Client) Labs(ctx context.Context, recordID string) ([]LabRow, error) {
	var rows []LabRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Lab, recordID,
		"[lab_sent_to_curesma(1)] = '0'", &rows)
	if err != nil {
		return nil, err
	}
	return keepInstances(rows), nil
}

func (c *Client) SaveLabStatus(ctx context.Context, recordID string, instance int, sentAt time.Time) error {
	return c.saveInstance(ctx, c.cfg.Token, c.cfg.Forms.Lab.Form, recordID, instance, map[string]string{
		"lab_sent_to_curesma___1": "1",
		"lab_date_data_curesma":   formatTimestamp(sentAt),
	})
}

// Encounters returns the record's encounters still awaiting submission.
func (c *Client) Encounters(ctx context.Context, recordID string) ([]EncounterRow, error) {
	var rows []EncounterRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Encounter, recordID,
		"[enc_sent_to_curesma(1)] = '0'", &rows)
	if err != nil {
		return nil, err
	}
	return keepInstances(rows), nil
}

// AllEncounters returns every encounter of the record, sent or not, in
// ascending instance order. Linkage resolution depends on that ordering.
func (c *Client) AllEncounters(ctx context.Context, recordID string) ([]EncounterRow, error) {
	var rows []EncounterRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Encounter, recordID, "", &rows)
	if err != nil {
		return nil, err
	}
	return keepInstances(rows), nil
}

func (c *Client) SaveEncounterStatus(ctx context.Context, recordID string, instance int, encID string, sentAt time.Time) error {
	return c.saveInstance(ctx, c.cfg.Token, c.cfg.Forms.Encounter.Form, recordID, instance, map[string]string{
		"enc_sent_to_curesma___1": "1",
		"enc_date_data_curesma":   formatTimestamp(sentAt),
		"enc_id":                  encID,
	})
}

func (c *Client) Procedures(ctx context.Context, recordID string) ([]ProcedureRow, error) {
	var rows []ProcedureRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Procedure, recordID,
		"[proc_sent_to_curesma(1)] = '0'", &rows)
	if err != nil {
		return nil, err
	}
	return keepInstances(rows), nil
}

func (c *Client) SaveProcedureStatus(ctx context.Context, recordID string, instance int, encID string, sentAt time.Time) error {
	return c.saveInstance(ctx, c.cfg.Token, c.cfg.Forms.Procedure.Form, recordID, instance, map[string]string{
		"proc_sent_to_curesma___1": "1",
		"proc_date_data_curesma":   formatTimestamp(sentAt),
		"proc_enc_id":              encID,
	})
}

// VitalSigns returns encounter rows whose vitals have not been sent. Vitals
// live on the encounter instrument alongside the encounter itself.
func (c *Client) VitalSigns(ctx context.Context, recordID string) ([]VitalSignsRow, error) {
	var rows []VitalSignsRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Encounter, recordID,
		"[vitals_sent_to_curesma(1)] = '0'", &rows)
	if err != nil {
		return nil, err
	}
	return keepInstances(rows), nil
}

func (c *Client) SaveVitalSignsStatus(ctx context.Context, recordID string, instance int, sentAt time.Time) error {
	return c.saveInstance(ctx, c.cfg.Token, c.cfg.Forms.Encounter.Form, recordID, instance, map[string]string{
		"vitals_sent_to_curesma___1": "1",
		"vitals_date_curesma":        formatTimestamp(sentAt),
	})
}

// Medications returns the record's medication rows that have neither been
// sent nor assigned a catalog id yet.
func (c *Client) Medications(ctx context.Context, recordID string) ([]MedicationRow, error) {
	var rows []MedicationRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Medication, recordID,
		"[med_list_id] = '' and [med_sent_to_curesma(1)] = '0'", &rows)
	if err != nil {
		return nil, err
	}
	return keepInstances(rows), nil
}

// MedicationStatements returns medication rows ready for a statement: not yet
// sent, but already back-filled with their catalog id.
func (c *Client) MedicationStatements(ctx context.Context, recordID string) ([]MedicationRow, error) {
	var rows []MedicationRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Medication, recordID,
		"[med_sent_to_curesma(1)] = '0' and [med_list_id] != ''", &rows)
	if err != nil {
		return nil, err
	}
	return keepInstances(rows), nil
}

func (c *Client) SetMedicationListID(ctx context.Context, recordID string, instance int, listID string) error {
	return c.saveInstance(ctx, c.cfg.Token, c.cfg.Forms.Medication.Form, recordID, instance, map[string]string{
		"med_list_id": listID,
	})
}

func (c *Client) SaveMedicationStatementStatus(ctx context.Context, recordID string, instance int, medID string, sentAt time.Time) error {
	return c.saveInstance(ctx, c.cfg.Token, c.cfg.Forms.Medication.Form, recordID, instance, map[string]string{
		"med_sent_to_curesma___1": "1",
		"med_date_data_curesma":   formatTimestamp(sentAt),
		"med_id":                  medID,
	})
}

// MedicationCatalog reads the entire shared medication-list project. The host
// must serialize catalog reads and appends; see the run-level single-run
// constraint.
func (c *Client) MedicationCatalog(ctx context.Context) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	if err := c.call(ctx, c.cfg.MedListToken, c.exportParams(), &entries); err != nil {
		return nil, fmt.Errorf("fetch medication catalog: %w", err)
	}
	return entries, nil
}

// AppendCatalogEntry persists a newly submitted catalog entry, with its sent
// flag and timestamp. Fields not present in the catalog project's data
// dictionary are dropped before import.
func (c *Client) AppendCatalogEntry(ctx context.Context, entry CatalogEntry, sentAt time.Time) error {
	fields := map[string]string{
		"record_id":                 strconv.Itoa(entry.RecordID.Int()),
		"med_list_id":               entry.ListID,
		"med_ndc_code":              entry.NDCCode,
		"med_stanford_med_id":       entry.LocalCode,
		"med_snomed_ct_code":        entry.SnomedCode,
		"med_stanford_description":  entry.Description,
		"med_snomed_ct_description": entry.SnomedDescription,
		"med_brand_name":            entry.BrandName,
		"med_otc":                   entry.OTC,
		"med_sent_to_curesma___1":   "1",
		"med_date_sent_to_curesma":  formatTimestamp(sentAt),
	}
	known, err := c.projectFields(ctx, c.cfg.MedListToken)
	if err != nil {
		return fmt.Errorf("fetch medication-list data dictionary: %w", err)
	}
	for name := range fields {
		// Checkbox exports carry a ___<code> suffix the dictionary lacks.
		base, _, _ := strings.Cut(name, "___")
		if _, ok := known[base]; !ok && base != "record_id" {
			delete(fields, name)
		}
	}
	return c.importRow(ctx, c.cfg.MedListToken, fields)
}

func (c *Client) Allergies(ctx context.Context, recordID string) ([]AllergyRow, error) {
	var rows []AllergyRow
	err := c.exportForm(ctx, c.cfg.Token, c.cfg.Forms.Allergy, recordID,
		"[all_sent_to_curesma(1)] = '0'", &rows)
	if err != nil {
		return nil, err
	}
	return keepInstances(rows), nil
}

func (c *Client) SaveAllergyStatus(ctx context.Context, recordID string, instance int, allergyID string, sentAt time.Time) error {
	return c.saveInstance(ctx, c.cfg.Token, c.cfg.Forms.Allergy.Form, recordID, instance, map[string]string{
		"all_sent_to_curesma___1": "1",
		"all_date_data_curesma":   formatTimestamp(sentAt),
		"all_id":                  allergyID,
	})
}

// projectFields returns the set of field names in a project's data
// dictionary, cached per token.
func (c *Client) projectFields(ctx context.Context, token string) (map[string]struct{}, error) {
	if item := c.metadata.Get(token); item != nil {
		return item.Value(), nil
	}
	params := url.Values{}
	params.Set("content", "metadata")
	params.Set("format", "json")
	params.Set("returnFormat", "json")
	var defs []struct {
		FieldName string `json:"field_name"`
	}
	if err := c.call(ctx, token, params, &defs); err != nil {
		return nil, err
	}
	fields := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		fields[d.FieldName] = struct{}{}
	}
	c.metadata.Set(token, fields, ttlcache.DefaultTTL)
	return fields, nil
}

func (c *Client) exportParams() url.Values {
	params := url.Values{}
	params.Set("content", "record")
	params.Set("action", "export")
	params.Set("format", "json")
	params.Set("type", "flat")
	params.Set("returnFormat", "json")
	return params
}

func (c *Client) exportForm(ctx context.Context, token string, binding FormBinding, recordID, filter string, target any) error {
	params := c.exportParams()
	params.Set("forms", binding.Form)
	if binding.Event != "" {
		params.Set("events", binding.Event)
	}
	params.Set("records", recordID)
	if filter != "" {
		params.Set("filterLogic", filter)
	}
	if err := c.call(ctx, token, params, target); err != nil {
		return fmt.Errorf("fetch %s rows for record %s: %w", binding.Form, recordID, err)
	}
	return nil
}

func (c *Client) saveInstance(ctx context.Context, token, form, recordID string, instance int, fields map[string]string) error {
	row := map[string]string{
		"record_id":                recordID,
		"redcap_repeat_instrument": form,
		"redcap_repeat_instance":   strconv.Itoa(instance),
	}
	for k, v := range fields {
		row[k] = v
	}
	return c.importRows(ctx, token, []map[string]string{row})
}

func (c *Client) importRow(ctx context.Context, token string, fields map[string]string) error {
	return c.importRows(ctx, token, []map[string]string{fields})
}

func (c *Client) importRows(ctx context.Context, token string, rows []map[string]string) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	params := url.Values{}
	params.Set("content", "record")
	params.Set("action", "import")
	params.Set("format", "json")
	params.Set("type", "flat")
	params.Set("overwriteBehavior", "normal")
	params.Set("dateFormat", "YMD")
	params.Set("returnContent", "count")
	params.Set("returnFormat", "json")
	params.Set("data", string(data))

	var result struct {
		Count int `json:"count"`
	}
	if err := c.call(ctx, token, params, &result); err != nil {
		return fmt.Errorf("save record fields: %w", err)
	}
	if result.Count == 0 {
		return fmt.Errorf("save record fields: no rows written")
	}
	return nil
}

// call performs one API round trip and decodes the JSON response into target.
func (c *Client) call(ctx context.Context, token string, params url.Values, target any) error {
	params.Set("token", token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, strings.NewReader(params.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		log.Ctx(ctx).Debug().Int("status", resp.StatusCode).Str("body", string(body)).Msg("REDCap API call failed")
		return fmt.Errorf("REDCap API returned status %d: %s", resp.StatusCode, string(body))
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode REDCap response: %w", err)
	}
	return nil
}

func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
