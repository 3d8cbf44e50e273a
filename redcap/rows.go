package redcap

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexInt decodes the instance and record counters REDCap returns either as
// numbers or as quoted strings, depending on version and export path.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

func (f FlexInt) Int() int {
	return int(f)
}

// Repeat carries the repeating-instrument bookkeeping REDCap attaches to every
// exported row. Rows with instance 0 are the record's base row and are not
// resource instances.
type Repeat struct {
	Instrument string  `json:"redcap_repeat_instrument,omitempty"`
	Instance   FlexInt `json:"redcap_repeat_instance,omitempty"`
}

func (r Repeat) instanceNumber() int {
	return r.Instance.Int()
}

// Participant is one enrolled record in the cohort.
type Participant struct {
	RecordID string `json:"record_id"`
	StudyID  string `json:"study_id"`
}

// DemographicsRow holds the fields the Patient codec needs.
type DemographicsRow struct {
	RecordID  string `json:"record_id"`
	MRN       string `json:"mrn"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"dob"`
	Race      string `json:"race"`
	Ethnicity string `json:"ethnicity"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state_text"`
	Zip       string `json:"zip"`
	Country   string `json:"country_text"`
}

// ConditionRow is one diagnosis instance.
type ConditionRow struct {
	Repeat
	Code         string `json:"dx_code"`
	Description  string `json:"dx_description"`
	StartDate    string `json:"dx_start_date"`
	ResolvedDate string `json:"dx_resolved_date"`
}

// LabRow is one laboratory result instance.
type LabRow struct {
	Repeat
	LabID       string `json:"lab_id"`
	DateTime    string `json:"lab_date_time"`
	LoincCode   string `json:"lab_loinc"`
	Description string `json:"lab_loinc_description"`
	Result      string `json:"lab_result"`
	Status      string `json:"lab_result_status"`
	Units       string `json:"lab_result_units"`
	RefLow      string `json:"lab_ref_low"`
	RefHigh     string `json:"lab_ref_high"`
	ComponentID string `json:"lab_component_id"`
}

// EncounterRow is one encounter instance. EncID is empty until the encounter
// has been submitted and assigned its resource id.
type EncounterRow struct {
	Repeat
	EncID         string `json:"enc_id"`
	Status        string `json:"enc_status"`
	StartDateTime string `json:"enc_start_datetime"`
	EndDateTime   string `json:"enc_end_datetime"`
	Reason        string `json:"enc_reason"`
	Provider      string `json:"enc_provider"`
	Specialty     string `json:"enc_prov_specialty"`
}

// VitalSignsRow is the vital-sign slice of an encounter instance.
type VitalSignsRow struct {
	Repeat
	EncID           string `json:"enc_id"`
	StartDateTime   string `json:"enc_start_datetime"`
	Weight          string `json:"enc_weight"`
	RespiratoryRate string `json:"enc_respiratory_rate"`
	Pulse           string `json:"enc_pulse"`
	Temperature     string `json:"enc_temperature"`
	Height          string `json:"enc_height"`
	O2Saturation    string `json:"enc_o2"`
	BMI             string `json:"enc_bmi"`
	BPSystolic      string `json:"enc_bp_systolic"`
	BPDiastolic     string `json:"enc_bp_diastolic"`
}

// ProcedureRow is one procedure instance.
type ProcedureRow struct {
	Repeat
	ProcID      string `json:"proc_id"`
	Code        string `json:"proc_code"`
	CodeType    string `json:"proc_code_type"`
	Description string `json:"proc_description"`
	Date        string `json:"proc_date"`
	Status      string `json:"proc_status"`
}

// MedicationRow is one patient medication instance. ListID is back-filled
// with the shared catalog id once the Medication resource exists.
type MedicationRow struct {
	Repeat
	ListID            string `json:"med_list_id"`
	NDCCode           string `json:"med_ndc_code"`
	LocalCode         string `json:"med_stanford_med_id"`
	SnomedCode        string `json:"med_snomed_ct_code"`
	Description       string `json:"med_stanford_description"`
	SnomedDescription string `json:"med_snomed_ct_description"`
	BrandName         string `json:"med_brand_name"`
	OTC               string `json:"med_otc"`
	StartDate         string `json:"med_start_date"`
	EndDate           string `json:"med_end_date"`
	OrderDate         string `json:"med_order_date"`
	Administered      string `json:"med_administered"`
}

// CatalogEntry is one record of the shared medication-list project.
type CatalogEntry struct {
	RecordID          FlexInt `json:"record_id"`
	ListID            string  `json:"med_list_id"`
	NDCCode           string  `json:"med_ndc_code"`
	LocalCode         string  `json:"med_stanford_med_id"`
	SnomedCode        string  `json:"med_snomed_ct_code"`
	Description       string  `json:"med_stanford_description"`
	SnomedDescription string  `json:"med_snomed_ct_description"`
	BrandName         string  `json:"med_brand_name"`
	OTC               string  `json:"med_otc"`
}

// AllergyRow is one allergy instance.
type AllergyRow struct {
	Repeat
	Description string `json:"all_description"`
	DateNoted   string `json:"all_date_noted"`
	Status      string `json:"all_status"`
	Reaction    string `json:"all_reaction"`
}

// keepInstances drops the base (non-repeating) rows the flat export mixes in
// with the repeating-form instances.
func keepInstances[T interface{ instanceNumber() int }](rows []T) []T {
	out := rows[:0]
	for _, r := range rows {
		if r.instanceNumber() > 0 {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
