package redcap

import (
	"errors"
	"time"
)

// Form kinds used for feature-toggle lookups. A kind whose FormBinding is
// empty is treated as disabled, not as an error.
const (
	FormDemographics = "demographics"
	FormDiagnosis    = "diagnosis"
	FormLab          = "lab"
	FormEncounter    = "encounter"
	FormProcedure    = "procedure"
	FormMedication   = "medication"
	FormAllergy      = "allergy"
)

// FormBinding names the instrument and event that hold one resource type's
// data. Both empty means the resource type is not captured in this project.
type FormBinding struct {
	Form  string `koanf:"form"`
	Event string `koanf:"event"`
}

// Configured reports whether the binding points at an instrument.
func (b FormBinding) Configured() bool {
	return b.Form != ""
}

// Forms holds the per-resource instrument bindings.
type Forms struct {
	Demographics FormBinding `koanf:"demographics"`
	Diagnosis    FormBinding `koanf:"diagnosis"`
	Lab          FormBinding `koanf:"lab"`
	Encounter    FormBinding `koanf:"encounter"`
	Procedure    FormBinding `koanf:"procedure"`
	Medication   FormBinding `koanf:"medication"`
	Allergy      FormBinding `koanf:"allergy"`
}

// Config holds the connection to the data-capture platform's API.
type Config struct {
	// URL is the REDCap API endpoint, e.g. https://redcap.example.org/api/.
	URL string `koanf:"url"`
	// Token authorizes access to the registry project.
	Token string `koanf:"token"`
	// MedListToken authorizes access to the shared medication-list project.
	MedListToken string `koanf:"medlisttoken"`
	// EnrollmentField is the checkbox that marks a record as participating.
	EnrollmentField string `koanf:"enrollmentfield"`
	// StudyIDField holds the externally shared study identifier.
	StudyIDField string `koanf:"studyidfield"`
	Forms        Forms  `koanf:"forms"`
	// Timeout bounds a single API round trip.
	Timeout time.Duration `koanf:"timeout"`
}

func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("redcap API URL is not configured")
	}
	if c.Token == "" {
		return errors.New("redcap API token is not configured")
	}
	if c.Forms.Medication.Configured() && c.MedListToken == "" {
		return errors.New("medication form is configured but no medication-list project token is set")
	}
	return nil
}

// DefaultConfig returns defaults for the optional fields.
func DefaultConfig() Config {
	return Config{
		EnrollmentField: "enrolled",
		StudyIDField:    "study_id",
		Timeout:         30 * time.Second,
	}
}
