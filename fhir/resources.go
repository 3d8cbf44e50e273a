// Package fhir holds the minimal resource documents accepted by the CureSMA
// data-exchange endpoint. The endpoint speaks a fixed, narrow dialect (plain
// string statuses, `context` references, top-level provider fields on
// Encounter), so the documents are modelled here directly rather than through
// a full FHIR model library.
package fhir

// Coding is a single code from a terminology system.
type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

// CodeableConcept wraps one or more codings.
type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
}

// Reference points at another resource, e.g. "urn:Patient/S-1234".
type Reference struct {
	Reference string `json:"reference"`
}

// Quantity carries a measured or reported value. Value keeps the source's
// textual precision by using json.Number; non-numeric results go into
// ValueString instead.
type Quantity struct {
	Value       Number `json:"value,omitempty"`
	ValueString string `json:"valueString,omitempty"`
	Comparator  string `json:"comparator,omitempty"`
	Unit        string `json:"unit,omitempty"`
	System      string `json:"system,omitempty"`
	Code        string `json:"code,omitempty"`
}

// ReferenceRange bounds an observation value.
type ReferenceRange struct {
	Low  *Quantity `json:"low,omitempty"`
	High *Quantity `json:"high,omitempty"`
}

// Narrative is a generated human-readable block.
type Narrative struct {
	Status string `json:"status"`
	Div    string `json:"div"`
}

// Period is a time window with an optional end.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Extension carries coded extra content (race, ethnicity).
type Extension struct {
	URL                  string           `json:"url"`
	ValueCodeableConcept *CodeableConcept `json:"valueCodeableConcept,omitempty"`
}

// Identifier identifies a patient in an external system.
type Identifier struct {
	System   string           `json:"system,omitempty"`
	Type     *CodeableConcept `json:"type,omitempty"`
	Use      string           `json:"use,omitempty"`
	Assigner *Reference       `json:"assigner,omitempty"`
	Value    string           `json:"value,omitempty"`
}

// HumanName is a patient name.
type HumanName struct {
	Text   string   `json:"text,omitempty"`
	Given  []string `json:"given,omitempty"`
	Family string   `json:"family,omitempty"`
}

// Address is a postal address.
type Address struct {
	Use        string   `json:"use,omitempty"`
	Line       []string `json:"line,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
}

// Patient is the demographics document.
type Patient struct {
	ResourceType string       `json:"resourceType"`
	Active       string       `json:"active,omitempty"`
	ID           string       `json:"id"`
	Name         []HumanName  `json:"name,omitempty"`
	Extension    []Extension  `json:"extension,omitempty"`
	Gender       string       `json:"gender,omitempty"`
	BirthDate    string       `json:"birthDate,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Address      []Address    `json:"address,omitempty"`
}

// Condition is a diagnosis document.
type Condition struct {
	ResourceType       string           `json:"resourceType"`
	ID                 string           `json:"id"`
	ClinicalStatus     string           `json:"clinicalStatus"`
	VerificationStatus string           `json:"verificationStatus"`
	Category           *CodeableConcept `json:"category,omitempty"`
	Code               *CodeableConcept `json:"code,omitempty"`
	Subject            Reference        `json:"subject"`
	OnsetDateTime      string           `json:"onsetDateTime,omitempty"`
	AbatementDateTime  string           `json:"abatementDateTime,omitempty"`
}

// Observation carries both lab results and vital signs.
type Observation struct {
	ResourceType      string            `json:"resourceType"`
	ID                string            `json:"id"`
	Status            string            `json:"status,omitempty"`
	Category          []CodeableConcept `json:"category,omitempty"`
	Code              *CodeableConcept  `json:"code,omitempty"`
	Subject           Reference         `json:"subject"`
	Context           *Reference        `json:"context,omitempty"`
	EffectiveDateTime string            `json:"effectiveDateTime,omitempty"`
	ValueQuantity     *Quantity         `json:"valueQuantity,omitempty"`
	ReferenceRange    []ReferenceRange  `json:"referenceRange,omitempty"`
}

// Encounter is a visit or hospitalization document.
type Encounter struct {
	ResourceType string     `json:"resourceType"`
	ID           string     `json:"id"`
	Status       string     `json:"status,omitempty"`
	Text         *Narrative `json:"text,omitempty"`
	Subject      Reference  `json:"subject"`
	Period       *Period    `json:"period,omitempty"`
	Specialty    string     `json:"specialty,omitempty"`
	Provider     string     `json:"provider,omitempty"`
}

// Procedure is a performed-procedure document linked to an encounter.
type Procedure struct {
	ResourceType      string           `json:"resourceType"`
	ID                string           `json:"id"`
	Status            string           `json:"status,omitempty"`
	Code              *CodeableConcept `json:"code,omitempty"`
	Subject           Reference        `json:"subject"`
	PerformedDateTime string           `json:"performedDateTime,omitempty"`
	Context           Reference        `json:"context"`
}

// Ingredient is a medication component.
type Ingredient struct {
	ItemCodeableConcept CodeableConcept `json:"itemCodeableConcept"`
}

// Medication is a shared catalog entry, submitted once per distinct drug.
type Medication struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id"`
	Code         *CodeableConcept `json:"code,omitempty"`
	Ingredient   []Ingredient     `json:"ingredient,omitempty"`
	IsBrand      string           `json:"isBrand,omitempty"`
}

// MedicationStatement records one patient-drug occurrence.
type MedicationStatement struct {
	ResourceType        string     `json:"resourceType"`
	ID                  string     `json:"id"`
	Text                *Narrative `json:"text,omitempty"`
	Status              string     `json:"status,omitempty"`
	MedicationReference Reference  `json:"medicationReference"`
	EffectiveDateTime   string     `json:"effectiveDateTime,omitempty"`
	DateAsserted        string     `json:"dateAsserted,omitempty"`
	Subject             Reference  `json:"subject"`
	Taken               string     `json:"taken,omitempty"`
}

// Reaction describes an allergic reaction manifestation.
type Reaction struct {
	Manifestation []CodeableConcept `json:"manifestation"`
}

// AllergyIntolerance is an allergy document.
type AllergyIntolerance struct {
	ResourceType       string           `json:"resourceType"`
	ID                 string           `json:"id"`
	ClinicalStatus     string           `json:"clinicalStatus"`
	VerificationStatus string           `json:"verificationStatus"`
	Type               string           `json:"type,omitempty"`
	Code               *CodeableConcept `json:"code,omitempty"`
	Reaction           []Reaction       `json:"reaction,omitempty"`
	Patient            Reference        `json:"patient"`
	OnsetDateTime      string           `json:"onsetDateTime,omitempty"`
}
