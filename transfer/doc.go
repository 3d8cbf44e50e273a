package transfer

import (
	"github.com/curesma/registry-bridge/fhir"
)

// Terminology systems fixed by the data-sharing agreement.
const (
	systemLOINC       = "http://loinc.org"
	systemSNOMED      = "http://snomed.info/sct"
	systemUCUM        = "http://unitsofmeasure.org"
	systemICD10CM     = "http://hl7.org/fhir/sid/icd-10-cm"
	systemNDC         = "http://hl7.org/fhir/sid/ndc"
	systemCPT         = "http://www.ama-assn.org/go/cpt"
	systemCDC         = "https://www.cdc.gov/"
	systemLocal       = "https://www.stanford.edu"
	systemLocalMed    = "https://www.stanford.edu/"
	systemObsCategory = "http://terminology.hl7.org/CodeSystem/observation-category"
	// The endpoint expects the legacy category system on vital signs.
	systemVitalsCategory = "http://hl7.org/fhir/observation-category"
	systemIDType         = "http://terminology.hl7.org/CodeSystem/v2-0203"
	systemRaceCoding     = "urn:oid:2.16.840.1.113883.6.238"
)

func marshalDocument(doc any) ([]byte, error) {
	return fhir.MarshalDocument(doc)
}

// subjectReference points a resource at its patient by study id.
func subjectReference(studyID string) fhir.Reference {
	return fhir.Reference{Reference: "urn:Patient/" + studyID}
}

func concept(system, code, display string) *fhir.CodeableConcept {
	return &fhir.CodeableConcept{
		Coding: []fhir.Coding{{System: system, Code: code, Display: display}},
	}
}
