package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curesma/registry-bridge/redcap"
)

func TestEncodePatient(t *testing.T) {
	doc := encodePatient(redcap.DemographicsRow{
		MRN:       "1234567",
		FirstName: "Ada",
		LastName:  "Nguyen",
		Gender:    "female",
		BirthDate: "2016-11-02",
		Race:      "Asian",
		Ethnicity: "Non-Hispanic",
		Street:    "450 Serra Mall",
		City:      "Stanford",
		State:     "California",
		Zip:       "94305",
		Country:   "United States",
	}, "S-15", "Lucile Packard Children's Hospital")

	assert.Equal(t, "S-15", doc.ID)
	assert.Equal(t, "true", doc.Active)
	require.Len(t, doc.Name, 1)
	assert.Equal(t, "Ada Nguyen", doc.Name[0].Text)
	assert.Equal(t, "Nguyen", doc.Name[0].Family)

	require.Len(t, doc.Identifier, 1)
	assert.Equal(t, "1234567", doc.Identifier[0].Value)
	assert.Equal(t, "MR", doc.Identifier[0].Type.Coding[0].Code)
	assert.Equal(t, "Lucile Packard Children's Hospital", doc.Identifier[0].Assigner.Reference)

	require.Len(t, doc.Extension, 2)
	assert.Equal(t, raceExtensionURL, doc.Extension[0].URL)
	assert.Equal(t, "2028-9", doc.Extension[0].ValueCodeableConcept.Coding[0].Code)
	assert.Equal(t, ethnicityExtensionURL, doc.Extension[1].URL)

	require.Len(t, doc.Address, 1)
	assert.Equal(t, "home", doc.Address[0].Use)
	assert.Equal(t, "94305", doc.Address[0].PostalCode)
}

func TestEncodePatientUnmappedRace(t *testing.T) {
	// Labels outside the registry's fixed vocabulary produce no extension
	// rather than a made-up code.
	doc := encodePatient(redcap.DemographicsRow{Race: "Martian"}, "S-1", "Org")
	assert.Empty(t, doc.Extension)
}
