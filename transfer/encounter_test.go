package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curesma/registry-bridge/fhir"
	"github.com/curesma/registry-bridge/redcap"
)

func TestEncodeEncounter(t *testing.T) {
	doc := encodeEncounter(redcap.EncounterRow{
		Status:        "finished",
		StartDateTime: "2021-01-04 08:00",
		EndDateTime:   "2021-01-06 10:00",
		Reason:        "Scheduled infusion",
		Provider:      "Dr. Vance",
		Specialty:     "Neurology",
	}, "enc-3-1", "S-3")

	assert.Equal(t, "enc-3-1", doc.ID)
	assert.Equal(t, "finished", doc.Status)
	require.NotNil(t, doc.Text)
	assert.Equal(t, "generated", doc.Text.Status)
	assert.Equal(t, "<div>Scheduled infusion</div>", doc.Text.Div)
	assert.Equal(t, &fhir.Period{Start: "2021-01-04 08:00", End: "2021-01-06 10:00"}, doc.Period)
	assert.Equal(t, "Neurology", doc.Specialty)
}

func TestEncodeEncounterSingleDay(t *testing.T) {
	doc := encodeEncounter(redcap.EncounterRow{StartDateTime: "2021-02-01 09:00"}, "enc-3-2", "S-3")
	assert.Equal(t, &fhir.Period{Start: "2021-02-01 09:00"}, doc.Period)

	body, err := fhir.MarshalDocument(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"end"`)
}
