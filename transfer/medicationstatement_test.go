package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curesma/registry-bridge/redcap"
)

func TestEncodeMedicationStatement(t *testing.T) {
	t.Run("ongoing administered medication", func(t *testing.T) {
		doc := encodeMedicationStatement(redcap.MedicationRow{
			ListID:       "medlist-2",
			Description:  "risdiplam 0.75 MG/ML",
			StartDate:    "2022-03-01",
			OrderDate:    "2022-02-20",
			Administered: "1",
		}, "med-6-1", "S-6")

		assert.Equal(t, "med-6-1", doc.ID)
		assert.Equal(t, "active", doc.Status)
		assert.Equal(t, "y", doc.Taken)
		assert.Equal(t, "urn:Medication/medlist-2", doc.MedicationReference.Reference)
		assert.Equal(t, "2022-03-01", doc.EffectiveDateTime)
		assert.Equal(t, "2022-02-20", doc.DateAsserted)
		assert.Contains(t, doc.Text.Div, "risdiplam 0.75 MG/ML")
	})
	t.Run("ended medication with unknown administration", func(t *testing.T) {
		doc := encodeMedicationStatement(redcap.MedicationRow{
			ListID:  "medlist-2",
			EndDate: "2022-08-01",
		}, "med-6-2", "S-6")

		assert.Equal(t, "completed", doc.Status)
		assert.Equal(t, "unk", doc.Taken)
	})
}
