package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curesma/registry-bridge/redcap"
)

func TestEncodeCondition(t *testing.T) {
	t.Run("active without resolution date", func(t *testing.T) {
		doc := encodeCondition(redcap.ConditionRow{
			Code:        "G12.0",
			Description: "Infantile spinal muscular atrophy, type I",
			StartDate:   "2019-05-01",
		}, "dx-4-1", "S-4")

		assert.Equal(t, "dx-4-1", doc.ID)
		assert.Equal(t, "active", doc.ClinicalStatus)
		assert.Equal(t, "confirmed", doc.VerificationStatus)
		assert.Equal(t, systemICD10CM, doc.Code.Coding[0].System)
		assert.Equal(t, "439401001", doc.Category.Coding[0].Code)
		assert.Equal(t, "urn:Patient/S-4", doc.Subject.Reference)
		assert.Empty(t, doc.AbatementDateTime)
	})
	t.Run("resolved with resolution date", func(t *testing.T) {
		doc := encodeCondition(redcap.ConditionRow{
			Code:         "J96.01",
			StartDate:    "2020-01-01",
			ResolvedDate: "2020-02-01",
		}, "dx-4-2", "S-4")

		assert.Equal(t, "resolved", doc.ClinicalStatus)
		assert.Equal(t, "2020-02-01", doc.AbatementDateTime)
	})
}
