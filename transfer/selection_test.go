package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	t.Run("single type", func(t *testing.T) {
		sel, err := ParseSelection("dx")
		require.NoError(t, err)
		assert.Equal(t, Selection{Diagnoses: true}, sel)
	})
	t.Run("procedures force-include encounters", func(t *testing.T) {
		sel, err := ParseSelection("px")
		require.NoError(t, err)
		assert.Equal(t, Selection{Procedures: true, Encounters: true}, sel)
	})
	t.Run("vitals force-include encounters", func(t *testing.T) {
		sel, err := ParseSelection("vitals")
		require.NoError(t, err)
		assert.Equal(t, Selection{Vitals: true, Encounters: true}, sel)
	})
	t.Run("all expands to every type", func(t *testing.T) {
		sel, err := ParseSelection("all")
		require.NoError(t, err)
		assert.Len(t, sel, len(submissionOrder))
		assert.True(t, sel[Allergies])
	})
	t.Run("comma separated list", func(t *testing.T) {
		sel, err := ParseSelection("demo, lab")
		require.NoError(t, err)
		assert.Equal(t, Selection{Demographics: true, Labs: true}, sel)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := ParseSelection("")
		assert.ErrorIs(t, err, ErrNoneSelected)
	})
	t.Run("unknown token", func(t *testing.T) {
		_, err := ParseSelection("dx,bogus")
		assert.ErrorContains(t, err, "unknown resource type")
	})
	t.Run("allergies have no own token", func(t *testing.T) {
		_, err := ParseSelection("allergy")
		assert.ErrorContains(t, err, "unknown resource type")
	})
}

func TestSelectionString(t *testing.T) {
	sel, err := ParseSelection("vitals,demo")
	require.NoError(t, err)
	assert.Equal(t, "demo,enc,vitals", sel.String())
}
