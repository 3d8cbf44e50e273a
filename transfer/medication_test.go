package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/curesma/registry-bridge/redcap"
	"github.com/curesma/registry-bridge/transfer/mock"
)

func TestSendMedicationsDedupAcrossPatients(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mock.NewMockHost(ctrl)
	sub := mock.NewMockSubmitter(ctrl)

	nusinersen := redcap.MedicationRow{
		Repeat:            redcap.Repeat{Instance: 1},
		NDCCode:           "64406-058-01",
		SnomedCode:        "735230005",
		Description:       "nusinersen 12 MG",
		SnomedDescription: "Nusinersen",
	}
	catalogEntry := redcap.CatalogEntry{
		RecordID:          1,
		ListID:            "medlist-1",
		NDCCode:           nusinersen.NDCCode,
		SnomedCode:        nusinersen.SnomedCode,
		Description:       nusinersen.Description,
		SnomedDescription: nusinersen.SnomedDescription,
	}

	host.EXPECT().Configured(redcap.FormMedication).Return(true).Times(2)

	// First patient: empty catalog, so the drug is staged, submitted once
	// and appended as catalog record 1.
	host.EXPECT().Medications(gomock.Any(), "10").Return([]redcap.MedicationRow{nusinersen}, nil)
	host.EXPECT().MedicationCatalog(gomock.Any()).Return(nil, nil)
	sub.EXPECT().Put(gomock.Any(), "/Medication/medlist-1", gomock.Any()).Return(nil)
	host.EXPECT().AppendCatalogEntry(gomock.Any(), gomock.Any(), testTime).Return(nil)
	host.EXPECT().MedicationCatalog(gomock.Any()).Return([]redcap.CatalogEntry{catalogEntry}, nil)
	host.EXPECT().SetMedicationListID(gomock.Any(), "10", 1, "medlist-1").Return(nil)

	// Second patient with the same drug: the catalog already carries it,
	// so no further Medication PUT happens and the existing id is reused.
	host.EXPECT().Medications(gomock.Any(), "11").Return([]redcap.MedicationRow{nusinersen}, nil)
	host.EXPECT().MedicationCatalog(gomock.Any()).Return([]redcap.CatalogEntry{catalogEntry}, nil).Times(2)
	host.EXPECT().SetMedicationListID(gomock.Any(), "11", 1, "medlist-1").Return(nil)

	service, _ := newTestService(host, sub)
	out := service.sendMedications(context.Background(), sub, redcap.Participant{RecordID: "10", StudyID: "S-10"})
	assert.Equal(t, Outcome{Sent: 1}, out)
	out = service.sendMedications(context.Background(), sub, redcap.Participant{RecordID: "11", StudyID: "S-11"})
	assert.Equal(t, Outcome{}, out)
}

func TestSendMedicationsBatchDedup(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mock.NewMockHost(ctrl)
	sub := mock.NewMockSubmitter(ctrl)

	rows := []redcap.MedicationRow{
		{Repeat: redcap.Repeat{Instance: 1}, SnomedCode: "735230005", NDCCode: "64406-058-01"},
		{Repeat: redcap.Repeat{Instance: 2}, SnomedCode: "735230005", NDCCode: "64406-058-01"},
	}
	host.EXPECT().Configured(redcap.FormMedication).Return(true)
	host.EXPECT().Medications(gomock.Any(), "5").Return(rows, nil)
	// Catalog already holds records 3 and 7: the new entry gets id 8.
	existing := []redcap.CatalogEntry{
		{RecordID: 3, ListID: "medlist-3", SnomedCode: "373873005"},
		{RecordID: 7, ListID: "medlist-7", SnomedCode: "387207008"},
	}
	host.EXPECT().MedicationCatalog(gomock.Any()).Return(existing, nil)
	sub.EXPECT().Put(gomock.Any(), "/Medication/medlist-8", gomock.Any()).Return(nil)
	host.EXPECT().AppendCatalogEntry(gomock.Any(), gomock.Any(), testTime).
		DoAndReturn(func(_ context.Context, entry redcap.CatalogEntry, _ time.Time) error {
			assert.Equal(t, 8, entry.RecordID.Int())
			assert.Equal(t, "medlist-8", entry.ListID)
			return nil
		})
	host.EXPECT().MedicationCatalog(gomock.Any()).Return(append(existing, redcap.CatalogEntry{
		RecordID: 8, ListID: "medlist-8", SnomedCode: "735230005",
	}), nil)
	host.EXPECT().SetMedicationListID(gomock.Any(), "5", 1, "medlist-8").Return(nil)
	host.EXPECT().SetMedicationListID(gomock.Any(), "5", 2, "medlist-8").Return(nil)

	service, _ := newTestService(host, sub)
	out := service.sendMedications(context.Background(), sub, redcap.Participant{RecordID: "5", StudyID: "S-5"})
	assert.Equal(t, Outcome{Sent: 1}, out)
}

func TestSendMedicationsSkipsRowsWithoutCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mock.NewMockHost(ctrl)
	sub := mock.NewMockSubmitter(ctrl)

	host.EXPECT().Configured(redcap.FormMedication).Return(true)
	host.EXPECT().Medications(gomock.Any(), "2").Return([]redcap.MedicationRow{
		{Repeat: redcap.Repeat{Instance: 1}, Description: "unknown compound"},
	}, nil)
	host.EXPECT().MedicationCatalog(gomock.Any()).Return(nil, nil).Times(2)

	service, _ := newTestService(host, sub)
	out := service.sendMedications(context.Background(), sub, redcap.Participant{RecordID: "2", StudyID: "S-2"})
	assert.Equal(t, Outcome{Skipped: 1}, out)
}

func TestNextCatalogRecord(t *testing.T) {
	assert.Equal(t, 1, nextCatalogRecord(nil))
	assert.Equal(t, 4, nextCatalogRecord([]redcap.CatalogEntry{{RecordID: 3}, {RecordID: 1}}))
}

func TestEncodeMedication(t *testing.T) {
	t.Run("ndc coding with ingredient", func(t *testing.T) {
		doc := encodeMedication(redcap.CatalogEntry{
			ListID:            "medlist-4",
			NDCCode:           "64406-058-01",
			SnomedCode:        "735230005",
			Description:       "nusinersen 12 MG",
			SnomedDescription: "Nusinersen",
		})
		require.NotNil(t, doc.Code)
		assert.Equal(t, systemNDC, doc.Code.Coding[0].System)
		require.Len(t, doc.Ingredient, 1)
		assert.Equal(t, "735230005", doc.Ingredient[0].ItemCodeableConcept.Coding[0].Code)
		assert.Empty(t, doc.IsBrand)
	})
	t.Run("local code fallback", func(t *testing.T) {
		doc := encodeMedication(redcap.CatalogEntry{ListID: "medlist-5", LocalCode: "MED9", SnomedCode: "1"})
		assert.Equal(t, systemLocalMed, doc.Code.Coding[0].System)
		assert.Equal(t, "MED9", doc.Code.Coding[0].Code)
	})
	t.Run("brand flag", func(t *testing.T) {
		doc := encodeMedication(redcap.CatalogEntry{ListID: "medlist-6", NDCCode: "1", SnomedCode: "1", BrandName: "1"})
		assert.Equal(t, "true", doc.IsBrand)
	})
}
