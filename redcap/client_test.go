package redcap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) Config {
	cfg := DefaultConfig()
	cfg.URL = url
	cfg.Token = "registry-token"
	cfg.MedListToken = "medlist-token"
	cfg.Forms = Forms{
		Demographics: FormBinding{Form: "demographics"},
		Diagnosis:    FormBinding{Form: "diagnosis", Event: "baseline_arm_1"},
		Encounter:    FormBinding{Form: "encounters"},
		Medication:   FormBinding{Form: "medications"},
	}
	return cfg
}

func TestConfigured(t *testing.T) {
	client := NewClient(testConfig("http://example.org/api/"))
	assert.True(t, client.Configured(FormDiagnosis))
	assert.False(t, client.Configured(FormLab))
	assert.False(t, client.Configured("nonsense"))
}

func TestCohort(t *testing.T) {
	var gotFilter, gotFields, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotFilter = r.PostFormValue("filterLogic")
		gotFields = r.PostFormValue("fields")
		gotToken = r.PostFormValue("token")
		_, _ = w.Write([]byte(`[
			{"record_id":"1","study_id":"S-1","redcap_repeat_instance":""},
			{"record_id":"1","study_id":"","redcap_repeat_instance":"2"},
			{"record_id":"2","study_id":"S-2","redcap_repeat_instance":""}
		]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	cohort, err := client.Cohort(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[enrolled(1)] = '1'", gotFilter)
	assert.Equal(t, "record_id,study_id", gotFields)
	assert.Equal(t, "registry-token", gotToken)
	assert.Equal(t, []Participant{{RecordID: "1", StudyID: "S-1"}, {RecordID: "2", StudyID: "S-2"}}, cohort)
}

func TestConditionsDropsBaseRow(t *testing.T) {
	var gotForms, gotEvents, gotRecords string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForms = r.PostFormValue("forms")
		gotEvents = r.PostFormValue("events")
		gotRecords = r.PostFormValue("records")
		_, _ = w.Write([]byte(`[
			{"record_id":"7","redcap_repeat_instrument":"","redcap_repeat_instance":""},
			{"record_id":"7","redcap_repeat_instrument":"diagnosis","redcap_repeat_instance":1,"dx_code":"G12.0"},
			{"record_id":"7","redcap_repeat_instrument":"diagnosis","redcap_repeat_instance":"2","dx_code":"G12.1"}
		]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	rows, err := client.Conditions(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "diagnosis", gotForms)
	assert.Equal(t, "baseline_arm_1", gotEvents)
	assert.Equal(t, "7", gotRecords)
	// Numeric and quoted instance numbers both decode; the base row is gone.
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Instance.Int())
	assert.Equal(t, 2, rows[1].Instance.Int())
	assert.Equal(t, "G12.1", rows[1].Code)
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	rows, err := client.Conditions(context.Background(), "7")
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestSaveConditionStatus(t *testing.T) {
	var imported []map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "import", r.PostFormValue("action"))
		require.Equal(t, "count", r.PostFormValue("returnContent"))
		require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("data")), &imported))
		_, _ = w.Write([]byte(`{"count":1}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	sentAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	err := client.SaveConditionStatus(context.Background(), "7", 2, "dx-7-2", sentAt)
	require.NoError(t, err)

	require.Len(t, imported, 1)
	assert.Equal(t, map[string]string{
		"record_id":                "7",
		"redcap_repeat_instrument": "diagnosis",
		"redcap_repeat_instance":   "2",
		"dx_sent_to_curesma___1":   "1",
		"dx_date_data_curesma":     "2024-03-01 12:30:00",
		"dx_id":                    "dx-7-2",
	}, imported[0])
}

func TestSaveReportsZeroRowsWritten(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":0}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	err := client.SaveLabStatus(context.Background(), "7", 1, time.Now())
	assert.ErrorContains(t, err, "no rows written")
}

func TestAppendCatalogEntryIntersectsFields(t *testing.T) {
	var imported []map[string]string
	metadataCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch r.PostFormValue("content") {
		case "metadata":
			metadataCalls++
			assert.Equal(t, "medlist-token", r.PostFormValue("token"))
			// The catalog project has no brand or OTC fields.
			_, _ = w.Write([]byte(`[
				{"field_name":"record_id"},
				{"field_name":"med_list_id"},
				{"field_name":"med_ndc_code"},
				{"field_name":"med_stanford_med_id"},
				{"field_name":"med_snomed_ct_code"},
				{"field_name":"med_stanford_description"},
				{"field_name":"med_snomed_ct_description"},
				{"field_name":"med_sent_to_curesma"},
				{"field_name":"med_date_sent_to_curesma"}
			]`))
		default:
			require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("data")), &imported))
			_, _ = w.Write([]byte(`{"count":1}`))
		}
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	entry := CatalogEntry{
		RecordID:   4,
		ListID:     "medlist-4",
		NDCCode:    "64406-058-01",
		SnomedCode: "735230005",
		BrandName:  "1",
		OTC:        "0",
	}
	sentAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, client.AppendCatalogEntry(context.Background(), entry, sentAt))

	require.Len(t, imported, 1)
	row := imported[0]
	assert.Equal(t, "4", row["record_id"])
	assert.Equal(t, "medlist-4", row["med_list_id"])
	assert.Equal(t, "1", row["med_sent_to_curesma___1"])
	assert.Equal(t, "2024-03-01 12:00:00", row["med_date_sent_to_curesma"])
	assert.NotContains(t, row, "med_brand_name")
	assert.NotContains(t, row, "med_otc")

	// The data dictionary is cached; a second append does not refetch it.
	require.NoError(t, client.AppendCatalogEntry(context.Background(), entry, sentAt))
	assert.Equal(t, 1, metadataCalls)
}

func TestCallRejectsNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"You do not have permissions to use the API"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.Cohort(context.Background())
	assert.ErrorContains(t, err, "status 403")
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorContains(t, cfg.Validate(), "URL")

	cfg.URL = "http://example.org/api/"
	assert.ErrorContains(t, cfg.Validate(), "token")

	cfg.Token = "tok"
	cfg.Forms.Medication = FormBinding{Form: "medications"}
	assert.ErrorContains(t, cfg.Validate(), "medication-list")

	cfg.MedListToken = "medtok"
	assert.NoError(t, cfg.Validate())
}
