package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRecordDefaults(t *testing.T) {
	var e EntityRecord
	require.NoError(t, json.Unmarshal([]byte(`{}`), &e))

	assert.Equal(t, LicenseID(""), e.LicenseID)
	assert.Equal(t, "Unknown", e.Name)
	assert.Equal(t, "Unknown", e.Status)
	assert.Empty(t, e.StatusDate)
	assert.Empty(t, e.Street)
	assert.Empty(t, e.City)
	assert.Empty(t, e.County)
	assert.Empty(t, e.ServiceType)
}

func TestEntityRecordNullUsesDefault(t *testing.T) {
	var e EntityRecord
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"status":null,"license_id":null}`), &e))
	assert.Equal(t, "Unknown", e.Name)
	assert.Equal(t, "Unknown", e.Status)
	assert.Empty(t, e.LicenseID)
}

func TestEntityRecordKeepsExplicitEmpty(t *testing.T) {
	var e EntityRecord
	require.NoError(t, json.Unmarshal([]byte(`{"name":"","status":"Active"}`), &e))
	assert.Equal(t, "", e.Name)
	assert.Equal(t, "Active", e.Status)
}

func TestEntityRecordAllFields(t *testing.T) {
	in := `{"license_id":"1103","name":"Acme LLC","status":"Denied","status_date":"01/02/2024",
		"street":"12 Main St","city":"Duluth","county":"St. Louis","service_type":"Adult Day","extra":true}`
	var e EntityRecord
	require.NoError(t, json.Unmarshal([]byte(in), &e))

	assert.Equal(t, EntityRecord{
		LicenseID:   "1103",
		Name:        "Acme LLC",
		Status:      "Denied",
		StatusDate:  "01/02/2024",
		Street:      "12 Main St",
		City:        "Duluth",
		County:      "St. Louis",
		ServiceType: "Adult Day",
	}, e)
}

func TestLicenseIDNumber(t *testing.T) {
	var e EntityRecord
	require.NoError(t, json.Unmarshal([]byte(`{"license_id":1103920}`), &e))
	assert.Equal(t, "1103920", e.LicenseID.String())
}

func TestEntityRecordScalarFields(t *testing.T) {
	var e EntityRecord
	require.NoError(t, json.Unmarshal([]byte(`{"license_id":"1","name":1999,"status":"Active","city":55802,"county":-1.5e2}`), &e))
	assert.Equal(t, "1999", e.Name)
	assert.Equal(t, "55802", e.City)
	assert.Equal(t, "-1.5e2", e.County)
}

func TestEntityRecordOtherTypesUseDefaults(t *testing.T) {
	var e EntityRecord
	require.NoError(t, json.Unmarshal([]byte(`{"license_id":true,"name":["x"],"status":{"v":1},"street":false,"city":null}`), &e))
	assert.Equal(t, EntityRecord{Name: "Unknown", Status: "Unknown"}, e)
}

func TestEntityRecordKeysAreExact(t *testing.T) {
	var e EntityRecord
	require.NoError(t, json.Unmarshal([]byte(`{"license_id":"1","name":"Acme","Status":"Active","Street":"12 Main St"}`), &e))
	assert.Equal(t, "Unknown", e.Status)
	assert.Empty(t, e.Street)
}

func TestEntityRecordNullEntity(t *testing.T) {
	var entities []EntityRecord
	assert.Error(t, json.Unmarshal([]byte(`[null]`), &entities))
}

func TestRows(t *testing.T) {
	target := TargetRecord{LicenseID: "1", Name: "Acme LLC", Status: "Active", DeepLink: "https://x"}
	assert.Len(t, target.Row(), len(TargetHeader))
	assert.Equal(t, "https://x", target.Row()[7])

	ghost := GhostOfficeRecord{LicenseID: "1", Name: "Acme LLC", Status: "Active", Address: ", Duluth"}
	assert.Equal(t, []string{"1", "Acme LLC", "Active", ", Duluth"}, ghost.Row())
}
