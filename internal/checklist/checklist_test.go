package checklist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemMarshalPlain(t *testing.T) {
	raw, err := json.Marshal(PlainItem("Incident Date and Time"))
	require.NoError(t, err)
	assert.Equal(t, `"Incident Date and Time"`, string(raw))
}

func TestItemMarshalStructured(t *testing.T) {
	raw, err := json.Marshal(StructuredItem("Soft copy of national ID", "Passport or PAN Card", ".jpeg (max 5 MB)"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"item":"Soft copy of national ID","description":"Passport or PAN Card","format":".jpeg (max 5 MB)"}`, string(raw))
}

func TestItemMarshalStructuredOmitsEmptyFormat(t *testing.T) {
	raw, err := json.Marshal(StructuredItem("Evidence", "screenshots, emails", ""))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "format")
}

func TestItemUnmarshalPlain(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`"Fraud amount"`), &item))
	assert.True(t, item.IsPlain())
	assert.Equal(t, "Fraud amount", item.Plain)
}

func TestItemUnmarshalStructured(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{"item":"Evidence","description":"all screenshots","format":"max 10 MB"}`), &item))
	assert.False(t, item.IsPlain())
	assert.Equal(t, "Evidence", item.Label)
	assert.Equal(t, "all screenshots", item.Description)
	assert.Equal(t, "max 10 MB", item.Format)
}

func TestItemUnmarshalRejectsOtherShapes(t *testing.T) {
	var item Item
	assert.Error(t, json.Unmarshal([]byte(`42`), &item))
	assert.Error(t, json.Unmarshal([]byte(`["a","b"]`), &item))
}

func TestChecklistJSONShape(t *testing.T) {
	c := Static("Financial Fraud")
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "title")
	assert.Contains(t, decoded, "mandatory")
	assert.Contains(t, decoded, "optional")
	assert.Contains(t, decoded, "financial")
	assert.Contains(t, decoded, "specific_tips")
}
