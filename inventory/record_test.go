package inventory

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	rec := NewRecord("node1.garmin.com", "10.0.0.1", "staticuser")

	assert.Equal(t, "node1.garmin.com", rec.Name)
	assert.Equal(t, []string{"10.0.0.1"}, rec.AlternateNames)
	assert.False(t, rec.ClientAuthEnabled)
	assert.Equal(t, "staticuser", rec.RequestedBy)
}

func TestRecord_Merge(t *testing.T) {
	rec := NewRecord("p", "ip0", "u")

	rec.Merge("m1", "ip1")
	assert.Equal(t, []string{"m1", "ip0", "ip1"}, rec.AlternateNames)

	rec.Merge("m2", "ip2")
	assert.Equal(t, []string{"m1", "m2", "ip0", "ip1", "ip2"}, rec.AlternateNames)

	rec.Merge("m3", "ip3")
	assert.Equal(t, []string{"m1", "m2", "m3", "ip0", "ip1", "ip2", "ip3"}, rec.AlternateNames)
}

func TestRecord_MergeFromLengths(t *testing.T) {
	tests := []struct {
		start []string
		want  []string
	}{
		{[]string{"a"}, []string{"M", "a", "I"}},
		{[]string{"a", "b"}, []string{"M", "a", "b", "I"}},
		{[]string{"a", "b", "c"}, []string{"a", "M", "b", "c", "I"}},
		{[]string{"a", "b", "c", "d"}, []string{"a", "M", "b", "c", "d", "I"}},
		{[]string{"a", "b", "c", "d", "e"}, []string{"a", "b", "M", "c", "d", "e", "I"}},
	}

	for _, tt := range tests {
		rec := &Record{AlternateNames: append([]string(nil), tt.start...)}
		rec.Merge("M", "I")
		assert.Equal(t, tt.want, rec.AlternateNames, "start %v", tt.start)
	}
}

func TestRecord_JSONRoundTrip(t *testing.T) {
	rec := NewRecord("node1.garmin.com", "10.0.0.1", "staticuser")
	rec.Merge("node1-a", "10.0.0.2")
	rec.Merge("node1-b", "10.0.0.3")

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "node1.garmin.com",
		"alternateNames": ["node1-a", "node1-b", "10.0.0.1", "10.0.0.2", "10.0.0.3"],
		"clientAuthEnabled": false,
		"requestedBy": "staticuser"
	}`, string(data))

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *rec, back)
}

func TestRecord_YAMLRoundTrip(t *testing.T) {
	rec := NewRecord("node2.garmin.com", "10.0.0.5", "staticuser")

	data, err := yaml.Marshal(rec)
	require.NoError(t, err)

	var back Record
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, *rec, back)
}
