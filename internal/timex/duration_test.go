package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON_String(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, d.Duration)
}

func TestDuration_UnmarshalJSON_Nanoseconds(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`5000000000`), &d))
	assert.Equal(t, 5*time.Second, d.Duration)
}

func TestDuration_UnmarshalJSON_InvalidString(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_UnmarshalJSON_InvalidType(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &d))
}

func TestDuration_MarshalJSON_RoundTrip(t *testing.T) {
	in := Duration{Duration: 15 * time.Second}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"15s"`, string(b))

	var out Duration
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in.Duration, out.Duration)
}
