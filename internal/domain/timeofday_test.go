package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TimeOfDay
		wantErr  bool
	}{
		{"hours and minutes", "09:31", TimeOfDay{Hour: 9, Minute: 31}, false},
		{"with seconds", "23:45:12", TimeOfDay{Hour: 23, Minute: 45, Second: 12}, false},
		{"midnight", "00:00", TimeOfDay{}, false},
		{"surrounding whitespace", " 07:05 ", TimeOfDay{Hour: 7, Minute: 5}, false},
		{"hour out of range", "24:00", TimeOfDay{}, true},
		{"minute out of range", "10:60", TimeOfDay{}, true},
		{"not a time", "evening", TimeOfDay{}, true},
		{"empty", "", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05:00", TimeOfDay{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "23:59:59", TimeOfDay{Hour: 23, Minute: 59, Second: 59}.String())
}

func TestTimeOfDay_SQLRoundTrip(t *testing.T) {
	original := TimeOfDay{Hour: 21, Minute: 15, Second: 30}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned TimeOfDay
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	require.NoError(t, scanned.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeOfDay{Hour: 8}, scanned)

	assert.Error(t, scanned.Scan(42))
}

func TestTimeOfDay_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(TimeOfDay{Hour: 9, Minute: 31})
	require.NoError(t, err)
	assert.Equal(t, `"09:31:00"`, string(data))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"14:45"`), &decoded))
	assert.Equal(t, TimeOfDay{Hour: 14, Minute: 45}, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &decoded))
}
