package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDateTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2022-01-03T12:00:00", want: "2022-01-03T12:00:00"},
		{in: " 2022-01-03T12:00:00 ", want: "2022-01-03T12:00:00"},
		{in: "2022-01-03T12:00:00.250", want: "2022-01-03T12:00:00"},
		{in: "2022-01-03T12:00", want: "2022-01-03T12:00:00"},
		{in: "2022-01-03T12:00:00-08:00", wantErr: true},
		{in: "2022-01-03T12:00:00Z", wantErr: true},
		{in: "2022-01-03", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLocalDateTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestLocalDateTime_JSON(t *testing.T) {
	var date UCSBDate
	require.NoError(t, json.Unmarshal([]byte(`{"localDateTime":"2022-01-03T12:00:00"}`), &date))

	out, err := json.Marshal(date.LocalDateTime)
	require.NoError(t, err)
	assert.JSONEq(t, `"2022-01-03T12:00:00"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"localDateTime":"2022-01-03T12:00:00-08:00"}`), &date))
}
