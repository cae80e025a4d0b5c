package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombineDateTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    string
		wantErr bool
	}{
		{
			name:  "Morning check-in",
			date:  "2024-01-10",
			clock: "09:00",
			want:  time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local).UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		},
		{
			name:  "Empty clock means absent field",
			date:  "2024-01-10",
			clock: "",
			want:  "",
		},
		{
			name:    "Malformed clock",
			date:    "2024-01-10",
			clock:   "9am",
			wantErr: true,
		},
		{
			name:    "Malformed date",
			date:    "10/01/2024",
			clock:   "09:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CombineDateTime(tt.date, tt.clock)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatISORoundTrip(t *testing.T) {
	orig := time.Date(2024, 1, 10, 9, 30, 15, 0, time.UTC)
	iso := FormatISO(orig)
	assert.Equal(t, "2024-01-10T09:30:15.000Z", iso)

	parsed, err := ParseISO(iso)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.True(t, orig.Equal(*parsed))
}

func TestLocalClock(t *testing.T) {
	in := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)
	assert.Equal(t, "09:00:00", LocalClock(FormatISO(in)))
	assert.Equal(t, "", LocalClock(""))
	assert.Equal(t, "", LocalClock("garbage"))
}

func TestDateOf(t *testing.T) {
	assert.Equal(t, "2024-01-10", DateOf(time.Date(2024, 1, 10, 23, 59, 0, 0, time.Local)))
}
