package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"whitelotus.com/wms/core"
	"whitelotus.com/wms/model"
)

func TestNewWithoutKeyIsDisabled(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	a := New(context.Background(), "")
	if a != nil {
		t.Fatal("expected a disabled advisor when no key is configured")
	}

	snap := core.Snapshot{Today: "2024-01-10"}
	assert.Equal(t, briefingUnavailable, a.DailyBriefing(context.Background(), "White Lotus Corp", snap))
	assert.Equal(t, assistantUnavailable, a.Ask(context.Background(), "who is absent?", "White Lotus Corp", snap))
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name           string
		present, total int
		want           int
	}{
		{"no workers", 0, 0, 0},
		{"all present", 4, 4, 100},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"half rounds up", 1, 2, 50},
		{"none present", 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attendanceRate(tt.present, tt.total))
		})
	}
}

func TestContextBlock(t *testing.T) {
	snap := core.Snapshot{
		Today: "2024-01-10",
		Workers: []model.Worker{
			{Name: "Tanya McQuoid", Role: "General Manager", Status: model.WorkerActive},
		},
		Attendance: []model.AttendanceRecord{
			{WorkerName: "Tanya McQuoid", Date: "2024-01-10", Status: model.AttendancePresent},
		},
	}

	block := contextBlock(snap)
	if !strings.Contains(block, "Tanya McQuoid (Role: General Manager") {
		t.Fatalf("roster line missing from context block:\n%s", block)
	}
	assert.Contains(t, block, `"status":"PRESENT"`)
	assert.Contains(t, block, `"check_in":"N/A"`)
}
