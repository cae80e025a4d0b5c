// Package advisor wraps the hosted generative-AI boundary: a daily briefing
// built from today's attendance counts and a free-text assistant fed a
// roster/attendance context block. Calls are fire-and-forget; failures
// degrade to canned messages and are never propagated as errors.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	gai "github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"google.golang.org/genai"

	"whitelotus.com/wms/core"
	"whitelotus.com/wms/model"
	"whitelotus.com/wms/utils"
)

const (
	briefingUnavailable  = "AI Service is temporarily unavailable. Please check your connection."
	assistantUnavailable = "I am unable to connect to the White Lotus neural network right now."
)

// contextRecords caps how much attendance history goes into the assistant's
// context block.
const contextRecords = 50

var briefingModel = googlegenai.GoogleAIModelRef("gemini-2.5-flash", &genai.GenerateContentConfig{
	MaxOutputTokens: 500,
	Temperature:     genai.Ptr[float32](0.4),
	ThinkingConfig: &genai.ThinkingConfig{
		ThinkingBudget: genai.Ptr[int32](0),
	},
})

type Advisor struct {
	g *genkit.Genkit
}

// New wires up the Google AI plugin. When no key is configured anywhere it
// returns nil; a nil Advisor answers every call with the canned unavailable
// messages, so running without a key is fine.
func New(ctx context.Context, apiKey string) *Advisor {
	if apiKey == "" && os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		log.Print("no Gemini API key configured, AI features disabled")
		return nil
	}
	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{APIKey: apiKey}))
	return &Advisor{g: g}
}

// DailyBriefing asks for a 2-3 sentence executive summary of today's
// numbers. Returns a canned apology instead of an error on any failure.
func (a *Advisor) DailyBriefing(ctx context.Context, org string, snap core.Snapshot) string {
	if a == nil {
		return briefingUnavailable
	}
	todays := utils.Filter(snap.Attendance, func(r model.AttendanceRecord) bool { return r.Date == snap.Today })
	present := len(utils.Filter(todays, func(r model.AttendanceRecord) bool { return r.Status == model.AttendancePresent }))
	absent := len(utils.Filter(todays, func(r model.AttendanceRecord) bool { return r.Status == model.AttendanceAbsent }))
	total := len(snap.Workers)

	prompt := fmt.Sprintf(`Analyze the daily workforce stats for %q and provide an executive summary.

Stats for Today (%s):
- Total Workers: %d
- Present: %d
- Absent: %d
- Attendance Rate: %d%%

Instructions:
- Provide a professional, encouraging, or critical 2-3 sentence summary.
- Highlight if the attendance rate is excellent (>90%%) or needs attention (<70%%).
- Do not use markdown or bullet points, just a paragraph.`,
		org, snap.Today, total, present, absent, attendanceRate(present, total))

	resp, err := genkit.Generate(ctx, a.g,
		gai.WithModel(briefingModel),
		gai.WithPrompt(prompt),
	)
	if err != nil {
		log.Printf("briefing generation failed: %v", err)
		return briefingUnavailable
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return "Unable to generate daily briefing at this time."
}

// Ask answers a free-text admin question against an injected context block of
// the roster and recent attendance.
func (a *Advisor) Ask(ctx context.Context, message, org string, snap core.Snapshot) string {
	if a == nil {
		return assistantUnavailable
	}
	system := fmt.Sprintf(`You are the AI HR Assistant for %s.
Your goal is to help the administrator manage the workforce using the provided database context.

Guidelines:
- Use the provided 'DATABASE CONTEXT' to answer questions about specific workers or attendance trends.
- If the user asks to draft an email or announcement, use a professional corporate tone.
- Be concise and direct.
- If the information is not in the context, state that you don't have that record.
- Current Date: %s

%s`, org, snap.Today, contextBlock(snap))

	resp, err := genkit.Generate(ctx, a.g,
		gai.WithModel(briefingModel),
		gai.WithSystem(system),
		gai.WithPrompt(message),
	)
	if err != nil {
		log.Printf("assistant generation failed: %v", err)
		return assistantUnavailable
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return "I didn't understand that request."
}

// attendanceRate is a whole percentage, rounded to nearest.
func attendanceRate(present, total int) int {
	if total == 0 {
		return 0
	}
	return (present*100 + total/2) / total
}

func contextBlock(snap core.Snapshot) string {
	roster := utils.Map(snap.Workers, func(w model.Worker) string {
		return fmt.Sprintf("- %s (Role: %s, Status: %s)", w.Name, w.Role, w.Status)
	})

	recent := snap.Attendance
	if len(recent) > contextRecords {
		recent = recent[:contextRecords]
	}
	type logEntry struct {
		Worker  string `json:"worker"`
		Date    string `json:"date"`
		Status  string `json:"status"`
		CheckIn string `json:"check_in"`
	}
	entries := utils.Map(recent, func(r model.AttendanceRecord) logEntry {
		checkIn := "N/A"
		if r.CheckIn != "" {
			checkIn = utils.LocalClock(r.CheckIn)
		}
		return logEntry{Worker: r.WorkerName, Date: r.Date, Status: string(r.Status), CheckIn: checkIn}
	})
	logs, _ := json.Marshal(entries)

	return fmt.Sprintf(`DATABASE CONTEXT:
1. WORKERS LIST:
%s

2. RECENT ATTENDANCE LOGS (Last %d entries):
%s`, strings.Join(roster, "\n"), contextRecords, logs)
}
