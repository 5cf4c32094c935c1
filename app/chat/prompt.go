package chat

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/katechon/engine/app/event"
)

// BuildAnalysisPrompt renders an event into the analysis prompt sent
// on its behalf, equivalent to a user-submitted query.
func BuildAnalysisPrompt(ev event.Event) string {
	return fmt.Sprintf("Analyze this event:\n\nTitle: %s\nDescription: %s\nDate: %s\nSource: %s\n\nProvide a detailed Katechon analysis, assign a tier (0-9), and explain the pillar impacts.",
		ev.Title, ev.Description, ev.Date.Format("2006-01-02"), ev.Source)
}

var tierPattern = regexp.MustCompile(`(?i)\btier[:\s]+([0-9])\b`)

// ParseTier extracts a tier assignment from an analysis response.
// Recognizes forms like "Tier: 7", "tier 7" and "Tier 7/9".
func ParseTier(text string) (int, bool) {
	match := tierPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	tier, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return tier, true
}
