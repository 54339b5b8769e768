// README: Trip and usage records plus the structured plan document.
package trip

import "strings"

// PlanDocument is the machine-parseable travel plan extracted from the
// model's reply. The model supplies destination, overview, itinerary,
// attractions, budget, hotels and restaurants; the weather key is set by
// this system only. Value shapes are model-determined (string or nested
// document), so the type stays schemaless.
type PlanDocument map[string]any

// HasItinerary reports whether the document carries real itinerary content.
// An empty or whitespace-only string does not count; a nested document does.
func (d PlanDocument) HasItinerary() bool {
	v, ok := d["itinerary"]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// TripRecord is the durable append-only record of one generated plan.
// Written only when the structured plan actually contains itinerary content.
type TripRecord struct {
	ID          int64
	Timestamp   string // second precision, text
	UserInput   string
	Destination string
	PlanJSON    string
}

// UsageRecord is the durable per-call token/cost accounting row.
type UsageRecord struct {
	ID               int64
	Timestamp        string // millisecond precision, text
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	CostUSD          float64
}

const (
	tripTimestampLayout  = "2006-01-02 15:04:05"
	usageTimestampLayout = "2006-01-02T15:04:05.000"
)
