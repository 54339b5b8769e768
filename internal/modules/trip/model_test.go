package trip

import "testing"

func TestPlanDocumentHasItinerary(t *testing.T) {
	tests := []struct {
		name string
		doc  PlanDocument
		want bool
	}{
		{"Missing key", PlanDocument{"overview": "x"}, false},
		{"Nil value", PlanDocument{"itinerary": nil}, false},
		{"Empty string", PlanDocument{"itinerary": ""}, false},
		{"Whitespace string", PlanDocument{"itinerary": "   "}, false},
		{"Non-empty string", PlanDocument{"itinerary": "Day1: arrive"}, true},
		{"Structured value", PlanDocument{"itinerary": []any{"Day1"}}, true},
		{"Object value", PlanDocument{"itinerary": map[string]any{"day1": "arrive"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.HasItinerary(); got != tt.want {
				t.Errorf("HasItinerary() = %v, want %v", got, tt.want)
			}
		})
	}
}
