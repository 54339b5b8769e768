// README: Plan generator: model call, prose/JSON split, weather enrichment, persistence.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"voyago/internal/ai"
	"voyago/internal/logger"
	"voyago/internal/modules/conversation"
)

// FallbackReply is the only user-visible text for model-call or
// structured-parse failures. No partial reply is ever shown.
const FallbackReply = "Sorry, something went wrong while planning your trip."

// ErrMalformedPlan marks a structured block that was present but unparseable.
// Unlike weather, this is fatal for the turn: the itinerary gate needs a
// valid document and must not mistake garbage for an empty plan.
var ErrMalformedPlan = errors.New("malformed structured plan")

// planFence delimits the structured part of the model reply. Anchoring on
// the full fence rather than a bare "json" substring keeps ordinary prose
// that mentions JSON from triggering the parser.
const planFence = "```json"

// ModelClient is the generative-model boundary.
type ModelClient interface {
	Chat(ctx context.Context, history []ai.Message, userInput string) (ai.Reply, error)
	ModelName() string
}

// Forecaster renders a multi-day forecast as display text. It never fails;
// unavailability comes back as a static fallback string.
type Forecaster interface {
	Forecast(ctx context.Context, place string) string
}

// Recorder persists trip and usage rows.
type Recorder interface {
	SaveTrip(ctx context.Context, rec *TripRecord) error
	SaveUsage(ctx context.Context, rec *UsageRecord) error
}

// Service turns one resolved utterance into a travel-plan reply, recording
// usage on every model call and the trip itself when the plan is real.
type Service struct {
	model   ModelClient
	weather Forecaster
	store   Recorder
}

func NewService(model ModelClient, weather Forecaster, store Recorder) *Service {
	return &Service{model: model, weather: weather, store: store}
}

// GeneratePlan implements conversation.Planner. Failures are logged and
// collapsed into FallbackReply; persistence problems never surface at all.
func (s *Service) GeneratePlan(ctx context.Context, state *conversation.State, userInput, destination string) string {
	reply, err := s.generate(ctx, state, userInput, destination)
	if err != nil {
		logger.Log.WithError(err).WithField("destination", destination).Error("Plan generation failed")
		return FallbackReply
	}
	return reply
}

func (s *Service) generate(ctx context.Context, state *conversation.State, userInput, destination string) (string, error) {
	history := make([]ai.Message, 0, len(state.Turns))
	for _, t := range state.Turns {
		history = append(history, ai.Message{Role: string(t.Role), Content: t.Content})
	}

	reply, err := s.model.Chat(ctx, history, userInput)
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}

	// Usage is recorded as soon as the model returns, no matter what the
	// parse or the itinerary gate decide afterwards.
	promptTokens, completionTokens := reply.PromptTokens, reply.CompletionTokens
	if !reply.HasUsage {
		promptTokens, completionTokens = approximateTokens(history, userInput, reply.Text)
	}
	s.recordUsage(ctx, promptTokens, completionTokens)

	prose, payload := splitReply(reply.Text)
	doc := PlanDocument{}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedPlan, err)
		}
	}

	if doc.HasItinerary() && destination != "" {
		forecast := s.weather.Forecast(ctx, destination)
		prose += fmt.Sprintf("\n\n🌦 *Weather Forecast for %s (Next 5 days):*\n%s", destination, forecast)
		doc["weather"] = forecast
		doc["destination"] = destination
		s.recordTrip(ctx, userInput, destination, doc)
	}

	return prose, nil
}

// splitReply divides the raw model output at the first structured-data
// fence. Without a fence the whole reply is prose and the document is empty.
// A missing closing fence is tolerated; the remainder is taken as payload.
func splitReply(raw string) (prose, payload string) {
	idx := strings.Index(raw, planFence)
	if idx < 0 {
		return raw, ""
	}
	prose = strings.TrimRight(raw[:idx], " \t\n")
	rest := raw[idx+len(planFence):]
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return prose, strings.TrimSpace(rest)
}

// approximateTokens is the whitespace word-count fallback used when the
// provider reports no usage: prompt = all user-role turns sent (including
// the new utterance), completion = the raw reply.
func approximateTokens(history []ai.Message, userInput, replyText string) (prompt, completion int) {
	for _, m := range history {
		if m.Role == string(conversation.RoleUser) {
			prompt += len(strings.Fields(m.Content))
		}
	}
	prompt += len(strings.Fields(userInput))
	completion = len(strings.Fields(replyText))
	return prompt, completion
}

func (s *Service) recordUsage(ctx context.Context, promptTokens, completionTokens int) {
	rec := &UsageRecord{
		Timestamp:        time.Now().Format(usageTimestampLayout),
		Model:            s.model.ModelName(),
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		CostUSD:          CostUSD(promptTokens, completionTokens),
	}
	if err := s.store.SaveUsage(ctx, rec); err != nil {
		logger.Log.WithError(err).Error("Failed to store token cost")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"prompt_tokens":     promptTokens,
		"completion_tokens": completionTokens,
		"cost_usd":          rec.CostUSD,
	}).Info("Token cost stored")
}

func (s *Service) recordTrip(ctx context.Context, userInput, destination string, doc PlanDocument) {
	planJSON, err := json.Marshal(doc)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode trip plan")
		return
	}
	rec := &TripRecord{
		Timestamp:   time.Now().Format(tripTimestampLayout),
		UserInput:   userInput,
		Destination: destination,
		PlanJSON:    string(planJSON),
	}
	if err := s.store.SaveTrip(ctx, rec); err != nil {
		logger.Log.WithError(err).WithField("destination", destination).Error("Failed to store trip")
		return
	}
	logger.Log.WithField("destination", destination).Info("Trip stored")
}
