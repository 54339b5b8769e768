package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Message is one role-tagged message of the history sent to the model.
// Roles follow the conversation module ("user" / "assistant").
type Message struct {
	Role    string
	Content string
}

// Reply carries the raw model output and, when the provider reports it,
// exact token usage. Callers must check HasUsage before trusting the counts.
type Reply struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	HasUsage         bool
}

// systemInstruction is constant across all calls. The model is told to emit
// prose followed by a ```json fenced block; weather is deliberately excluded
// from the JSON because the pipeline appends it after enrichment.
const systemInstruction = `You are an expert travel planner assistant.
When a user asks about a place, respond with:
1. A friendly markdown travel guide including:
    - Overview
    - Suggested itinerary
    - Attractions
    - Budget tips
    - Hotel and restaurant recommendations
2. A structured JSON document inside a single ` + "```json" + ` fenced block with the keys:
    destination, overview, itinerary, attractions, budget, hotels, restaurants
DO NOT include weather info in the JSON — that will be added separately.
If the user gives trip details (people, days), ask for missing info politely if needed.
Always be friendly and follow previous trip context if no new destination is mentioned.
If the user says thanks, respond in a friendly manner saying you are always here to help.
Do not answer questions that are not related to trips and planning; give a polite reply for not answering.`

// GeminiClient drives multi-turn chats against Google's Gemini models.
type GeminiClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewGeminiClient initializes a Gemini client for the given model.
// apiKey should be provided from environment variables.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}

	// Creative prose with a stable JSON tail.
	model.SetTemperature(0.7)

	return &GeminiClient{client: client, model: model, modelName: modelName}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClient) Close() {
	c.client.Close()
}

// ModelName returns the configured model identifier, as recorded in usage rows.
func (c *GeminiClient) ModelName() string {
	return c.modelName
}

// Chat sends userInput as the next turn of a chat whose prior turns are
// history, and returns the raw reply text plus provider-reported usage.
func (c *GeminiClient) Chat(ctx context.Context, history []Message, userInput string) (Reply, error) {
	cs := c.model.StartChat()
	cs.History = make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(userInput))
	if err != nil {
		return Reply{}, fmt.Errorf("gemini: send message: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Reply{}, fmt.Errorf("gemini: API returned empty candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return Reply{}, fmt.Errorf("gemini: API returned empty text parts")
	}

	reply := Reply{Text: b.String()}
	if u := resp.UsageMetadata; u != nil {
		reply.PromptTokens = int(u.PromptTokenCount)
		reply.CompletionTokens = int(u.CandidatesTokenCount)
		reply.HasUsage = true
	}
	return reply, nil
}
