// README: Conversation orchestrator: destination resolution with intent fallbacks.
package conversation

import "context"

// Planner produces the travel-plan reply for a resolved destination.
// Implemented by the trip module; failures surface as its fallback reply,
// never as an error.
type Planner interface {
	GeneratePlan(ctx context.Context, state *State, userInput, destination string) string
}

// Fixed replies for the non-plan branches.
const (
	ReplyThanks   = "You're very welcome! 😊 I'm always here to help with your travel plans!"
	ReplyGreeting = "👋 Hello! I'm your friendly Travel Planner. Tell me where you'd like to go!"
	ReplyOffTopic = "I'm focused on helping with travel planning. Ask me about your next trip! 🌍"
	ReplyRephrase = "I didn't quite catch that. Tell me where you'd like to go, and I'll plan the trip!"
)

// Service owns the per-utterance turn loop.
type Service struct {
	planner Planner
}

func NewService(planner Planner) *Service {
	return &Service{planner: planner}
}

// HandleTurn resolves one user utterance against the session state and
// returns the assistant reply. Branches are mutually exclusive, first match
// wins: resolved destination, then thanks, greeting, off-topic, and finally
// an explicit ask-to-rephrase default. Carryover of the last destination
// applies only to utterances the classifier leaves unclassified, so a bare
// "thanks" after a planned trip does not trigger another plan.
// Both the user turn and the reply are appended to state before returning.
func (s *Service) HandleTurn(ctx context.Context, state *State, userInput string) string {
	destination := ExtractDestination(userInput)
	intent := Classify(userInput)
	if destination == "" && intent == IntentUnclassified {
		destination = state.LastDestination
	}

	var reply string
	switch {
	case destination != "":
		state.RememberDestination(destination)
		reply = s.planner.GeneratePlan(ctx, state, userInput, destination)
	case intent == IntentThanks:
		reply = ReplyThanks
	case intent == IntentGreeting:
		reply = ReplyGreeting
	case intent == IntentOffTopic:
		reply = ReplyOffTopic
	default:
		reply = ReplyRephrase
	}

	state.Append(RoleUser, userInput)
	state.Append(RoleAssistant, reply)
	return reply
}
