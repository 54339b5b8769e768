// README: Conversation state: ordered turns plus destination carryover.
package conversation

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in the conversation history.
type Turn struct {
	Role    Role
	Content string
}

// SeedGreeting opens every new conversation.
const SeedGreeting = "👋 Hi! I'm your Travel Planner Bot. Tell me about your travel ideas!"

// State holds everything one chat session carries between utterances.
// It is owned by exactly one session and never shared.
type State struct {
	Turns []Turn
	// KnownDestinations preserves first-mention order for display; membership
	// is what matters for logic.
	KnownDestinations []string
	// LastDestination is the carryover fallback when extraction finds nothing.
	LastDestination string
}

func NewState() *State {
	return &State{
		Turns: []Turn{{Role: RoleAssistant, Content: SeedGreeting}},
	}
}

func (s *State) Append(role Role, content string) {
	s.Turns = append(s.Turns, Turn{Role: role, Content: content})
}

// RememberDestination records place as the current destination and adds it
// to the known set on first mention.
func (s *State) RememberDestination(place string) {
	s.LastDestination = place
	for _, d := range s.KnownDestinations {
		if d == place {
			return
		}
	}
	s.KnownDestinations = append(s.KnownDestinations, place)
}
