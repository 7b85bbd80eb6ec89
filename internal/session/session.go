package session

// Step is the conversation position for one user. The machine only ever
// produces these three values; anything else read back from the store
// normalizes to StepGreeting.
type Step string

const (
	StepGreeting       Step = "greeting"
	StepAwaitingPrice  Step = "awaiting_price"
	StepAwaitingMemory Step = "awaiting_memory"
)

// Vendor filter values. Empty means no vendor chosen yet.
const (
	VendorNVIDIA = "nvidia"
	VendorAMD    = "amd"
)

// Session is the per-user conversation state. Created lazily on the first
// inbound message, mutated once per turn, reset to greeting after a
// completed search or an out-of-scope message.
type Session struct {
	UserID      string `json:"user_id"`
	Step        Step   `json:"step"`
	Greeted     bool   `json:"greeted"`
	Vendor      string `json:"vendor,omitempty"`
	MaxPrice    int    `json:"max_price,omitempty"`
	MinMemoryGB int    `json:"min_memory_gb,omitempty"`
}

func New(userID string) *Session {
	return &Session{UserID: userID, Step: StepGreeting}
}

// Reset returns the session to the greeting state, clearing search filters
// but keeping the greeted flag so the welcome message is not repeated.
func (s *Session) Reset() {
	s.Step = StepGreeting
	s.Vendor = ""
	s.MaxPrice = 0
	s.MinMemoryGB = 0
}

func (s *Session) normalize() {
	switch s.Step {
	case StepGreeting, StepAwaitingPrice, StepAwaitingMemory:
	default:
		s.Step = StepGreeting
	}
}
