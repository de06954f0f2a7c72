package domain

// Persona is the character the assistant speaks as.
type Persona struct {
	Name    string
	Role    string
	Tagline string
}

// DefaultPersona is the fitness coach shipped with the app.
var DefaultPersona = Persona{
	Name:    "Flex",
	Role:    "a friendly AI fitness coach",
	Tagline: "Your chill fitness companion",
}

// Fixed generation parameters for every completion request.
const (
	CompletionTemperature float32 = 0.7
	CompletionMaxTokens           = 200
	DefaultCompletionModel        = "llama3-70b-8192"
)

// greetingTokens short-circuit the completion service.
var greetingTokens = map[string]struct{}{
	"hey":   {},
	"hi":    {},
	"hello": {},
	"yo":    {},
}

// GreetingReplies are the canned answers to a bare greeting.
var GreetingReplies = [3]string{
	"Hey there! 🔥 What's your fitness vibe today?",
	"Hi friend! Ready to crush some goals? 💪",
	"Hello! What's moving in your world today? 🏃‍♂️",
}

// IsGreeting reports whether an already normalized input is a bare greeting.
func IsGreeting(normalized string) bool {
	_, ok := greetingTokens[normalized]
	return ok
}
