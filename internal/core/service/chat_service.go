package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flexfit/fitness-buddy/internal/core/domain"
	"github.com/flexfit/fitness-buddy/internal/core/ports"
	"github.com/flexfit/fitness-buddy/internal/pkg/metrics"
)

const promptTemplate = `Act as %s, %s. Reply to:
"%s"

Rules:
1. Start with 1 warm sentence (max 10 words)
2. Give 2-3 tips with CLEAR line breaks between them
3. End with 1 open question
4. Never use bullet points or markdown
5. Max 3 sentences per tip
6. Use 1-2 emojis total
`

// ChatService answers chat messages as the configured persona.
type ChatService struct {
	client  ports.CompletionClient
	persona domain.Persona
	model   string
	pick    func(n int) int
	log     zerolog.Logger
}

func NewChatService(client ports.CompletionClient, persona domain.Persona, model string, log zerolog.Logger) *ChatService {
	if model == "" {
		model = domain.DefaultCompletionModel
	}
	return &ChatService{
		client:  client,
		persona: persona,
		model:   model,
		pick:    rand.Intn,
		log:     log,
	}
}

// BuildPrompt renders the instruction prompt around the user's raw input.
func BuildPrompt(persona domain.Persona, input string) string {
	return fmt.Sprintf(promptTemplate, persona.Name, persona.Role, input)
}

// GenerateResponse returns a canned reply for bare greetings and otherwise
// relays a templated prompt to the completion service. Upstream failures are
// returned wrapped in domain.ErrUpstream and never retried.
func (s *ChatService) GenerateResponse(ctx context.Context, input string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if domain.IsGreeting(normalized) {
		metrics.AsksTotal.WithLabelValues("greeting").Inc()
		return domain.GreetingReplies[s.pick(len(domain.GreetingReplies))], nil
	}

	metrics.AsksTotal.WithLabelValues("completion").Inc()
	start := time.Now()
	text, err := s.client.Complete(ctx, ports.CompletionRequest{
		Model:       s.model,
		Prompt:      BuildPrompt(s.persona, input),
		Temperature: domain.CompletionTemperature,
		MaxTokens:   domain.CompletionMaxTokens,
	})
	metrics.CompletionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if !errors.Is(err, domain.ErrUpstream) {
			err = fmt.Errorf("%w: %w", domain.ErrUpstream, err)
		}
		metrics.CompletionErrorsTotal.Inc()
		s.log.Error().Err(err).Str("model", s.model).Msg("completion failed")
		return "", fmt.Errorf("generate response: %w", err)
	}

	s.log.Debug().Str("model", s.model).Int("chars", len(text)).Msg("completion received")
	return text, nil
}
