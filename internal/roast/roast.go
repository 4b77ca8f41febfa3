// Package roast produces the barista's one-line verdict on a finished run.
//
// The text comes from a remote model when a credential is configured. Any
// failure, including a missing credential, degrades to a fixed localized
// line; Roast never returns an error.
package roast

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a single roast request.
const DefaultTimeout = 10 * time.Second

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service produces roasts with localized fallbacks.
type Service struct {
	gen     Generator // nil when no credential is configured
	msgs    Messages
	timeout time.Duration
	logger  *log.Logger
}

// NewService creates a service. A nil generator always yields the
// missing-credential line; a nil logger discards failures.
func NewService(gen Generator, lang Lang, logger *log.Logger) *Service {
	return &Service{
		gen:     gen,
		msgs:    MessagesFor(lang),
		timeout: DefaultTimeout,
		logger:  logger,
	}
}

// SetTimeout overrides the per-request timeout.
func (s *Service) SetTimeout(d time.Duration) {
	s.timeout = d
}

// Messages returns the localized strings the service uses.
func (s *Service) Messages() Messages {
	return s.msgs
}

// Available reports whether a remote generator is configured.
func (s *Service) Available() bool {
	return s.gen != nil
}

// Roast returns a verdict for a run that ended with score and coffees.
func (s *Service) Roast(ctx context.Context, score, coffees int) string {
	if s.gen == nil {
		return s.msgs.MissingKey
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.gen.Generate(ctx, s.msgs.Prompt(score, coffees))
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("roast failed", "err", err, "score", score, "coffees", coffees)
		}
		return s.msgs.Failed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return s.msgs.Empty
	}
	return text
}
