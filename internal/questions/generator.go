package questions

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/metrics"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/prompts"
)

// ChatCompleter is the language-generation capability consumed for
// question generation.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces the tailored question set for a session, invoked
// once when the candidate form completes. It never fails: malformed
// or late responses fall back to the deterministic bank so the
// interview cannot stall for lack of questions.
type Generator struct {
	client  ChatCompleter
	bank    *Bank
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewGenerator(client ChatCompleter, bank *Bank, timeout time.Duration, m *metrics.Metrics, logger *zap.Logger) *Generator {
	if bank == nil {
		bank = DefaultBank()
	}
	return &Generator{
		client:  client,
		bank:    bank,
		timeout: timeout,
		metrics: m,
		logger:  logger,
	}
}

// Generate returns exactly len(Shape) questions in the fixed
// difficulty shape, tailored to the candidate where possible.
func (g *Generator) Generate(ctx context.Context, techStack []string, experienceYears int, language string) []Question {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := prompts.BuildQuestionPrompt(techStack, experienceYears, language)

	response, err := g.client.Complete(ctx, prompt)
	if err != nil {
		g.logger.Warn("question generation call failed, using fallback bank",
			zap.Error(err),
			zap.Strings("tech_stack", techStack),
		)
		return g.fallback(techStack)
	}

	set, err := parseQuestions(response, techStack)
	if err != nil {
		g.logger.Warn("question generation response unparseable, using fallback bank",
			zap.Error(err),
			zap.Strings("tech_stack", techStack),
		)
		return g.fallback(techStack)
	}

	return set
}

func (g *Generator) fallback(techStack []string) []Question {
	if g.metrics != nil {
		g.metrics.IncrementFallbacksUsed()
	}
	return g.bank.Build(techStack)
}
