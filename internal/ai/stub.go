package ai

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hostops-ai/hostops/internal/config"
	"github.com/hostops-ai/hostops/internal/domain"
)

const (
	deferralText = "Thank you for reaching out. I understand your concern and want to ensure this is handled properly. A member of our team will review this personally and get back to you within 24 hours."

	ackPrefix     = "Thank you for your message. "
	ackWithKB     = "Based on our property information: "
	ackSuffix     = "I'd be happy to help you with that. Let me know if you need any additional information."
	escalationMsg = "Contains sensitive keywords requiring manual review"
)

var (
	confidenceEscalated = decimal.NewFromFloat(0.5)
	confidenceNormal    = decimal.NewFromFloat(0.85)
)

// StubComposer is the deterministic rule-based generation backend.
type StubComposer struct{}

func NewStubComposer() *StubComposer {
	return &StubComposer{}
}

func (s *StubComposer) Model() string {
	return config.StubModelName
}

func (s *StubComposer) Compose(_ context.Context, draftCtx Context) (DraftFields, error) {
	escalated := false
	if last := draftCtx.Latest(); last != nil {
		escalated = IsEscalated(last.Body, draftCtx.EscalationKeywords)
	}

	if escalated {
		reason := escalationMsg
		return DraftFields{
			DraftText:        deferralText,
			Confidence:       confidenceEscalated,
			Escalated:        true,
			EscalationReason: &reason,
			SourcesUsed:      snippetIDs(draftCtx.Snippets),
		}, nil
	}

	text := ackPrefix
	if len(draftCtx.Snippets) > 0 {
		text += ackWithKB
	}
	text += ackSuffix

	return DraftFields{
		DraftText:   text,
		Confidence:  confidenceNormal,
		Escalated:   false,
		SourcesUsed: snippetIDs(draftCtx.Snippets),
	}, nil
}

// snippetIDs maps retrieved snippets to their document identifiers, so
// sources_used always stays a subset of what retrieval returned.
func snippetIDs(snippets []domain.Snippet) []string {
	ids := make([]string, 0, len(snippets))
	for _, s := range snippets {
		ids = append(ids, s.ID.String())
	}
	return ids
}
