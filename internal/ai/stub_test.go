package ai

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hostops-ai/hostops/internal/domain"
)

func stubContext(body string, snippets ...domain.Snippet) Context {
	return Context{
		Messages: []Message{
			{Role: domain.RoleGuest, Body: body, Timestamp: time.Now()},
		},
		Snippets:           snippets,
		EscalationKeywords: DefaultEscalationKeywords,
	}
}

func TestStubComposerEscalated(t *testing.T) {
	c := NewStubComposer()
	snip := domain.Snippet{ID: uuid.New(), Content: "Refund policy: no refunds."}

	fields, err := c.Compose(context.Background(), stubContext("Can I get a refund for my stay?", snip))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if !fields.Escalated {
		t.Error("refund message should be escalated")
	}
	if !fields.Confidence.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("confidence = %s, want 0.5", fields.Confidence)
	}
	if fields.EscalationReason == nil || *fields.EscalationReason == "" {
		t.Error("escalated draft must carry a non-empty reason")
	}
	if fields.DraftText != deferralText {
		t.Errorf("draft text = %q, want the deferral template", fields.DraftText)
	}
	if len(fields.SourcesUsed) != 1 || fields.SourcesUsed[0] != snip.ID.String() {
		t.Errorf("sources_used = %v, want [%s]", fields.SourcesUsed, snip.ID)
	}
}

func TestStubComposerWithSnippets(t *testing.T) {
	c := NewStubComposer()
	snips := []domain.Snippet{
		{ID: uuid.New(), Content: "Checkout is at 11am."},
		{ID: uuid.New(), Content: "Late checkout on request."},
	}

	fields, err := c.Compose(context.Background(), stubContext("What time is checkout?", snips...))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if fields.Escalated {
		t.Error("checkout question should not be escalated")
	}
	if !fields.Confidence.Equal(decimal.NewFromFloat(0.85)) {
		t.Errorf("confidence = %s, want 0.85", fields.Confidence)
	}
	if fields.EscalationReason != nil {
		t.Errorf("unexpected escalation reason %q", *fields.EscalationReason)
	}
	if !strings.Contains(fields.DraftText, "property information") {
		t.Errorf("draft should acknowledge retrieved context, got %q", fields.DraftText)
	}
	if len(fields.SourcesUsed) != len(snips) {
		t.Fatalf("sources_used has %d entries, want %d", len(fields.SourcesUsed), len(snips))
	}
	for i, s := range snips {
		if fields.SourcesUsed[i] != s.ID.String() {
			t.Errorf("sources_used[%d] = %q, want %q", i, fields.SourcesUsed[i], s.ID)
		}
	}
}

func TestStubComposerWithoutSnippets(t *testing.T) {
	c := NewStubComposer()

	fields, err := c.Compose(context.Background(), stubContext("What time is checkout?"))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if strings.Contains(fields.DraftText, "property information") {
		t.Errorf("draft should not claim context it does not have, got %q", fields.DraftText)
	}
	if len(fields.SourcesUsed) != 0 {
		t.Errorf("sources_used = %v, want empty", fields.SourcesUsed)
	}
}

func TestStubComposerModel(t *testing.T) {
	if got := NewStubComposer().Model(); got != "rules-v1" {
		t.Errorf("Model() = %q, want rules-v1", got)
	}
}
