package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tmc/langchaingo/llms"

	"github.com/hostops-ai/hostops/internal/domain"
)

type fakeModel struct {
	reply string
	err   error
	calls int
	got   []llms.MessageContent
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	f.got = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := f.GenerateContent(ctx, []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func llmContext(bodies ...string) Context {
	msgs := make([]Message, len(bodies))
	for i, b := range bodies {
		msgs[i] = Message{Role: domain.RoleGuest, Body: b, Timestamp: time.Now()}
	}
	return Context{Messages: msgs, EscalationKeywords: DefaultEscalationKeywords}
}

func TestLLMComposerEscalationSkipsModel(t *testing.T) {
	model := &fakeModel{reply: "should never be used"}
	c := NewLLMComposer(model, "gpt-4o-mini")

	fields, err := c.Compose(context.Background(), llmContext("Can I get a refund for my stay?"))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if model.calls != 0 {
		t.Error("escalated threads must not reach the model")
	}
	if !fields.Escalated {
		t.Error("refund message should be escalated")
	}
	if fields.DraftText != deferralText {
		t.Errorf("draft text = %q, want the deferral template", fields.DraftText)
	}
	if !fields.Confidence.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("confidence = %s, want 0.5", fields.Confidence)
	}
}

func TestLLMComposerReturnsModelText(t *testing.T) {
	model := &fakeModel{reply: "  Checkout is at 11am, see you then!  "}
	c := NewLLMComposer(model, "gpt-4o-mini")

	fields, err := c.Compose(context.Background(), llmContext("What time is checkout?"))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if model.calls != 1 {
		t.Fatalf("model called %d times, want 1", model.calls)
	}
	if fields.DraftText != "Checkout is at 11am, see you then!" {
		t.Errorf("draft text = %q, want trimmed model output", fields.DraftText)
	}
	if !fields.Confidence.Equal(decimal.NewFromFloat(0.85)) {
		t.Errorf("confidence = %s, want 0.85", fields.Confidence)
	}
	if fields.Escalated {
		t.Error("checkout question should not be escalated")
	}
	if len(model.got) < 2 {
		t.Fatalf("expected system prompt plus message window, got %d parts", len(model.got))
	}
	if model.got[0].Role != llms.ChatMessageTypeSystem {
		t.Errorf("first message role = %q, want system", model.got[0].Role)
	}
}

func TestLLMComposerEmptyWindow(t *testing.T) {
	c := NewLLMComposer(&fakeModel{}, "gpt-4o-mini")
	if _, err := c.Compose(context.Background(), Context{}); err == nil {
		t.Fatal("expected error for empty message window")
	}
}

func TestLLMComposerModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("rate limited")}
	c := NewLLMComposer(model, "gpt-4o-mini")

	if _, err := c.Compose(context.Background(), llmContext("What time is checkout?")); err == nil {
		t.Fatal("expected model error to surface")
	}
}

func TestCapWindowKeepsLatest(t *testing.T) {
	c := NewLLMComposer(&fakeModel{}, "gpt-4o-mini")
	msgs := []Message{
		{Body: "first message in the thread"},
		{Body: "second message in the thread"},
		{Body: "the latest guest question"},
	}

	got := c.capWindow(msgs, 1)
	if len(got) != 1 {
		t.Fatalf("expected only the latest message, got %d", len(got))
	}
	if got[0].Body != msgs[len(msgs)-1].Body {
		t.Errorf("kept %q, want the latest message", got[0].Body)
	}

	full := c.capWindow(msgs, 1<<20)
	if len(full) != len(msgs) {
		t.Errorf("large budget should keep all %d messages, got %d", len(msgs), len(full))
	}
}
