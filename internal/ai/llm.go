package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"

	"github.com/hostops-ai/hostops/internal/config"
	"github.com/hostops-ai/hostops/internal/domain"
)

const systemPrompt = `You are a helpful property management assistant. Generate a professional reply to the most recent guest message. Be concise and friendly.
{{if .kbContext}}
Relevant property information:
{{.kbContext}}
{{end}}`

// LLMComposer drafts reply text with a language model while keeping
// the composer contract deterministic: escalation, confidence and
// sources_used are computed exactly as the rule-based backend does.
type LLMComposer struct {
	llm       llms.Model
	model     string
	maxTokens int
}

func NewLLMComposer(llm llms.Model, model string) *LLMComposer {
	return &LLMComposer{
		llm:       llm,
		model:     model,
		maxTokens: config.MaxPromptTokens,
	}
}

func (c *LLMComposer) Model() string {
	return c.model
}

func (c *LLMComposer) Compose(ctx context.Context, draftCtx Context) (DraftFields, error) {
	last := draftCtx.Latest()
	if last == nil {
		return DraftFields{}, fmt.Errorf("compose: empty message window")
	}

	// Escalated threads never reach the model; the deferral template is
	// part of the contract.
	if IsEscalated(last.Body, draftCtx.EscalationKeywords) {
		reason := escalationMsg
		return DraftFields{
			DraftText:        deferralText,
			Confidence:       confidenceEscalated,
			Escalated:        true,
			EscalationReason: &reason,
			SourcesUsed:      snippetIDs(draftCtx.Snippets),
		}, nil
	}

	sysTemplate := prompts.PromptTemplate{
		Template:       systemPrompt,
		TemplateFormat: prompts.TemplateFormatGoTemplate,
		InputVariables: []string{"kbContext"},
	}
	sys, err := sysTemplate.Format(map[string]any{
		"kbContext": formatSnippets(draftCtx.Snippets),
	})
	if err != nil {
		return DraftFields{}, fmt.Errorf("format system prompt: %w", err)
	}

	msgs := []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeSystem, sys)}
	for _, m := range c.capWindow(draftCtx.Messages, c.maxTokens-tokenCount(sys)) {
		role := llms.ChatMessageTypeHuman
		if m.Role == domain.RoleHost {
			role = llms.ChatMessageTypeAI
		}
		msgs = append(msgs, llms.TextParts(role, m.Body))
	}

	resp, err := c.llm.GenerateContent(ctx, msgs)
	if err != nil {
		return DraftFields{}, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return DraftFields{}, fmt.Errorf("generate content: no choices returned")
	}

	return DraftFields{
		DraftText:   strings.TrimSpace(resp.Choices[0].Content),
		Confidence:  confidenceNormal,
		Escalated:   false,
		SourcesUsed: snippetIDs(draftCtx.Snippets),
	}, nil
}

// capWindow drops the oldest messages until the window fits the token
// budget. The latest message always survives.
func (c *LLMComposer) capWindow(messages []Message, budget int) []Message {
	if len(messages) == 0 {
		return messages
	}
	total := 0
	start := len(messages)
	for i := len(messages) - 1; i >= 0; i-- {
		total += tokenCount(messages[i].Body) + 4
		if total > budget && start < len(messages) {
			break
		}
		start = i
	}
	return messages[start:]
}

func tokenCount(text string) int {
	encoder, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		slog.Error("create tiktoken encoder", "error", err)
		return len(text) / 4
	}
	return len(encoder.Encode(text, nil, nil))
}

func formatSnippets(snippets []domain.Snippet) string {
	if len(snippets) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range snippets {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.Content)
	}
	return b.String()
}
