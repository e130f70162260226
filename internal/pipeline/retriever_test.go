package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/domain"
)

type fakeSearcher struct {
	workspaceDocs []domain.Snippet
	workspaceErr  error
	wsMatches     []domain.Snippet
	wsErr         error
	propMatches   []domain.Snippet
	propErr       error

	gotWorkspaceLimit int
	gotPropertyLimit  int
	gotFallbackLimit  int
	propertyQueried   bool
}

func (f *fakeSearcher) WorkspaceDocuments(_ context.Context, _ uuid.UUID, limit int) ([]domain.Snippet, error) {
	f.gotFallbackLimit = limit
	return f.workspaceDocs, f.workspaceErr
}

func (f *fakeSearcher) SearchWorkspaceDocuments(_ context.Context, _ uuid.UUID, _ []string, limit int) ([]domain.Snippet, error) {
	f.gotWorkspaceLimit = limit
	return f.wsMatches, f.wsErr
}

func (f *fakeSearcher) SearchPropertyDocuments(_ context.Context, _, _ uuid.UUID, _ []string, limit int) ([]domain.Snippet, error) {
	f.propertyQueried = true
	f.gotPropertyLimit = limit
	return f.propMatches, f.propErr
}

func snippet(content string) domain.Snippet {
	return domain.Snippet{ID: uuid.New(), Content: content}
}

func TestRetrieveWithoutKeywords(t *testing.T) {
	kb := &fakeSearcher{
		workspaceDocs: []domain.Snippet{snippet("house rules"), snippet("wifi"), snippet("parking")},
	}
	r := NewRetriever(kb, RetrieverConfig{})
	propID := uuid.New()

	got := r.Retrieve(context.Background(), uuid.New(), &propID, nil)

	if len(got) != 3 {
		t.Fatalf("expected 3 snippets, got %d", len(got))
	}
	if kb.gotFallbackLimit != 3 {
		t.Errorf("expected fallback limit 3, got %d", kb.gotFallbackLimit)
	}
	// Property scope is ignored entirely when there are no keywords.
	if kb.propertyQueried {
		t.Error("property scope should not be queried without keywords")
	}
}

func TestRetrieveMergesWorkspaceFirst(t *testing.T) {
	ws1, ws2 := snippet("ws one"), snippet("ws two")
	prop1, prop2 := snippet("prop one"), snippet("prop two")
	kb := &fakeSearcher{
		wsMatches:   []domain.Snippet{ws1, ws2},
		propMatches: []domain.Snippet{prop1, prop2},
	}
	r := NewRetriever(kb, RetrieverConfig{})
	propID := uuid.New()

	got := r.Retrieve(context.Background(), uuid.New(), &propID, []string{"checkout"})

	want := []string{ws1.Content, ws2.Content, prop1.Content, prop2.Content}
	if len(got) != len(want) {
		t.Fatalf("expected %d snippets, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.Content != want[i] {
			t.Errorf("position %d: got %q, want %q", i, s.Content, want[i])
		}
	}
	if kb.gotWorkspaceLimit != 2 || kb.gotPropertyLimit != 2 {
		t.Errorf("expected caps 2/2, got %d/%d", kb.gotWorkspaceLimit, kb.gotPropertyLimit)
	}
}

func TestRetrieveSkipsPropertyScopeWithoutProperty(t *testing.T) {
	kb := &fakeSearcher{wsMatches: []domain.Snippet{snippet("ws")}}
	r := NewRetriever(kb, RetrieverConfig{})

	got := r.Retrieve(context.Background(), uuid.New(), nil, []string{"checkout"})

	if len(got) != 1 {
		t.Fatalf("expected 1 snippet, got %d", len(got))
	}
	if kb.propertyQueried {
		t.Error("property scope should not be queried without a property")
	}
}

func TestRetrieveScopeFailureDegrades(t *testing.T) {
	tests := []struct {
		name string
		kb   *fakeSearcher
		want int
	}{
		{
			name: "workspace scope fails, property survives",
			kb: &fakeSearcher{
				wsErr:       errors.New("connection reset"),
				propMatches: []domain.Snippet{snippet("prop")},
			},
			want: 1,
		},
		{
			name: "property scope fails, workspace survives",
			kb: &fakeSearcher{
				wsMatches: []domain.Snippet{snippet("ws")},
				propErr:   errors.New("connection reset"),
			},
			want: 1,
		},
		{
			name: "both scopes fail",
			kb: &fakeSearcher{
				wsErr:   errors.New("connection reset"),
				propErr: errors.New("connection reset"),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRetriever(tt.kb, RetrieverConfig{})
			propID := uuid.New()
			got := r.Retrieve(context.Background(), uuid.New(), &propID, []string{"checkout"})
			if len(got) != tt.want {
				t.Errorf("expected %d snippets, got %d", tt.want, len(got))
			}
		})
	}
}

func TestRetrieveResultBounds(t *testing.T) {
	many := []domain.Snippet{snippet("a"), snippet("b")}
	kb := &fakeSearcher{wsMatches: many, propMatches: many, workspaceDocs: many}
	r := NewRetriever(kb, RetrieverConfig{})
	propID := uuid.New()

	if got := r.Retrieve(context.Background(), uuid.New(), &propID, []string{"kw"}); len(got) > 4 {
		t.Errorf("keyword retrieval returned %d snippets, cap is 4", len(got))
	}
	if got := r.Retrieve(context.Background(), uuid.New(), &propID, nil); len(got) > 3 {
		t.Errorf("fallback retrieval returned %d snippets, cap is 3", len(got))
	}
}
