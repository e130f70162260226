// Package mail parses inbound email webhook fields: plus-addressed
// recipients carrying the workspace identifier, RFC 5322 senders, and
// HTML bodies.
package mail

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/hostops-ai/hostops/internal/domain"
)

// RecipientParser extracts workspace IDs from addresses of the form
// <prefix>+<workspace-uuid>@<domain>. The pattern is compiled once per
// prefix.
type RecipientParser struct {
	prefix string
	re     *regexp.Regexp
}

func NewRecipientParser(prefix string) *RecipientParser {
	return &RecipientParser{
		prefix: prefix,
		re:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(prefix) + `\+([a-f0-9-]+)@`),
	}
}

func (p *RecipientParser) WorkspaceID(to string) (uuid.UUID, error) {
	match := p.re.FindStringSubmatch(to)
	if match == nil {
		return uuid.Nil, domain.Invalid("invalid recipient email format, expected %s+<workspace-id>@domain", p.prefix)
	}
	id, err := uuid.Parse(match[1])
	if err != nil {
		return uuid.Nil, domain.Invalid("recipient does not carry a valid workspace id")
	}
	return id, nil
}

// ParseSender splits a `"Name <email>"` sender into display name and
// address, falling back to the raw value as a plain address.
func ParseSender(from string) (name, email string) {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return "", strings.TrimSpace(from)
	}
	return addr.Name, addr.Address
}
