package domain

import (
	"context"
	"io"
)

//go:generate mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks

// ExportSource loads an export (folder or zip) from disk.
type ExportSource interface {
	Load(ctx context.Context, path string) (*Export, error)
}

// ChatParser turns decoded chat text into a Chat. It never fails.
type ChatParser interface {
	Parse(text string) *Chat
}

// ChatRenderer renders a Chat to an output writer. media resolves
// attachment filenames for display and may be nil.
type ChatRenderer interface {
	Render(w io.Writer, chat *Chat, media MediaResolver) error
}

// MediaResolver maps an attachment filename to a retrievable location.
type MediaResolver interface {
	Resolve(filename string) (string, bool)
}
