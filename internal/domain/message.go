package domain

import (
	"fmt"
	"time"
)

// MessageID identifies a message within one parsed export. Line is the
// zero-based index of the header line, so ids stay unique when several
// messages share a timestamp.
type MessageID struct {
	UnixMilli int64
	Line      int
}

func NewMessageID(ts time.Time, line int) MessageID {
	return MessageID{UnixMilli: ts.UnixMilli(), Line: line}
}

func (id MessageID) String() string {
	return fmt.Sprintf("%d-%d", id.UnixMilli, id.Line)
}

type Message struct {
	ID          MessageID
	Timestamp   time.Time // wall clock of the export, no zone meaning
	Sender      string
	Content     string
	Attachments []string // filenames, e.g. "00000012-PHOTO-2024-01-05-14-30-00.jpg"
}

// HasAttachments reports whether the message references any media file.
func (m Message) HasAttachments() bool {
	return len(m.Attachments) > 0
}
