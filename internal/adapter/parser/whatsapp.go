package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joern1811/wachatview/internal/domain"
)

// WhatsAppParser parses the text of a WhatsApp chat export (_chat.txt).
//
// Supported header line:
//
//	[DD/MM/YYYY, HH:MM:SS] Sender: Text
//
// Any other line continues the message started by the last header.
type WhatsAppParser struct{}

// Direction marks (LRM, RLM, LRE, RLE, PDF, LRO, RLO) that exports scatter
// around names and attachment markers.
const bidiMarks = `\x{200E}\x{200F}\x{202A}-\x{202E}`

// RE2's \s is ASCII only. Exports also carry a BOM, NBSP (U+00A0) and
// narrow NBSP (U+202F) where a plain space is expected.
const spaces = `\s\p{Zs}\x{FEFF}`

var (
	headerRe = regexp.MustCompile(
		`^[` + spaces + bidiMarks + `]*` +
			`\[(\d{2})/(\d{2})/(\d{4}),[` + spaces + `](\d{2}):(\d{2}):(\d{2})\][` + spaces + `]` +
			`([^:]+):[` + spaces + `](.*)$`)

	// <attached: filename>, searched in the body after the header matched.
	attachedRe = regexp.MustCompile(`[` + bidiMarks + `]*<attached:[` + spaces + `]*([^>]+)>`)
)

func NewWhatsAppParser() *WhatsAppParser {
	return &WhatsAppParser{}
}

// Parse never fails: lines that are not headers are folded into the current
// message, or dropped when no message has started yet.
func (p *WhatsAppParser) Parse(text string) *domain.Chat {
	chat := &domain.Chat{
		Messages:     []domain.Message{},
		Participants: []string{},
	}
	seen := make(map[string]struct{})

	var current *domain.Message
	flush := func() {
		if current != nil {
			chat.Messages = append(chat.Messages, *current)
			current = nil
		}
	}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if msg, ok := parseHeaderLine(line, i); ok {
			flush()
			current = &msg
			if _, dup := seen[msg.Sender]; !dup {
				seen[msg.Sender] = struct{}{}
				chat.Participants = append(chat.Participants, msg.Sender)
			}
			continue
		}

		if current != nil && strings.TrimSpace(line) != "" {
			// Multiline: append to current message content
			current.Content += "\n" + line
		}
	}
	flush()

	return chat
}

func parseHeaderLine(line string, lineIndex int) (domain.Message, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return domain.Message{}, false
	}

	ts := headerTimestamp(m[1:7])
	content, attachments := splitAttachment(m[8])

	return domain.Message{
		ID:          domain.NewMessageID(ts, lineIndex),
		Timestamp:   ts,
		Sender:      m[7],
		Content:     content,
		Attachments: attachments,
	}, true
}

// headerTimestamp builds the timestamp from day, month, year, hour, minute
// and second. Out-of-range values roll over (31/02 becomes early March)
// instead of rejecting the line.
func headerTimestamp(fields []string) time.Time {
	var n [6]int
	for i, f := range fields {
		// The header pattern guarantees ASCII digits.
		n[i], _ = strconv.Atoi(f)
	}
	day, month, year := n[0], n[1], n[2]
	return time.Date(year, time.Month(month), day, n[3], n[4], n[5], 0, time.UTC)
}

// splitAttachment removes the first <attached: ...> marker from body and
// returns the trimmed remainder plus the referenced filename. Bodies without
// a marker are returned unchanged.
func splitAttachment(body string) (string, []string) {
	loc := attachedRe.FindStringSubmatchIndex(body)
	if loc == nil {
		return body, []string{}
	}

	filename := body[loc[2]:loc[3]]
	content := strings.TrimSpace(body[:loc[0]] + body[loc[1]:])
	return content, []string{filename}
}
