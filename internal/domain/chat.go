package domain

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// Chat is the parse result of one export document.
type Chat struct {
	Messages     []Message
	Participants []string
}

// Filter selects messages. Zero values disable the corresponding check.
type Filter struct {
	From   *time.Time
	To     *time.Time
	Sender string
	Query  string
}

func (f Filter) IsZero() bool {
	return f.From == nil && f.To == nil && f.Sender == "" && strings.TrimSpace(f.Query) == ""
}

func (f Filter) Match(msg Message) bool {
	if f.From != nil && msg.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && msg.Timestamp.After(*f.To) {
		return false
	}
	if f.Sender != "" && msg.Sender != f.Sender {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		return strings.Contains(strings.ToLower(msg.Content), q) ||
			strings.Contains(strings.ToLower(msg.Sender), q)
	}
	return true
}

// Filter returns a new Chat containing only messages matching f.
// Participants are recomputed from the kept messages.
func (c *Chat) Filter(f Filter) *Chat {
	kept := lo.Filter(c.Messages, func(msg Message, _ int) bool {
		return f.Match(msg)
	})
	return &Chat{
		Messages:     kept,
		Participants: ParticipantsOf(kept),
	}
}

// ParticipantsOf returns the distinct senders of msgs in first-seen order.
func ParticipantsOf(msgs []Message) []string {
	return lo.Uniq(lo.Map(msgs, func(msg Message, _ int) string {
		return msg.Sender
	}))
}

// ParticipantStats summarises one sender's activity.
type ParticipantStats struct {
	Sender      string
	Messages    int
	Attachments int
	First       time.Time
	Last        time.Time
}

// Stats returns one entry per participant, in participant order.
func (c *Chat) Stats() []ParticipantStats {
	bySender := make(map[string]*ParticipantStats, len(c.Participants))
	order := make([]string, 0, len(c.Participants))

	for _, msg := range c.Messages {
		s, ok := bySender[msg.Sender]
		if !ok {
			s = &ParticipantStats{Sender: msg.Sender, First: msg.Timestamp}
			bySender[msg.Sender] = s
			order = append(order, msg.Sender)
		}
		s.Messages++
		s.Attachments += len(msg.Attachments)
		if msg.Timestamp.Before(s.First) {
			s.First = msg.Timestamp
		}
		if msg.Timestamp.After(s.Last) {
			s.Last = msg.Timestamp
		}
	}

	return lo.Map(order, func(sender string, _ int) ParticipantStats {
		return *bySender[sender]
	})
}
