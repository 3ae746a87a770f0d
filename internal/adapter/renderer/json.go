package renderer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/samber/lo"

	"github.com/joern1811/wachatview/internal/domain"
)

// JSONRenderer renders a chat as an indented JSON document grouped by day.
type JSONRenderer struct {
	Locale domain.Locale
}

type jsonChat struct {
	Participants []string  `json:"participants"`
	Days         []jsonDay `json:"days"`
}

type jsonDay struct {
	Date     string        `json:"date"`
	Label    string        `json:"label"`
	Messages []jsonMessage `json:"messages"`
}

type jsonMessage struct {
	ID          string           `json:"id"`
	Timestamp   string           `json:"timestamp"`
	Time        string           `json:"time"`
	Sender      string           `json:"sender"`
	Content     string           `json:"content"`
	Attachments []jsonAttachment `json:"attachments"`
}

type jsonAttachment struct {
	Name     string                `json:"name"`
	Kind     domain.AttachmentKind `json:"kind"`
	Location string                `json:"location,omitempty"`
}

// Timestamps carry no zone, so they are written without an offset.
const jsonTimestampLayout = "2006-01-02T15:04:05"

func (r *JSONRenderer) Render(w io.Writer, chat *domain.Chat, media domain.MediaResolver) error {
	out := jsonChat{
		Participants: chat.Participants,
		Days: lo.Map(domain.GroupByDate(chat.Messages, r.Locale), func(g domain.DateGroup, _ int) jsonDay {
			return jsonDay{
				Date:  g.Date.Format(time.DateOnly),
				Label: g.Label,
				Messages: lo.Map(g.Messages, func(msg domain.Message, _ int) jsonMessage {
					return r.message(msg, media)
				}),
			}
		}),
	}
	if out.Participants == nil {
		out.Participants = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (r *JSONRenderer) message(msg domain.Message, media domain.MediaResolver) jsonMessage {
	return jsonMessage{
		ID:        msg.ID.String(),
		Timestamp: msg.Timestamp.Format(jsonTimestampLayout),
		Time:      r.Locale.FormatTime(msg.Timestamp),
		Sender:    msg.Sender,
		Content:   msg.Content,
		Attachments: lo.Map(msg.Attachments, func(name string, _ int) jsonAttachment {
			a := jsonAttachment{Name: name, Kind: domain.ClassifyAttachment(name)}
			if media != nil {
				a.Location, _ = media.Resolve(name)
			}
			return a
		}),
	}
}
