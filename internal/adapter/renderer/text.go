package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joern1811/wachatview/internal/domain"
)

// TextRenderer renders a chat as plain text or markdown, one section per
// calendar day.
type TextRenderer struct {
	Markdown bool
	Locale   domain.Locale
}

func (r *TextRenderer) Render(w io.Writer, chat *domain.Chat, media domain.MediaResolver) error {
	for i, group := range domain.GroupByDate(chat.Messages, r.Locale) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, r.formatHeader(group.Label)); err != nil {
			return err
		}
		for j := range group.Messages {
			line := r.formatMessage(&group.Messages[j], media)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *TextRenderer) formatHeader(label string) string {
	if r.Markdown {
		return "## " + label + "\n"
	}
	return "--- " + label + " ---"
}

func (r *TextRenderer) formatMessage(msg *domain.Message, media domain.MediaResolver) string {
	ts := r.Locale.FormatTime(msg.Timestamp)

	parts := make([]string, 0, len(msg.Attachments)+1)
	if msg.Content != "" {
		parts = append(parts, msg.Content)
	}
	for _, name := range msg.Attachments {
		parts = append(parts, r.formatAttachment(name, media))
	}
	body := strings.Join(parts, " ")

	if r.Markdown {
		// Two trailing spaces keep continuation lines as hard breaks
		body = strings.ReplaceAll(body, "\n", "  \n")
		return fmt.Sprintf("**%s** _%s_: %s  ", msg.Sender, ts, body)
	}
	return fmt.Sprintf("[%s] %s: %s", ts, msg.Sender, body)
}

func (r *TextRenderer) formatAttachment(name string, media domain.MediaResolver) string {
	kind := domain.ClassifyAttachment(name)
	label := "[" + kindLabel(kind) + "]"

	loc, ok := "", false
	if media != nil {
		loc, ok = media.Resolve(name)
	}

	if !r.Markdown {
		return label + " " + name
	}
	if !ok {
		return label + " `" + name + "`"
	}
	if kind == domain.PhotoAttachment || kind == domain.StickerAttachment {
		return fmt.Sprintf("![%s](<%s>)", name, loc)
	}
	return fmt.Sprintf("%s [%s](<%s>)", label, name, loc)
}

func kindLabel(kind domain.AttachmentKind) string {
	switch kind {
	case domain.PhotoAttachment:
		return "Photo"
	case domain.VideoAttachment:
		return "Video"
	case domain.AudioAttachment:
		return "Audio"
	case domain.StickerAttachment:
		return "Sticker"
	default:
		return "Document"
	}
}
