package domain

import (
	"strings"

	"github.com/samber/lo"
)

type AttachmentKind string

const (
	PhotoAttachment    AttachmentKind = "photo"
	VideoAttachment    AttachmentKind = "video"
	AudioAttachment    AttachmentKind = "audio"
	StickerAttachment  AttachmentKind = "sticker"
	DocumentAttachment AttachmentKind = "document"
)

// AttachmentKinds lists every kind in gallery order.
var AttachmentKinds = []AttachmentKind{
	PhotoAttachment,
	VideoAttachment,
	AudioAttachment,
	StickerAttachment,
	DocumentAttachment,
}

// ClassifyAttachment maps a filename to its media kind. WhatsApp embeds the
// kind in exported names ("00000042-AUDIO-2024-01-05-14-30-00.opus"); that
// token wins over the extension, which is only a fallback.
func ClassifyAttachment(filename string) AttachmentKind {
	lower := strings.ToLower(filename)

	switch {
	case strings.Contains(lower, "-audio-"):
		return AudioAttachment
	case strings.Contains(lower, "-photo-"):
		return PhotoAttachment
	case strings.Contains(lower, "-video-") || strings.Contains(lower, "-gif-"):
		return VideoAttachment
	case strings.Contains(lower, "-sticker-"):
		return StickerAttachment
	}

	switch {
	case hasAnySuffix(lower, ".opus", ".mp3", ".m4a", ".wav"):
		return AudioAttachment
	case hasAnySuffix(lower, ".jpg", ".jpeg", ".png", ".gif"):
		return PhotoAttachment
	case hasAnySuffix(lower, ".mp4", ".mov", ".avi", ".webm"):
		return VideoAttachment
	case hasAnySuffix(lower, ".webp"):
		return StickerAttachment
	}

	return DocumentAttachment
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// MediaItem is one attachment together with the message referencing it.
type MediaItem struct {
	Filename string
	Kind     AttachmentKind
	Message  Message
	Location string // set by the caller once resolved against the export
}

// Media lists every attachment of the chat in message order.
func (c *Chat) Media() []MediaItem {
	var items []MediaItem
	for _, msg := range c.Messages {
		for _, name := range msg.Attachments {
			items = append(items, MediaItem{
				Filename: name,
				Kind:     ClassifyAttachment(name),
				Message:  msg,
			})
		}
	}
	return items
}

// MediaGroup holds the items of one kind.
type MediaGroup struct {
	Kind  AttachmentKind
	Items []MediaItem
}

// GroupMedia buckets items per kind in AttachmentKinds order. Kinds without
// items are omitted.
func GroupMedia(items []MediaItem) []MediaGroup {
	byKind := lo.GroupBy(items, func(item MediaItem) AttachmentKind {
		return item.Kind
	})

	var groups []MediaGroup
	for _, kind := range AttachmentKinds {
		if bucket := byKind[kind]; len(bucket) > 0 {
			groups = append(groups, MediaGroup{Kind: kind, Items: bucket})
		}
	}
	return groups
}
