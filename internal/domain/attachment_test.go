package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassifyAttachment(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     AttachmentKind
	}{
		// Naming convention
		{"Photo token", "IMG-20240101-WA0002-PHOTO-0001.jpg", PhotoAttachment},
		{"Sticker token with trailing dash", "00000007-STICKER-2024-01-05.webp", StickerAttachment},
		{"Audio token beats extension", "00000001-AUDIO-2024-01-05-14-30-00.jpg", AudioAttachment},
		{"Video token", "00000002-VIDEO-2024-01-05-14-30-00.mp4", VideoAttachment},
		{"GIF token is video", "00000003-GIF-2024-01-05-14-30-00.mp4", VideoAttachment},
		{"Lower case token", "00000004-photo-2024.bin", PhotoAttachment},

		// Extension fallback
		{"Opus", "AUD-20240101-WA0003.opus", AudioAttachment},
		{"MP3", "song.MP3", AudioAttachment},
		{"JPEG", "picture.jpeg", PhotoAttachment},
		{"GIF extension is photo", "funny.gif", PhotoAttachment},
		{"WebM", "clip.webm", VideoAttachment},
		{"WebP", "sticker.webp", StickerAttachment},

		// Fallback
		{"Unknown", "unknown.xyz", DocumentAttachment},
		{"PDF", "invoice.pdf", DocumentAttachment},
		{"Empty", "", DocumentAttachment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyAttachment(tt.filename))
		})
	}
}

// "STK-...-STICKER.webp" has no "-sticker-" token, so the .webp extension
// decides.
func TestClassifyAttachment_StickerByExtension(t *testing.T) {
	require.Equal(t, StickerAttachment, ClassifyAttachment("STK-20240101-WA0004-STICKER.webp"))
}

func TestChat_MediaAndGroupMedia(t *testing.T) {
	req := require.New(t)
	ts := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	chat := &Chat{Messages: []Message{
		{ID: NewMessageID(ts, 0), Timestamp: ts, Sender: "Alice", Attachments: []string{"a.opus"}},
		{ID: NewMessageID(ts, 1), Timestamp: ts, Sender: "Bob", Content: "no media"},
		{ID: NewMessageID(ts, 2), Timestamp: ts, Sender: "Bob", Attachments: []string{"b.jpg"}},
		{ID: NewMessageID(ts, 3), Timestamp: ts, Sender: "Alice", Attachments: []string{"c.png", "d.pdf"}},
	}}

	items := chat.Media()
	req.Len(items, 4)
	req.Equal("a.opus", items[0].Filename)
	req.Equal(AudioAttachment, items[0].Kind)
	req.Equal("Alice", items[0].Message.Sender)

	groups := GroupMedia(items)
	req.Len(groups, 3)
	req.Equal(PhotoAttachment, groups[0].Kind)
	req.Equal([]string{"b.jpg", "c.png"}, []string{groups[0].Items[0].Filename, groups[0].Items[1].Filename})
	req.Equal(AudioAttachment, groups[1].Kind)
	req.Equal(DocumentAttachment, groups[2].Kind)
}
