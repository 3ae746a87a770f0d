package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/joern1811/wachatview/internal/domain"
)

const ApplicationName = "wachatview"

// ChatService orchestrates the pipeline: load → parse → filter → render.
type ChatService struct {
	source domain.ExportSource
	parser domain.ChatParser
	logger *slog.Logger
}

func NewChatService(source domain.ExportSource, parser domain.ChatParser, logger *slog.Logger) *ChatService {
	return &ChatService{
		source: source,
		parser: parser,
		logger: logger,
	}
}

// Open loads the export at exportPath and returns the parsed chat narrowed
// by filter, along with the export it came from.
func (s *ChatService) Open(ctx context.Context, exportPath string, filter domain.Filter) (*domain.Chat, *domain.Export, error) {
	export, err := s.source.Load(ctx, exportPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading export: %w", err)
	}

	chat := s.parser.Parse(export.Text)
	s.logger.Debug("parsed chat",
		slog.String("export", export.Source),
		slog.Int("messages", len(chat.Messages)),
		slog.Int("participants", len(chat.Participants)),
		slog.Int("media_files", len(export.Media)))

	// Missing media is reported but never fatal
	for _, name := range export.Media.Missing(chat) {
		s.logger.Warn("attachment not found in export", slog.String("file", name))
	}

	if !filter.IsZero() {
		chat = chat.Filter(filter)
		s.logger.Debug("filtered chat", slog.Int("messages", len(chat.Messages)))
	}

	return chat, export, nil
}

// Transcript renders the filtered chat with renderer.
func (s *ChatService) Transcript(ctx context.Context, exportPath string, filter domain.Filter, renderer domain.ChatRenderer, w io.Writer) error {
	chat, export, err := s.Open(ctx, exportPath, filter)
	if err != nil {
		return err
	}

	if err := renderer.Render(w, chat, export.Media); err != nil {
		return fmt.Errorf("rendering chat: %w", err)
	}
	return nil
}

// Stats returns per-participant statistics of the filtered chat.
func (s *ChatService) Stats(ctx context.Context, exportPath string, filter domain.Filter) ([]domain.ParticipantStats, error) {
	chat, _, err := s.Open(ctx, exportPath, filter)
	if err != nil {
		return nil, err
	}
	return chat.Stats(), nil
}

// Gallery returns the media of the filtered chat grouped by kind, with each
// item's Location resolved against the export when the file is present.
func (s *ChatService) Gallery(ctx context.Context, exportPath string, filter domain.Filter) ([]domain.MediaGroup, error) {
	chat, export, err := s.Open(ctx, exportPath, filter)
	if err != nil {
		return nil, err
	}

	items := chat.Media()
	for i := range items {
		if loc, ok := export.Media.Resolve(items[i].Filename); ok {
			items[i].Location = loc
		}
	}
	return domain.GroupMedia(items), nil
}
