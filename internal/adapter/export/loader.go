package export

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joern1811/wachatview/internal/domain"
)

// ChatFileName is the document WhatsApp writes into every export.
const ChatFileName = "_chat.txt"

// Limit the chat document to 256 MB to avoid decompression bombs.
var maxChatSize int64 = 256 << 20

// Loader reads WhatsApp exports from a folder or a .zip archive. Media files
// are indexed by name only; their bytes are never read.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Load(ctx context.Context, exportPath string) (*domain.Export, error) {
	info, err := os.Stat(exportPath)
	if err != nil {
		return nil, fmt.Errorf("opening export %s: %w", exportPath, err)
	}

	switch {
	case info.IsDir():
		return loadDir(ctx, exportPath)
	case strings.EqualFold(filepath.Ext(exportPath), ".zip"):
		return loadZip(ctx, exportPath)
	default:
		return nil, fmt.Errorf("%s: %w", exportPath, domain.ErrUnsupportedExport)
	}
}

func loadDir(ctx context.Context, dir string) (*domain.Export, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading export dir: %w", err)
	}

	var names []string
	media := domain.MediaIndex{}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
		media[e.Name()] = filepath.Join(dir, e.Name())
	}

	chatName, err := findChatFile(names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	delete(media, chatName)

	f, err := os.Open(filepath.Join(dir, chatName))
	if err != nil {
		return nil, fmt.Errorf("opening chat file: %w", err)
	}
	defer f.Close()

	text, err := readChatText(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", chatName, err)
	}

	return &domain.Export{Source: dir, Text: text, Media: media}, nil
}

func loadZip(ctx context.Context, zipPath string) (*domain.Export, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("opening zip: %w", err)
	}
	defer r.Close()

	var names []string
	files := make(map[string]*zip.File)
	media := domain.MediaIndex{}
	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Skip directories and names escaping the archive root (zip slip)
		name := path.Clean(f.Name)
		if f.FileInfo().IsDir() || !fs.ValidPath(name) {
			continue
		}
		base := path.Base(name)
		if _, dup := files[base]; dup {
			continue
		}
		names = append(names, base)
		files[base] = f
		media[base] = zipPath + "#" + name
	}

	chatName, err := findChatFile(names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", zipPath, err)
	}
	delete(media, chatName)

	rc, err := files[chatName].Open()
	if err != nil {
		return nil, fmt.Errorf("opening chat file: %w", err)
	}
	defer rc.Close()

	text, err := readChatText(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", chatName, err)
	}

	return &domain.Export{Source: zipPath, Text: text, Media: media}, nil
}

// findChatFile prefers _chat.txt and falls back to a lone .txt file, which
// is what Android exports ("WhatsApp Chat with Bob.txt") contain.
func findChatFile(names []string) (string, error) {
	var txt []string
	for _, name := range names {
		if name == ChatFileName {
			return name, nil
		}
		if strings.HasSuffix(strings.ToLower(name), ".txt") {
			txt = append(txt, name)
		}
	}
	if len(txt) == 1 {
		return txt[0], nil
	}
	return "", fmt.Errorf("%s: %w", ChatFileName, domain.ErrChatNotFound)
}

// readChatText sniffs and decodes the chat document. UTF-16 exports carry a
// BOM; everything else is read as UTF-8.
func readChatText(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxChatSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(raw)) > maxChatSize {
		return "", fmt.Errorf("%w (limit %d bytes)", domain.ErrChatTooLarge, maxChatSize)
	}

	if !isText(mimetype.Detect(raw)) {
		return "", domain.ErrNotText
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("decoding chat text: %w", err)
	}
	return string(decoded), nil
}

func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
