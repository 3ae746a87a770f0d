package export

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/joern1811/wachatview/internal/domain"
)

const chatText = "[05/01/2024, 14:30:00] Alice: Hello\n[05/01/2024, 14:31:00] Bob: <attached: 00000001-PHOTO-2024-01-05.jpg>\n"

func writeFiles(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}
}

func writeZip(t *testing.T, files map[string][]byte) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "WhatsApp Chat - Alice.zip")
	f, err := os.Create(zipPath)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, data := range files {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return zipPath
}

func TestLoader_Dir(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{
		ChatFileName:                     []byte(chatText),
		"00000001-PHOTO-2024-01-05.jpg":  {0xFF, 0xD8, 0xFF},
		"00000002-AUDIO-2024-01-05.opus": []byte("OggS"),
	})
	req.NoError(os.Mkdir(filepath.Join(dir, "nested"), 0o750))

	exp, err := NewLoader().Load(context.Background(), dir)

	req.NoError(err)
	req.Equal(dir, exp.Source)
	req.Equal(chatText, exp.Text)
	req.Len(exp.Media, 2)
	loc, ok := exp.Media.Resolve("00000001-PHOTO-2024-01-05.jpg")
	req.True(ok)
	req.Equal(filepath.Join(dir, "00000001-PHOTO-2024-01-05.jpg"), loc)
	_, ok = exp.Media.Resolve(ChatFileName)
	req.False(ok)
}

func TestLoader_Zip(t *testing.T) {
	req := require.New(t)
	zipPath := writeZip(t, map[string][]byte{
		"export/" + ChatFileName:               []byte(chatText),
		"export/00000001-PHOTO-2024-01-05.jpg": {0xFF, 0xD8, 0xFF},
	})

	exp, err := NewLoader().Load(context.Background(), zipPath)

	req.NoError(err)
	req.Equal(chatText, exp.Text)
	req.Equal(domain.MediaIndex{
		"00000001-PHOTO-2024-01-05.jpg": zipPath + "#export/00000001-PHOTO-2024-01-05.jpg",
	}, exp.Media)
}

func TestLoader_FallsBackToSingleTxt(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{"WhatsApp Chat with Bob.txt": []byte(chatText)})

	exp, err := NewLoader().Load(context.Background(), dir)

	req.NoError(err)
	req.Equal(chatText, exp.Text)
	req.Empty(exp.Media)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		description string
		setup       func(t *testing.T) string
		wantErr     error
	}{
		{
			"Should report missing chat file",
			func(t *testing.T) string {
				dir := t.TempDir()
				writeFiles(t, dir, map[string][]byte{"photo.jpg": {0xFF, 0xD8, 0xFF}})
				return dir
			},
			domain.ErrChatNotFound,
		},
		{
			"Should report ambiguous txt files as missing chat file",
			func(t *testing.T) string {
				dir := t.TempDir()
				writeFiles(t, dir, map[string][]byte{"a.txt": []byte("a"), "b.txt": []byte("b")})
				return dir
			},
			domain.ErrChatNotFound,
		},
		{
			"Should report missing chat file in zip",
			func(t *testing.T) string {
				return writeZip(t, map[string][]byte{"photo.jpg": {0xFF, 0xD8, 0xFF}})
			},
			domain.ErrChatNotFound,
		},
		{
			"Should reject binary chat file",
			func(t *testing.T) string {
				dir := t.TempDir()
				png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
				writeFiles(t, dir, map[string][]byte{ChatFileName: png})
				return dir
			},
			domain.ErrNotText,
		},
		{
			"Should reject plain files",
			func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), ChatFileName)
				require.NoError(t, os.WriteFile(p, []byte(chatText), 0o600))
				return p
			},
			domain.ErrUnsupportedExport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, err := NewLoader().Load(context.Background(), tt.setup(t))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_DecodesUTF16(t *testing.T) {
	req := require.New(t)
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(chatText)
	req.NoError(err)
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{ChatFileName: []byte(encoded)})

	exp, err := NewLoader().Load(context.Background(), dir)

	req.NoError(err)
	req.Equal(chatText, exp.Text)
}

func TestLoader_StripsUTF8BOM(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{ChatFileName: append([]byte("\xEF\xBB\xBF"), chatText...)})

	exp, err := NewLoader().Load(context.Background(), dir)

	req.NoError(err)
	req.Equal(chatText, exp.Text)
}

func setMaxChatSize(t *testing.T, n int64) {
	t.Helper()
	prev := maxChatSize
	maxChatSize = n
	t.Cleanup(func() { maxChatSize = prev })
}

func TestLoader_ChatSizeLimit(t *testing.T) {
	size := int64(len(chatText))
	tests := []struct {
		description string
		limit       int64
		zipped      bool
		wantErr     error
	}{
		{"Should accept chat exactly at the limit", size, false, nil},
		{"Should reject chat one byte over the limit", size - 1, false, domain.ErrChatTooLarge},
		{"Should reject oversized chat in zip", size - 1, true, domain.ErrChatTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			setMaxChatSize(t, tt.limit)
			exportPath := t.TempDir()
			if tt.zipped {
				exportPath = writeZip(t, map[string][]byte{ChatFileName: []byte(chatText)})
			} else {
				writeFiles(t, exportPath, map[string][]byte{ChatFileName: []byte(chatText)})
			}

			exp, err := NewLoader().Load(context.Background(), exportPath)

			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				req.Nil(exp)
				return
			}
			req.NoError(err)
			req.Equal(chatText, exp.Text)
		})
	}
}

func TestLoader_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{ChatFileName: []byte(chatText)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader().Load(ctx, dir)

	require.ErrorIs(t, err, context.Canceled)
}
