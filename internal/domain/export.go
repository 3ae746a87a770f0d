package domain

// Export is a loaded chat export: the decoded chat document and an index of
// the media files shipped alongside it.
type Export struct {
	Source string // directory or archive path
	Text   string
	Media  MediaIndex
}

// MediaIndex maps a media filename to its location: a filesystem path for
// folder exports or "archive.zip#entry" for zip exports.
type MediaIndex map[string]string

func (m MediaIndex) Resolve(filename string) (string, bool) {
	loc, ok := m[filename]
	return loc, ok
}

// Missing returns the attachments referenced by chat that have no entry in
// the index, in message order.
func (m MediaIndex) Missing(chat *Chat) []string {
	var missing []string
	for _, item := range chat.Media() {
		if _, ok := m.Resolve(item.Filename); !ok {
			missing = append(missing, item.Filename)
		}
	}
	return missing
}
