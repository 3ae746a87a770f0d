package renderer

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/joern1811/wachatview/internal/domain"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// RenderStats writes one row per participant.
func RenderStats(w io.Writer, stats []domain.ParticipantStats, loc domain.Locale) {
	table := newTable(w, []string{"Sender", "Messages", "Attachments", "First", "Last"})
	for _, s := range stats {
		table.Append([]string{
			s.Sender,
			strconv.Itoa(s.Messages),
			strconv.Itoa(s.Attachments),
			loc.FormatDate(s.First) + " " + loc.FormatTime(s.First),
			loc.FormatDate(s.Last) + " " + loc.FormatTime(s.Last),
		})
	}
	table.Render()
}

// RenderGallery writes the media items of every group, kind by kind.
func RenderGallery(w io.Writer, groups []domain.MediaGroup, loc domain.Locale) {
	table := newTable(w, []string{"Kind", "File", "Sender", "Date", "Location"})
	for _, g := range groups {
		for _, item := range g.Items {
			location := item.Location
			if location == "" {
				location = "(missing)"
			}
			table.Append([]string{
				string(g.Kind),
				item.Filename,
				item.Message.Sender,
				loc.FormatDate(item.Message.Timestamp),
				location,
			})
		}
	}
	table.Render()
}
