package domain

import "time"

// DateGroup holds the messages of one calendar day.
type DateGroup struct {
	Label    string
	Date     time.Time
	Messages []Message
}

// GroupByDate buckets msgs by their calendar day label. Groups appear in the
// order their first message appears; members keep input order.
func GroupByDate(msgs []Message, loc Locale) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)

	for _, msg := range msgs {
		label := loc.FormatDate(msg.Timestamp)
		i, ok := index[label]
		if !ok {
			y, m, d := msg.Timestamp.Date()
			i = len(groups)
			index[label] = i
			groups = append(groups, DateGroup{
				Label: label,
				Date:  time.Date(y, m, d, 0, 0, 0, 0, msg.Timestamp.Location()),
			})
		}
		groups[i].Messages = append(groups[i].Messages, msg)
	}
	return groups
}
