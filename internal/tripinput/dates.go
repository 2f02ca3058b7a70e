package tripinput

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"2006/01/02",
}

// ParseDate parses a calendar date in one of the accepted layouts and
// returns midnight of that day in loc. A nil loc means time.Local.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: expected mm/dd/yyyy or yyyy-mm-dd", ErrInvalidDate)
}
