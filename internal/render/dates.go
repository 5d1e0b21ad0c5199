package render

import (
	"fmt"
	"time"
)

var trMonths = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// FormatIssueDate formats an ISO issue date into a long localized form
// (day, full month name, year). English is used for the "en" and "global"
// language tags; everything else renders in Turkish. Unparseable input is
// returned verbatim so a malformed date degrades to visible raw text
// instead of aborting a render.
func FormatIssueDate(isoDate, language string) string {
	t, err := parseISODate(isoDate)
	if err != nil {
		return isoDate
	}
	switch language {
	case "en", "global":
		return t.Format("January 2, 2006")
	default:
		return fmt.Sprintf("%d %s %d", t.Day(), trMonths[t.Month()-1], t.Year())
	}
}

func parseISODate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
