package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatIssueDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		language string
		want     string
	}{
		{name: "turkish", date: "2024-03-15", language: "tr", want: "15 Mart 2024"},
		{name: "default locale is turkish", date: "2024-03-15", language: "", want: "15 Mart 2024"},
		{name: "unknown locale falls back to turkish", date: "2024-03-15", language: "de", want: "15 Mart 2024"},
		{name: "english", date: "2024-03-15", language: "en", want: "March 15, 2024"},
		{name: "global uses english form", date: "2024-03-15", language: "global", want: "March 15, 2024"},
		{name: "turkish month names", date: "2023-08-01", language: "tr", want: "1 Ağustos 2023"},
		{name: "december", date: "2022-12-31", language: "tr", want: "31 Aralık 2022"},
		{name: "rfc3339 timestamp accepted", date: "2024-03-15T10:30:00Z", language: "tr", want: "15 Mart 2024"},
		{name: "unparseable input returned verbatim", date: "sometime in 2024", language: "tr", want: "sometime in 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatIssueDate(tt.date, tt.language))
		})
	}
}
