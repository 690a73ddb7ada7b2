package crawl

import (
	"fmt"

	"github.com/fwojciec/scrapedocs"
)

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// Summary describes the outcome of an extraction.
type Summary struct {
	Sections     int
	Unavailable  int
	TitlesFailed int
	Bytes        int
}

// Summarize counts extracted and absent sections and the size of the
// extracted text.
func Summarize(docs *scrapedocs.Docs) Summary {
	s := Summary{
		Sections:     len(docs.Sections),
		TitlesFailed: len(docs.TitleFailures),
	}
	for i := range docs.Sections {
		if docs.Sections[i].Absent() {
			s.Unavailable++
			continue
		}
		s.Bytes += len(docs.Sections[i].Text)
	}
	return s
}

// String formats the summary for display, e.g.
// "12 sections (1 unavailable, 3.2 KB)".
func (s Summary) String() string {
	out := fmt.Sprintf("%d sections (%d unavailable, %s)", s.Sections, s.Unavailable, FormatBytes(s.Bytes))
	if s.TitlesFailed > 0 {
		out += fmt.Sprintf(", %d titles failed", s.TitlesFailed)
	}
	return out
}
