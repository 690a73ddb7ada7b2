package scrapedocs

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// Section is one documentation page extracted from a package's site.
type Section struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`

	// Err is set when the page could not be fetched; Text is then empty
	// and the section counts as absent.
	Err error `json:"-"`
}

// Absent reports whether the section's text could not be extracted.
func (s *Section) Absent() bool {
	return s.Err != nil
}

// Docs holds the extracted sections of a documentation site in the order
// their titles were discovered.
type Docs struct {
	PackageURL  string
	Sections    []Section
	ExtractedAt time.Time

	// TitleFailures lists the discovered links whose title could not be
	// fetched; they have no section.
	TitleFailures []FetchFailure
}

// Map returns the sections keyed by title. Absent sections map to nil.
func (d *Docs) Map() map[string]*string {
	m := make(map[string]*string, len(d.Sections))
	for i := range d.Sections {
		s := &d.Sections[i]
		if s.Absent() {
			m[s.Title] = nil
			continue
		}
		text := s.Text
		m[s.Title] = &text
	}
	return m
}

// Titles returns the section titles in discovery order.
func (d *Docs) Titles() []string {
	titles := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		titles[i] = s.Title
	}
	return titles
}

// SectionWriter persists extracted sections.
type SectionWriter interface {
	WriteSection(ctx context.Context, docs *Docs, position int) error
}

// Slug creates a file-name-safe identifier from a section title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func Slug(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
