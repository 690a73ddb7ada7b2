// Package fs writes extracted documentation sections to the file system.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/scrapedocs"
)

var _ scrapedocs.SectionWriter = (*Writer)(nil)

// Writer writes sections as text files with YAML frontmatter.
//
// Files are written to baseDir/name.tmp and moved to baseDir/name on
// Commit, so a failed run never leaves a half-written output directory in
// place of a previous one.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a new Writer. name is the output directory name
// inside baseDir.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{baseDir: baseDir, name: name}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

// Dir returns the final output directory.
func (w *Writer) Dir() string {
	return filepath.Join(w.baseDir, w.name)
}

// SectionPath returns the file name for the section at position, e.g.
// "003-quickstart.md". The position prefix keeps discovery order and
// disambiguates titles with the same slug.
func SectionPath(title string, position int) string {
	slug := scrapedocs.Slug(title)
	if slug == "" {
		slug = "untitled"
	}
	return fmt.Sprintf("%03d-%s.md", position+1, slug)
}

// WriteSection writes the section at position. Absent sections are
// skipped.
func (w *Writer) WriteSection(ctx context.Context, docs *scrapedocs.Docs, position int) error {
	if position < 0 || position >= len(docs.Sections) {
		return scrapedocs.Errorf(scrapedocs.EINVALID, "section position %d out of range", position)
	}
	section := &docs.Sections[position]
	if section.Absent() {
		return nil
	}

	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}

	path := filepath.Join(w.tempDir(), SectionPath(section.Title, position))
	return os.WriteFile(path, []byte(FormatSection(docs, section)), 0644)
}

// FormatSection formats a section with YAML frontmatter. String values
// are double-quoted so titles containing ':' or '#' stay valid YAML.
func FormatSection(docs *scrapedocs.Docs, section *scrapedocs.Section) string {
	var b strings.Builder
	b.WriteString("---\n")
	writeField(&b, "source", strconv.Quote(section.URL))
	writeField(&b, "title", strconv.Quote(section.Title))
	writeField(&b, "package", strconv.Quote(docs.PackageURL))
	writeField(&b, "extracted", docs.ExtractedAt.Format("2006-01-02"))
	b.WriteString("---\n\n")
	b.WriteString(section.Text)
	b.WriteString("\n")
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

// Commit replaces the output directory with the written sections.
func (w *Writer) Commit() error {
	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(w.Dir()); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.Dir())
}

// Abort discards the written sections.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.tempDir())
}
