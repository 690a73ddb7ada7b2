package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scrapedocs"
	"github.com/google/uuid"
)

var _ scrapedocs.SectionWriter = (*SectionStore)(nil)

// Export is one stored run of ExtractDocs.
type Export struct {
	ID          string
	PackageURL  string
	ExtractedAt time.Time
	CreatedAt   time.Time
}

// StoredSection is a section row as read back from the database.
type StoredSection struct {
	ID          string
	ExportID    string
	Position    int
	Title       string
	URL         string
	Text        string
	ContentHash string

	// Error holds the fetch error message of an absent section.
	Error string
}

// Absent reports whether the section's page could not be fetched.
func (s *StoredSection) Absent() bool {
	return s.Error != ""
}

// SectionFilter selects sections of an export.
type SectionFilter struct {
	ExportID string
	Limit    int
	Offset   int
}

// SectionStore writes extracted sections to SQLite. Each Docs value
// written gets its own export row, created on its first section.
type SectionStore struct {
	db *DB

	mu      sync.Mutex
	exports map[*scrapedocs.Docs]string
}

// NewSectionStore creates a new SectionStore.
func NewSectionStore(db *DB) *SectionStore {
	return &SectionStore{db: db, exports: make(map[*scrapedocs.Docs]string)}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := xxhash.New()
	_, _ = b.WriteString(content)
	return hex.EncodeToString(b.Sum(nil))
}

// WriteSection stores the section at position together with its export.
func (s *SectionStore) WriteSection(ctx context.Context, docs *scrapedocs.Docs, position int) error {
	if position < 0 || position >= len(docs.Sections) {
		return scrapedocs.Errorf(scrapedocs.EINVALID, "section position %d out of range", position)
	}
	section := &docs.Sections[position]

	exportID, err := s.exportID(ctx, docs)
	if err != nil {
		return err
	}

	var errMsg, hash string
	if section.Absent() {
		errMsg = section.Err.Error()
	} else {
		hash = hashContent(section.Text)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sections (id, export_id, position, title, url, text, content_hash, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), exportID, position, section.Title, section.URL, section.Text, hash, errMsg)
	return err
}

// exportID returns the export row for docs, inserting it on first use.
func (s *SectionStore) exportID(ctx context.Context, docs *scrapedocs.Docs) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.exports[docs]; ok {
		return id, nil
	}

	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exports (id, package_url, extracted_at, created_at)
		VALUES (?, ?, ?, ?)
	`, id, docs.PackageURL, docs.ExtractedAt.UTC().Format(time.RFC3339), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}

	s.exports[docs] = id
	return id, nil
}

// LatestExport returns the most recent export of packageURL.
func (s *SectionStore) LatestExport(ctx context.Context, packageURL string) (*Export, error) {
	var e Export
	var extractedAt, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, package_url, extracted_at, created_at
		FROM exports
		WHERE package_url = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, packageURL).Scan(&e.ID, &e.PackageURL, &extractedAt, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, scrapedocs.Errorf(scrapedocs.ENOTFOUND, "no export for %s", packageURL)
	}
	if err != nil {
		return nil, err
	}

	if e.ExtractedAt, err = parseTime(extractedAt, "extracted_at"); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &e, nil
}

// FindSections returns the sections of an export in position order.
func (s *SectionStore) FindSections(ctx context.Context, filter SectionFilter) ([]*StoredSection, error) {
	if filter.ExportID == "" {
		return nil, scrapedocs.Errorf(scrapedocs.EINVALID, "export ID required")
	}

	var query strings.Builder
	query.WriteString(`
		SELECT id, export_id, position, title, url, text, content_hash, error
		FROM sections
		WHERE export_id = ?
		ORDER BY position`)
	args := []any{filter.ExportID}
	appendLimitOffset(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*StoredSection
	for rows.Next() {
		var sec StoredSection
		if err := rows.Scan(&sec.ID, &sec.ExportID, &sec.Position, &sec.Title, &sec.URL,
			&sec.Text, &sec.ContentHash, &sec.Error); err != nil {
			return nil, err
		}
		sections = append(sections, &sec)
	}
	return sections, rows.Err()
}
