package document

import (
	"database/sql"
	"fmt"
	"os"
	"sort"

	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/yaml.v3"
)

// Store holds the document corpus. It is populated once at startup and
// read-only afterwards, so it is safe for concurrent use without locking.
type Store struct {
	docs map[string]Document
	ids  []string
}

// NewStore builds a store from the given documents. Later documents with
// a duplicate id replace earlier ones.
func NewStore(docs []Document) *Store {
	s := &Store{docs: make(map[string]Document, len(docs))}
	for _, d := range docs {
		if _, seen := s.docs[d.ID]; !seen {
			s.ids = append(s.ids, d.ID)
		}
		s.docs[d.ID] = d
	}
	sort.Strings(s.ids)
	return s
}

// Get returns the document with the given id.
func (s *Store) Get(id string) (Document, bool) {
	d, ok := s.docs[id]
	return d, ok
}

// List returns all documents ordered by id.
func (s *Store) List() []Document {
	out := make([]Document, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.docs[id])
	}
	return out
}

// Len returns the number of documents in the store.
func (s *Store) Len() int {
	return len(s.docs)
}

type corpusFile struct {
	Documents []Document `yaml:"documents"`
}

// LoadYAML reads additional documents from a YAML corpus file.
func LoadYAML(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	var corpus corpusFile
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("parse corpus file: %w", err)
	}
	for _, d := range corpus.Documents {
		if d.ID == "" {
			return nil, fmt.Errorf("corpus file %s: document with empty id", path)
		}
		if len(d.Sections) == 0 {
			return nil, fmt.Errorf("corpus file %s: document %s has no sections", path, d.ID)
		}
	}
	return corpus.Documents, nil
}

// LoadSQLite reads documents from a SQLite corpus database with
// documents(id, title) and sections(id, document_id, section, page, content)
// tables, as written by the ingestion tooling.
func LoadSQLite(path string) ([]Document, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open corpus db: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, title FROM documents ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Title); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	for i := range docs {
		sections, err := loadSections(db, docs[i].ID)
		if err != nil {
			return nil, err
		}
		docs[i].Sections = sections
	}
	return docs, nil
}

func loadSections(db *sql.DB, documentID string) ([]Section, error) {
	rows, err := db.Query(
		"SELECT id, section, page, content FROM sections WHERE document_id = ? ORDER BY page, section",
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query sections for %s: %w", documentID, err)
	}
	defer rows.Close()

	var sections []Section
	for rows.Next() {
		var s Section
		if err := rows.Scan(&s.ID, &s.Section, &s.Page, &s.Content); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}
