// Package session tracks the set of open model documents shared by the TUI
// and the HTTP server. A session holds documents in opening order, opens each
// file at most once, and knows which documents carry unsaved edits.
package session

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
)

// TitleLimit caps the session title length in runes.
const TitleLimit = 64

// Document is one open model file.
type Document struct {
	id    string
	path  string
	model *ifc.Model
}

// ID is the document handle, derived from the file name and unique within
// the session.
func (d *Document) ID() string { return d.id }

// Path is the absolute model path.
func (d *Document) Path() string { return d.path }

// Name is the base file name.
func (d *Document) Name() string { return filepath.Base(d.path) }

// Model returns the open model.
func (d *Document) Model() *ifc.Model { return d.model }

// Modified reports whether the model has unsaved edits.
func (d *Document) Modified() bool { return d.model.Modified() }

// Save writes the model back to its path.
func (d *Document) Save() error { return d.model.Save() }

// Reload re-reads the file from disk, dropping unsaved edits.
func (d *Document) Reload() error {
	m, err := ifc.Open(d.path)
	if err != nil {
		return err
	}
	d.model = m
	return nil
}

// Session is a set of open documents. Safe for concurrent use.
type Session struct {
	mu   sync.RWMutex
	docs []*Document
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Open loads the model at path and adds it to the session. Opening a path
// that is already open returns the existing document.
func (s *Session) Open(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot resolve %s", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if d.path == abs {
			return d, nil
		}
	}

	m, err := ifc.Open(abs)
	if err != nil {
		return nil, err
	}

	d := &Document{id: s.newID(abs), path: abs, model: m}
	s.docs = append(s.docs, d)
	return d, nil
}

// newID derives a unique handle from the file stem. Callers hold s.mu.
func (s *Session) newID(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if base == "" {
		base = "model"
	}
	id := base
	for n := 2; s.lookup(id) != nil; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

func (s *Session) lookup(id string) *Document {
	for _, d := range s.docs {
		if d.id == id {
			return d
		}
	}
	return nil
}

// Get returns the document with the given handle.
func (s *Session) Get(id string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.lookup(id)
	return d, d != nil
}

// Documents returns the open documents in opening order.
func (s *Session) Documents() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Len is the number of open documents.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Close removes a document from the session. Unsaved edits are discarded.
func (s *Session) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.docs {
		if d.id == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrCodeModelNotFound, "no open model %q", id)
}

// CloseAll empties the session.
func (s *Session) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
}

// Modified reports whether any open document has unsaved edits.
func (s *Session) Modified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.docs {
		if d.Modified() {
			return true
		}
	}
	return false
}

// SaveAll saves every document with unsaved edits, stopping at the first
// failure.
func (s *Session) SaveAll() error {
	for _, d := range s.Documents() {
		if !d.Modified() {
			continue
		}
		if err := d.Save(); err != nil {
			return err
		}
	}
	return nil
}

// Title joins the open file names into a window or tab title, truncated to
// TitleLimit runes.
func (s *Session) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.docs))
	for i, d := range s.docs {
		names[i] = d.Name()
	}
	title := strings.Join(names, " — ")
	if runes := []rune(title); len(runes) > TitleLimit {
		title = string(runes[:TitleLimit])
	}
	return title
}
