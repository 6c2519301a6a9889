package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/username/assistant-bot/internal/addressbook"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const schemaVersion = 1

// Document is the on-disk representation of an address book
type Document struct {
	Version  int            `json:"version" yaml:"version"`
	Contacts []ContactEntry `json:"contacts" yaml:"contacts"`
}

// ContactEntry is a single persisted record
type ContactEntry struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

// FileStore loads and saves an address book as a JSON or YAML file
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a new file store. Files ending in .yaml or .yml are
// YAML, everything else is JSON.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Path returns the backing file path
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the address book. A missing file yields an empty book.
func (fs *FileStore) Load() (*addressbook.Book, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - will be created on first save
			fs.logger.Info("Address book not found, starting empty",
				zap.String("file", fs.path))
			return addressbook.NewBook(), nil
		}
		return nil, fmt.Errorf("failed to read address book: %w", err)
	}

	var doc Document
	if fs.isYAML() {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse address book: %w", err)
	}

	book, err := doc.Book()
	if err != nil {
		return nil, fmt.Errorf("invalid address book %s: %w", fs.path, err)
	}

	fs.logger.Info("Address book loaded",
		zap.String("file", fs.path),
		zap.Int("contacts", book.Len()))

	return book, nil
}

// Save writes the whole address book, replacing the file atomically
func (fs *FileStore) Save(book *addressbook.Book) error {
	doc := NewDocument(book)

	var data []byte
	var err error
	if fs.isYAML() {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal address book: %w", err)
	}

	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create address book directory: %w", err)
		}
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write address book: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace address book: %w", err)
	}

	fs.logger.Info("Address book saved",
		zap.String("file", fs.path),
		zap.Int("contacts", book.Len()))

	return nil
}

func (fs *FileStore) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(fs.path))
	return ext == ".yaml" || ext == ".yml"
}

// NewDocument converts a book into its persisted form, keeping record order
func NewDocument(book *addressbook.Book) *Document {
	doc := &Document{
		Version:  schemaVersion,
		Contacts: make([]ContactEntry, 0, book.Len()),
	}
	for _, r := range book.All() {
		entry := ContactEntry{
			Name:   r.Name(),
			Phones: r.Phones(),
		}
		if b, ok := r.Birthday(); ok {
			entry.Birthday = b.String()
		}
		doc.Contacts = append(doc.Contacts, entry)
	}
	return doc
}

// Book rebuilds an address book, validating every entry
func (d *Document) Book() (*addressbook.Book, error) {
	if d.Version > schemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d", d.Version)
	}

	book := addressbook.NewBook()
	for i, entry := range d.Contacts {
		r, err := addressbook.NewRecord(entry.Name, entry.Birthday)
		if err != nil {
			return nil, fmt.Errorf("contact #%d: %w", i+1, err)
		}
		for _, p := range entry.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("contact #%d (%s): %w", i+1, entry.Name, err)
			}
		}
		book.AddRecord(r)
	}
	return book, nil
}
