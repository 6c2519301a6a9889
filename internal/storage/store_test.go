package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/username/assistant-bot/internal/addressbook"
	"go.uber.org/zap"
)

func sampleBook(t *testing.T) *addressbook.Book {
	t.Helper()
	book := addressbook.NewBook()

	john, err := addressbook.NewRecord("John", "12.06.1990")
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}
	john.AddPhone("1234567890")
	john.AddPhone("5555555555")
	book.AddRecord(john)

	jane, err := addressbook.NewRecord("Jane", "")
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}
	book.AddRecord(jane)

	return book
}

func TestFileStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"book.json", "book.yaml", "nested/dir/book.yml"} {
		t.Run(name, func(t *testing.T) {
			store := NewFileStore(filepath.Join(t.TempDir(), name), zap.NewNop())

			if err := store.Save(sampleBook(t)); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			loaded, err := store.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if loaded.String() != sampleBook(t).String() {
				t.Errorf("loaded book = %q, want %q", loaded.String(), sampleBook(t).String())
			}
			john, ok := loaded.Find("John")
			if !ok {
				t.Fatal("John missing after load")
			}
			if b, ok := john.Birthday(); !ok || b.String() != "12.06.1990" {
				t.Errorf("John birthday = %v, %v", b, ok)
			}
			jane, _ := loaded.Find("Jane")
			if _, ok := jane.Birthday(); ok {
				t.Error("Jane should have no birthday")
			}
		})
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())

	book, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("Len() = %d, want 0", book.Len())
	}
}

func TestFileStore_LoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"broken json", "book.json", "{", "failed to parse"},
		{"bad phone", "book.json", `{"version":1,"contacts":[{"name":"John","phones":["123"]}]}`, "phone must be 10 digits"},
		{"empty name", "book.yaml", "version: 1\ncontacts:\n  - name: \"\"\n", "name required"},
		{"bad birthday", "book.yaml", "contacts:\n  - name: John\n    birthday: 31.02.2020\n", "invalid date format"},
		{"future schema", "book.json", `{"version":2,"contacts":[]}`, "unsupported schema version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			_, err := NewFileStore(path, zap.NewNop()).Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(sampleBook(t))

	want := []ContactEntry{
		{Name: "John", Phones: []string{"1234567890", "5555555555"}, Birthday: "12.06.1990"},
		{Name: "Jane", Phones: []string{}},
	}
	if doc.Version != schemaVersion {
		t.Errorf("Version = %d, want %d", doc.Version, schemaVersion)
	}
	if !reflect.DeepEqual(doc.Contacts, want) {
		t.Errorf("Contacts = %+v, want %+v", doc.Contacts, want)
	}
}
