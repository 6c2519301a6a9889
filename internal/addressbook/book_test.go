package addressbook

import (
	"testing"
)

func recordNames(records []*Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name()
	}
	return names
}

func TestBook_AddFindDelete(t *testing.T) {
	book := NewBook()
	book.AddRecord(newTestRecord(t, "John", "1234567890"))

	r, ok := book.Find("John")
	if !ok || r.Name() != "John" {
		t.Fatalf("Find(\"John\") = %v, %v, want record", r, ok)
	}
	if _, ok := book.Find("john"); ok {
		t.Error("Find is case sensitive, \"john\" should not match")
	}

	if !book.Delete("John") {
		t.Error("Delete(\"John\") = false, want true")
	}
	if _, ok := book.Find("John"); ok {
		t.Error("Find(\"John\") after Delete should find nothing")
	}
	if book.Delete("John") {
		t.Error("Delete(\"John\") twice = true, want false")
	}
	if book.Len() != 0 {
		t.Errorf("Len() = %d, want 0", book.Len())
	}
}

func TestBook_InsertionOrder(t *testing.T) {
	book := NewBook()
	for _, name := range []string{"Carol", "Alice", "Bob"} {
		book.AddRecord(newTestRecord(t, name))
	}

	want := []string{"Carol", "Alice", "Bob"}
	got := recordNames(book.All())
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All() = %v, want %v", got, want)
		}
	}

	book.Delete("Alice")
	book.AddRecord(newTestRecord(t, "Alice"))
	want = []string{"Carol", "Bob", "Alice"}
	got = recordNames(book.All())
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All() after re-add = %v, want %v", got, want)
		}
	}
}

func TestBook_AddRecordOverwrites(t *testing.T) {
	book := NewBook()
	book.AddRecord(newTestRecord(t, "John", "1111111111"))
	book.AddRecord(newTestRecord(t, "Jane"))
	book.AddRecord(newTestRecord(t, "John", "2222222222"))

	if book.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", book.Len())
	}
	r, _ := book.Find("John")
	if phones := r.Phones(); len(phones) != 1 || phones[0] != "2222222222" {
		t.Errorf("John phones = %v, want last write [2222222222]", phones)
	}
	if names := recordNames(book.All()); names[0] != "John" {
		t.Errorf("All() = %v, overwritten record should keep its position", names)
	}
}

func TestBook_String(t *testing.T) {
	book := NewBook()
	book.AddRecord(newTestRecord(t, "John", "1234567890"))
	book.AddRecord(newTestRecord(t, "Jane"))

	want := "Contact name: John, phones: 1234567890\nContact name: Jane, phones: "
	if got := book.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
