package addressbook

import (
	"strings"
	"time"
)

// Book is the contact directory: records keyed by name, iterated in the
// order their names were first added
type Book struct {
	order   []string
	records map[string]*Record
}

// NewBook creates an empty Book
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts r, replacing any record with the same name. A replaced
// record keeps its position.
func (b *Book) AddRecord(r *Record) {
	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record stored under name
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name and reports whether it existed
func (b *Book) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns the records in insertion order
func (b *Book) All() []*Record {
	all := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		all = append(all, b.records[name])
	}
	return all
}

// Len returns the number of records
func (b *Book) Len() int {
	return len(b.order)
}

// UpcomingBirthdays runs the default planner: Saturday/Sunday shift to
// Monday, February 29 observed on March 1 in common years.
func (b *Book) UpcomingBirthdays(today time.Time, days int) ([]UpcomingBirthday, error) {
	return DefaultBirthdayPlanner().Upcoming(b, today, days)
}

func (b *Book) String() string {
	lines := make([]string, 0, len(b.order))
	for _, r := range b.All() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
