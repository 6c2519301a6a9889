package addressbook

import (
	"fmt"
	"strings"
)

// Record is a single contact: an immutable name, an ordered list of phones
// (duplicates allowed) and an optional birthday
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record. An empty birthday means none.
func NewRecord(name, birthday string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	r := &Record{name: n}
	if birthday != "" {
		if err := r.SetBirthday(birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Name returns the contact name
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the phones in insertion order
func (r *Record) Phones() []string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return phones
}

// Birthday returns the birthday and whether one is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates and appends a phone
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first stored phone equal to phone
func (r *Record) FindPhone(phone string) (Phone, bool) {
	if i := r.indexOf(phone); i >= 0 {
		return r.phones[i], true
	}
	return Phone{}, false
}

// RemovePhone removes the first matching phone and reports whether it did
func (r *Record) RemovePhone(phone string) bool {
	i := r.indexOf(phone)
	if i < 0 {
		return false
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// EditPhone replaces oldPhone with newPhone. The record is left untouched
// when oldPhone is missing or newPhone is invalid.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	if r.indexOf(oldPhone) < 0 {
		return &NotFoundError{Kind: KindPhone, Key: oldPhone}
	}
	p, err := NewPhone(newPhone)
	if err != nil {
		return err
	}

	r.phones = append(r.phones, p)
	r.RemovePhone(oldPhone)
	return nil
}

// SetBirthday validates and overwrites the birthday
func (r *Record) SetBirthday(birthday string) error {
	b, err := NewBirthday(birthday)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(r.Phones(), "; "))
}

func (r *Record) indexOf(phone string) int {
	for i, p := range r.phones {
		if p.value == phone {
			return i
		}
	}
	return -1
}
