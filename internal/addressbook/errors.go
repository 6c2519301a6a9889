package addressbook

import "fmt"

// ValidationError reports a malformed name, phone, birthday or query argument
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an operation on a contact or phone that does not exist
type NotFoundError struct {
	Kind string // "contact" or "phone"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

const (
	KindContact = "contact"
	KindPhone   = "phone"
)
