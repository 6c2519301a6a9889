package addressbook

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/username/assistant-bot/pkg/dateutil"
)

// Field rules, checked with validate.Var
const (
	nameRule     = "required"
	phoneRule    = "len=10,number"
	birthdayRule = "datetime=" + dateutil.DayMonthYearLayout
)

var validate = validator.New()

// Name is a non-empty contact name
type Name struct {
	value string
}

// Phone is a string of exactly ten ASCII digits
type Phone struct {
	value string
}

// Birthday keeps the date as entered together with its parsed value
type Birthday struct {
	value string
	date  time.Time
}

// ValidateName returns s unchanged or a ValidationError if it is empty
func ValidateName(s string) (string, error) {
	if err := validate.Var(s, nameRule); err != nil {
		return "", &ValidationError{Field: "name", Message: "name required"}
	}
	return s, nil
}

// ValidatePhone returns s unchanged or a ValidationError unless it is ten digits
func ValidatePhone(s string) (string, error) {
	if err := validate.Var(s, phoneRule); err != nil {
		return "", &ValidationError{Field: "phone", Message: "phone must be 10 digits"}
	}
	return s, nil
}

// ValidateBirthday returns s unchanged or a ValidationError unless it is a
// real day.month.year date
func ValidateBirthday(s string) (string, error) {
	if err := validate.Var(s, birthdayRule); err != nil {
		return "", &ValidationError{Field: "birthday", Message: "invalid date format"}
	}
	return s, nil
}

// NewName validates s and wraps it as a Name
func NewName(s string) (Name, error) {
	v, err := ValidateName(s)
	if err != nil {
		return Name{}, err
	}
	return Name{value: v}, nil
}

// NewPhone validates s and wraps it as a Phone
func NewPhone(s string) (Phone, error) {
	v, err := ValidatePhone(s)
	if err != nil {
		return Phone{}, err
	}
	return Phone{value: v}, nil
}

// NewBirthday validates s and parses it in the local time zone. The text is
// kept as entered for display.
func NewBirthday(s string) (Birthday, error) {
	v, err := ValidateBirthday(s)
	if err != nil {
		return Birthday{}, err
	}
	date, err := dateutil.ParseDayMonthYear(v)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Message: "invalid date format"}
	}
	return Birthday{value: v, date: date}, nil
}

func (n Name) String() string  { return n.value }
func (p Phone) String() string { return p.value }

// String returns the birthday as it was entered
func (b Birthday) String() string { return b.value }

// Date returns the parsed birth date
func (b Birthday) Date() time.Time { return b.date }
