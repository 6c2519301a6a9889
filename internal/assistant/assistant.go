package assistant

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/username/assistant-bot/internal/addressbook"
	"github.com/username/assistant-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// handler runs a command against the book and returns the text to show
type handler func(args []string) (string, error)

type command struct {
	usage   string
	minArgs int
	maxArgs int
	run     handler
}

// Assistant dispatches parsed commands to address book operations
type Assistant struct {
	book        *addressbook.Book
	planner     *addressbook.BirthdayPlanner
	horizonDays int
	now         func() time.Time
	logger      *zap.Logger
	commands    map[string]command
}

// Option configures an Assistant
type Option func(*Assistant)

// WithPlanner sets the birthday planner (default: weekend rule, march1)
func WithPlanner(p *addressbook.BirthdayPlanner) Option {
	return func(a *Assistant) { a.planner = p }
}

// WithHorizonDays sets the default window for the birthdays command
func WithHorizonDays(days int) Option {
	return func(a *Assistant) { a.horizonDays = days }
}

// WithClock overrides the source of today's date
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// New creates a new Assistant working on book
func New(book *addressbook.Book, logger *zap.Logger, opts ...Option) *Assistant {
	a := &Assistant{
		book:        book,
		planner:     addressbook.DefaultBirthdayPlanner(),
		horizonDays: addressbook.DefaultHorizonDays,
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.commands = map[string]command{
		"hello":         {usage: "hello", run: a.hello},
		"add":           {usage: "add <name> <phone>", minArgs: 2, maxArgs: 2, run: a.addContact},
		"change":        {usage: "change <name> <old phone> <new phone>", minArgs: 3, maxArgs: 3, run: a.changePhone},
		"phone":         {usage: "phone <name>", minArgs: 1, maxArgs: 1, run: a.showPhone},
		"all":           {usage: "all", run: a.allContacts},
		"add-birthday":  {usage: "add-birthday <name> <DD.MM.YYYY>", minArgs: 2, maxArgs: 2, run: a.addBirthday},
		"show-birthday": {usage: "show-birthday <name>", minArgs: 1, maxArgs: 1, run: a.showBirthday},
		"birthdays":     {usage: "birthdays [days]", maxArgs: 1, run: a.birthdays},
		"remove-phone":  {usage: "remove-phone <name> <phone>", minArgs: 2, maxArgs: 2, run: a.removePhone},
		"delete":        {usage: "delete <name>", minArgs: 1, maxArgs: 1, run: a.deleteContact},
		"help":          {usage: "help", run: a.help},
	}

	return a
}

// Book returns the address book the assistant works on
func (a *Assistant) Book() *addressbook.Book {
	return a.book
}

// ParseInput splits a line into a lower-cased command and its arguments
func ParseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// Handle runs one command. Errors are ArityError, ErrUnknownCommand or the
// address book's ValidationError/NotFoundError; the book is unchanged when
// an error is returned.
func (a *Assistant) Handle(name string, args []string) (string, error) {
	cmd, ok := a.commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return "", &ArityError{Command: name, Usage: cmd.usage, TooMany: len(args) > cmd.maxArgs}
	}
	return cmd.run(args)
}

// Execute runs one command and always returns displayable text
func (a *Assistant) Execute(name string, args []string) string {
	result, err := a.Handle(name, args)
	if err != nil {
		a.logger.Debug("Command failed",
			zap.String("command", name),
			zap.Error(err))
		return ErrorMessage(err)
	}
	return result
}

func (a *Assistant) hello([]string) (string, error) {
	return "How can I help you?", nil
}

func (a *Assistant) addContact(args []string) (string, error) {
	name, phone := args[0], args[1]
	if _, err := addressbook.ValidatePhone(phone); err != nil {
		return "", err
	}

	record, ok := a.book.Find(name)
	message := "Contact updated."
	if !ok {
		var err error
		record, err = addressbook.NewRecord(name, "")
		if err != nil {
			return "", err
		}
		a.book.AddRecord(record)
		message = "Contact added."
	}

	if err := record.AddPhone(phone); err != nil {
		return "", err
	}

	a.logger.Info("Phone added", zap.String("name", name), zap.Bool("new_contact", !ok))
	return message, nil
}

func (a *Assistant) changePhone(args []string) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]
	record, err := a.find(name)
	if err != nil {
		return "", err
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number for %s changed from %s to %s", name, oldPhone, newPhone), nil
}

func (a *Assistant) showPhone(args []string) (string, error) {
	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s's phones: %s", record.Name(), strings.Join(record.Phones(), ", ")), nil
}

func (a *Assistant) allContacts([]string) (string, error) {
	if a.book.Len() == 0 {
		return "No contacts available.", nil
	}
	return a.book.String(), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	name, birthday := args[0], args[1]
	record, err := a.find(name)
	if err != nil {
		return "", err
	}
	if err := record.SetBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday %s added for %s", birthday, name), nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	birthday, ok := record.Birthday()
	if !ok {
		return fmt.Sprintf("%s has no birthday set.", record.Name()), nil
	}
	return fmt.Sprintf("%s's birthday is on %s", record.Name(), birthday), nil
}

func (a *Assistant) birthdays(args []string) (string, error) {
	days := a.horizonDays
	if len(args) == 1 {
		n, err := parseDays(args[0])
		if err != nil {
			return "", err
		}
		days = n
	}

	upcoming, err := a.planner.Upcoming(a.book, a.now(), days)
	if err != nil {
		return "", err
	}
	return FormatUpcoming(upcoming, days), nil
}

func (a *Assistant) removePhone(args []string) (string, error) {
	name, phone := args[0], args[1]
	record, err := a.find(name)
	if err != nil {
		return "", err
	}
	if !record.RemovePhone(phone) {
		return "", &addressbook.NotFoundError{Kind: addressbook.KindPhone, Key: phone}
	}
	return fmt.Sprintf("Phone %s removed from %s", phone, name), nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if !a.book.Delete(args[0]) {
		return "", &addressbook.NotFoundError{Kind: addressbook.KindContact, Key: args[0]}
	}
	a.logger.Info("Contact deleted", zap.String("name", args[0]))
	return fmt.Sprintf("Contact %s deleted.", args[0]), nil
}

func (a *Assistant) help([]string) (string, error) {
	usages := make([]string, 0, len(a.commands)+1)
	for _, cmd := range a.commands {
		usages = append(usages, "  "+cmd.usage)
	}
	usages = append(usages, "  close | exit")
	sort.Strings(usages)
	return "Available commands:\n" + strings.Join(usages, "\n"), nil
}

func (a *Assistant) find(name string) (*addressbook.Record, error) {
	record, ok := a.book.Find(name)
	if !ok {
		return nil, &addressbook.NotFoundError{Kind: addressbook.KindContact, Key: name}
	}
	return record, nil
}

func parseDays(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, &addressbook.ValidationError{Field: "days", Message: "days must be a non-negative number"}
	}
	return n, nil
}

// FormatUpcoming renders the birthdays command output
func FormatUpcoming(upcoming []addressbook.UpcomingBirthday, days int) string {
	if len(upcoming) == 0 {
		if days == addressbook.DefaultHorizonDays {
			return "No upcoming birthdays in the next week."
		}
		return fmt.Sprintf("No upcoming birthdays in the next %d days.", days)
	}

	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("%s has a birthday on %s", u.Name, dateutil.FormatISODate(u.Date))
	}
	return strings.Join(lines, "\n")
}
