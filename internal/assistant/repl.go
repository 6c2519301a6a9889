package assistant

import (
	"bufio"
	"fmt"
	"io"

	"github.com/username/assistant-bot/internal/addressbook"
	"go.uber.org/zap"
)

// Saver persists the address book when the session ends
type Saver interface {
	Save(book *addressbook.Book) error
}

// REPL is the interactive command loop
type REPL struct {
	assistant *Assistant
	saver     Saver
	logger    *zap.Logger
}

// NewREPL creates a new command loop
func NewREPL(assistant *Assistant, saver Saver, logger *zap.Logger) *REPL {
	return &REPL{
		assistant: assistant,
		saver:     saver,
		logger:    logger,
	}
}

// Run reads commands from in until close/exit or end of input, writing
// replies to out. The book is saved before returning.
func (r *REPL) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the assistant bot!")
	r.logger.Info("Session started", zap.Int("contacts", r.assistant.Book().Len()))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter a command: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		command, args := ParseInput(scanner.Text())
		if command == "" {
			fmt.Fprintln(out, "Please enter the command:")
			continue
		}

		if command == "close" || command == "exit" {
			break
		}

		fmt.Fprintln(out, r.assistant.Execute(command, args))
	}

	if err := scanner.Err(); err != nil {
		r.logger.Error("Failed to read input", zap.Error(err))
	}

	if err := r.saver.Save(r.assistant.Book()); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}

	fmt.Fprintln(out, "Good bye!")
	r.logger.Info("Session finished", zap.Int("contacts", r.assistant.Book().Len()))
	return nil
}
