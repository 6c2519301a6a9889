package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/assistant-bot/internal/addressbook"
	"github.com/username/assistant-bot/internal/assistant"
	"github.com/username/assistant-bot/internal/calendar"
	"github.com/username/assistant-bot/internal/config"
	"github.com/username/assistant-bot/internal/storage"
	"github.com/username/assistant-bot/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	bookPath   string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "assistant-bot",
		Short: "Personal contact assistant",
		Long:  "Keep names, phone numbers and birthdays, and see whose birthday is coming up",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE:          runInteractive,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&bookPath, "book", "b", "", "Address book file (overrides storage.file)")

	rootCmd.AddCommand(allCmd())
	rootCmd.AddCommand(phoneCmd())
	rootCmd.AddCommand(birthdaysCmd())
	rootCmd.AddCommand(initConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session holds everything a command needs, built from config
type session struct {
	cfg       *config.Config
	store     *storage.FileStore
	planner   *addressbook.BirthdayPlanner
	assistant *assistant.Assistant
}

func openSession() (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()
	if bookPath != "" {
		cfg.Storage.File = bookPath
	}

	planner, err := initializePlanner(cfg)
	if err != nil {
		return nil, err
	}

	store := storage.NewFileStore(cfg.Storage.File, logger)
	book, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}

	a := assistant.New(book, logger,
		assistant.WithPlanner(planner),
		assistant.WithHorizonDays(cfg.Birthdays.HorizonDays))

	return &session{
		cfg:       cfg,
		store:     store,
		planner:   planner,
		assistant: a,
	}, nil
}

func initializePlanner(cfg *config.Config) (*addressbook.BirthdayPlanner, error) {
	var cal calendar.Calendar = calendar.NewWeekendCalendar()

	if cfg.Calendar.HolidaysFile != "" {
		logger.Info("Using holiday calendar file",
			zap.String("file", cfg.Calendar.HolidaysFile))
		composite := calendar.NewCompositeCalendar(
			calendar.NewFileCalendar(cfg.Calendar.HolidaysFile, logger),
			cal,
			logger,
		)
		if err := composite.LoadPrimary(); err != nil {
			return nil, err
		}
		cal = composite
	}

	return addressbook.NewBirthdayPlanner(cal, cfg.Birthdays.GetLeapDayPolicy(), logger), nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	repl := assistant.NewREPL(s.assistant, s.store, logger)
	return repl.Run(cmd.InOrStdin(), cmd.OutOrStdout())
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, "all", nil)
		},
	}
}

func phoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone <name>",
		Short: "Show a contact's phone numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, "phone", args)
		},
	}
}

func birthdaysCmd() *cobra.Command {
	var days int
	var todayStr string

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show birthdays in the coming days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			today := dateutil.Today()
			if todayStr != "" {
				if today, err = dateutil.ParseDate(todayStr); err != nil {
					return fmt.Errorf("invalid --today: %w", err)
				}
			}
			if !cmd.Flags().Changed("days") {
				days = s.cfg.Birthdays.HorizonDays
			}

			upcoming, err := s.planner.Upcoming(s.assistant.Book(), today, days)
			if err != nil {
				return fmt.Errorf("failed to compute birthdays: %w", err)
			}

			logger.Info("Upcoming birthdays",
				zap.String("today", dateutil.FormatISODate(today)),
				zap.Int("days", days),
				zap.Int("found", len(upcoming)))

			fmt.Fprintln(cmd.OutOrStdout(), assistant.FormatUpcoming(upcoming, days))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", addressbook.DefaultHorizonDays, "Days ahead to look (default from config)")
	cmd.Flags().StringVar(&todayStr, "today", "", "Pretend today is this date (YYYY-MM-DD or DD.MM.YYYY)")

	return cmd
}

func initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) == 1 {
				path = args[0]
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create config directory: %w", err)
				}
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
}

// runOnce executes a single read-only assistant command
func runOnce(cmd *cobra.Command, name string, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	result, err := s.assistant.Handle(name, args)
	if err != nil {
		return errors.New(assistant.ErrorMessage(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
