package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joern1811/wachatview/internal/adapter/export"
	"github.com/joern1811/wachatview/internal/adapter/parser"
	"github.com/joern1811/wachatview/internal/adapter/renderer"
	"github.com/joern1811/wachatview/internal/app"
	"github.com/joern1811/wachatview/internal/domain"
	"github.com/joern1811/wachatview/internal/version"
)

var (
	fromStr string
	toStr   string
	sender  string
	search  string
	output  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wachatview <export>",
	Short: "Read WhatsApp chat exports as a day-by-day transcript",
	Long: `wachatview reads a WhatsApp chat export (a folder or .zip containing
_chat.txt and the media files) and prints it grouped by day as text,
markdown or JSON. Attachments are classified as photo, video, audio,
sticker or document by their file name.`,
	Version:       version.Get().Version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&fromStr, "from", "", `Start time filter (format: "DD/MM/YYYY" or "DD/MM/YYYY HH:MM")`)
	pf.StringVar(&toStr, "to", "", `End time filter (format: "DD/MM/YYYY" or "DD/MM/YYYY HH:MM")`)
	pf.StringVar(&sender, "sender", "", "Only messages from this sender (exact name)")
	pf.StringVar(&search, "search", "", "Only messages whose text or sender contains this (case-insensitive)")
	pf.String("locale", "", `Locale for date labels and times, e.g. "en-US", "en-GB", "de-DE"`)
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringP("format", "f", "", `Output format: "text", "markdown" or "json"`)
}

// setup loads the config and builds the service shared by all commands.
func setup(cmd *cobra.Command) (Config, *app.ChatService, domain.Filter, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, domain.Filter{}, err
	}

	filter, err := buildFilter()
	if err != nil {
		return cfg, nil, domain.Filter{}, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	svc := app.NewChatService(export.NewLoader(), parser.NewWhatsAppParser(), logger)
	return cfg, svc, filter, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, svc, filter, err := setup(cmd)
	if err != nil {
		return err
	}

	locale := domain.ParseLocale(cfg.Locale)
	var r domain.ChatRenderer
	switch cfg.Format {
	case "json":
		r = &renderer.JSONRenderer{Locale: locale}
	default:
		r = &renderer.TextRenderer{Markdown: cfg.Format == "markdown", Locale: locale}
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return svc.Transcript(cmd.Context(), args[0], filter, r, w)
}

func buildFilter() (domain.Filter, error) {
	from, err := parseTime(fromStr)
	if err != nil {
		return domain.Filter{}, fmt.Errorf("parsing --from: %w", err)
	}

	to, err := parseTime(toStr)
	if err != nil {
		return domain.Filter{}, fmt.Errorf("parsing --to: %w", err)
	}

	// If --to is date-only, set to end of day
	if to != nil && !strings.Contains(strings.TrimSpace(toStr), " ") {
		endOfDay := to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		to = &endOfDay
	}

	return domain.Filter{From: from, To: to, Sender: sender, Query: search}, nil
}

func parseTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	formats := []string{
		"02/01/2006 15:04",
		"02/01/2006",
		"02.01.2006 15:04",
		"02.01.2006",
		"2006-01-02 15:04",
		time.DateOnly,
	}

	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unknown time format: %q (expected DD/MM/YYYY or DD/MM/YYYY HH:MM)", s)
}
