package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"dealtable/internal/config"
	"dealtable/internal/dataset"
	"dealtable/internal/datatable"
	"dealtable/internal/telemetry"
	"dealtable/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stringSlice implements flag.Value for repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ", ") }
func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// options holds the parsed command line.
type options struct {
	configPath    string
	data          string
	filter        string
	caseSensitive bool
	match         string
	columns       stringSlice
	logFile       string
	verbose       bool

	// set records which flags were given explicitly.
	set map[string]bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "config file (default $"+config.PathEnv+" or the user config dir)")
	flag.StringVar(&opts.data, "data", "", "JSON or YAML file of rows to show instead of the built-in deals")
	flag.StringVar(&opts.filter, "filter", "", "initial filter key")
	flag.BoolVar(&opts.caseSensitive, "case-sensitive", false, "match the filter key case-sensitively")
	flag.StringVar(&opts.match, "match", "", "match mode: contains, prefix, exact or fuzzy")
	flag.Var(&opts.columns, "search-column", "column key to search (repeatable, default all columns)")
	flag.StringVar(&opts.logFile, "log", "", "write logs to this file")
	flag.BoolVar(&opts.verbose, "verbose", false, "enable detailed logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dealtable [flags]\n\n")
		fmt.Fprintf(os.Stderr, "dealtable shows a filterable table of rows with a detail pane\n")
		fmt.Fprintf(os.Stderr, "for the selected row.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.set["data"] {
		cfg.Data = opts.data
	}
	if opts.set["case-sensitive"] {
		cfg.Filter.CaseSensitive = opts.caseSensitive
	}
	if opts.set["match"] {
		cfg.Filter.Match = opts.match
	}
	if len(opts.columns) > 0 {
		cfg.Filter.Columns = opts.columns
	}
	return cfg, nil
}

func loadRows(cfg *config.Config) ([]datatable.Row, error) {
	if cfg.Data == "" {
		return dataset.Deals(), nil
	}
	return dataset.Load(cfg.Data)
}

func setupLogging(opts options) (io.Closer, error) {
	if opts.logFile == "" {
		// The TUI owns stdout and stderr.
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(opts.logFile, "dealtable")
	if err != nil {
		return nil, fmt.Errorf("log file %q: %w", opts.logFile, err)
	}
	return f, nil
}

func run(opts options) error {
	logs, err := setupLogging(opts)
	if err != nil {
		return err
	}
	defer logs.Close()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	filter, err := cfg.FilterOptions()
	if err != nil {
		return err
	}
	columns, err := cfg.Schema()
	if err != nil {
		return err
	}
	rows, err := loadRows(cfg)
	if err != nil {
		return err
	}
	if opts.verbose {
		log.Printf("config: data=%q rows=%d columns=%d match=%s case-sensitive=%v search=%v",
			cfg.Data, len(rows), len(columns), filter.Match, filter.CaseSensitive, filter.Columns)
	}

	ctx := context.Background()
	shutdown, enabled, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()
	if enabled && opts.verbose {
		log.Printf("telemetry: exporting traces")
	}

	// Detect the background before the program takes over the terminal.
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}

	app := ui.NewAppModel(ui.TableHolderOptions{
		Rows:          rows,
		Columns:       columns,
		Filter:        filter,
		InitialFilter: opts.filter,
		MarkdownStyle: style,
	})
	app.Verbose = opts.verbose

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "dealtable: %v\n", err)
		os.Exit(1)
	}
}
