package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cjkdoc"
	"github.com/fwojciec/cjkdoc/opencc"
	cjkslog "github.com/fwojciec/cjkdoc/slog"
	"github.com/fwojciec/cjkdoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(). The --db flag overrides it.
	DBPath string

	// ConfigPath is the YAML defaults file. Missing files are ignored and an
	// empty path disables it.
	ConfigPath string

	// Stdin is read by the convert command when no input file is given.
	Stdin io.Reader

	// NewConverter builds the text converter for a config name. Tests
	// replace it to avoid loading dictionaries.
	NewConverter func(config string) (cjkdoc.Converter, error)

	// SQLite database used by the history service.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		ConfigPath:   defaultConfigPath,
		Stdin:        os.Stdin,
		NewConverter: newOpenCCConverter,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:          ctx,
		Stdin:        m.Stdin,
		Stdout:       stdout,
		Stderr:       stderr,
		NewConverter: m.NewConverter,
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.NewConverter == nil {
		deps.NewConverter = newOpenCCConverter
	}

	var paths []string
	if m.ConfigPath != "" {
		paths = append(paths, m.ConfigPath)
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cjkdoc"),
		kong.Description("Convert Chinese text inside Office, OpenDocument and EPUB files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(loadYAMLConfig, paths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cjkdoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.NoColor = cli.NoColor

	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd == "history" || (cmd == "office" && !cli.Office.NoHistory) {
		dbPath := m.DBPath
		if cli.DB != "" {
			dbPath = cli.DB
		}

		db := sqlite.NewDB(dbPath)
		if err := db.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CJKDOC_DB or --db to use a different database path\n")
			if cmd == "history" {
				return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
			}
			// Conversions still run; they are just not recorded.
			fmt.Fprintf(stderr, "warning: history disabled: failed to open database at %q: %s\n", dbPath, err)
		} else {
			m.DB = db
			defer m.Close()
			deps.Conversions = cjkslog.NewLoggingConversionService(sqlite.NewConversionService(m.DB), deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

func newOpenCCConverter(config string) (cjkdoc.Converter, error) {
	c, err := opencc.NewConverter(config)
	if err != nil {
		return nil, err
	}
	return c, nil
}
