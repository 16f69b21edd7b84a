package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/extract"
	figdochttp "github.com/fwojciec/figdoc/http"
	"github.com/fwojciec/figdoc/jmespath"
	figslog "github.com/fwojciec/figdoc/slog"
	"github.com/fwojciec/figdoc/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	m.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		os.Exit(1)
	}
}

// errorText returns the message shown to the user for err. Application
// errors carry their own message; anything else is printed as is.
func errorText(err error) string {
	var appErr *figdoc.Error
	var decodeErr *figdoc.DecodeError
	if errors.As(err, &appErr) || errors.As(err, &decodeErr) {
		return figdoc.ErrorMessage(err)
	}
	return err.Error()
}

// Main represents the program.
type Main struct {
	// Config file path. Overridden by --config or FIGDOC_CONFIG.
	ConfigPath string

	// Cache database path. Overridden by --db, FIGDOC_DB or cache.path.
	DBPath string

	// SQLite database holding the payload cache, opened on demand.
	DB *sqlite.DB

	// Services for end-to-end testing. When nil, Run talks to the Figma API.
	Files    figdoc.FileService
	Users    figdoc.UserService
	NewUsers func(token string) figdoc.UserService

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		DBPath:     defaultDBPath(),
		Now:        time.Now,
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
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("figdoc"),
		kong.Description("Extract text content from Figma design files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return figdoc.Errorf(figdoc.EINVALID, "no command specified. Run 'figdoc --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.ConfigPath != "" {
		m.ConfigPath = cli.ConfigPath
	}
	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		return err
	}

	switch {
	case cli.DBPath != "":
		m.DBPath = cli.DBPath
	case cfg.Cache.Path != "":
		m.DBPath = cfg.Cache.Path
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	token := cli.Token
	if token == "" {
		token = cfg.Token
	}

	deps.Logger = logger
	deps.Config = cfg
	deps.ConfigPath = m.ConfigPath
	deps.DBPath = m.DBPath
	deps.Querier = &jmespath.Querier{}
	deps.Now = m.Now
	if deps.Now == nil {
		deps.Now = time.Now
	}
	deps.NewUsers = m.NewUsers
	if deps.NewUsers == nil {
		deps.NewUsers = func(token string) figdoc.UserService {
			return m.newClient(token, cfg, logger)
		}
	}

	switch command := strings.Fields(kongCtx.Command())[0]; command {
	case "extract", "inspect", "query":
		var noCache bool
		concurrency := cfg.Extraction.Concurrency
		switch command {
		case "extract":
			noCache = cli.Extract.NoCache
			if cli.Extract.Concurrency > 0 {
				concurrency = cli.Extract.Concurrency
			}
		case "inspect":
			noCache = cli.Inspect.NoCache
		case "query":
			noCache = cli.Query.NoCache
		}

		files := m.Files
		if files == nil {
			if token == "" {
				return figdoc.Errorf(figdoc.EUNAUTHORIZED, "no Figma token configured. Set FIGMA_TOKEN or run 'figdoc auth login <token>'")
			}
			files = figslog.NewLoggingFileService(m.newClient(token, cfg, logger), logger)
		}

		if cfg.Cache.Enabled && !noCache {
			cache, err := m.openCache(cfg, logger)
			if err != nil {
				// Proceed uncached.
				logger.Warn("cache unavailable", "path", m.DBPath, "err", err)
			} else {
				files = &extract.CachedFileService{Files: files, Cache: cache, Logger: logger}
			}
		}

		deps.Files = files
		deps.Extraction = figslog.NewLoggingExtractionService(&extract.Service{
			Files:       files,
			Concurrency: concurrency,
			Now:         m.Now,
		}, logger)

	case "cache":
		cache, err := m.openCache(cfg, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Set FIGDOC_DB to use a different database path\n")
			return err
		}
		deps.Cache = cache

	case "auth":
		if m.Users != nil {
			deps.Users = m.Users
		} else if token != "" {
			deps.Users = m.newClient(token, cfg, logger)
		}
	}

	return kongCtx.Run(deps)
}

// newClient builds a Figma API client from the configuration.
func (m *Main) newClient(token string, cfg *Config, logger *slog.Logger) *figdochttp.Client {
	return figdochttp.NewClient(token,
		figdochttp.WithTimeout(cfg.HTTP.Timeout),
		figdochttp.WithMaxRetries(cfg.HTTP.MaxRetries),
		figdochttp.WithRequestsPerSecond(cfg.HTTP.RequestsPerSecond),
		figdochttp.WithLogger(logger),
	)
}

// openCache opens the cache database at m.DBPath.
func (m *Main) openCache(cfg *Config, logger *slog.Logger) (figdoc.Cache, error) {
	if m.DB == nil {
		if m.DBPath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
				return nil, fmt.Errorf("failed to create cache directory: %w", err)
			}
		}
		db := sqlite.NewDB(m.DBPath)
		if err := db.Open(); err != nil {
			return nil, fmt.Errorf("failed to open cache at %q: %w", m.DBPath, err)
		}
		m.DB = db
	}

	cache := sqlite.NewCache(m.DB, cfg.Cache.TTL)
	if m.Now != nil {
		cache.Now = m.Now
	}
	return figslog.NewLoggingCache(cache, logger), nil
}
