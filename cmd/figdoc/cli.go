package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/figdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Config     *Config
	ConfigPath string
	DBPath     string
	Extraction figdoc.ExtractionService
	Files      figdoc.FileService
	Users      figdoc.UserService
	Cache      figdoc.Cache
	Querier    figdoc.Querier

	// Now returns the current time.
	Now func() time.Time

	// NewUsers builds a UserService for a token that is not yet saved.
	NewUsers func(token string) figdoc.UserService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Token      string `env:"FIGMA_TOKEN" help:"Figma personal access token (overrides config)"`
	ConfigPath string `name:"config" env:"FIGDOC_CONFIG" type:"path" help:"Config file path"`
	DBPath     string `name:"db" env:"FIGDOC_DB" type:"path" help:"Cache database path"`
	Verbose    bool   `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract text from one or more Figma files"`
	Inspect InspectCmd `cmd:"" help:"Show the decoded node tree for specific nodes"`
	Query   QueryCmd   `cmd:"" help:"Run a JMESPath query against the raw file JSON"`
	Cache   CacheCmd   `cmd:"" help:"Manage the local payload cache"`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration"`
	Auth    AuthCmd    `cmd:"" help:"Manage the Figma access token"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files         []string `arg:"" name:"file" help:"File keys or Figma URLs"`
	Pages         string   `help:"Comma-separated page names to include"`
	PageIDs       string   `name:"page-ids" help:"Comma-separated page IDs to include"`
	PagePattern   string   `help:"Regex matched against page names"`
	FramePattern  string   `help:"Regex matched against section and frame names"`
	IncludeHidden bool     `help:"Include hidden nodes"`
	Depth         int      `help:"Limit the depth of the fetched node tree"`
	Format        string   `short:"f" help:"Output format: json, text, markdown, summary"`
	Pretty        bool     `help:"Pretty-print JSON output"`
	Output        string   `short:"o" type:"path" help:"Write output to a file (a directory for several files)"`
	Concurrency   int      `short:"c" help:"Files extracted in parallel"`
	NoCache       bool     `help:"Bypass the payload cache"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File    string   `arg:"" help:"File key or Figma URL (a node-id in the URL is used)"`
	Nodes   []string `short:"n" sep:"," help:"Node IDs to inspect (1:2 or 1-2)"`
	Depth   int      `help:"Limit the depth of the fetched node tree"`
	Compact bool     `help:"Print compact JSON"`
	NoCache bool     `help:"Bypass the payload cache"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	File    string   `arg:"" help:"File key or Figma URL"`
	Expr    string   `arg:"" help:"JMESPath expression"`
	Nodes   []string `short:"n" sep:"," help:"Query the nodes endpoint for these IDs"`
	Depth   int      `help:"Limit the depth of the fetched node tree"`
	Compact bool     `help:"Print compact JSON"`
	NoCache bool     `help:"Bypass the payload cache"`
}

// CacheCmd groups the cache subcommands.
type CacheCmd struct {
	Stats CacheStatsCmd `cmd:"" help:"Show cache statistics"`
	List  CacheListCmd  `cmd:"" help:"List cached payloads"`
	Clear CacheClearCmd `cmd:"" help:"Remove cached payloads"`
}

// CacheStatsCmd is the "cache stats" subcommand.
type CacheStatsCmd struct{}

// CacheListCmd is the "cache list" subcommand.
type CacheListCmd struct{}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct {
	Expired bool `help:"Only remove expired entries"`
}

// ConfigCmd groups the config subcommands.
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a default config file"`
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
	Path ConfigPathCmd `cmd:"" help:"Print the config file path"`
	Get  ConfigGetCmd  `cmd:"" help:"Print one config value"`
	Set  ConfigSetCmd  `cmd:"" help:"Change one config value"`
}

// ConfigInitCmd is the "config init" subcommand.
type ConfigInitCmd struct {
	Force bool `short:"f" help:"Overwrite an existing config file"`
}

// ConfigShowCmd is the "config show" subcommand.
type ConfigShowCmd struct {
	ShowToken bool `help:"Print the token unmasked"`
}

// ConfigPathCmd is the "config path" subcommand.
type ConfigPathCmd struct{}

// ConfigGetCmd is the "config get" subcommand.
type ConfigGetCmd struct {
	Key string `arg:"" help:"Dotted key, e.g. http.timeout"`
}

// ConfigSetCmd is the "config set" subcommand.
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Dotted key, e.g. http.timeout"`
	Value string `arg:"" help:"New value"`
}

// AuthCmd groups the auth subcommands.
type AuthCmd struct {
	Login  AuthLoginCmd  `cmd:"" help:"Verify and save an access token"`
	Test   AuthTestCmd   `cmd:"" help:"Check the configured token against the API"`
	Logout AuthLogoutCmd `cmd:"" help:"Remove the saved token"`
}

// AuthLoginCmd is the "auth login" subcommand.
type AuthLoginCmd struct {
	Token    string `arg:"" help:"Personal access token (figd_...)"`
	NoVerify bool   `help:"Save without checking the token against the API"`
}

// AuthTestCmd is the "auth test" subcommand.
type AuthTestCmd struct{}

// AuthLogoutCmd is the "auth logout" subcommand.
type AuthLogoutCmd struct{}
