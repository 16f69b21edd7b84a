package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/figdoc"
	"gopkg.in/yaml.v3"
)

// Run executes the config init command.
func (c *ConfigInitCmd) Run(deps *Dependencies) error {
	if _, err := os.Stat(deps.ConfigPath); err == nil && !c.Force {
		return figdoc.Errorf(figdoc.ECONFLICT, "config file already exists at %s. Use --force to overwrite", deps.ConfigPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()
	// Keep an already saved token.
	cfg.Token = deps.Config.Token
	if err := SaveConfig(deps.ConfigPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote default config to %s\n", deps.ConfigPath)
	return nil
}

// Run executes the config show command.
func (c *ConfigShowCmd) Run(deps *Dependencies) error {
	cfg := *deps.Config
	if !c.ShowToken {
		cfg.Token = maskToken(cfg.Token)
	}

	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "# %s\n%s", deps.ConfigPath, out)
	return nil
}

// Run executes the config path command.
func (c *ConfigPathCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.ConfigPath)
	return nil
}

// Run executes the config get command.
func (c *ConfigGetCmd) Run(deps *Dependencies) error {
	v, err := deps.Config.Get(c.Key)
	if err != nil {
		return err
	}
	if c.Key == "token" {
		v = maskToken(v)
	}
	fmt.Fprintln(deps.Stdout, v)
	return nil
}

// Run executes the config set command.
func (c *ConfigSetCmd) Run(deps *Dependencies) error {
	if err := deps.Config.Set(c.Key, c.Value); err != nil {
		return err
	}
	if err := SaveConfig(deps.ConfigPath, deps.Config); err != nil {
		return err
	}

	v := c.Value
	if c.Key == "token" {
		v = maskToken(v)
	}
	fmt.Fprintf(deps.Stdout, "Set %s = %s\n", c.Key, v)
	return nil
}

// maskToken hides all but the prefix and last four characters of a token.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= len(figdoc.TokenPrefix)+4 {
		return strings.Repeat("*", len(token))
	}
	return token[:len(figdoc.TokenPrefix)] + strings.Repeat("*", len(token)-len(figdoc.TokenPrefix)-4) + token[len(token)-4:]
}
