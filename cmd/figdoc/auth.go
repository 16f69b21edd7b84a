package main

import (
	"fmt"

	"github.com/fwojciec/figdoc"
)

// Run executes the auth login command.
func (c *AuthLoginCmd) Run(deps *Dependencies) error {
	if err := figdoc.ValidateToken(c.Token); err != nil {
		return err
	}

	if !c.NoVerify {
		user, err := deps.NewUsers(c.Token).Me(deps.Ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Authenticated as %s (%s)\n", user.Handle, user.Email)
	}

	deps.Config.Token = c.Token
	if err := SaveConfig(deps.ConfigPath, deps.Config); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Token saved to %s\n", deps.ConfigPath)
	return nil
}

// Run executes the auth test command.
func (c *AuthTestCmd) Run(deps *Dependencies) error {
	if deps.Users == nil {
		return figdoc.Errorf(figdoc.EUNAUTHORIZED, "no Figma token configured. Set FIGMA_TOKEN or run 'figdoc auth login <token>'")
	}

	user, err := deps.Users.Me(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Token is valid. Authenticated as %s (%s)\n", user.Handle, user.Email)
	return nil
}

// Run executes the auth logout command.
func (c *AuthLogoutCmd) Run(deps *Dependencies) error {
	if deps.Config.Token == "" {
		fmt.Fprintln(deps.Stdout, "No token saved.")
		return nil
	}

	deps.Config.Token = ""
	if err := SaveConfig(deps.ConfigPath, deps.Config); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Token removed from %s\n", deps.ConfigPath)
	return nil
}
