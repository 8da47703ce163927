package commands

import (
	"fmt"

	"github.com/mayank2021264/ai-flashcard-generator/internal/cli/store"
)

type signupCmd struct{}

func (signupCmd) Name() string        { return "signup" }
func (signupCmd) Description() string { return "Create an account and log in" }
func (signupCmd) Usage() string       { return "signup <name> <email> <password>" }

func (signupCmd) Run(env *Env, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	client, err := env.Client()
	if err != nil {
		return err
	}
	resp, err := client.Signup(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	if err := env.Sessions.Save(store.Session{
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
		Email:        resp.User.Email,
	}); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Account created, logged in as %s\n", resp.User.Email)
	return nil
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Log in and store the session" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(env *Env, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	client, err := env.Client()
	if err != nil {
		return err
	}
	resp, err := client.Login(args[0], args[1])
	if err != nil {
		return err
	}
	if err := env.Sessions.Save(store.Session{
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
		Email:        resp.User.Email,
	}); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s\n", resp.User.Email)
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Revoke the session and forget it" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(env *Env, args []string) error {
	sess, err := env.Sessions.Load()
	if err != nil {
		return err
	}
	if sess.Token == "" {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	client, err := env.Client()
	if err != nil {
		return err
	}
	// Revocation failure is not fatal: the local session is cleared anyway.
	if err := client.Logout(sess.RefreshToken); err != nil {
		fmt.Fprintf(Out, "Warning: server logout failed: %v\n", err)
	}
	if err := env.Sessions.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the logged-in account" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(env *Env, args []string) error {
	client, err := env.Client()
	if err != nil {
		return err
	}
	user, err := client.Me()
	if err != nil {
		return handleUnauthorized(env, err)
	}
	fmt.Fprintf(Out, "%s <%s>\n", user.FullName, user.Email)
	return nil
}

func init() {
	RegisterCmd(signupCmd{})
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
	RegisterCmd(whoamiCmd{})
}
