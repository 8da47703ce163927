package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mayank2021264/ai-flashcard-generator/internal/cli/api"
	"github.com/mayank2021264/ai-flashcard-generator/internal/cli/store"
)

// ErrUsage is returned by a command when arguments are invalid and usage
// should be shown.
var ErrUsage = errors.New("usage")

// Env carries everything a command needs to run.
type Env struct {
	BaseURL  string
	Sessions *store.SessionStore
	In       *bufio.Reader
}

// Client builds an API client with the stored access token, if any.
func (e *Env) Client() (*api.Client, error) {
	sess, err := e.Sessions.Load()
	if err != nil {
		return nil, err
	}
	return api.NewClient(e.BaseURL, sess.Token), nil
}

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <email>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(env *Env, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out is the shared writer for CLI output. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Called from init() of each
// command file.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"Flashcards CLI",
		"",
		"Usage:",
		"  flashcards [--server URL] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-32s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}

// handleUnauthorized clears the stale session so the next command starts
// clean, and tells the user to log in again.
func handleUnauthorized(env *Env, err error) error {
	if !errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	env.Sessions.Clear()
	return errors.New("your session has expired, please run 'login' again")
}

func promptLine(env *Env, label string) (string, error) {
	fmt.Fprintf(Out, "%s: ", label)
	line, err := env.In.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
