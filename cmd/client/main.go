package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/mayank2021264/ai-flashcard-generator/internal/cli/commands"
	"github.com/mayank2021264/ai-flashcard-generator/internal/cli/store"
)

var version = "dev"

func main() {
	serverURL := flag.String("server", envOr("FLASHCARDS_SERVER", "http://localhost:8080"), "API server base URL")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Flashcards CLI %s\n", version)
		return
	}

	sessions, err := store.NewSessionStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot locate config directory: %v\n", err)
		os.Exit(1)
	}

	env := &commands.Env{
		BaseURL:  *serverURL,
		Sessions: sessions,
		In:       bufio.NewReader(os.Stdin),
	}

	os.Exit(commands.Dispatch(env, flag.Args()))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
