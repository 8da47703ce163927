package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

type generateCmd struct{}

func (generateCmd) Name() string { return "generate" }
func (generateCmd) Description() string {
	return "Generate a set from text (stdin) or a PDF file"
}
func (generateCmd) Usage() string {
	return "generate <title> [--pdf file.pdf] [--provider name] [tag ...]"
}

func (generateCmd) Run(env *Env, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	title := args[0]

	var pdfPath, provider string
	var tags []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "--pdf":
			if i+1 >= len(rest) {
				return ErrUsage
			}
			i++
			pdfPath = rest[i]
		case "--provider":
			if i+1 >= len(rest) {
				return ErrUsage
			}
			i++
			provider = rest[i]
		default:
			tags = append(tags, rest[i])
		}
	}

	client, err := env.Client()
	if err != nil {
		return err
	}
	req := models.GenerateFromTextRequest{
		Title:      title,
		Tags:       tags,
		AIProvider: provider,
	}

	if pdfPath != "" {
		data, err := os.ReadFile(pdfPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, "Uploading PDF and generating flashcards...")
		set, info, err := client.GenerateFromPDF(data, filepath.Base(pdfPath), req)
		if err != nil {
			return handleUnauthorized(env, err)
		}
		if info != nil {
			fmt.Fprintf(Out, "Extracted %d characters from %d pages\n", info.ExtractedChars, info.Pages)
		}
		fmt.Fprintf(Out, "Created %q with %d cards (%s)\n", set.Title, len(set.Flashcards), set.ID)
		return nil
	}

	fmt.Fprintln(Out, "Paste the source text, then press Ctrl-D:")
	raw, err := io.ReadAll(env.In)
	if err != nil {
		return err
	}
	req.Text = strings.TrimSpace(string(raw))

	fmt.Fprintln(Out, "Generating flashcards...")
	set, err := client.GenerateFromText(req)
	if err != nil {
		return handleUnauthorized(env, err)
	}
	fmt.Fprintf(Out, "Created %q with %d cards (%s)\n", set.Title, len(set.Flashcards), set.ID)
	return nil
}

func init() { RegisterCmd(generateCmd{}) }
