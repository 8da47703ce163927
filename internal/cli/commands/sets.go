package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List your flashcard sets, newest first" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(env *Env, args []string) error {
	client, err := env.Client()
	if err != nil {
		return err
	}
	sets, err := client.ListSets()
	if err != nil {
		return handleUnauthorized(env, err)
	}
	printSetTable(sets)
	return nil
}

type searchCmd struct{}

func (searchCmd) Name() string        { return "search" }
func (searchCmd) Description() string { return "Search sets by title, description or tag" }
func (searchCmd) Usage() string       { return "search <term>" }

func (searchCmd) Run(env *Env, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	client, err := env.Client()
	if err != nil {
		return err
	}
	sets, err := client.SearchSets(strings.Join(args, " "))
	if err != nil {
		return handleUnauthorized(env, err)
	}
	printSetTable(sets)
	return nil
}

type showCmd struct{}

func (showCmd) Name() string        { return "show" }
func (showCmd) Description() string { return "Show one set with all its cards" }
func (showCmd) Usage() string       { return "show <set-id>" }

func (showCmd) Run(env *Env, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid set id %q", args[0])
	}
	client, err := env.Client()
	if err != nil {
		return err
	}
	set, err := client.GetSet(id)
	if err != nil {
		return handleUnauthorized(env, err)
	}
	fmt.Fprintf(Out, "%s\n", set.Title)
	if set.Description != "" {
		fmt.Fprintf(Out, "%s\n", set.Description)
	}
	if len(set.Tags) > 0 {
		fmt.Fprintf(Out, "Tags: %s\n", strings.Join(set.Tags, ", "))
	}
	fmt.Fprintf(Out, "Cards: %d\n\n", len(set.Flashcards))
	for i, c := range set.Flashcards {
		fmt.Fprintf(Out, "%3d. Q: %s\n     A: %s\n", i+1, c.Question, c.Answer)
	}
	return nil
}

type createCmd struct{}

func (createCmd) Name() string { return "create" }
func (createCmd) Description() string {
	return "Create a set by typing cards interactively"
}
func (createCmd) Usage() string { return "create <title> [tag ...]" }

func (createCmd) Run(env *Env, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	title := args[0]
	tags := args[1:]

	description, err := promptLine(env, "Description (optional)")
	if err != nil {
		return err
	}

	var cards []models.CardInput
	fmt.Fprintln(Out, "Enter cards. An empty question finishes the set.")
	for {
		q, err := promptLine(env, fmt.Sprintf("Card %d question", len(cards)+1))
		if err != nil {
			return err
		}
		if q == "" {
			break
		}
		a, err := promptLine(env, fmt.Sprintf("Card %d answer", len(cards)+1))
		if err != nil {
			return err
		}
		cards = append(cards, models.CardInput{Question: q, Answer: a})
	}
	if len(cards) == 0 {
		return fmt.Errorf("a set needs at least one card")
	}

	client, err := env.Client()
	if err != nil {
		return err
	}
	set, err := client.CreateSet(models.CreateSetRequest{
		Title:       title,
		Description: description,
		Flashcards:  cards,
		Tags:        tags,
	})
	if err != nil {
		return handleUnauthorized(env, err)
	}
	fmt.Fprintf(Out, "Created %q with %d cards (%s)\n", set.Title, len(set.Flashcards), set.ID)
	return nil
}

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete a set and all its cards" }
func (deleteCmd) Usage() string       { return "delete <set-id>" }

func (deleteCmd) Run(env *Env, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid set id %q", args[0])
	}
	client, err := env.Client()
	if err != nil {
		return err
	}
	if err := client.DeleteSet(id); err != nil {
		return handleUnauthorized(env, err)
	}
	fmt.Fprintln(Out, "Deleted")
	return nil
}

func printSetTable(sets []models.FlashcardSet) {
	if len(sets) == 0 {
		fmt.Fprintln(Out, "No flashcard sets found")
		return
	}
	fmt.Fprintf(Out, "%-36s  %-30s  %5s  %s\n", "ID", "TITLE", "CARDS", "TAGS")
	for _, s := range sets {
		title := s.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		fmt.Fprintf(Out, "%-36s  %-30s  %5d  %s\n",
			s.ID, title, len(s.Flashcards), strings.Join(s.Tags, ","))
	}
}

func init() {
	RegisterCmd(listCmd{})
	RegisterCmd(searchCmd{})
	RegisterCmd(showCmd{})
	RegisterCmd(createCmd{})
	RegisterCmd(deleteCmd{})
}
