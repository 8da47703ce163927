package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mayank2021264/ai-flashcard-generator/internal/cli/study"
	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

// clientAPI is the slice of the API client the edit loop needs. Tests
// substitute a fake to exercise save and cancel without a server.
type clientAPI interface {
	UpdateSet(id uuid.UUID, req models.UpdateSetRequest) (*models.FlashcardSet, error)
}

type studyCmd struct{}

func (studyCmd) Name() string        { return "study" }
func (studyCmd) Description() string { return "Review a set card by card" }
func (studyCmd) Usage() string       { return "study <set-id>" }

func (studyCmd) Run(env *Env, args []string) error {
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
	if len(set.Flashcards) == 0 {
		fmt.Fprintln(Out, "This set has no cards to study")
		return nil
	}

	sess := study.NewSession(*set)
	fmt.Fprintf(Out, "Studying %q (%d cards)\n", set.Title, len(set.Flashcards))
	fmt.Fprintln(Out, "Keys: f=flip  n=next  p=prev  e=edit  q=quit")

	for {
		showCard(sess)
		line, err := env.In.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.TrimSpace(line) {
		case "f", "":
			sess.Flip()
		case "n":
			if !sess.Next() {
				fmt.Fprintln(Out, "Already at the last card")
			}
		case "p":
			if !sess.Prev() {
				fmt.Fprintln(Out, "Already at the first card")
			}
		case "e":
			if err := runEdit(env, client, sess); err != nil {
				return err
			}
		case "q":
			return nil
		default:
			fmt.Fprintln(Out, "Keys: f=flip  n=next  p=prev  e=edit  q=quit")
		}
	}
}

func showCard(sess *study.Session) {
	card := sess.Current()
	side, text := "Q", card.Question
	if sess.FaceUp() {
		side, text = "A", card.Answer
	}
	fmt.Fprintf(Out, "\n[%d/%d] %s: %s\n> ", sess.Index()+1, len(sess.Set().Flashcards), side, text)
}

// runEdit owns the inner editing loop. While it runs, study navigation keys
// are not reachable at all, and the session itself also rejects them.
func runEdit(env *Env, client clientAPI, sess *study.Session) error {
	draft := sess.BeginEdit()
	if draft == nil {
		return nil
	}
	fmt.Fprintln(Out, "Editing. Commands: title <text>, card <n>, save, cancel")

	for {
		fmt.Fprint(Out, "edit> ")
		line, err := env.In.ReadString('\n')
		if err == io.EOF {
			sess.CancelEdit()
			return nil
		}
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "title":
			draft.Title = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "title"))
		case "card":
			if len(fields) < 2 {
				fmt.Fprintln(Out, "usage: card <n>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > len(draft.Cards) {
				fmt.Fprintf(Out, "card number must be 1..%d\n", len(draft.Cards))
				continue
			}
			q, err := promptLine(env, "Question")
			if err != nil {
				return err
			}
			a, err := promptLine(env, "Answer")
			if err != nil {
				return err
			}
			if q != "" {
				draft.Cards[n-1].Question = q
			}
			if a != "" {
				draft.Cards[n-1].Answer = a
			}
		case "save":
			saved, err := client.UpdateSet(sess.Set().ID, sess.SaveRequest())
			if err != nil {
				fmt.Fprintf(Out, "Save failed: %v\n", err)
				continue
			}
			sess.ApplySaved(*saved)
			fmt.Fprintln(Out, "Saved")
			return nil
		case "cancel":
			sess.CancelEdit()
			fmt.Fprintln(Out, "Changes discarded")
			return nil
		default:
			fmt.Fprintln(Out, "Commands: title <text>, card <n>, save, cancel")
		}
	}
}

func init() { RegisterCmd(studyCmd{}) }
