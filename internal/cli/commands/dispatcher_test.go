package commands

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mayank2021264/ai-flashcard-generator/internal/cli/store"
	"github.com/mayank2021264/ai-flashcard-generator/internal/cli/study"
	"github.com/mayank2021264/ai-flashcard-generator/internal/models"
)

func testEnv(t *testing.T, input string) (*Env, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	sessions, err := store.NewSessionStore()
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	t.Cleanup(func() { Out = prev })
	return &Env{
		BaseURL:  "http://localhost:8080",
		Sessions: sessions,
		In:       bufio.NewReader(strings.NewReader(input)),
	}, buf
}

func TestDispatchUnknownCommand(t *testing.T) {
	env, buf := testEnv(t, "")
	if code := Dispatch(env, []string{"frobnicate"}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Unknown command: frobnicate") {
		t.Fatalf("missing unknown-command message, got: %s", buf.String())
	}
}

func TestDispatchHelpListsCommands(t *testing.T) {
	env, buf := testEnv(t, "")
	if code := Dispatch(env, []string{"help"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	for _, name := range []string{"login", "list", "generate", "study"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("help output missing %q", name)
		}
	}
}

func TestDispatchBadArgsShowsUsage(t *testing.T) {
	env, buf := testEnv(t, "")
	if code := Dispatch(env, []string{"login"}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Usage: login <email> <password>") {
		t.Fatalf("missing usage line, got: %s", buf.String())
	}
}

type fakeUpdater struct {
	req   *models.UpdateSetRequest
	saved models.FlashcardSet
	err   error
}

func (f *fakeUpdater) UpdateSet(id uuid.UUID, req models.UpdateSetRequest) (*models.FlashcardSet, error) {
	f.req = &req
	if f.err != nil {
		return nil, f.err
	}
	return &f.saved, nil
}

func studySet() models.FlashcardSet {
	return models.FlashcardSet{
		ID:    uuid.New(),
		Title: "JS Basics",
		Flashcards: []models.Flashcard{
			{ID: uuid.New(), Question: "What is a closure?", Answer: "A function plus its scope"},
		},
	}
}

func TestEditSaveSendsWholeDraft(t *testing.T) {
	set := studySet()
	env, _ := testEnv(t, "title JS Advanced\nsave\n")
	sess := study.NewSession(set)

	saved := set
	saved.Title = "JS Advanced"
	fake := &fakeUpdater{saved: saved}

	if err := runEdit(env, fake, sess); err != nil {
		t.Fatalf("runEdit: %v", err)
	}
	if fake.req == nil {
		t.Fatal("no update request sent")
	}
	if fake.req.Title == nil || *fake.req.Title != "JS Advanced" {
		t.Fatal("update request missing new title")
	}
	if fake.req.Flashcards == nil || len(*fake.req.Flashcards) != 1 {
		t.Fatal("update request must carry the full card list")
	}
	if sess.Set().Title != "JS Advanced" {
		t.Fatal("saved set not applied to the session")
	}
	if sess.Mode() != study.ModeViewing {
		t.Fatal("session should return to viewing after save")
	}
}

func TestEditCancelSendsNothing(t *testing.T) {
	env, _ := testEnv(t, "title Something Else\ncancel\n")
	sess := study.NewSession(studySet())
	fake := &fakeUpdater{}

	if err := runEdit(env, fake, sess); err != nil {
		t.Fatalf("runEdit: %v", err)
	}
	if fake.req != nil {
		t.Fatal("cancel must not contact the server")
	}
	if sess.Set().Title != "JS Basics" {
		t.Fatal("cancel leaked draft changes")
	}
}

func TestEditSaveFailureKeepsEditing(t *testing.T) {
	env, buf := testEnv(t, "save\ncancel\n")
	sess := study.NewSession(studySet())
	fake := &fakeUpdater{err: errFailedSave}
	if err := runEdit(env, fake, sess); err != nil {
		t.Fatalf("runEdit: %v", err)
	}
	if !strings.Contains(buf.String(), "Save failed") {
		t.Fatalf("expected save failure message, got: %s", buf.String())
	}
}

var errFailedSave = errors.New("boom")
