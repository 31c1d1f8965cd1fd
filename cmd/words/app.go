package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/supercore/words/internal/config"
	"github.com/supercore/words/internal/gitsource"
	"github.com/supercore/words/internal/importer"
	"github.com/supercore/words/internal/journal"
	"github.com/supercore/words/internal/session"
	"github.com/supercore/words/internal/store"
	"github.com/supercore/words/internal/ui"
)

const menu = `Choose an option:
1. Review flashcards
2. Add a flashcard
3. Import flashcards from a delimited file
4. Import flashcards from a git repository
x. Exit`

// app ties the store, journal, and prompt surface to the menu loop.
type app struct {
	cfg     config.Config
	store   *store.Store
	journal *journal.DB
	prompt  ui.Prompter
}

// run drives the menu until the user exits or an operation fails.
// A closed input stream counts as a graceful exit.
func (a *app) run() error {
	for {
		choice, err := a.prompt.Ask(menu)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = a.review()
		case "2":
			err = a.add()
		case "3":
			err = a.importFile()
		case "4":
			err = a.importGit()
		case "x":
			return nil
		default:
			a.prompt.Say("Invalid option. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (a *app) review() error {
	sess := &session.Session{
		Store:     a.store,
		Prompt:    a.prompt,
		BatchSize: a.cfg.BatchSize,
	}
	// A nil *journal.DB must not become a non-nil Recorder.
	if a.journal != nil {
		sess.Journal = a.journal
	}
	return sess.Run()
}

func (a *app) add() error {
	question, err := a.prompt.Ask("Enter the question:")
	if err != nil {
		return err
	}
	answer, err := a.prompt.Ask("Enter the answer:")
	if err != nil {
		return err
	}
	guidance, err := a.prompt.Ask("Enter a hint or guidance:")
	if err != nil {
		return err
	}

	card := a.store.Add(
		strings.TrimSpace(question),
		strings.TrimSpace(answer),
		strings.TrimSpace(guidance),
	)
	if err := a.store.Save(); err != nil {
		return fmt.Errorf("failed to save new card: %w", err)
	}
	a.prompt.Say("Added %q.", card.Question)
	return nil
}

func (a *app) importFile() error {
	path, err := a.prompt.Ask(fmt.Sprintf("Enter the path to the import file (default: %s):", a.cfg.ImportPath))
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = a.cfg.ImportPath
	}

	entries, err := importer.File(path)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	for _, e := range entries {
		a.store.Add(e.Question, e.Answer, e.Guidance)
	}
	if err := a.store.Save(); err != nil {
		return fmt.Errorf("failed to save imported cards: %w", err)
	}
	a.prompt.Say("Imported %d cards from %s.", len(entries), path)
	return nil
}

func (a *app) importGit() error {
	repoURL, err := a.prompt.Ask("Enter the git repository URL:")
	if err != nil {
		return err
	}
	repoURL = strings.TrimSpace(repoURL)
	if repoURL == "" {
		a.prompt.Say("No repository URL given.")
		return nil
	}

	localPath, err := gitsource.LocalPath(a.cfg.ReposDir, repoURL)
	if err != nil {
		a.prompt.Say("Could not understand repository URL %q.", repoURL)
		return nil
	}
	if err := gitsource.Sync(repoURL, localPath); err != nil {
		return fmt.Errorf("failed to sync repository %s: %w", repoURL, err)
	}

	files, err := gitsource.CardFiles(localPath)
	if err != nil {
		return err
	}

	imported := 0
	for _, f := range files {
		entries, err := importer.File(f)
		if err != nil {
			slog.Warn("skipping unreadable card file", "path", f, "error", err)
			continue
		}
		for _, e := range entries {
			a.store.Add(e.Question, e.Answer, e.Guidance)
		}
		imported += len(entries)
	}
	if err := a.store.Save(); err != nil {
		return fmt.Errorf("failed to save imported cards: %w", err)
	}
	a.prompt.Say("Imported %d cards from %d files in %s.", imported, len(files), repoURL)
	return nil
}
