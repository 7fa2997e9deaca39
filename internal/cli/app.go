// Package cli is the interactive surface of markpad: a prompt-driven
// editor loop wired over the store, the intents layer, and the
// collaborator subsystems.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/dmitrijs2005/markpad/internal/config"
	"github.com/dmitrijs2005/markpad/internal/editor/intents"
	"github.com/dmitrijs2005/markpad/internal/editor/store"
	"github.com/dmitrijs2005/markpad/internal/editor/tasklist"
	"github.com/dmitrijs2005/markpad/internal/logging"
	"github.com/dmitrijs2005/markpad/internal/notify"
	"github.com/dmitrijs2005/markpad/internal/persist"
	"github.com/dmitrijs2005/markpad/internal/syncx"

	_ "modernc.org/sqlite"
)

// defaultTemplateLabel is shown for the blank template value.
const defaultTemplateLabel = "(default)"

// templates the editor offers for a document.
var templates = []string{defaultTemplateLabel, "letter", "invoice", "report", "slide-deck"}

const (
	cmdShow          = "show document"
	cmdEdit          = "edit content"
	cmdTemplate      = "change template"
	cmdToggle        = "toggle task item"
	cmdOpen          = "open document"
	cmdNew           = "new document"
	cmdNotifications = "notifications"
	cmdQuit          = "quit"
)

// App ties the editor core and its collaborators to an interactive
// prompt loop.
type App struct {
	cfg      *config.Config
	log      logging.Logger
	db       *sql.DB
	store    *store.Store
	intents  *intents.Intents
	repo     persist.Repository
	notifier *notify.Service
}

// NewApp opens the local database and wires the store, the intents
// layer, and the collaborator subscriptions. The returned app starts on
// a blank default document.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := persist.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	st := store.New()
	repo := persist.NewSQLiteRepository(db)
	notifier := notify.New(log)

	// Subscription order matters: the sync service reacts first so a
	// following persist signal sees the acknowledged snapshot.
	st.Subscribe(syncx.New(st, syncx.LocalAcknowledger{}, log).OnAction)
	st.Subscribe(persist.NewSaver(repo, log).OnAction)
	st.Subscribe(notifier.OnAction)

	app := &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		store:    st,
		intents:  intents.New(st),
		repo:     repo,
		notifier: notifier,
	}
	app.intents.LoadDefault()
	return app, nil
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Run drives the prompt loop until the user quits or the terminal is
// interrupted.
func (a *App) Run(ctx context.Context) error {
	for {
		choice, err := choose("markpad", []string{
			cmdShow, cmdEdit, cmdTemplate, cmdToggle,
			cmdOpen, cmdNew, cmdNotifications, cmdQuit,
		})
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case cmdShow:
			a.show()
		case cmdEdit:
			err = a.editContent()
		case cmdTemplate:
			err = a.changeTemplate()
		case cmdToggle:
			err = a.toggleTaskItem()
		case cmdOpen:
			err = a.openDocument(ctx)
		case cmdNew:
			a.intents.LoadDefault()
		case cmdNotifications:
			a.showNotifications()
		case cmdQuit:
			fmt.Println("Bye!")
			return nil
		}

		if errors.Is(err, terminal.InterruptErr) {
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) show() {
	st := a.store.State()
	doc := st.Current

	status := "new, never synchronized"
	if !st.Identity.IsNew() {
		status = "synchronized"
		if doc.LastModifiedLocally != nil {
			status = fmt.Sprintf("unsynced local edit at %s", doc.LastModifiedLocally.Format("15:04:05"))
		}
	}

	fmt.Printf("uuid:     %s\n", orDash(doc.UUID))
	fmt.Printf("template: %s\n", orDash(doc.Template))
	fmt.Printf("status:   %s\n", status)
	fmt.Println("---")
	fmt.Println(doc.Content)
	fmt.Println("---")
}

func (a *App) editContent() error {
	content, err := multiline("Content", a.store.State().Current.Content)
	if err != nil {
		return err
	}
	a.intents.UpdateContent(content)
	return nil
}

func (a *App) changeTemplate() error {
	template, err := choose("Template", templates)
	if err != nil {
		return err
	}
	if template == defaultTemplateLabel {
		template = ""
	}
	a.intents.UpdateTemplate(template)
	return nil
}

func (a *App) toggleTaskItem() error {
	count := tasklist.Count(a.store.State().Current.Content)
	if count == 0 {
		fmt.Println("The document has no task-list items.")
		return nil
	}

	answer, err := input(fmt.Sprintf("Task item index (0-%d)", count-1))
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Println("Not a number.")
		return nil
	}

	a.intents.ToggleTaskListItem(index)
	return nil
}

func (a *App) openDocument(ctx context.Context) error {
	recs, err := a.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error listing documents: %w", err)
	}
	if len(recs) == 0 {
		fmt.Println("No documents stored yet.")
		return nil
	}

	options := make([]string, len(recs))
	byOption := make(map[string]string, len(recs))
	for i, rec := range recs {
		label := fmt.Sprintf("%s (%s)", rec.Document.UUID, orDash(rec.Document.Template))
		options[i] = label
		byOption[label] = rec.Document.UUID
	}

	selected, err := choose("Open document", options)
	if err != nil {
		return err
	}

	rec, err := a.repo.GetByUUID(ctx, byOption[selected])
	if errors.Is(err, persist.ErrNotFound) {
		a.intents.NotFound()
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading document: %w", err)
	}

	a.intents.LoadSuccess(rec.Document, rec.Secret)
	return nil
}

func (a *App) showNotifications() {
	recent := a.notifier.Recent()
	if len(recent) == 0 {
		fmt.Println("No notifications.")
		return
	}
	for _, n := range recent {
		fmt.Printf("[%s] %s\n", n.Level, n.Message)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func choose(prompt string, options []string) (string, error) {
	var result string
	q := &survey.Select{Message: prompt, Options: options}
	return result, survey.AskOne(q, &result)
}

func input(prompt string) (string, error) {
	var result string
	q := &survey.Input{Message: prompt}
	return result, survey.AskOne(q, &result)
}

func multiline(prompt, defaultValue string) (string, error) {
	var result string
	q := &survey.Multiline{Message: prompt, Default: defaultValue}
	return result, survey.AskOne(q, &result)
}
