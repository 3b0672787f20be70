package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/client/config"
	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/client/repositories/document"
	"github.com/dmitrijs2005/todokeeper/internal/client/services"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
)

// App is the interactive todo client. It keeps the session (logged-in user and
// task filter) and delegates every change to the services.
type App struct {
	config   *config.Config
	log      logging.Logger
	state    *services.State
	auth     services.AuthService
	lists    services.ListService
	userName string
	filter   models.TaskFilter
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the document store described by c. A corrupt store is returned
// as an error matching common.ErrCorruptState.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	var repo document.Repository
	if c.InMemory {
		repo = document.NewInMemoryRepository()
	} else {
		repo = document.NewJSONFileRepository(c.DataFile, log)
	}

	state, err := services.NewState(ctx, repo, log)
	if err != nil {
		return nil, err
	}

	return newApp(c, log, state, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, state *services.State, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		config: c,
		log:    log,
		state:  state,
		auth:   services.NewAuthService(state),
		lists:  services.NewListService(state),
		filter: models.DefaultTaskFilter(),
		reader: reader,
		out:    out,
	}
}

// Run prints the banner and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	printlnFn(titleStyle.Render("✅ To-Do"))
	printlnFn(helpLoggedOut)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// status is the prompt suffix: "[user]" or "[user:list]".
func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	if l, ok := a.lists.CurrentList(a.userName); ok {
		return fmt.Sprintf("[%s:%s]", a.userName, l.Name)
	}
	return fmt.Sprintf("[%s]", a.userName)
}

// currentList returns the selected list of the logged-in user.
func (a *App) currentList() (*models.List, error) {
	l, ok := a.lists.CurrentList(a.userName)
	if !ok {
		return nil, errNoListSelected
	}
	return l, nil
}
