package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run starts the REPL and closes the connection when the user leaves.
func (a *App) Run(ctx context.Context) error {
	defer a.client.Close()
	printlnFn("gophauth inspector (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.client.Token() != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "session " + fingerprint(a.client.Token())
	}
	return "anonymous"
}

func fingerprint(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "…"
}
