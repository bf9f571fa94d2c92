// Package cli implements the storefront command line client. It shares
// the auth and product services with the web frontend and keeps the
// session token in a file instead of a cookie.
package cli

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/products"
)

var errNotLoggedIn = errors.New("not logged in: run `storefront login` first")

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	backendURL string
	tokenFile  string
	timeout    time.Duration
	verbose    bool
}

func (g *globals) client() *backend.Client {
	return backend.NewClient(g.backendURL, g.timeout)
}

func (g *globals) tokens() *auth.FileStore {
	return auth.NewFileStore(g.tokenFile)
}

func (g *globals) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (g *globals) authService(cmd *cobra.Command) *auth.Service {
	return auth.NewService(g.client(), g.logger(cmd))
}

func (g *globals) productService() *products.Service {
	return products.NewService(g.client())
}

// requireToken returns the stored token or errNotLoggedIn.
func (g *globals) requireToken() (string, error) {
	tok := auth.Token(g.tokens())
	if tok == "" {
		return "", errNotLoggedIn
	}
	return tok, nil
}

func NewRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Manage storefront products from the terminal",
		Long: `storefront talks to the storefront REST backend.

Log in once, then list or create products. The web frontend is started
with the serve subcommand.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if !cmd.Flags().Changed("backend") {
				if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
					g.backendURL = v
				}
			}
			if g.tokenFile == "" {
				return errors.New("no config directory found: pass --token-file")
			}
			return nil
		},
	}

	defaultTokenFile, _ := auth.DefaultTokenPath()

	cmd.PersistentFlags().StringVar(&g.backendURL, "backend", backend.DefaultBaseURL, "Backend base URL (env BACKEND_BASE_URL)")
	cmd.PersistentFlags().StringVar(&g.tokenFile, "token-file", defaultTokenFile, "Where the session token is kept")
	cmd.PersistentFlags().DurationVar(&g.timeout, "timeout", 30*time.Second, "Backend request timeout")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log backend failures in detail")

	cmd.AddCommand(
		newLoginCmd(g),
		newLogoutCmd(g),
		newStatusCmd(g),
		newProductsCmd(g),
		newServeCmd(),
	)

	return cmd
}
