package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
)

func newLoginCmd(g *globals) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		Example: `  storefront login --email admin@example.com --password secret
  STOREFRONT_PASSWORD=secret storefront login --email admin@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("STOREFRONT_PASSWORD")
			}
			if strings.TrimSpace(email) == "" || password == "" {
				return errors.New("both --email and --password (or STOREFRONT_PASSWORD) are required")
			}

			_, err := g.authService(cmd).Login(cmd.Context(), g.tokens(), email, password)
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return errors.New("E-mail ou senha inválidos")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", strings.TrimSpace(email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account e-mail")
	cmd.Flags().StringVar(&password, "password", "", "Account password (env STOREFRONT_PASSWORD)")

	return cmd
}

func newLogoutCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := g.authService(cmd).Logout(g.tokens()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newStatusCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether a session token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if auth.IsAuthenticated(g.tokens()) {
				fmt.Fprintf(cmd.OutOrStdout(), "authenticated (backend %s)\n", g.backendURL)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "not authenticated")
			return nil
		},
	}
}
