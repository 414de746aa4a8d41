package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taproom/internal/server/auth"
	"taproom/internal/server/config"
)

// newTokenCmd mints a bearer token against the configured JWT secret, so a
// local server can be exercised without a real authorization server.
func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			token, err := auth.New(cfg.JWTSecret).IssueToken(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "sub", "taproom-client", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
