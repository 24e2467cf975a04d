package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"advisorpilot/internal/shared/auth"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		subject string
		secret  string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token for reading captured leads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("ADMIN_JWT_SECRET")
			}
			if secret == "" {
				return fmt.Errorf("--secret or ADMIN_JWT_SECRET is required")
			}
			token, err := auth.NewSigner(secret).Sign(subject, auth.RoleAdmin, ttl)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, map[string]any{
					"token":     token,
					"subject":   subject,
					"expiresIn": ttl.String(),
				})
			}
			fmt.Fprintln(out, token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Operator identity recorded in the token (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "Signing secret (default: $ADMIN_JWT_SECRET)")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
