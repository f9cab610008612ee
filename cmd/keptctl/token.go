package main

import (
	"fmt"
	"time"

	"kept_house/internal/adapter/http/middleware"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token signed with the configured JWT secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch role {
			case middleware.RoleAgent, middleware.RoleBuyer, middleware.RoleVendor:
			default:
				return fmt.Errorf("unknown role %q", role)
			}
			if subject == "" {
				return fmt.Errorf("--sub is required")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				return fmt.Errorf("auth.jwt_secret is not configured")
			}
			tok, err := middleware.IssueToken(cfg.Auth.JWTSecret, subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "sub", "", "actor id (agent, buyer or vendor id)")
	cmd.Flags().StringVar(&role, "role", middleware.RoleAgent, "agent, buyer or vendor")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	return cmd
}
