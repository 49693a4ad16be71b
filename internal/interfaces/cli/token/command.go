package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/internal/infrastructure/auth"
	"github.com/sitedesk/sitedesk/internal/infrastructure/config"
)

var (
	env        string
	configPath string
	adminID    uint
	role       string
	ttl        time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Admin token tools",
	}

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue an admin bearer token",
		Long:  `Sign a bearer token for an administrator with the configured JWT secret. Meant for operators and local testing.`,
		RunE:  runIssue,
	}
	issue.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	issue.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	issue.Flags().UintVar(&adminID, "admin-id", 0, "Administrator id (required)")
	issue.Flags().StringVar(&role, "role", string(auth.RoleCompanyManager), "Administrator role")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default: auth.jwt.access_exp_minutes)")
	_ = issue.MarkFlagRequired("admin-id")

	cmd.AddCommand(issue)
	return cmd
}

func runIssue(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	lifetime := ttl
	if lifetime <= 0 {
		lifetime = time.Duration(cfg.Auth.JWT.AccessExpMinutes) * time.Minute
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, lifetime)
	signed, err := svc.Generate(adminID, auth.AdminRole(strings.ToUpper(role)))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
