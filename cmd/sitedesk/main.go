package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/internal/interfaces/cli/migrate"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/server"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/site"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sitedesk",
		Short:        "SiteDesk - residential site management API",
		Long:         `SiteDesk serves the block, apartment and resident API of residential sites, with migration and administrative commands.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		site.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
