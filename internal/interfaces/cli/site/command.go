package site

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/internal/application/residence/usecases"
	"github.com/sitedesk/sitedesk/internal/infrastructure/repository"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/bootstrap"
)

var (
	flags     bootstrap.Flags
	name      string
	dueAmount string
	allSites  bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Site administration",
		Long:  `Create sites and repair their block and apartment counters.`,
	}

	cmd.PersistentFlags().StringVarP(&flags.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newCreateCommand(),
		newReconcileCommand(),
	)

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a site",
		Long:  `Create a site with a freshly generated site code and print the code.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Site name (required)")
	cmd.Flags().StringVar(&dueAmount, "due-amount", "0", "Monthly due amount, e.g. 1250.00")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newReconcileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile [site-code-or-id]",
		Short: "Recompute resident counters",
		Long:  `Recompute the resident_count of every apartment and block of a site from the resident rows.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if allSites {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: runReconcile,
	}

	cmd.Flags().BoolVar(&allSites, "all", false, "Reconcile every site")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(dueAmount)
	if err != nil {
		return fmt.Errorf("invalid due amount %q: %w", dueAmount, err)
	}

	env, err := bootstrap.Init(&flags)
	if err != nil {
		return err
	}
	defer env.Close()

	uc := usecases.NewCreateSiteUseCase(repository.NewSiteRepository(env.DB), env.Logger)
	created, err := uc.Execute(cmd.Context(), usecases.CreateSiteCommand{
		Name:      name,
		DueAmount: amount,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "site %d created, code %s, due amount %s\n", created.ID, created.Code, created.DueAmount)
	return nil
}

func runReconcile(cmd *cobra.Command, args []string) error {
	env, err := bootstrap.Init(&flags)
	if err != nil {
		return err
	}
	defer env.Close()

	siteRepo := repository.NewSiteRepository(env.DB)
	blockRepo := repository.NewBlockRepository(env.DB)
	apartmentRepo := repository.NewApartmentRepository(env.DB)
	residentRepo := repository.NewResidentRepository(env.DB)

	accountant := usecases.NewCapacityAccountant(apartmentRepo, blockRepo, residentRepo, env.Logger)
	reconcile := usecases.NewReconcileSiteUseCase(blockRepo, apartmentRepo, accountant, env.Logger)

	if allSites {
		done, err := usecases.NewReconcileAllSitesUseCase(siteRepo, reconcile, env.Logger).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d sites reconciled\n", done)
		return nil
	}

	siteID, err := usecases.NewResolveSiteUseCase(siteRepo, nil, env.Logger).Execute(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	result, err := reconcile.Execute(cmd.Context(), siteID)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "site %d reconciled: %d blocks, %d apartments\n",
		result.SiteID, result.Blocks, result.Apartments)
	return nil
}
