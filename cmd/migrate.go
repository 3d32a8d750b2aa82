package main

import (
	"fmt"
	"os"

	"parkshare/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var (
		dir    string
		binary string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations with atlas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var dbCfg config.DBConfig
			if err := envconfig.Process("", &dbCfg); err != nil {
				return fmt.Errorf("failed to process env config: %w", err)
			}

			workdir, err := atlasexec.NewWorkingDir(
				atlasexec.WithMigrations(os.DirFS(dir)),
			)
			if err != nil {
				return fmt.Errorf("failed to prepare migrations: %w", err)
			}
			defer workdir.Close()

			client, err := atlasexec.NewClient(workdir.Path(), binary)
			if err != nil {
				return fmt.Errorf("failed to init atlas client: %w", err)
			}

			res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
				URL:    dbCfg.BuildDSN(),
				DryRun: dryRun,
			})
			if err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			cmd.Printf("applied %d migration(s), now at version %q\n", len(res.Applied), res.Target)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "migrations", "migration directory")
	cmd.Flags().StringVar(&binary, "atlas", "atlas", "atlas binary")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print pending statements without executing them")
	return cmd
}
