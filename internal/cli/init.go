package cli

import (
	"fmt"

	"github.com/docfab/docgen/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory with empty collections",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// initializer is implemented by flat-file repositories that can write their
// empty collection explicitly. The sqlite backend initializes its schema on
// open and has nothing extra to do here.
type initializer interface {
	Init() error
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	repos, err := openBackend(cfg)
	if err != nil {
		return err
	}
	if repos.closer != nil {
		defer repos.closer.Close()
	}

	for _, repo := range []any{repos.clients, repos.projects, repos.documents, repos.counters} {
		if ini, ok := repo.(initializer); ok {
			if err := ini.Init(); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		okStyle.Render("✓"),
		locFromConfig(cfg).Tf("init", "done", cfg.Storage.Dir))
	return nil
}
