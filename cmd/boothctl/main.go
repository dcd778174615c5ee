// Command boothctl inspects and exports the booth data straight from the
// configured slot store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"legacy-booth/internal/config"
	"legacy-booth/internal/repository"
	"legacy-booth/internal/seed"
	"legacy-booth/internal/service/legacy"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is what every data command needs; it is built lazily so hash-passcode
// works without a store.
type app struct {
	cfg    *config.Config
	legacy legacy.Service
	close  func() error
}

func openApp(ctx context.Context, verbose bool) (*app, error) {
	cfg := config.Load()

	logger := zap.NewNop()
	if verbose {
		l, err := config.NewLogger("debug", "console", "boothctl")
		if err != nil {
			return nil, err
		}
		logger = l
	}

	store, closeStore, err := repository.NewSlotStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	seedData, err := seed.Load(cfg.SeedFile)
	if err != nil {
		closeStore()
		return nil, err
	}

	adapter := repository.NewAdapter(store, logger)
	return &app{
		cfg:    cfg,
		legacy: legacy.NewService(ctx, adapter, seedData, logger),
		close:  closeStore,
	}, nil
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "boothctl",
		Short:         "Inspect and export Legacy Booth data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log store activity to stderr")

	withApp := func(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), verbose)
			if err != nil {
				return err
			}
			defer a.close()
			return run(cmd, a, args)
		}
	}

	root.AddCommand(
		newResidentsCmd(withApp),
		newPromptsCmd(withApp),
		newRecordingsCmd(withApp),
		newExportCmd(withApp),
		newHashPasscodeCmd(),
	)
	return root
}
