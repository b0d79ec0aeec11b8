package main

import (
	"libraryhub/config"
	"libraryhub/helper"
	"libraryhub/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Run LibraryHub database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.InitLogger()
			logger.SetLogLevel(config.Get())
		},
	}

	root.AddCommand(
		action("up", "Apply every pending migration", helper.Up),
		action("down", "Roll back the latest migration", helper.Down),
		action("drop", "Roll back every migration", helper.Drop),
		action("step-up", "Apply the next pending migration", helper.StepUp),
	)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}

func action(use, short string, run func(*config.Config) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(config.Get())
		},
	}
}
