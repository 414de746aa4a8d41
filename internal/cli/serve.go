package cli

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"taproom/internal/server/app"
)

func newServeCmd(version, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile)
			application, err := app.New(version, buildDate, logger)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}
}
