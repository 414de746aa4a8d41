package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version, buildDate string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taproom",
		Short: "Taproom beer and customer catalog service",
	}
	root.AddCommand(newServeCmd(version, buildDate))
	root.AddCommand(newTokenCmd())
	root.AddCommand(newVersionCmd(version, buildDate))
	return root
}
