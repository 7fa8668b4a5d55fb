package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/gbvars988/SoilFullStack/database/migrations"
)

func main() {
	root := &cobra.Command{
		Use:           "soil",
		Short:         "SOIL organic food marketplace API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		migrateRollbackCmd(),
		migrateStatusCmd(),
		seedCmd(),
		routeListCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
