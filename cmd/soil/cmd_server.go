package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gbvars988/SoilFullStack/config"
	"github.com/gbvars988/SoilFullStack/internal/kernel"
	"github.com/gbvars988/SoilFullStack/internal/server"
	"github.com/gbvars988/SoilFullStack/pkg/database"
	"github.com/gbvars988/SoilFullStack/pkg/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print every registered named route",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}

			// The route table is static and handlers never run here, so an
			// unreachable database must not block listing.
			db, err := database.Connect()
			if err != nil {
				logger.Warn("database unavailable, listing routes without it", "error", err)
				db = nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tNAME")
			for _, route := range kernel.Build(db).Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", route.Method, route.Path, route.Name)
			}
			return w.Flush()
		},
	}
}
