package main

import (
	"os"

	"github.com/spf13/cobra"

	"libris/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "libris",
		Short: "Libris - library management service",
		Long:  `Libris is a library management service: members, authors, books, and book loans behind a role-gated REST API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
