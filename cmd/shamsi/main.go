package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskmaster/shamsi/cmd/shamsi/commands"
)

// @title Shamsi API
// @version 1.0
// @description Solar Hijri (Jalali) calendar conversion and formatting API

// @license.name MIT

// @host localhost:8080
// @BasePath /

func main() {
	rootCmd := &cobra.Command{
		Use:          "shamsi",
		Short:        "Jalali calendar toolkit",
		Long:         `Shamsi converts between the Gregorian and Solar Hijri calendars, renders timestamps as Jalali dates and serves the same operations over HTTP.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewFormatCommand())
	rootCmd.AddCommand(commands.NewToJalaliCommand())
	rootCmd.AddCommand(commands.NewToGregorianCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewTranslitCommand())
	rootCmd.AddCommand(commands.NewDateCommand())
	rootCmd.AddCommand(commands.NewMktimeCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
