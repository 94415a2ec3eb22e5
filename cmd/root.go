package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriPersons/internal/app"
	"github.com/Rorical/RoriPersons/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "roripersons",
	Short: "A tiny terminal person list",
	Long:  `RoriPersons shows a list of people you can toggle, rename and delete.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Default behavior: run the list application
		application, err := app.NewApplication(cfg)
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(viewCmd)
}
