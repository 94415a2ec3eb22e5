package cmd

import (
	"fmt"
	"log"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriPersons/internal/config"
	"github.com/Rorical/RoriPersons/internal/models"
	"github.com/Rorical/RoriPersons/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Manage the records the list starts with",
	Long:  `Manage the seed records loaded into the list every time the application starts.`,
}

var listSeedCmd = &cobra.Command{
	Use:   "list",
	Short: "List seed records",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Config: %s\n\n", cfg.Path())
		if len(cfg.Seed) == 0 {
			fmt.Println("No seed records")
			return
		}
		for i, p := range cfg.Seed {
			fmt.Printf("  %d. %s (%s)\n", i, p.Name, p.ID)
			fmt.Printf("     Age: %d\n", p.Age)
		}
	},
}

var addSeedCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a seed record",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		person := models.Person{ID: newPersonID()}

		if len(args) > 0 {
			person.Name = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Name",
			}
			person.Name, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		agePrompt := promptui.Prompt{
			Label:    "Age",
			Default:  "30",
			Validate: validateAge,
		}
		ageText, err := agePrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		person.Age, err = parseAge(ageText)
		if err != nil {
			log.Fatalf("Invalid age: %v", err)
		}

		cfg.Seed = append(cfg.Seed, person)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Added %s (%s)\n", person.Name, person.ID)
	},
}

var removeSeedCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a seed record",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var id string
		if len(args) > 0 {
			id = args[0]
		} else {
			if len(cfg.Seed) == 0 {
				log.Fatalf("No seed records to remove")
			}

			prompt := promptui.Select{
				Label: "Select record to remove",
				Items: cfg.Seed,
				Templates: &promptui.SelectTemplates{
					Active:   "▸ {{ .Name }} ({{ .ID }})",
					Inactive: "  {{ .Name }} ({{ .ID }})",
					Selected: "{{ .Name }}",
				},
			}
			index, _, err := prompt.Run()
			if err != nil {
				log.Fatalf("Selection failed: %v", err)
			}
			id = cfg.Seed[index].ID
		}

		seed, err := removeSeed(cfg.Seed, id)
		if err != nil {
			log.Fatalf("Failed to remove record: %v", err)
		}

		// Confirm deletion
		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Remove '%s'", id),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Removal cancelled")
			return
		}

		cfg.Seed = seed
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Removed '%s'\n", id)
	},
}

var resetSeedCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default seed records",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		cfg.Seed = store.Seed()
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Println("Seed records restored")
	},
}

func newPersonID() string {
	return uuid.NewString()
}

func parseAge(input string) (int, error) {
	age, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("age must be a number")
	}
	if age < 0 {
		return 0, fmt.Errorf("age must not be negative")
	}
	return age, nil
}

func validateAge(input string) error {
	_, err := parseAge(input)
	return err
}

func removeSeed(seed []models.Person, id string) ([]models.Person, error) {
	i := slices.IndexFunc(seed, func(p models.Person) bool { return p.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", id, store.ErrRecordNotFound)
	}
	return slices.Delete(slices.Clone(seed), i, i+1), nil
}

func init() {
	// Add subcommands to seed
	seedCmd.AddCommand(listSeedCmd)
	seedCmd.AddCommand(addSeedCmd)
	seedCmd.AddCommand(removeSeedCmd)
	seedCmd.AddCommand(resetSeedCmd)
}
