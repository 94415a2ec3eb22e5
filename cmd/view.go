package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/RoriPersons/internal/config"
	"github.com/Rorical/RoriPersons/internal/models"
	"github.com/Rorical/RoriPersons/internal/store"
	"github.com/Rorical/RoriPersons/internal/view"
)

var (
	viewActions []string
	viewYAML    bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Apply actions to the seed and print the result",
	Long: `Replay actions against the seed records without starting the interface and
print what would be drawn. Actions run in order:

  toggle              show or hide the list
  delete:<index>      remove the record at index
  rename:<id>=<name>  change the name of a record`,
	Example: `  roripersons view --do toggle --do delete:0 --do rename:rerf=Manuel`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		initial, err := cfg.InitialState()
		if err != nil {
			log.Fatalf("Failed to build initial state: %v", err)
		}

		final, err := replay(initial, viewActions)
		if err != nil {
			log.Fatalf("Action failed: %v", err)
		}

		vm := view.Derive(final)
		if viewYAML {
			err = writeViewYAML(os.Stdout, vm)
		} else {
			err = writeView(os.Stdout, vm)
		}
		if err != nil {
			log.Fatalf("Failed to write view: %v", err)
		}
	},
}

func parseAction(spec string) (store.Action, error) {
	name, arg, _ := strings.Cut(spec, ":")
	switch name {
	case "toggle":
		return store.Toggle{}, nil
	case "delete":
		index, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("delete: bad index %q", arg)
		}
		return store.Delete{Index: index}, nil
	case "rename":
		id, newName, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("rename: expected <id>=<name>, got %q", arg)
		}
		return store.Rename{ID: id, Name: newName}, nil
	}
	return nil, fmt.Errorf("unknown action %q", spec)
}

// replay applies the actions in order and stops at the first failure.
func replay(s *store.State, specs []string) (*store.State, error) {
	for i, spec := range specs {
		action, err := parseAction(spec)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		s, err = action.Apply(s)
		if err != nil {
			return nil, fmt.Errorf("action %d (%s): %w", i, action, err)
		}
	}
	return s, nil
}

func writeView(w io.Writer, vm view.ViewModel) error {
	classes := vm.ClassName()
	if classes == "" {
		classes = "(none)"
	}
	if _, err := fmt.Fprintf(w, "classes: %s\nbutton: %s\n", classes, vm.ToggleButtonColor); err != nil {
		return err
	}
	if !vm.ListShown {
		_, err := fmt.Fprintln(w, "persons: hidden")
		return err
	}
	for i, p := range vm.VisibleList {
		if _, err := fmt.Fprintf(w, "%d. %s [%s]\n", i, p.Describe(), p.ID); err != nil {
			return err
		}
	}
	return nil
}

type viewOutput struct {
	Shown   bool            `yaml:"shown"`
	Button  string          `yaml:"button"`
	Classes []string        `yaml:"classes"`
	Persons []models.Person `yaml:"persons,omitempty"`
}

func writeViewYAML(w io.Writer, vm view.ViewModel) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(viewOutput{
		Shown:   vm.ListShown,
		Button:  string(vm.ToggleButtonColor),
		Classes: vm.StyleClasses,
		Persons: vm.VisibleList,
	}); err != nil {
		return err
	}
	return enc.Close()
}

func init() {
	viewCmd.Flags().StringArrayVar(&viewActions, "do", nil, "action to apply, repeatable")
	viewCmd.Flags().BoolVar(&viewYAML, "yaml", false, "print the view as YAML")
}
