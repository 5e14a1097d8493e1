package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/persona"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List and select resume personas",
}

var personasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List personas and their roles",
	Args:  cobra.NoArgs,
	RunE:  runPersonasList,
}

var personasUseCmd = &cobra.Command{
	Use:   "use <persona> [role]",
	Short: "Select the current persona and role",
	Long:  "Records the persona (and role) used by build when --persona/--role are not given. The role defaults to the persona's default role.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPersonasUse,
}

var personasCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current persona and role",
	Args:  cobra.NoArgs,
	RunE:  runPersonasCurrent,
}

var personasListJSON bool

func init() {
	personasListCmd.Flags().BoolVar(&personasListJSON, "json", false, "Print personas as JSON")

	personasCmd.AddCommand(personasListCmd, personasUseCmd, personasCurrentCmd)
	rootCmd.AddCommand(personasCmd)
}

func personaStore(cmd *cobra.Command) (*persona.Store, error) {
	cfg, err := loadSettings(cmd, nil)
	if err != nil {
		return nil, err
	}
	return persona.NewStore(cfg.Root), nil
}

func runPersonasList(cmd *cobra.Command, _ []string) error {
	store, err := personaStore(cmd)
	if err != nil {
		return err
	}
	personas, err := store.List()
	if err != nil {
		return err
	}

	if personasListJSON {
		jsonBytes, err := json.MarshalIndent(personas, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal personas to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	current, _, err := store.Current()
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintPersonas(personas, current)
	return nil
}

func runPersonasUse(cmd *cobra.Command, args []string) error {
	store, err := personaStore(cmd)
	if err != nil {
		return err
	}

	p, err := store.Get(args[0])
	if err != nil {
		return err
	}

	role := persona.DefaultRole
	if p.DefaultRole != nil {
		role = *p.DefaultRole
	}
	if len(args) == 2 {
		role = args[1]
		if len(p.Roles) > 0 && !slices.Contains(p.Roles, role) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %s has no built resume for role %q yet\n", p.Name, role)
		}
	}

	if err := store.SetCurrent(p.Name, role); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Current persona: %s (%s)\n", p.Name, role)
	return nil
}

func runPersonasCurrent(cmd *cobra.Command, _ []string) error {
	store, err := personaStore(cmd)
	if err != nil {
		return err
	}
	name, role, err := store.Current()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", name, role)
	return nil
}
