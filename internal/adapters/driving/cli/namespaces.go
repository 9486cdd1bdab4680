package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/services"
)

var namespacesCmd = &cobra.Command{
	Use:     "namespaces",
	Aliases: []string{"ns"},
	Short:   "List registered namespaces",
	Long: `List the registered namespaces in the order URLs are matched against them.

Namespaces come from the built-in set plus the file named by the
namespaces.file setting.`,
	RunE: runNamespacesList,
}

var namespacesCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a namespace definitions file",
	Long: `Load a TOML or YAML namespace definitions file and register it on top of
the built-in namespaces without changing the running registry.`,
	Args: cobra.ExactArgs(1),
	RunE: runNamespacesCheck,
}

func init() {
	namespacesCmd.AddCommand(namespacesCheckCmd)
	rootCmd.AddCommand(namespacesCmd)
}

func runNamespacesList(cmd *cobra.Command, _ []string) error {
	if urnService == nil {
		return errors.New("urn service not configured")
	}

	list := urnService.Namespaces()
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No namespaces registered.")
		return nil
	}

	if isTerminal(cmd.OutOrStdout()) {
		fmt.Fprint(cmd.OutOrStdout(), renderNamespaces(list, newStyles()))
		return nil
	}

	for _, ns := range list {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", ns.ID, ns.Kind, ns.BaseURL)
	}
	return nil
}

func runNamespacesCheck(cmd *cobra.Command, args []string) error {
	if namespaceLoader == nil {
		return errors.New("namespace loader not configured")
	}

	defs, err := namespaceLoader(args[0])
	if err != nil {
		return err
	}

	registry, err := services.NewDefaultNamespaceRegistry()
	if err != nil {
		return err
	}
	if err := registry.RegisterDefinitions(defs); err != nil {
		return fmt.Errorf("invalid namespaces in %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d namespace(s) OK\n", args[0], len(defs))
	for _, def := range defs {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", strings.ToLower(strings.TrimSpace(def.ID)), def.Kind)
	}
	return nil
}

// renderNamespaces formats namespaces as an aligned, styled table.
func renderNamespaces(list []domain.Namespace, st styles) string {
	idWidth, kindWidth := len("NAMESPACE"), len("KIND")
	for _, ns := range list {
		idWidth = max(idWidth, len(ns.ID))
		kindWidth = max(kindWidth, len(ns.Kind))
	}

	idCol := lipgloss.NewStyle().Width(idWidth + 2)
	kindCol := lipgloss.NewStyle().Width(kindWidth + 2)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		idCol.Inherit(st.header).Render("NAMESPACE"),
		kindCol.Inherit(st.header).Render("KIND"),
		st.header.Render("BASE URL"),
	))
	b.WriteString("\n")

	for _, ns := range list {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			idCol.Inherit(st.id).Render(ns.ID),
			kindCol.Inherit(st.muted).Render(string(ns.Kind)),
			ns.BaseURL,
		))
		b.WriteString("\n")
	}
	return b.String()
}
