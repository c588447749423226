// Package cli wires the cobra command tree over the registries. Every
// command is one logical operation: open the registries, mutate or read,
// persist, exit. No state survives between invocations.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Manage clients, projects, and document records",
	Long: `docgen keeps a registry of clients, projects, and generated documents and
mints the sequential display numbers (K-001, P-001-02, RE-2026-003) that
document templates and file names are built from.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
