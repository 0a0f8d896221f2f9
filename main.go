// Package main is the entry point for the envtree editor.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/envtree/envtree/internal/document"
	"github.com/envtree/envtree/internal/ledger"
	"github.com/envtree/envtree/internal/session"
	"github.com/envtree/envtree/internal/tui"
	"github.com/envtree/envtree/internal/tui/events"
)

var version = "0.2.0"

func newRootCmd() *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "envtree <config-file>",
		Short: "Browse and edit env-templated config documents",
		Long: `envtree opens a nested configuration document (YAML, JSON, or TOML) in a
two-pane terminal browser. Scalar values of the form ${VAR:default} are
bound to environment variables; edited values are written to a shell-
sourceable export store instead of the document itself.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], storePath)
		},
	}

	cmd.Flags().StringVar(&storePath, "store", "export.env",
		"file the edited values are exported to")

	return cmd
}

func run(docPath, storePath string) error {
	led, err := ledger.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	// A document that fails to parse still yields a browsable error tree.
	root := document.Load(docPath)
	led.Rehydrate(root)

	eventBroker := events.NewBroker()
	sess := session.New(root, led)

	p := tea.NewProgram(tui.New(docPath, sess, eventBroker), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
