package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/ruminaider/job-browser/cmd/job-browser/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive job browser",
	RunE:  runBrowse,
}

// stdinIsTerminal is swapped out by tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(os.Stdin.Fd())
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// TTY guard: fall back to a plain listing when stdin is not a terminal
	// (piping, CI, scripts, etc.)
	if !stdinIsTerminal() {
		return runList(cmd, args)
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.stop()

	model := tui.NewModel(tui.Options{
		Source:          a.source,
		Timeout:         a.cfg.Timeout,
		Batch:           a.cfg.BatchOptions(),
		Render:          a.cfg.RenderOptions(),
		ScrollThreshold: a.cfg.ScrollThreshold,
		Logger:          a.logger,
		Metrics:         a.metrics,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
