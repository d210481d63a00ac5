package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/adapters/sqlite"
	"tempo/internal/adapters/tui"
	"tempo/internal/application"
	"tempo/internal/config"
)

func main() {
	store := sqlite.NewStore()
	if err := store.Open(config.DatabasePath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec := application.NewReconciler(store)

	app := tui.NewApp(rec)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
