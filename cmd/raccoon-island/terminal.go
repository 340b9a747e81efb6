package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/raccoon-island/internal/island"
	"github.com/appengine-ltd/raccoon-island/internal/ui"
)

const terminalLogFile = "raccoon-island.log"

// runTerminal starts the terminal viewer. Log output goes to a file so it
// does not tear the alternate screen.
func runTerminal(cfg island.Config, slot string) error {
	f, err := tea.LogToFile(terminalLogFile, "raccoon-island")
	if err != nil {
		return err
	}
	defer f.Close()

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Island:    cfg,
		Store:     island.OpenStore(island.AppName),
		Slot:      slot,
		Logger:    slog.New(slog.NewTextHandler(f, nil)),
	})
	return app.Run()
}
