//go:build cgo

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/appengine-ltd/raccoon-island/internal/gui"
	"github.com/appengine-ltd/raccoon-island/internal/island"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		slot        string
		lang        string
		terminal    bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "island config YAML (defaults to the built-in layout)")
	flag.StringVar(&slot, "slot", "default", "save slot name")
	flag.StringVar(&lang, "lang", "", "label language (defaults to $LANG)")
	flag.BoolVar(&terminal, "tui", false, "run the terminal viewer instead of the window")
	flag.Parse()

	if showVersion {
		fmt.Printf("Raccoon Island %s (%s) %s\n", version, commit, date)
		return
	}

	configureLocale(lang)
	cfg, err := island.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if terminal {
		if err := runTerminal(cfg, slot); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Island:    cfg,
		Store:     island.OpenStore(island.AppName),
		Slot:      slot,
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
