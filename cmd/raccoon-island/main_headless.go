//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/raccoon-island/internal/island"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Without cgo there is no raylib window; the terminal viewer is the only one.
func main() {
	var (
		showVersion bool
		configPath  string
		slot        string
		lang        string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "island config YAML (defaults to the built-in layout)")
	flag.StringVar(&slot, "slot", "default", "save slot name")
	flag.StringVar(&lang, "lang", "", "label language (defaults to $LANG)")
	flag.Bool("tui", true, "ignored; headless builds always use the terminal viewer")
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
	if err := runTerminal(cfg, slot); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
