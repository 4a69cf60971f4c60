// documind-tui - A terminal front-end for the DocuMind document
// question-answering service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/morganforge/documind-tui/internal/config"
	"github.com/morganforge/documind-tui/internal/docmind"
	"github.com/morganforge/documind-tui/internal/logging"
	"github.com/morganforge/documind-tui/internal/session"
	"github.com/morganforge/documind-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		serverURL   = flag.String("url", "", "DocuMind service base URL (overrides config)")
		configPath  = flag.String("config", "", "path to config file")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("documind-tui %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	// The TUI needs a real terminal; refuse pipes early with a clear
	// message instead of garbling the output.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "documind-tui requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Server.BaseURL = *serverURL
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	// Diagnostics go to a file under the config dir; writing to the TTY
	// would corrupt the TUI.
	if dir, dirErr := config.ConfigDir(); dirErr == nil {
		if err := logging.Init(dir); err == nil {
			defer logging.Close()
		}
	}
	logging.Infof("documind-tui %s starting, server %s", Version, cfg.Server.BaseURL)

	client := docmind.NewClientWithConfig(&docmind.ClientConfig{
		BaseURL: cfg.Server.BaseURL,
	})

	// A new identity per launch; the service keys the conversation on it.
	sessionID := session.NewID()

	m := chat.New(config.Global(), client, sessionID, Version)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration from the given path, or from the
// default location when none is given. Environment overrides win.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
		if err == nil {
			if p, pathErr := config.ConfigPath(); pathErr == nil {
				if _, statErr := os.Stat(p); os.IsNotExist(statErr) {
					// First run: materialize the defaults so the user
					// has a file to edit.
					_ = config.Save(config.Default())
				}
			}
		}
	}
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	return cfg, nil
}
