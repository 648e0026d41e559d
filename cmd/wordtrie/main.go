// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the wordtrie dictionary as a msgpack IPC server or as an
interactive menu shell.

wordtrie keeps every word in a 26-ary trie over a-z. Each node counts how
many times its word was inserted, so repeated words in a source file raise
its frequency. On top of the trie it offers prefix autocomplete, phonetic
lookup from declared sound-alike groups and abbreviation expansion.

# Usage

Start the server with sources from the config:

	wordtrie

Run the menu shell with debug logs:

	wordtrie -c -d

Use explicit sources:

	wordtrie -c -words ./data/dictionary.txt -abbr ./data/abbreviations.txt -phonetic ./data/phonetic.txt

A source flag naming a file that exists relative to the working directory is
used as given. Source names from the config, and flag values that do not
exist locally, are resolved against the data directory, which is searched
for in the working directory, next to the binary and in the config
directory.

# Configuration

The TOML config is created with defaults on first run:

	[dict]
	data_dir = "data"
	words_file = "dictionary.txt"
	abbreviations_file = "abbreviations.txt"
	phonetics_file = "phonetic.txt"
	suggestion_limit = 3
	cache_size = 256

	[server]
	max_limit = 64
	max_prefix = 60

	[cli]
	default_limit = 3
	no_filter = false

Flags override the config for a single run.

# IPC Protocol

See package server for the request and response maps. A minimal exchange:

	{"id": "req1", "action": "complete", "p": "ca", "l": 3}
	{"id": "req1", "status": "ok", "s": [{"w": "car", "r": 1, "f": 2}], "c": 1, "t": 12}

# Command Line Flags

	-version
	    Show current version
	-d  Enable debug logging
	-c  Run the menu shell instead of the server
	-config string
	    Custom config file
	-data string
	    Data directory holding the sources
	-words string
	    Word list file
	-abbr string
	    Abbreviation file
	-phonetic string
	    Phonetic group file
	-limit int
	    Number of suggestions to return
	-no-filter
	    Pass shell input to the dictionary as typed
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordtrie/internal/cli"
	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordtrie"
	gh      = "https://github.com/bastiangx/wordtrie"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the menu shell instead of the IPC server")
	configFile := flag.String("config", "", "Path to a custom config file")
	dataDir := flag.String("data", "", "Directory containing the dictionary sources (default from config)")
	wordsFile := flag.String("words", "", "Word list file (default from config)")
	abbrFile := flag.String("abbr", "", "Abbreviation file (default from config)")
	phoneticFile := flag.String("phonetic", "", "Phonetic group file (default from config)")
	limit := flag.Int("limit", 0, "Number of suggestions to return (default from config)")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering in the shell (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	log.Debug("Runtime", "info", pathResolver.GetRuntimeInfo())

	cfg, configPath := config.LoadConfigWithPriority(*configFile, pathResolver.GetConfigPath(config.FileName))
	log.Debugf("Using config file: (%s)", configPath)

	if *dataDir != "" {
		cfg.Dict.DataDir = *dataDir
	}

	resolvedDataDir := pathResolver.GetDataDir(cfg.Dict.DataDir, cfg.Dict.WordsFile)
	log.Debugf("Using data dir at: %s", resolvedDataDir)

	// flag paths are taken as typed when they exist; config names live in the data dir
	source := func(flagValue, configName string) string {
		if flagValue != "" {
			return pathResolver.ResolveFlagSource(resolvedDataDir, flagValue)
		}
		return utils.ResolveSource(resolvedDataDir, configName)
	}
	sources := dictionary.Sources{
		Words:         source(*wordsFile, cfg.Dict.WordsFile),
		Abbreviations: source(*abbrFile, cfg.Dict.AbbreviationsFile),
		Phonetics:     source(*phoneticFile, cfg.Dict.PhoneticsFile),
	}
	log.Debug("Sources", "words", sources.Words, "abbr", sources.Abbreviations, "phonetic", sources.Phonetics)

	dict := dictionary.New(
		dictionary.WithSuggestLimit(cfg.Dict.SuggestionLimit),
		dictionary.WithCacheSize(cfg.Dict.CacheSize),
	)
	if err := dict.Initialize(sources); err != nil {
		// a missing source leaves that feature empty; the rest still works
		log.Warnf("Some sources could not be loaded:\n%v", err)
	}
	log.Debug("Dictionary init done", "words", dict.Trie().Len())

	if *cliMode {
		log.SetReportTimestamp(false)
		shellLimit := cfg.CLI.DefaultLimit
		if *limit > 0 {
			shellLimit = *limit
		}
		filterOff := *noFilter || cfg.CLI.NoFilter
		log.Debug("Input info:", "limit", shellLimit, "noFilter", filterOff)

		inputHandler := cli.NewInputHandler(dict, os.Stdout, shellLimit, filterOff)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *limit > 0 {
		cfg.Dict.SuggestionLimit = *limit
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(dict, cfg, configPath)
	showStartupInfo(resolvedDataDir, dict)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printVersion() {
	l := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ WordTrie ] Trie dictionary with autocomplete, phonetic matching and abbreviations")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(dataDir string, dict *dictionary.Dictionary) {
	l := logger.New(AppName)
	l.SetLevel(log.InfoLevel)

	stats := dict.Stats()
	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("data dir: ( %s )", utils.GetAbsolutePath(dataDir))
	l.Info("dictionary", "words", stats["words"], "abbreviations", stats["abbreviations"], "phonetic", stats["phoneticKeys"])
	l.Info("status: ready")
}
