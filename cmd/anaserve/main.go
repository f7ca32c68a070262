// Copyright 2025 The Anaserve Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the anaserve anagram lookup server and CLI.

Anaserve answers anagram queries against a wordlist using signature
indexing: words are grouped under a case-folded, letter-sorted key, so
every lookup is a single bucket fetch. It can operate as a MessagePack
IPC server for integration with editors and bots, or as a command line
tool for one-shot lookups and interactive sessions.

# Usage

Look up anagrams of a word against the embedded wordlist:

	anaserve find listen

Test two words and print the verdict:

	anaserve test cat tac
	anaserve -s -t standard test tca cat

Enumerate the anagram groups of a custom wordlist:

	anaserve -w /usr/share/dict/words groups

Print letter permutations (no wordlist involved):

	anaserve -limit 20 permute stop

With no positional arguments anaserve reads words interactively from
stdin and prints their anagrams.

# Configuration

Runtime configuration is managed through a TOML file that supports
lookup defaults, server limits, and wordlist settings:

	[find]
	default_limit = 100
	min_group_size = 2

	[server]
	max_limit = 256
	max_query_len = 64

	[wordlist]
	path = ""
	dedupe = false

The config file is automatically created with defaults if it doesn't
exist. An empty wordlist path selects the embedded default list. Flags
override file values; file values override builtin defaults.

# IPC Protocol

Server mode communicates via MessagePack over stdin/stdout. Query
requests are processed synchronously with microsecond timing information
included in responses.

Send a query request:

	{"id": "req1", "q": "listen", "l": 50}

Receive the anagrams in wordlist order:

	{"id": "req1", "a": ["silent", "enlist"], "c": 2, "t": 12}

Index requests expose stats and group enumeration:

	{"id": "ix1", "action": "info"}
	{"id": "ix2", "action": "groups", "min_size": 3}

# Server Mode

The -serve flag starts a MessagePack IPC server that processes query
requests from stdin and writes responses to stdout. This design enables
integration with editors and chat bots through process communication.

	srv := server.NewServer(index, appConfig)
	err := srv.Start()

The server handles request parsing, validation, and response formatting.
Query length and result limits come from the [server] config section.

# CLI Mode

The default mode provides one-shot commands (find, test, groups,
permute) and an interactive interface for exploring a wordlist. Results
go to stdout; diagnostics go to stderr so output stays scriptable.

	inputHandler := cli.NewInputHandler(index, maxQueryLen, limit)
	err := inputHandler.Start()

# Anagram Engine

The core lookup functionality is provided by the anagram package, which
buckets words under their signatures and keeps the signature set in a
Patricia trie for ordered group enumeration.

	index := anagram.Build(words)
	matches, err := index.Find("listen")

The index is immutable once built and safe for concurrent lookups.
Matching is always case-insensitive and results keep the wordlist's
original spellings in wordlist order. A word is never its own anagram:
exact and case-variant spellings of the query are excluded.

# Command Line Flags

The following flags control application behavior:

	-w string
	    Wordlist file, one word per line (default: embedded list)
	-d  Enable debug mode with detailed logging
	-serve
	    Run as a MessagePack IPC server instead of the CLI
	-limit int
	    Maximum results to print or send (default from config)
	-min int
	    Minimum group size for the groups mode
	-t string
	    Anagram test type: proper or standard (default "proper")
	-s  Simple output: results only, no trailers or verdict sentences
	-dedupe
	    Drop exact duplicate wordlist entries while loading
	-config string
	    Custom config file path
	-version
	    Show current version

Exit codes follow grep conventions: 0 when results were found or the
verdict is affirmative, 1 when not, 2 on usage or wordlist errors.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/anaserve/anaserve/internal/cli"
	"github.com/anaserve/anaserve/internal/logger"
	"github.com/anaserve/anaserve/internal/utils"
	"github.com/anaserve/anaserve/pkg/anagram"
	"github.com/anaserve/anaserve/pkg/config"
	"github.com/anaserve/anaserve/pkg/server"
	"github.com/anaserve/anaserve/pkg/wordlist"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "anaserve"
	gh      = "https://github.com/anaserve/anaserve"
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

// main calls other packages to build the index and run the selected
// mode. main() does not implement their logic and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run as a MessagePack IPC server")
	wordlistPath := flag.String("w", defaultConfig.Wordlist.Path, "Wordlist file, one word per line (empty for the embedded list)")
	dedupe := flag.Bool("dedupe", defaultConfig.Wordlist.Dedupe, "Drop exact duplicate wordlist entries while loading")
	limit := flag.Int("limit", defaultConfig.Find.DefaultLimit, "Maximum results to print or send (0 for all)")
	minGroup := flag.Int("min", defaultConfig.Find.MinGroupSize, "Minimum group size for the groups mode")
	testType := flag.String("t", "proper", "Anagram test type: proper or standard")
	simple := flag.Bool("s", false, "Simple output: results only, no trailers or verdict sentences")
	configPath := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ Anaserve ] Serves really fast anagram lookups!")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, usedConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Warnf("Failed to load config: %v. Using builtin defaults...", err)
		appConfig = defaultConfig
	}

	// flags beat the config file, but only when actually passed
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if !setFlags["limit"] {
		*limit = appConfig.Find.DefaultLimit
	}
	if !setFlags["min"] {
		*minGroup = appConfig.Find.MinGroupSize
	}
	if !setFlags["w"] {
		*wordlistPath = appConfig.Wordlist.Path
	}
	if !setFlags["dedupe"] {
		*dedupe = appConfig.Wordlist.Dedupe
	}

	words, err := wordlist.Resolve(*wordlistPath, wordlist.Options{Dedupe: *dedupe})
	if err != nil {
		log.Errorf("Failed to load wordlist: %v", err)
		os.Exit(2)
	}

	index := anagram.Build(words)
	stats := index.Stats()
	log.Debugf("Indexed %d words into %d buckets (%d anagram sets)",
		stats["totalWords"], stats["buckets"], stats["anagramSets"])

	if *serveMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(index, appConfig)

		showStartupInfo(index.Len(), usedConfigPath)

		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxQueryLen", appConfig.Server.MaxQueryLen,
			"limit", *limit)

		inputHandler := cli.NewInputHandler(index, appConfig.Server.MaxQueryLen, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	switch args[0] {
	case "find":
		if len(args) < 2 {
			log.Error("usage: anaserve find <word>")
			os.Exit(2)
		}
		if *testType == "standard" {
			log.Error("no find mode for standard anagrams, use `anaserve permute` instead")
			os.Exit(2)
		}
		if *testType != "proper" {
			log.Errorf("unknown test type %q, want proper or standard", *testType)
			os.Exit(2)
		}
		os.Exit(cli.RunFind(index, args[1], *limit, *simple))
	case "test":
		if len(args) < 3 {
			log.Error("usage: anaserve test <word> <word>")
			os.Exit(2)
		}
		os.Exit(cli.RunTest(index, args[1], args[2], *testType, *simple))
	case "groups":
		os.Exit(cli.RunGroups(index, *minGroup, *simple))
	case "permute":
		if len(args) < 2 {
			log.Error("usage: anaserve permute <word>")
			os.Exit(2)
		}
		os.Exit(cli.RunPermute(args[1], *limit, *simple))
	default:
		log.Errorf("unknown command %q, want find, test, groups or permute", args[0])
		os.Exit(2)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(wordCount int, configPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" Anaserve ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("wordlist: %d words", wordCount)
	if configPath != "" {
		log.Infof("config: ( %s )", utils.GetAbsolutePath(configPath))
	}
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
