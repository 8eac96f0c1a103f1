/*
Package main implements the prefix completion server and CLI [DBG] application.

Autocomplete provides prefix-based word completion over a growable
vocabulary, backed by interchangeable engines. It can operate as a
MessagePack IPC server for integration with text editors, or as a CLI
application for testing and debugging.

Three engines are available: a ternary search tree (the default, with a
native common-prefix walk), a sorted slice (with a native bulk insert)
and a patricia trie. All three present the same operation set through
the completer adapter, which fills in any operation an engine does not
implement natively.

# Usage

Start the server with default settings:

	autocomplete

Use a word list and enable debug mode:

	autocomplete -dict words.txt -d

Run in CLI mode for interactive testing with the sorted engine:

	autocomplete -c -engine sorted -limit 10

The word list may be plain text (one word per line, '#' comments) or a
packed msgpack list produced by the dictionary package.

# Configuration

Runtime configuration is managed through a TOML file that supports
server parameters, engine selection and CLI defaults:

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60

	[engine]
	type = "ternary"

	[dict]
	path = ""
	max_words = 50000

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Completion
requests are processed synchronously with microsecond timing information
included in responses.

Send a completion request:

	{"id": "req1", "op": "complete", "p": "che", "l": 20}

Receive the candidate set:

	{"id": "req1", "s": ["cherry", "cherry-pick"], "c": 2, "t": 145}

Common-prefix and add requests follow the same shape; see the server
package for the full message set.

# Command Line Flags

The following flags control application behavior:

	-engine string
	    Engine backing the corpus: ternary, sorted or radix
	-dict string
	    Word list to preload (text or packed msgpack)
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of candidates to show (default from config)
	-prmin int
	    Minimum prefix length for queries
	-prmax int
	    Maximum prefix length for queries
	-words int
	    Maximum words to load from the word list (0 for all)
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/elbeno/autocomplete/internal/cli"
	"github.com/elbeno/autocomplete/internal/logger"
	"github.com/elbeno/autocomplete/pkg/config"
	"github.com/elbeno/autocomplete/pkg/dictionary"
	"github.com/elbeno/autocomplete/pkg/server"
	"github.com/elbeno/autocomplete/pkg/suggest"
)

const (
	Version = "1.0.0"
	AppName = "autocomplete"
	gh      = "https://github.com/elbeno/autocomplete"
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

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	engineType := flag.String("engine", defaultConfig.Engine.Type, "Engine backing the corpus: ternary, sorted or radix")
	dictPath := flag.String("dict", defaultConfig.Dict.Path, "Word list to preload (text or packed msgpack)")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of candidates to show")
	minPrefix := flag.Int("prmin", defaultConfig.CLI.DefaultMinLen, "Minimum prefix length for queries (1 < n <= prmax)")
	maxPrefix := flag.Int("prmax", defaultConfig.CLI.DefaultMaxLen, "Maximum prefix length for queries")
	wordLimit := flag.Int("words", defaultConfig.Dict.MaxWords, "Maximum number of words to load (use 0 for all words)")

	flag.Parse()

	if *showVersion {
		showVersionBanner()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	if *engineType != "" {
		appConfig.Engine.Type = *engineType
	}
	if *dictPath != "" {
		appConfig.Dict.Path = *dictPath
	}
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	engine, err := suggest.NewEngine(appConfig.Engine.Type)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	completer := suggest.NewCompleter(engine)
	log.Debugf("Engine: %s", appConfig.Engine.Type)

	if appConfig.Dict.Path != "" {
		loader := dictionary.NewLoader(completer, *wordLimit)
		if err := loader.LoadFile(appConfig.Dict.Path); err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		log.Debugf("Preloaded %d words", loader.Loaded())
	} else {
		log.Warn("No word list specified, starting with an empty corpus...")
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", *minPrefix,
			"maxPrefix", *maxPrefix,
			"limit", *limit)

		inputHandler := cli.NewInputHandler(completer, *minPrefix, *maxPrefix, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig, activePath)

	showStartupInfo(appConfig.Engine.Type)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showVersionBanner prints the styled version info.
func showVersionBanner() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ autocomplete ] prefix completion with pluggable engines")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(engine string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==============")
	println(" autocomplete ")
	println("==============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("engine: ( %s )", engine)
	log.Info("status: ready")
	println("==============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
