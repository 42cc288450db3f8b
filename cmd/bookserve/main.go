// Copyright 2026 The BookServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the book recommendation server and CLI application.

BookServe indexes a book catalog by tokenizing titles, authors and genres
into a prefix trie, then serves recommendation queries over it. A query
prefix matches every book containing a word that starts with it; results are
narrowed by author/genre filters and a minimum rating, and come back sorted
by rating descending. It can operate as a MessagePack IPC server for
integration with UIs and editors, or as a CLI application for testing and
debugging.

The catalog is loaded and indexed once at startup; after that the trie is
read-only, so queries are lock-free and safe to serve concurrently.

# Usage

Start the server with the default catalog:

	bserve

Use a custom catalog file and enable debug mode:

	bserve -data /path/to/books.csv -d

Run in CLI mode for interactive testing:

	bserve -c -limit 10 -genre Sci-Fi -rating 3.5

The catalog is a CSV file whose header must include the title, authors,
genre and average_rating columns; an image_url column is passed through for
presentation. Missing required columns abort startup before any indexing.

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_limit = 64
	max_query = 60

	[catalog]
	data_file = "books_DB.csv"
	min_rating = 1.0

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Recommendation
requests are processed synchronously with microsecond timing information
included in responses.

Send a recommendation request:

	{"id": "req1", "q": "dune", "a": "All", "g": "All", "r": 1, "l": 24}

Receive matching books ranked by rating:

	{"id": "req1", "b": [{"t": "Dune", "a": "Frank Herbert", "g": "Sci-Fi", "r": 4.2}], "c": 1, "t": 145}

Catalog requests expose the filter vocabularies for populating controls,
plus prefix completion of filter values for pickers:

	{"id": "cat1", "action": "get_filters"}
	{"id": "cat2", "action": "complete_filters", "prefix": "fra"}
	{"id": "cat3", "action": "get_info"}
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bookserve/bookserve/internal/cli"
	"github.com/bookserve/bookserve/internal/utils"
	"github.com/bookserve/bookserve/pkg/catalog"
	"github.com/bookserve/bookserve/pkg/config"
	"github.com/bookserve/bookserve/pkg/recommend"
	"github.com/bookserve/bookserve/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "bookserve"
	gh      = "https://github.com/bookserve/bookserve"
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
	dataFile := flag.String("data", defaultConfig.Catalog.DataFile, "Path to the catalog CSV file")
	configFile := flag.String("config", "", "Path to the config TOML file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to show per query")
	author := flag.String("author", defaultConfig.CLI.DefaultAuthor, "Author filter (\"All\" passes everything)")
	genre := flag.String("genre", defaultConfig.CLI.DefaultGenre, "Genre filter (\"All\" passes everything)")
	minRating := flag.Float64("rating", defaultConfig.CLI.DefaultMinRating, "Minimum average rating")
	showFilters := flag.Bool("filters", false, "Print available author and genre filter values and exit")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ BookServe ] Serves really fast book recommendations!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	configPath := config.GetActiveConfigPath(*configFile)
	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", configPath)

	catalogPath := *dataFile
	if catalogPath == "" {
		catalogPath = appConfig.Catalog.DataFile
	}
	resolvedPath, err := utils.ResolveDataFile(catalogPath)
	if err != nil {
		log.Fatalf("Failed to resolve catalog file %q: %v", catalogPath, err)
		os.Exit(1)
	}
	log.Debugf("Using catalog file at: %s", resolvedPath)

	dataset, err := catalog.Load(resolvedPath)
	if err != nil {
		// SchemaError lands here too: bad columns abort before indexing.
		log.Fatalf("Failed to load catalog: %v", err)
		os.Exit(1)
	}

	engine := recommend.NewEngine(dataset)
	log.Debugf("Engine ready: %d records indexed", engine.Size())

	if *showFilters {
		log.SetLevel(log.InfoLevel)
		cli.PrintFilters(engine)
		return
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Filter info:",
			"author", *author,
			"genre", *genre,
			"minRating", *minRating,
			"limit", *limit)

		inputHandler := cli.NewInputHandler(engine, *author, *genre, *minRating, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig)

	showStartupInfo(resolvedPath, engine.Size())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(catalogPath string, records int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" BookServe ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("catalog: ( %s )", catalogPath)
	log.Infof("records: [ %d ]", records)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
