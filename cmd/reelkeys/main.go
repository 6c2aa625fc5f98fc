// Package main is the entry point for the reelkeys player demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/reelkeys/internal/app"
	"github.com/dshills/reelkeys/internal/backend"
	"github.com/dshills/reelkeys/internal/logging"
	"github.com/dshills/reelkeys/internal/player"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds flags that do not map onto app.Options.
type cliOptions struct {
	keys    string
	logFile string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, cli := parseFlags()

	if cli.keys != "" {
		return runScript(opts, cli)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal (use -keys for a headless run)")
		return 1
	}

	// Log lines would corrupt the screen, so they go to a file or nowhere.
	opts.LogOutput = io.Discard
	if cli.logFile != "" {
		f, err := os.OpenFile(cli.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		opts.LogOutput = f
	}
	opts.Watch = opts.ConfigPath != ""

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	termBackend, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(termBackend); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runScript feeds the -keys script to the engine and prints the final state.
func runScript(opts app.Options, cli cliOptions) int {
	opts.LogOutput = os.Stderr
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	st, err := application.RunScriptString(cli.keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	printState(os.Stdout, st)
	return 0
}

func printState(w io.Writer, st player.State) {
	fmt.Fprintf(w, "playing:     %t\n", st.Playing)
	fmt.Fprintf(w, "time:        %.2f\n", st.CurrentTime)
	fmt.Fprintf(w, "duration:    %g\n", st.Duration)
	fmt.Fprintf(w, "rate:        %g\n", st.PlaybackRate)
	fmt.Fprintf(w, "volume:      %g\n", st.Volume)
	fmt.Fprintf(w, "muted:       %t\n", st.Muted)
	fmt.Fprintf(w, "live:        %t\n", st.Live)
	fmt.Fprintf(w, "fullscreen:  %t\n", st.Browser)
	fmt.Fprintf(w, "web:         %t\n", st.Web)
	fmt.Fprintf(w, "notice:      %s\n", st.LastNotice)
}

func parseFlags() (app.Options, cliOptions) {
	var opts app.Options
	var cli cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&cli.logFile, "log-file", "", "Write interactive-mode logs to this file")
	flag.StringVar(&cli.keys, "keys", "", "Run a key script headless and print the player state")
	flag.StringVar(&cli.keys, "k", "", "Run a key script headless (shorthand)")
	flag.BoolVar(&opts.Live, "live", false, "Treat the media as a live stream")
	flag.Float64Var(&opts.Duration, "duration", 0, "Media duration in seconds")
	flag.StringVar(&opts.OutDir, "out", "", "Directory for screenshots")
	flag.StringVar(&opts.OutDir, "o", "", "Directory for screenshots (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "reelkeys - keyboard hotkeys for a media player\n\n")
		fmt.Fprintf(os.Stderr, "Usage: reelkeys [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  reelkeys                              Interactive player\n")
		fmt.Fprintf(os.Stderr, "  reelkeys -c reelkeys.toml             Use a config file (reloaded on change)\n")
		fmt.Fprintf(os.Stderr, "  reelkeys -k '<Space> <Right> 5 S'     Headless run\n")
		fmt.Fprintf(os.Stderr, "  reelkeys -live -k '<Right>'           Seeking is disabled on live streams\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("reelkeys %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" && !logging.ValidLevel(opts.LogLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}
	if opts.Duration < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid duration %g\n", opts.Duration)
		os.Exit(1)
	}

	return opts, cli
}
