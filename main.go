package main

import (
	"fmt"
	"log/slog"
	"os"

	"conch/internal/console"
	"conch/internal/headless"
	"conch/internal/model"
	"conch/internal/pathsearch"
	"conch/internal/runner"
	"conch/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      model.RepoOwner,
		Repository: model.RepoName,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not check for updates: %v\n", err)
		return
	}

	if res.Outdated {
		fmt.Printf("A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Printf("Download it from %s\n", model.ReleasesURL())
	} else {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: conch [options]\n\n")
		fmt.Fprintf(os.Stderr, "conch is a minimal console: type a program name and its arguments,\n")
		fmt.Fprintf(os.Stderr, "press enter, and the program's output is added to the scrollback.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  conch                  # Start the full-screen console\n")
		fmt.Fprintf(os.Stderr, "  conch -l conch.log -d  # Log debug output to conch.log\n")
		fmt.Fprintf(os.Stderr, "  echo ls | conch        # Run commands from stdin\n")
	}

	logFlag := pflag.StringP("log", "l", "", "Write logs to the specified file")
	debugFlag := pflag.BoolP("debug", "d", false, "Log at debug level (combined with --log)")
	headlessFlag := pflag.Bool("headless", false, "Read commands from stdin instead of starting the full-screen console")
	argvFlag := pflag.Bool("argv-conventional", false, "Do not repeat the program name as the first argument")
	noEchoFlag := pflag.Bool("no-echo", false, "Do not copy submitted command lines into the scrollback")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("conch version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	logger, closeLog, err := newLogger(*logFlag, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFlag, err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	resolver := pathsearch.New()
	run := runner.New(resolver, runner.Config{SkipArgZero: *argvFlag}, logger)
	con := console.New(run, console.Options{NoEcho: *noEchoFlag}, logger)

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	if *headlessFlag || !interactive {
		err = runHeadless(con)
	} else {
		err = tui.Run(con)
	}
	if err != nil {
		logger.Error("session ended", "err", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless(con *console.Console) error {
	p := headless.New(os.Stdin, os.Stdout)
	defer p.Close()
	return con.Run(p)
}

// newLogger returns a text logger writing to path, or a discarding logger
// when path is empty. The full-screen console owns stdout, so logs never go
// there.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := tea.LogToFile(path, "conch")
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), func() { f.Close() }, nil
}
