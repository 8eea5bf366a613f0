package main

import (
	"errors"
	"fmt"
	"os"

	apppkg "github.com/kk-code-lab/rls/internal/app"
	fsutil "github.com/kk-code-lab/rls/internal/fs"
)

func printHelp() {
	fmt.Print(`rls - list directory contents in columns

USAGE:
    rls [OPTIONS] [PATH...]

OPTIONS:
    -a, --all                 Include dot files and the . and .. entries
    -A, --almost-all          Include dot files, but not . and ..
    -1                        List one entry per line
    -w, --width N             Assume a terminal N columns wide
        --color[=WHEN]        Colorize names: always, auto (default), never
    -h, --help                Show this help message and exit

ENVIRONMENT:
    COLUMNS                   Width used when the terminal size is unknown
    NO_COLOR                  Disables color in auto mode
    RLS_DEBUG=1               Log recovered errors to stderr
`)
}

func main() {
	cfg, err := apppkg.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "rls: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try 'rls --help' for more information.")
		os.Exit(2)
	}
	if cfg.ShowHelp {
		printHelp()
		os.Exit(0)
	}

	app := apppkg.NewApplication(cfg, os.Stdout, os.Stderr)
	if err := app.Run(); err != nil {
		// Enumeration failures were already reported per path.
		if !errors.Is(err, fsutil.ErrEnumerationFailed) {
			fmt.Fprintf(os.Stderr, "rls: %v\n", err)
		}
		os.Exit(1)
	}
}
