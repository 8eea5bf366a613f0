package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kk-code-lab/rls/internal/listing"
)

// ErrUsage is wrapped by every argument parsing error.
var ErrUsage = errors.New("usage error")

// ColorMode selects when escape sequences are written.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Config is the resolved command line.
type Config struct {
	Paths      []string
	Listing    listing.Options
	Color      ColorMode
	Width      int // 0 means query the terminal
	OnePerLine bool
	ShowHelp   bool
}

// ParseArgs parses command-line arguments (without the program name).
func ParseArgs(args []string) (Config, error) {
	var cfg Config
	endOfOptions := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case endOfOptions || arg == "-" || !strings.HasPrefix(arg, "-"):
			cfg.Paths = append(cfg.Paths, arg)
		case arg == "--":
			endOfOptions = true
		case arg == "-h" || arg == "--help":
			cfg.ShowHelp = true
		case arg == "--all":
			cfg.Listing.ShowHidden = true
			cfg.Listing.ShowDotEntries = true
		case arg == "--almost-all":
			cfg.Listing.ShowHidden = true
			cfg.Listing.ShowDotEntries = false
		case arg == "--color":
			cfg.Color = ColorAlways
		case strings.HasPrefix(arg, "--color="):
			mode, err := parseColorMode(strings.TrimPrefix(arg, "--color="))
			if err != nil {
				return Config{}, err
			}
			cfg.Color = mode
		case arg == "--width":
			if i+1 >= len(args) {
				return Config{}, fmt.Errorf("%w: option %s requires an argument", ErrUsage, arg)
			}
			i++
			width, err := parseWidth(args[i])
			if err != nil {
				return Config{}, err
			}
			cfg.Width = width
		case strings.HasPrefix(arg, "--width="):
			width, err := parseWidth(strings.TrimPrefix(arg, "--width="))
			if err != nil {
				return Config{}, err
			}
			cfg.Width = width
		case strings.HasPrefix(arg, "--"):
			return Config{}, fmt.Errorf("%w: unknown option %s", ErrUsage, arg)
		default:
			var next string
			hasNext := i+1 < len(args)
			if hasNext {
				next = args[i+1]
			}
			consumed, err := parseShortFlags(&cfg, arg[1:], next, hasNext)
			if err != nil {
				return Config{}, err
			}
			if consumed {
				i++
			}
		}
	}

	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"."}
	}
	return cfg, nil
}

// parseShortFlags applies a cluster such as "-1A" or "-aw40". A trailing -w
// without an attached value takes next, reported through consumedNext.
func parseShortFlags(cfg *Config, flags, next string, hasNext bool) (consumedNext bool, err error) {
	for idx, flag := range flags {
		switch flag {
		case 'w':
			value := flags[idx+1:]
			if value == "" {
				if !hasNext {
					return false, fmt.Errorf("%w: option -w requires an argument", ErrUsage)
				}
				value = next
				consumedNext = true
			}
			width, widthErr := parseWidth(value)
			if widthErr != nil {
				return false, widthErr
			}
			cfg.Width = width
			return consumedNext, nil
		case 'a':
			cfg.Listing.ShowHidden = true
			cfg.Listing.ShowDotEntries = true
		case 'A':
			cfg.Listing.ShowHidden = true
			cfg.Listing.ShowDotEntries = false
		case '1':
			cfg.OnePerLine = true
		case 'h':
			cfg.ShowHelp = true
		default:
			return false, fmt.Errorf("%w: unknown option -%c", ErrUsage, flag)
		}
	}
	return false, nil
}

func parseColorMode(value string) (ColorMode, error) {
	switch strings.ToLower(value) {
	case "", "always", "yes", "force":
		return ColorAlways, nil
	case "never", "no", "none":
		return ColorNever, nil
	case "auto", "tty", "if-tty":
		return ColorAuto, nil
	default:
		return ColorAuto, fmt.Errorf("%w: invalid --color value %q", ErrUsage, value)
	}
}

func parseWidth(value string) (int, error) {
	width, err := strconv.Atoi(value)
	if err != nil || width <= 0 {
		return 0, fmt.Errorf("%w: invalid width %q", ErrUsage, value)
	}
	return width, nil
}
