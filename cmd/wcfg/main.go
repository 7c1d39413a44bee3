package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
	"pkt.systems/widgetconf"
)

const (
	defaultWidth = 80
	defaultClass = "html"

	modeOptions = "options"
	modeToolbar = "toolbar"
	modeWidget  = "widget"

	formatText   = "text"
	formatConfig = "config"
)

func init() {
	version.SetDefaultModule("pkt.systems/widgetconf")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cliConfig struct {
	mode         string
	format       string
	defaultsPath string
	class        string
	enable       []string
	hide         []string
	stylesXML    string
	wrap         bool
	validate     bool
	verbose      bool
	width        int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg cliConfig
	flags := pflag.NewFlagSet("wcfg", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&cfg.mode, "mode", "m", modeOptions, "Input kind: options|toolbar|widget")
	flags.StringVarP(&cfg.format, "format", "f", formatText, "Output format: text|config")
	flags.StringVarP(&cfg.defaultsPath, "defaults", "d", "", "YAML file with system-wide widget configurations")
	flags.StringVarP(&cfg.class, "class", "c", defaultClass, "Widget class used to look up system-wide defaults")
	flags.StringSliceVarP(&cfg.enable, "enable", "e", nil, "Additional buttons to enable (toolbar mode)")
	flags.StringSliceVar(&cfg.hide, "hide", nil, "Buttons to hide (toolbar mode)")
	flags.StringVar(&cfg.stylesXML, "styles-xml", "", "Styles source enabling the style button (toolbar mode)")
	flags.BoolVar(&cfg.wrap, "wrap", true, "Enclose the toolbar in a block if it is not bracketed")
	flags.BoolVar(&cfg.validate, "validate", false, "Report problems the parser would silently resolve and exit 1")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log debug diagnostics")
	flags.IntVarP(&cfg.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: wcfg [flags] [configurations...]\n")
		fmt.Fprintln(stderr, "\nEach configuration is a literal string or @path to read one from a file.")
		fmt.Fprintln(stderr, "If none is given, a configuration is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	switch cfg.mode {
	case modeOptions, modeToolbar, modeWidget:
	default:
		fmt.Fprintf(stderr, "unknown mode %q: expected options|toolbar|widget\n", cfg.mode)
		return 2
	}
	switch cfg.format {
	case formatText, formatConfig:
	default:
		fmt.Fprintf(stderr, "unknown format %q: expected text|config\n", cfg.format)
		return 2
	}

	inputs, err := readInputs(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}

	var defaults *widgetconf.Defaults
	if cfg.defaultsPath != "" {
		defaults, err = widgetconf.LoadDefaults(normalizePath(cfg.defaultsPath))
		if err != nil {
			fmt.Fprintf(stderr, "load defaults: %v\n", err)
			return 1
		}
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	out := printer{w: stdout, width: resolveWidth(cfg.width)}

	status := 0
	for _, input := range inputs {
		if cfg.validate {
			if err := validate(cfg.mode, input); err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				status = 1
			}
		}
		switch cfg.mode {
		case modeOptions:
			opts := widgetconf.ParseOptions(input, widgetconf.WithLogger(logger))
			if cfg.format == formatConfig {
				out.line(widgetconf.FormatOptions(opts))
				continue
			}
			out.options(opts)
		case modeToolbar:
			rules := widgetconf.VisibilityRules{
				Additional:    widgetconf.NewButtonSet(cfg.enable...),
				Hidden:        widgetconf.NewButtonSet(cfg.hide...),
				StylesXMLPath: cfg.stylesXML,
			}
			tokens := widgetconf.BuildToolbar(widgetconf.ToolbarRequest{
				Spec:     input,
				Class:    cfg.class,
				Defaults: sourceOf(defaults),
				Rules:    rules,
				Wrap:     cfg.wrap,
				Options:  []widgetconf.ParseOption{widgetconf.WithLogger(logger)},
			})
			out.toolbar(tokens, cfg.format)
		case modeWidget:
			wo := widgetconf.ParseWidgetOptions(input, widgetconf.WithLogger(logger))
			req := wo.ToolbarRequest(cfg.class, sourceOf(defaults))
			req.Wrap = cfg.wrap
			req.Options = []widgetconf.ParseOption{widgetconf.WithLogger(logger)}
			tokens := widgetconf.BuildToolbar(req)
			if cfg.format == formatConfig {
				out.line(wo.String())
				out.line(widgetconf.FormatToolbar(tokens))
				continue
			}
			out.widget(wo)
			out.toolbar(tokens, formatText)
		}
	}
	return status
}

// sourceOf keeps a nil *Defaults from turning into a non-nil interface.
func sourceOf(d *widgetconf.Defaults) widgetconf.DefaultsSource {
	if d == nil {
		return nil
	}
	return d
}

func validate(mode, input string) error {
	switch mode {
	case modeOptions:
		return widgetconf.ValidateOptions(input)
	case modeToolbar:
		return widgetconf.ValidateToolbar(input)
	default:
		return widgetconf.ValidateToolbar(widgetconf.ParseWidgetOptions(input, widgetconf.WithLogger(nil)).ButtonBar)
	}
}

func readInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimRight(string(data), "\r\n")}, nil
	}
	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		path, isFile := strings.CutPrefix(arg, "@")
		if !isFile {
			inputs = append(inputs, arg)
			continue
		}
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("empty input path")
		}
		data, err := os.ReadFile(normalizePath(path))
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, strings.TrimRight(string(data), "\r\n"))
	}
	return inputs, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
