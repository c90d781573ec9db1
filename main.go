package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tabdeck/internal/app"
	"github.com/atomicstack/tabdeck/internal/config"
	"github.com/atomicstack/tabdeck/internal/format/table"
	"github.com/atomicstack/tabdeck/internal/logging"
	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

func main() {
	cmd := newRootCmd(os.Args[1:], os.Environ(), app.Run)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, config.ErrInvalid) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(2)
		}
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd wires the flags to config loading. run is app.Run outside tests.
func newRootCmd(args, environ []string, run func(app.Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tabdeck",
		Short:         "Tabbed panes with drag-and-drop tabs in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	loader := config.Bind(cmd.PersistentFlags(), environ)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	})
	cmd.RunE = func(*cobra.Command, []string) error {
		runtimeCfg, err := loader.Load(args)
		if err != nil {
			return err
		}
		logging.Configure(runtimeCfg.Logging.FilePath)
		logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

		traceStartup(runtimeCfg)
		return run(runtimeCfg.App)
	}
	cmd.AddCommand(newVersionCmd(), newLayoutCmd(loader, args))
	cmd.SetArgs(args)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "tabdeck %s\n", version)
}

// newLayoutCmd prints the resolved initial layout without starting the UI.
func newLayoutCmd(loader *config.Loader, args []string) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the configured containers and tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runtimeCfg, err := loader.Load(args)
			if err != nil {
				return err
			}
			printLayout(cmd.OutOrStdout(), runtimeCfg.App.Layout)
			return nil
		},
	}
}

func printLayout(w io.Writer, layout []app.ContainerSpec) {
	rows := [][]string{{"PANE", "#", "TITLE", "ACTIVE"}}
	for _, c := range layout {
		if len(c.Tabs) == 0 {
			rows = append(rows, []string{c.Name, "-", "(empty)", ""})
			continue
		}
		for i, tab := range c.Tabs {
			active := ""
			if tab.Active {
				active = "yes"
			}
			rows = append(rows, []string{c.Name, strconv.Itoa(i), tab.Title, active})
		}
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
