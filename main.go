// Package main is the entry point for the carousel application.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/billie-coop/carousel/internal/config"
	"github.com/billie-coop/carousel/internal/debounce"
	"github.com/billie-coop/carousel/internal/logging"
	"github.com/billie-coop/carousel/internal/tui"
	"github.com/billie-coop/carousel/internal/tui/components/carousel"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// focusSaveDelay batches focus changes before they are written to config
const focusSaveDelay = time.Second

// defaultItems is shown when no items are given on the command line
var defaultItems = []string{"blue", "red", "decoration", "green"}

type flags struct {
	project       string
	focus         int
	allowScroll   bool
	hideScrollBar bool
	theme         string
	markdown      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "carousel [items...]",
		Short: "A scroll-snapping carousel in the terminal",
		Long: `Shows the given items in a horizontally scrolling carousel.

An item named "decoration" is decorational: it is drawn but never focused.
Items named blue, red or green get a colored gradient.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	root.Flags().StringVar(&f.project, "project", ".", "directory holding .carousel/config.json")
	root.Flags().IntVar(&f.focus, "focus", 0, "initially focused item (among non-decorational items)")
	root.Flags().BoolVar(&f.allowScroll, "allow-scroll", true, "allow scrolling with arrow keys and the mouse wheel")
	root.Flags().BoolVar(&f.hideScrollBar, "hide-scrollbar", false, "hide the scrollbar")
	root.Flags().StringVar(&f.theme, "theme", "", "color theme (loco, dark)")
	root.Flags().BoolVar(&f.markdown, "markdown", false, "render item text as markdown")

	root.AddCommand(newConfigCmd(f))
	return root
}

func newConfigCmd(f *flags) *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change .carousel/config.json",
	}
	cfg.PersistentFlags().StringVar(&f.project, "project", ".", "directory holding .carousel/config.json")

	cfg.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := config.NewManager(f.project)
			if err := m.Load(); err != nil {
				return err
			}
			return m.Set(args[0], args[1])
		},
	})

	cfg.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := config.NewManager(f.project)
			fmt.Fprintln(cmd.OutOrStdout(), m.Dir())
			return nil
		},
	})

	return cfg
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	manager := config.NewManager(f.project)
	if err := manager.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Work on a copy so flag overrides are not saved with the focused index
	cfg := *manager.Get()

	// Flags win over config, but only when given
	if cmd.Flags().Changed("allow-scroll") {
		cfg.AllowScroll = f.allowScroll
	}
	if cmd.Flags().Changed("hide-scrollbar") {
		cfg.HideScrollBar = f.hideScrollBar
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = f.theme
	}
	focus := cfg.FocusedIndex
	if cmd.Flags().Changed("focus") {
		focus = f.focus
	}

	if cfg.Debug {
		logFile, err := logging.OpenFile(manager.LogPath(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		defer logFile.Close()
	}

	if len(args) == 0 {
		args = defaultItems
	}

	saveFocus := debounce.Wrap(debounce.NewClockScheduler(clockwork.NewRealClock()), focusSaveDelay, func(index int) {
		persistFocus(manager, index)
	})

	model := tui.New(tui.Options{
		Items:         itemsFromArgs(args, f.markdown),
		FocusedIndex:  focus,
		OnFocusChange: saveFocus,
		AllowScroll:   cfg.AllowScroll,
		HideScrollBar: cfg.HideScrollBar,
		Gap:           cfg.Gap,
		SettleDelay:   time.Duration(cfg.SettleDelayMS) * time.Millisecond,
		Theme:         cfg.Theme,
	})

	logging.Logger.Info("starting carousel", "items", len(args), "theme", cfg.Theme)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("program failed: %w", err)
	}

	// A quit inside the save delay would otherwise lose the last move
	if fm, ok := final.(*tui.Model); ok {
		persistFocus(manager, fm.FocusedIndex())
	}
	return nil
}

// persistFocus stores index so the next start focuses the same item
func persistFocus(manager *config.Manager, index int) {
	if err := manager.Set("focused_index", strconv.Itoa(index)); err != nil {
		logging.Logger.Warn("failed to save focused index", "error", err)
	}
}

// itemsFromArgs turns command-line words into carousel items
func itemsFromArgs(args []string, markdown bool) []carousel.Item {
	items := make([]carousel.Item, 0, len(args))
	for _, arg := range args {
		switch arg {
		case "decoration":
			items = append(items, carousel.Item{Decorational: true})
		case "blue", "red", "green":
			items = append(items, carousel.Item{Content: arg, Theme: arg})
		default:
			items = append(items, carousel.Item{Content: arg, Markdown: markdown})
		}
	}
	return items
}
