// Package main provides the CLI entrypoint for misstype.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/misstype/internal/config"
	"github.com/verte-zerg/misstype/internal/console"
	"github.com/verte-zerg/misstype/internal/drill"
	"github.com/verte-zerg/misstype/internal/generator"
	"github.com/verte-zerg/misstype/internal/model"
	"github.com/verte-zerg/misstype/internal/tui"
	"github.com/verte-zerg/misstype/internal/wordlist"
)

const (
	defaultLetterOrder = model.LetterOrderFirstSeen
	defaultColor       = model.ColorAuto
)

var (
	drillWords       string
	drillLetterOrder string
	drillDedupe      bool
	drillPromptWidth int
	drillSeed        int64
	drillColor       string
	drillTUI         bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "misstype",
		Short:         "Practice words containing the letters you keep missing",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDrillCmd,
	}

	rootCmd.Flags().StringVar(&drillWords, "words", "", "word list path, one word per line (default: ./words.txt or config dir)")
	rootCmd.Flags().StringVar(&drillLetterOrder, "letter-order", defaultLetterOrder, "order missed letters are tried per word (first-seen, alphabetical)")
	rootCmd.Flags().BoolVar(&drillDedupe, "dedupe", false, "prompt each word at most once per session")
	rootCmd.Flags().IntVar(&drillPromptWidth, "prompt-width", console.DefaultPromptWidth, "column where answers start after a word prompt")
	rootCmd.Flags().Int64Var(&drillSeed, "seed", 0, "shuffle seed (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&drillColor, "color", defaultColor, "color verdicts (auto, always, never)")
	rootCmd.Flags().BoolVar(&drillTUI, "tui", false, "run the full-screen interface")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "words", &drillWords, fileCfg.Drill.Words)
	applyStringConfig(cmd, "letter-order", &drillLetterOrder, fileCfg.Drill.LetterOrder)
	applyBoolConfig(cmd, "dedupe", &drillDedupe, fileCfg.Drill.Dedupe)
	applyIntConfig(cmd, "prompt-width", &drillPromptWidth, fileCfg.Drill.PromptWidth)
	applyInt64Config(cmd, "seed", &drillSeed, fileCfg.Drill.Seed)
	applyStringConfig(cmd, "color", &drillColor, fileCfg.Drill.Color)
	applyBoolConfig(cmd, "tui", &drillTUI, fileCfg.Drill.TUI)

	cfg := model.Config{
		WordsPath:   drillWords,
		LetterOrder: strings.ToLower(strings.TrimSpace(drillLetterOrder)),
		Dedupe:      drillDedupe,
		PromptWidth: drillPromptWidth,
		Seed:        drillSeed,
		Color:       strings.ToLower(strings.TrimSpace(drillColor)),
		TUI:         drillTUI,
	}
	if cfg.WordsPath == "" {
		cfg.WordsPath = config.DefaultWordListPath()
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	d := newDrill(cfg)

	if cfg.TUI {
		program := tea.NewProgram(tui.NewModel(d), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	c := console.New(d, cmd.InOrStdin(), out, console.Options{
		PromptWidth: cfg.PromptWidth,
		Color:       useColor(cfg.Color, out),
	})
	return c.Run(ctx)
}

func newDrill(cfg model.Config) *drill.Drill {
	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}
	loader := func() ([]string, error) {
		words, err := wordlist.LoadWords(cfg.WordsPath)
		if err != nil {
			return nil, wordListLoadError(cfg.WordsPath, err)
		}
		return words, nil
	}
	return drill.New(loader, gen, drill.Options{
		LetterOrder: cfg.LetterOrder,
		Dedupe:      cfg.Dedupe,
	})
}

// useColor reports whether verdicts written to out should be styled. In auto
// mode only a terminal file qualifies.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case model.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case model.ColorNever:
		return false
	default:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# misstype configuration
# Uncomment a value to enable it. CLI flags override config values.

[drill]
# words = "words.txt"          # Word list, one word per line
# letter-order = %q    # Order missed letters are tried per word (first-seen, alphabetical)
# dedupe = false               # Prompt each word at most once per session
# prompt-width = %d            # Column where answers start after a word prompt
# seed = 0                     # Shuffle seed (0 picks one from the clock)
# color = %q               # Color verdicts (auto, always, never)
# tui = false                  # Run the full-screen interface
`,
		defaultLetterOrder,
		console.DefaultPromptWidth,
		defaultColor,
	)
}

func validateConfig(cfg model.Config) error {
	switch cfg.LetterOrder {
	case model.LetterOrderFirstSeen, model.LetterOrderAlphabetical:
	default:
		return fmt.Errorf("--letter-order must be %q or %q", model.LetterOrderFirstSeen, model.LetterOrderAlphabetical)
	}
	switch cfg.Color {
	case model.ColorAuto, model.ColorAlways, model.ColorNever:
	default:
		return fmt.Errorf("--color must be one of auto, always, never")
	}
	if cfg.PromptWidth < 0 {
		return fmt.Errorf("--prompt-width must be >= 0")
	}
	if strings.TrimSpace(cfg.WordsPath) == "" {
		return fmt.Errorf("--words must not be empty")
	}
	return nil
}

func wordListLoadError(path string, err error) error {
	lines := []string{
		err.Error(),
		fmt.Sprintf("expected word list at: %s", path),
		"Provide one with: misstype --words <path>",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
