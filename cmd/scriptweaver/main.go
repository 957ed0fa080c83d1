// Package main is the entry point for scriptweaver.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/azyu/scriptweaver/internal/app"
	"github.com/azyu/scriptweaver/internal/brief"
	"github.com/azyu/scriptweaver/internal/export"
	"github.com/azyu/scriptweaver/internal/logging"
	"github.com/azyu/scriptweaver/internal/storage"
	"github.com/azyu/scriptweaver/internal/token"
	"github.com/azyu/scriptweaver/internal/tui"
	"github.com/azyu/scriptweaver/pkg/types"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scriptweaver",
	Short: "Turn a short story brief into a structured screenplay draft",
	Long: `Scriptweaver expands a brief (title, genre, tone, setting, logline and
characters) into a deterministic screenplay outline with acts and scenes, in
English or Hindi, and exports it as text, Markdown, HTML or JSON.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		logging.Init(level, format, os.Stderr)
	},
}

// newApp loads the configuration. Logging settings from the config file
// apply unless the matching flag was given.
func newApp(cmd *cobra.Command) (*app.App, error) {
	application, err := app.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	if !cmd.Flags().Changed("log-level") && application.Global.Logging.Level != "" {
		level = application.Global.Logging.Level
	}
	if !cmd.Flags().Changed("log-format") && application.Global.Logging.Format != "" {
		format = application.Global.Logging.Format
	}
	application.Logger = logging.Init(level, format, os.Stderr)

	return application, nil
}

// briefFlags are the flags that override fields of a brief file.
var briefFlags = []string{"title", "genre", "tone", "language", "setting", "logline", "characters", "length"}

func briefFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range briefFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// resolveBrief loads the optional brief file in args, applies flag
// overrides and fills the rest from the configured defaults.
func resolveBrief(cmd *cobra.Command, args []string, application *app.App) (types.Brief, error) {
	if len(args) > 0 && !briefFlagsChanged(cmd) {
		return application.LoadBrief(args[0])
	}

	f := &brief.File{}
	if len(args) > 0 {
		loaded, err := brief.Load(args[0])
		if err != nil {
			return types.Brief{}, err
		}
		f = loaded
		application.Logger.Debug("brief loaded", "path", args[0])
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"title", &f.Title},
		{"genre", &f.Genre},
		{"tone", &f.Tone},
		{"language", &f.Language},
		{"setting", &f.Setting},
		{"logline", &f.Logline},
		{"length", &f.Length},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.target, _ = cmd.Flags().GetString(o.flag)
		}
	}
	if cmd.Flags().Changed("characters") {
		f.Characters = nil
		f.CharacterNotes, _ = cmd.Flags().GetString("characters")
	}

	b, err := application.CompleteBrief(f)
	if err != nil {
		return types.Brief{}, fmt.Errorf("invalid brief: %w", err)
	}
	return b, nil
}

func addBriefFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Script title")
	cmd.Flags().String("genre", "", "Genre (Drama, Comedy, Thriller, Romance, Sci-Fi, Mystery, Slice of Life)")
	cmd.Flags().String("tone", "", "Tone (Hopeful, Gritty, Playful, Melancholic, Inspirational)")
	cmd.Flags().String("language", "", "Output language (english, hindi)")
	cmd.Flags().String("setting", "", "Primary setting")
	cmd.Flags().String("logline", "", "One-sentence premise")
	cmd.Flags().String("characters", "", `Character notes, e.g. "Aarzoo - dreamer, Kabir - friend"`)
	cmd.Flags().String("length", "", "Length (short, medium, long)")
}

// formatNames lists the export formats for flag help, e.g. "text, markdown".
func formatNames() string {
	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// outputFormat returns the --format flag, or the configured default.
func outputFormat(cmd *cobra.Command, application *app.App) (export.Format, error) {
	if cmd.Flags().Changed("format") {
		name, _ := cmd.Flags().GetString("format")
		return export.ParseFormat(name)
	}
	return application.DefaultFormat(), nil
}

var buildCmd = &cobra.Command{
	Use:   "build [brief.yaml]",
	Short: "Build a script from a brief file and flags",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuildCmd,
}

func runBuildCmd(cmd *cobra.Command, args []string) error {
	application, err := newApp(cmd)
	if err != nil {
		return err
	}

	b, err := resolveBrief(cmd, args, application)
	if err != nil {
		return err
	}

	format, err := outputFormat(cmd, application)
	if err != nil {
		return err
	}

	ctx := context.Background()
	doc := application.Build(ctx, b)

	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := clipboard.WriteAll(export.Text(doc, b.Language)); err != nil {
			return fmt.Errorf("failed to copy script: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied script to clipboard.")
	}

	if cmd.Flags().Changed("out") {
		out, _ := cmd.Flags().GetString("out")
		application.Workspace = storage.NewWorkspace(out)
	}
	if cmd.Flags().Changed("out") || cmd.Flags().Changed("save") {
		path, err := application.Export(ctx, doc, b.Language, format)
		if err != nil {
			return fmt.Errorf("failed to export script: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
		return nil
	}

	content, err := export.Render(doc, b.Language, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(content)
	return err
}

var previewCmd = &cobra.Command{
	Use:   "preview [brief.yaml]",
	Short: "Open an interactive preview of the script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp(cmd)
		if err != nil {
			return err
		}

		b, err := resolveBrief(cmd, args, application)
		if err != nil {
			return err
		}

		format, err := outputFormat(cmd, application)
		if err != nil {
			return err
		}

		model := tui.New(b, application.Workspace, format)
		if len(args) > 0 {
			model.SetBriefPath(args[0])
		}
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [brief.yaml]",
	Short: "Show word, character and token counts for a script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp(cmd)
		if err != nil {
			return err
		}

		b, err := resolveBrief(cmd, args, application)
		if err != nil {
			return err
		}

		var counter *token.Counter
		if exact, _ := cmd.Flags().GetBool("exact"); exact {
			counter, err = token.NewCounter(application.Global.TokenEncoding)
			if err != nil {
				application.Logger.Warn("token encoding unavailable, using estimates",
					"encoding", application.Global.TokenEncoding,
					"error", err,
				)
				counter = nil
			}
		}

		stats := token.MeasureDocument(application.Build(context.Background(), b), b.Language, counter)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}
		return printStats(cmd.OutOrStdout(), stats)
	},
}

// newTable returns a bordered plain table with one cell of padding.
func newTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers(headers...)
}

func printStats(w io.Writer, stats token.DocumentStats) error {
	tokens := func(s token.Stats) string {
		if s.Tokens < 0 {
			return "-"
		}
		return fmt.Sprint(s.Tokens)
	}

	fmt.Fprintf(w, "Acts: %d\n", stats.Acts)
	if stats.Encoding != "" {
		fmt.Fprintf(w, "Encoding: %s\n", stats.Encoding)
	}
	fmt.Fprintln(w)

	t := newTable("SCENE", "ACTIONS", "DIALOGUE", "WORDS", "EST. TOKENS", "TOKENS")
	for _, s := range stats.Scenes {
		t.Row(s.Heading, fmt.Sprint(s.Actions), fmt.Sprint(s.Dialogue),
			fmt.Sprint(s.Words), fmt.Sprint(s.Estimated), tokens(s.Stats))
	}
	total := stats.Total
	t.Row(fmt.Sprintf("TOTAL (%d lines, %d chars)", total.Lines, total.Runes), "", "",
		fmt.Sprint(total.Words), fmt.Sprint(total.Estimated), tokens(total))

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// printBriefList prints one row per brief file under dir. Files that fail
// to load are listed as unreadable.
func printBriefList(w io.Writer, dir string, files []storage.FileInfo) error {
	t := newTable("FILE", "TITLE", "LANGUAGE", "LENGTH")
	for _, fi := range files {
		f, err := brief.Load(filepath.Join(dir, fi.Path))
		if err != nil {
			t.Row(fi.Path, "(unreadable)", "", "")
			continue
		}
		t.Row(fi.Path, f.Title, f.Language, f.Length)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List brief files in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp(cmd)
		if err != nil {
			return err
		}

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		files, err := application.ListBriefs(dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No briefs found.")
			return nil
		}

		return printBriefList(cmd.OutOrStdout(), dir, files)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the global configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := app.NewConfigManager()
		if err != nil {
			return err
		}

		if initFlag, _ := cmd.Flags().GetBool("init"); initFlag {
			force, _ := cmd.Flags().GetBool("force")
			written, err := cm.InitGlobalConfig(force)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite)\n", cm.Path())
				return nil
			}
			slog.Debug("config written", "path", cm.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", cm.Path())
			return nil
		}

		config, err := cm.LoadGlobalConfig()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", cm.Path(), data)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	for _, cmd := range []*cobra.Command{buildCmd, previewCmd, statsCmd} {
		addBriefFlags(cmd)
	}

	buildCmd.Flags().StringP("format", "f", "", "Output format ("+formatNames()+")")
	buildCmd.Flags().StringP("out", "o", "", "Write the script into this directory instead of stdout")
	buildCmd.Flags().Bool("save", false, "Write the script into the configured output directory")
	buildCmd.Flags().Bool("copy", false, "Copy the plain-text script to the clipboard")

	previewCmd.Flags().StringP("format", "f", "", "Format used when saving ("+formatNames()+")")

	statsCmd.Flags().Bool("exact", false, "Count exact tokens with the configured encoding")
	statsCmd.Flags().Bool("json", false, "Print statistics as JSON")

	newCmd.Flags().Bool("sample", false, "Write the sample brief without prompting")
	newCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")

	configCmd.Flags().Bool("init", false, "Write the default configuration")
	configCmd.Flags().Bool("force", false, "Overwrite an existing configuration with --init")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
