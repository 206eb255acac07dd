package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jsvensson/zed2vscode"
	"github.com/jsvensson/zed2vscode/internal/config"
	"github.com/jsvensson/zed2vscode/internal/engine"
	"github.com/jsvensson/zed2vscode/internal/zed"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagConfig    string
	flagOnly      []string
	flagSource    string
	flagForce     bool
	flagCheck     bool
	flagVerbosity int
	flagLog       string
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "zed2vscode",
	Short:   "Convert Zed themes to VS Code color themes",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var path *string
		if flagLog != "" {
			path = &flagLog
		}
		commonlog.Configure(flagVerbosity, path)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the themes selected by a config file",
	Args:  cobra.NoArgs,
	RunE:  runConvert,
}

var themeCmd = &cobra.Command{
	Use:   "theme [file]",
	Short: "Convert a single Zed theme document to stdout",
	Long:  "Convert a single Zed theme object (not a theme family) read from file, or stdin if no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the themes in a Zed theme family file",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format config files",
	Long:  "Format one or more config files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbosity, "verbose", "v", "increase log verbosity (can be repeated)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "write logs to this file instead of stderr")

	convertCmd.Flags().StringVar(&flagConfig, "config", config.DefaultPath, "path to config HCL file")
	convertCmd.Flags().StringArrayVar(&flagOnly, "only", nil, "convert only the given theme ids (can be repeated)")
	listCmd.Flags().StringVar(&flagSource, "source", config.Default().Source, "path to Zed theme family file")
	initCmd.Flags().StringVar(&flagConfig, "config", config.DefaultPath, "path of the config file to write")
	initCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "overwrite an existing config file")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	e := &engine.Engine{
		Config: cfg,
		Only:   flagOnly,
		Log:    commonlog.GetLogger("zed2vscode.convert"),
	}

	report, err := e.Run()
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, w := range report.Written {
		fmt.Fprintf(out, "%s: %s -> %s\n", w.ID, w.Source, w.Path)
	}
	fmt.Fprintf(out, "Converted %d of %d themes\n", len(report.Written), len(report.Written)+len(report.Missing))
	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("reading theme: %w", err)
		}
		defer f.Close()
		in = f
	}

	return zed2vscode.Convert(in, cmd.OutOrStdout())
}

func runList(cmd *cobra.Command, args []string) error {
	bundle, err := zed.LoadBundle(flagSource)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, t := range bundle.Themes {
		appearance := t.Appearance
		if appearance == "" {
			appearance = "-"
		}
		fmt.Fprintf(out, "%-6s %s\n", appearance, t.Name)
	}
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	if !flagForce {
		if _, err := os.Stat(flagConfig); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", flagConfig)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", flagConfig, err)
		}
	}

	if err := os.WriteFile(flagConfig, config.Encode(config.Default()), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", flagConfig)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		formatted := config.Format(data)
		if string(formatted) == string(data) {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
