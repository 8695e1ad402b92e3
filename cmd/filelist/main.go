package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"fileList/internal/app"
	"fileList/internal/config"
	"fileList/internal/logger"
	"fileList/internal/prompt"

	"github.com/spf13/cobra"
)

var (
	configPath   string
	workbookPath string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "filelist",
		Short: "Track source file revisions across two SVN locations in a workbook",
		Long: `filelist maintains a FileList sheet comparing the last-changed date and
revision of every source file found under two SVN URLs, and can embed
an Excel macro and button that refresh the sheet from inside Excel.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().StringVar(&workbookPath, "path", "", "Workbook path (default: workbook.path from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	rootCmd.AddCommand(newBuildCommand(), newInjectCommand(), newCompareCommand(), newRunCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the config and opens the log file. The returned path is the
// workbook to operate on.
func setup() (*config.Config, string, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	closer, err := logger.Init("logs", level)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to open log: %w", err)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		closer.Close()
		return nil, "", nil, err
	}

	path := workbookPath
	if path == "" {
		path = cfg.Workbook.Path
	}
	return cfg, path, func() { closer.Close() }, nil
}

// withSetup adapts a command body that needs the config and workbook path.
func withSetup(name string, body func(cmd *cobra.Command, cfg *config.Config, path string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, path, done, err := setup()
		if err != nil {
			return err
		}
		defer done()

		if err := body(cmd, cfg, path); err != nil {
			logger.Error(name+" failed", "error", err)
			return err
		}
		return nil
	}
}

func newBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Create the workbook or reset its FileList sheet",
		Args:  cobra.NoArgs,
		RunE: withSetup("build", func(cmd *cobra.Command, cfg *config.Config, path string) error {
			return app.Build(cfg, path)
		}),
	}
}

func newInjectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inject",
		Short: "Install the comparison macro and button (Windows with Excel only)",
		Args:  cobra.NoArgs,
		RunE: withSetup("inject", func(cmd *cobra.Command, cfg *config.Config, path string) error {
			return app.Inject(cmd.Context(), cfg, path)
		}),
	}
}

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Build the sheet, then install the macro and button",
		Args:  cobra.NoArgs,
		RunE: withSetup("run", func(cmd *cobra.Command, cfg *config.Config, path string) error {
			if err := app.Build(cfg, path); err != nil {
				return err
			}
			return app.Inject(cmd.Context(), cfg, path)
		}),
	}
}

func newCompareCommand() *cobra.Command {
	var url1, url2, reportPath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare file revisions under two SVN URLs and write them to the sheet",
		Args:  cobra.NoArgs,
		RunE: withSetup("compare", func(cmd *cobra.Command, cfg *config.Config, path string) error {
			if url1 == "" || url2 == "" {
				a, b, ok, err := prompt.AskURLs(url1, url2)
				if err != nil {
					return err
				}
				if !ok {
					logger.Info("Comparison cancelled at prompt")
					return nil
				}
				url1, url2 = a, b
			}

			summary, err := app.Compare(cmd.Context(), cfg, app.CompareOptions{
				Path:       path,
				URL1:       url1,
				URL2:       url2,
				ReportPath: reportPath,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n========================================\n")
			fmt.Printf("Comparison complete: %d files\n", summary.Total)
			fmt.Printf("✓ Match:     %d\n", summary.Match)
			fmt.Printf("≠ Mismatch:  %d\n", summary.Mismatch)
			fmt.Printf("? Not found: %d\n", summary.NotFound)
			fmt.Printf("Results saved to: %s\n", path)
			if reportPath != "" {
				fmt.Printf("Report saved to:  %s\n", reportPath)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&url1, "url1", "", "First SVN URL (prompted for when empty)")
	cmd.Flags().StringVar(&url2, "url2", "", "Second SVN URL (prompted for when empty)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Also write a JSON report to this file")
	return cmd
}
