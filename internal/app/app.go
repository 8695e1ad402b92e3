// Package app wires configuration to the sheet builder, the macro injector
// and the comparison run.
package app

import (
	"context"
	"fmt"
	"time"

	"fileList/internal/compare"
	"fileList/internal/config"
	"fileList/internal/excel"
	"fileList/internal/host"
	"fileList/internal/logger"
	"fileList/internal/macro"
	"fileList/internal/svn"
)

// Build creates or resets the file list sheet at path.
func Build(cfg *config.Config, path string) error {
	logger.Info("Starting build", "path", path, "sheet", cfg.Workbook.Sheet)

	report, err := excel.BuildFileList(path, cfg.Workbook.Sheet)
	if err != nil {
		return fmt.Errorf("failed to build file list: %w", err)
	}
	if n := len(report.Issues); n > 0 {
		fmt.Printf("Warning: %d date cells could not be normalized (see log)\n", n)
	}
	fmt.Printf("✓ File list ready in %s\n", path)
	return nil
}

// NewInjector returns an injector configured from cfg.
func NewInjector(cfg *config.Config) *macro.Injector {
	m := cfg.Macro
	return &macro.Injector{
		Attach: host.Attach,
		Sheet:  cfg.Workbook.Sheet,
		Module: m.ModuleName,
		Button: host.Button{
			Name:    m.ButtonName,
			Caption: m.ButtonCaption,
			Left:    m.ButtonLeft,
			Top:     m.ButtonTop,
			Width:   m.ButtonWidth,
			Height:  m.ButtonHeight,
		},
		Params: macro.Params{
			Procedure:  m.Procedure,
			Sheet:      cfg.Workbook.Sheet,
			Binary:     cfg.SVN.Binary,
			Extensions: cfg.SVN.Extensions,
		},
	}
}

// Inject installs the macro and its button into the workbook at path.
func Inject(ctx context.Context, cfg *config.Config, path string) error {
	logger.Info("Starting macro injection", "path", path)

	if err := NewInjector(cfg).Inject(ctx, path); err != nil {
		return fmt.Errorf("failed to inject macro: %w", err)
	}
	fmt.Printf("✓ Macro %s and button %q installed in %s\n", cfg.Macro.Procedure, cfg.Macro.ButtonCaption, path)
	return nil
}

// CompareOptions are the inputs of a comparison run.
type CompareOptions struct {
	Path       string
	URL1, URL2 string
	ReportPath string
	Source     compare.Source
	Now        func() time.Time
}

// Compare looks up every matching file under both URLs, writes the result
// into the file list and optionally saves a JSON report.
func Compare(ctx context.Context, cfg *config.Config, opts CompareOptions) (compare.Summary, error) {
	src := opts.Source
	if src == nil {
		src = svn.NewClient(cfg.SVN.Binary, cfg.SVN.Timeout())
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logger.Info("Starting comparison", "url1", opts.URL1, "url2", opts.URL2, "extensions", cfg.SVN.Extensions)

	rows, err := compare.Run(ctx, src, opts.URL1, opts.URL2, cfg.SVN.Extensions)
	if err != nil {
		return compare.Summary{}, err
	}

	editor, err := excel.OpenOrCreateFile(opts.Path)
	if err != nil {
		return compare.Summary{}, err
	}
	defer editor.Close()

	if err := editor.PrepareFileList(cfg.Workbook.Sheet); err != nil {
		return compare.Summary{}, err
	}
	if _, err := editor.WriteComparison(cfg.Workbook.Sheet, rows); err != nil {
		return compare.Summary{}, err
	}
	if err := editor.Save(); err != nil {
		return compare.Summary{}, err
	}

	summary := compare.Summarize(rows)
	logger.Info("Comparison completed",
		"total", summary.Total,
		"match", summary.Match,
		"mismatch", summary.Mismatch,
		"not_found", summary.NotFound)

	if opts.ReportPath != "" {
		report := compare.NewReport(opts.URL1, opts.URL2, rows, now())
		if err := report.SaveToFile(opts.ReportPath); err != nil {
			return summary, fmt.Errorf("failed to save report: %w", err)
		}
		logger.Info("Saved comparison report", "path", opts.ReportPath)
	}
	return summary, nil
}
