package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Odongfelix/jweb/internal/core/domain"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/Odongfelix/jweb/internal/dto"
	"github.com/Odongfelix/jweb/internal/platform/config"
	"github.com/spf13/cobra"
)

var reportQuery dto.ReportQuery

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Work with the journal entry report",
}

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one page of the journal entry report",
	Long: `Export the rows of one report page as a spreadsheet or a PDF document.

Example:
  jweb report export --format pdf --office 2 --limit 50 --out reports/`,
	Args: cobra.NoArgs,
	RunE: runReportExport,
}

func init() {
	flags := reportExportCmd.Flags()
	flags.String("format", "xlsx", "export format (xlsx or pdf)")
	flags.String("out", ".", "directory the file is written to")
	flags.StringVar(&reportQuery.FromDate, "from", "", "from date (YYYY-MM-DD)")
	flags.StringVar(&reportQuery.ToDate, "to", "", "to date, inclusive (YYYY-MM-DD)")
	flags.Int64Var(&reportQuery.Office, "office", 0, "office ID")
	flags.IntVar(&reportQuery.Offset, "offset", 0, "rows to skip")
	flags.IntVar(&reportQuery.Limit, "limit", 0, "page size (default 10, max 100)")
	flags.StringVar(&reportQuery.SortBy, "sort-by", "", "sort column")
	flags.StringVar(&reportQuery.SortDir, "sort-dir", "asc", "sort direction (asc or desc)")

	reportCmd.AddCommand(reportExportCmd)
}

func runReportExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outDir, _ := cmd.Flags().GetString("out")

	return withServices(cmd, func(ctx context.Context, cfg *config.Config, svc *portssvc.ServiceContainer) error {
		filter, err := reportQuery.ToFilter(cfg.Location)
		if err != nil {
			return err
		}
		page, err := reportQuery.ToPageRequest()
		if err != nil {
			return err
		}

		file, err := svc.Reporting.Export(ctx, domain.ExportFormat(format), filter, page)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(outDir, file.FileName)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		slog.Info("Report exported", slog.String("path", path), slog.Int("bytes", len(file.Content)))
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	})
}
