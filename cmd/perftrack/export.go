package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"performance-tracker-backend/internal/logger"
	"performance-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var dir string

	exportService := func(cmd *cobra.Command) (service.ExportServiceInterface, error) {
		store, err := a.snapshot(cmd.Context())
		if err != nil {
			return nil, err
		}
		return service.NewExportService(store), nil
	}
	outDir := func() string {
		if dir != "" {
			return dir
		}
		return a.cfg.ExportDir
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write PDF performance reports to disk",
	}
	cmd.PersistentFlags().StringVarP(&dir, "dir", "d", "", "output directory (defaults to EXPORT_DIR)")

	cmd.AddCommand(&cobra.Command{
		Use:   "member <member-id>",
		Short: "Export a member's performance report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid member id %q: %w", args[0], err)
			}
			svc, err := exportService(cmd)
			if err != nil {
				return err
			}
			return exportReport(cmd.OutOrStdout(), outDir(), func(w io.Writer) (string, error) {
				return svc.MemberReport(w, id)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "task <task-id>",
		Short: "Export a task report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q: %w", args[0], err)
			}
			svc, err := exportService(cmd)
			if err != nil {
				return err
			}
			return exportReport(cmd.OutOrStdout(), outDir(), func(w io.Writer) (string, error) {
				return svc.TaskReport(w, id)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "team",
		Short: "Export the team leaderboard report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := exportService(cmd)
			if err != nil {
				return err
			}
			return exportReport(cmd.OutOrStdout(), outDir(), svc.TeamReport)
		},
	})

	return cmd
}

// exportReport renders a report and writes it into dir under the name the renderer chose
func exportReport(out io.Writer, dir string, render func(io.Writer) (string, error)) error {
	var buf bytes.Buffer
	name, err := render(&buf)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.WithComponent("export").WithField("path", path).Info("Report written")
	fmt.Fprintln(out, path)
	return nil
}
