// Package main provides the forumscope-export CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"forumscope/internal/core/version"
	"forumscope/internal/platform/config"
	"forumscope/internal/platform/logger"
	"forumscope/internal/platform/store"
	crepo "forumscope/internal/services/catalog/repo"
	csvc "forumscope/internal/services/catalog/service"
	rdom "forumscope/internal/services/reports/domain"
	"forumscope/internal/services/reports/render"
	rrepo "forumscope/internal/services/reports/repo"
	rsvc "forumscope/internal/services/reports/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the export CLI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "forumscope-export",
		Short:   "Write forum activity reports as CSV",
		Long:    "Forumscope-export builds instructor forum reports and writes them as CSV files.",
		Version: version.Info().Version,
	}

	rootCmd.SetVersionTemplate("forumscope-export version {{.Version}}\n")

	rootCmd.AddCommand(newForumsCmd())
	rootCmd.AddCommand(newStudentsCmd())

	return rootCmd
}

// reportFlags are the flags shared by both report subcommands.
type reportFlags struct {
	course string
	start  string
	end    string
	out    string
}

func (f *reportFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.course, "course", "c", "", "Course key (required)")
	cmd.Flags().StringVar(&f.start, "start", "", "Window start YYYY-MM-DD")
	cmd.Flags().StringVar(&f.end, "end", "", "Window end YYYY-MM-DD")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output file (default stdout)")
	_ = cmd.MarkFlagRequired("course")
}

// withService opens the store, builds the reports service and hands it to fn.
func withService(fn func(ctx context.Context, svc rsvc.Service) error) error {
	// .env is a developer convenience, absence is fine
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{
			Enabled:  true,
			URL:      pgCfg.MustString("DBURL"),
			MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 2)),
		},
		CH: store.CHConfig{
			Enabled:    true,
			URL:        chCfg.MustString("DBURL"),
			ClientName: "forumscope",
			ClientTag:  "export",
		},
	}, store.WithLogger(*logger.Get()))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	catalog := csvc.New(st.PG, crepo.NewPG())
	svc := rsvc.New(rrepo.NewCH(st.CH), rsvc.Options{Resolver: catalog})

	return fn(ctx, svc)
}

// openOut returns the destination writer and a close func.
func openOut(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}

// newForumsCmd creates the forums subcommand.
func newForumsCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "forums",
		Short: "Merged per-day forum activity report",
		Long:  "Write the merged per-day thread, response and comment activity report for a course.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(ctx context.Context, svc rsvc.Service) error {
				rep, err := svc.ForumReport(ctx, rdom.ForumReportInput{
					CourseKey: flags.course,
					Window:    rdom.DateWindow{Start: flags.start, End: flags.end},
				})
				if err != nil {
					return err
				}

				w, closeFn, err := openOut(cmd, flags.out)
				if err != nil {
					return err
				}
				if err := render.ForumCSV(w, rep); err != nil {
					_ = closeFn()
					return fmt.Errorf("render csv: %w", err)
				}
				if err := closeFn(); err != nil {
					return err
				}
				if flags.out != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", len(rep.Rows), flags.out)
				}
				return nil
			})
		},
	}

	flags.bind(cmd)
	return cmd
}

// newStudentsCmd creates the students subcommand.
func newStudentsCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "students",
		Short: "Per-student posts and votes report",
		Long:  "Write per-student posting and voting totals for a course.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(ctx context.Context, svc rsvc.Service) error {
				rep, err := svc.StudentReport(ctx, rdom.StudentReportInput{
					CourseKey: flags.course,
					Window:    rdom.DateWindow{Start: flags.start, End: flags.end},
				})
				if err != nil {
					return err
				}

				w, closeFn, err := openOut(cmd, flags.out)
				if err != nil {
					return err
				}
				if err := render.StudentCSV(w, rep); err != nil {
					_ = closeFn()
					return fmt.Errorf("render csv: %w", err)
				}
				if err := closeFn(); err != nil {
					return err
				}
				if flags.out != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", len(rep.Rows), flags.out)
				}
				return nil
			})
		},
	}

	flags.bind(cmd)
	return cmd
}
