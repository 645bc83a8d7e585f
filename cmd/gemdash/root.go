package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DaanHessen/gembooth-dash/internal/content"
	"github.com/DaanHessen/gembooth-dash/internal/envfile"
	"github.com/DaanHessen/gembooth-dash/internal/ui"
	"github.com/DaanHessen/gembooth-dash/internal/util"
	"github.com/DaanHessen/gembooth-dash/internal/web"
)

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	configFile string
	cfg        util.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "gemdash",
		Short: "GemBooth project dashboard",
		Long: `gemdash shows the GemBooth project cheatsheet: API keys from .env.local
(masked), Supabase and Stripe details, commands, links and troubleshooting.

Run without arguments for the interactive dashboard, "gemdash show all" to
print every page, or "gemdash serve" for the local JSON API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := util.LoadConfig(cmd.Flags(), a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			interactive := cmd == cmd.Root()
			a.log, err = buildLogger(cfg, interactive)
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return ui.Run(ctx, ui.Options{
				EnvFile: a.cfg.EnvFile,
				Theme:   a.cfg.Theme,
				Plain:   a.cfg.Plain,
				Version: version,
				Logger:  a.log,
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./gemdash.yaml)")
	pf.String("env-file", util.Defaults["env_file"].(string), "environment file to display")
	pf.String("theme", util.Defaults["theme"].(string), "colour theme: "+strings.Join(ui.ThemeNames(), "|"))
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.String("log-file", "", "write logs to this file (interactive mode logs nowhere by default)")
	pf.Bool("plain", false, "render without colours")

	root.AddCommand(newServeCmd(a), newShowCmd(a), newPagesCmd(), newVersionCmd())
	return root
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard pages as a local JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cfg := web.DefaultConfig()
			cfg.Addr = a.cfg.Addr
			cfg.EnvFile = a.cfg.EnvFile
			cfg.EnableCORS = a.cfg.CORS
			cfg.Debug = a.cfg.Verbose
			cfg.Version = version
			srv := web.NewServer(cfg, a.log)
			ln, err := srv.Listen()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dashboard API available at http://%s (Ctrl+C to stop)\n", ln.Addr())
			return srv.Serve(ctx, ln)
		},
	}
	cmd.Flags().String("addr", util.Defaults["addr"].(string), "listen address")
	cmd.Flags().Bool("cors", false, "allow cross-origin requests")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show [page|all]",
		Short: "Print one page, or all of them",
		Long:  "Print a page by id (e.g. api-keys) or menu key (1-9); \"all\" or no argument prints every page.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "all"
			if len(args) == 1 {
				target = args[0]
			}
			env, found, err := envfile.LoadFound(a.cfg.EnvFile)
			switch {
			case err != nil:
				a.log.Warn("env file unreadable, continuing without configuration",
					zap.String("path", a.cfg.EnvFile), zap.Error(err))
			case !found:
				a.log.Debug("env file not found", zap.String("path", a.cfg.EnvFile))
			}
			return ui.Print(cmd.OutOrStdout(), target, env, ui.PrintOptions{Raw: raw, Plain: a.cfg.Plain})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print Markdown source")
	return cmd
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the dashboard pages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range content.Pages() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-16s %s\n", p.Key, p.ID, p.Title)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gemdash", version)
		},
	}
}

// buildLogger returns a production zap logger. The interactive dashboard owns
// the terminal, so it only logs when a log file is configured.
func buildLogger(cfg util.Config, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	if cfg.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cfg.LogFile != "" {
		config.OutputPaths = []string{cfg.LogFile}
		config.ErrorOutputPaths = []string{cfg.LogFile}
	}
	return config.Build()
}
