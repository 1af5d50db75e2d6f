package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/spf13/cobra"
    "go.uber.org/zap"

    "covera.app/covera-web/internal/config"
    "covera.app/covera-web/internal/observability"
)

// cliFlags override values loaded from the environment.
type cliFlags struct {
    envFile    string
    addr       string
    contentDir string
    publicDir  string
}

func main() {
    if err := newRootCmd().Execute(); err != nil {
        fmt.Fprintf(os.Stderr, "Error: %v\n", err)
        os.Exit(1)
    }
}

func newRootCmd() *cobra.Command {
    var flags cliFlags
    serve := func(cmd *cobra.Command, _ []string) error {
        return runServe(cmd.Context(), flags)
    }

    rootCmd := &cobra.Command{
        Use:   "covera-web",
        Short: "Covera marketing site and blog",
        Long: `Serves the Covera marketing site: landing, industry and solution pages, pricing,
the blog, and the contact and demo forms.

Configuration comes from COVERA_WEB_* environment variables and an optional .env file.`,
        SilenceUsage: true,
        RunE:         serve,
    }
    rootCmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Path to an optional .env file")
    rootCmd.PersistentFlags().StringVar(&flags.contentDir, "content", "", "Directory of markdown posts (default: embedded)")
    rootCmd.PersistentFlags().StringVar(&flags.publicDir, "public", "", "Directory of static assets (default: embedded)")

    serveCmd := &cobra.Command{
        Use:   "serve",
        Short: "Start the HTTP server (default)",
        RunE:  serve,
    }
    serveCmd.Flags().StringVar(&flags.addr, "addr", "", "HTTP listen address (overrides COVERA_WEB_HOST/PORT)")

    sitemapCmd := &cobra.Command{
        Use:   "sitemap",
        Short: "Print sitemap.xml to stdout",
        RunE: func(cmd *cobra.Command, _ []string) error {
            cfg, err := loadConfig(flags)
            if err != nil {
                return err
            }
            s, err := newServer(cfg, zap.NewNop(), nil)
            if err != nil {
                return err
            }
            return s.writeSitemap(cmd.OutOrStdout())
        },
    }

    rootCmd.AddCommand(serveCmd, sitemapCmd)
    return rootCmd
}

func loadConfig(flags cliFlags) (*config.Config, error) {
    cfg, err := config.Load(flags.envFile)
    if err != nil {
        return nil, err
    }
    if flags.contentDir != "" {
        cfg.ContentDir = flags.contentDir
    }
    if flags.publicDir != "" {
        cfg.PublicDir = flags.publicDir
    }
    return cfg, nil
}

func runServe(ctx context.Context, flags cliFlags) error {
    cfg, err := loadConfig(flags)
    if err != nil {
        return err
    }
    logger, err := observability.NewLogger(cfg.LogLevel)
    if err != nil {
        return fmt.Errorf("init logger: %w", err)
    }
    defer func() { _ = logger.Sync() }()

    s, err := newServer(cfg, logger, observability.NewMetrics())
    if err != nil {
        return err
    }

    addr := cfg.Addr()
    if flags.addr != "" {
        addr = flags.addr
    }
    srv := &http.Server{
        Addr:              addr,
        Handler:           s.routes(),
        ReadHeaderTimeout: 10 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
        IdleTimeout:       60 * time.Second,
    }

    if ctx == nil {
        ctx = context.Background()
    }
    ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
    defer stop()

    errCh := make(chan error, 1)
    go func() {
        logger.Info("web listening",
            zap.String("addr", addr),
            zap.String("env", cfg.Env),
            zap.Bool("fake_inquiries", s.inquiries.Fake()),
        )
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            errCh <- err
        }
        close(errCh)
    }()

    select {
    case err := <-errCh:
        if err != nil {
            return fmt.Errorf("listen: %w", err)
        }
        return nil
    case <-ctx.Done():
    }

    logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
    shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        return fmt.Errorf("shutdown: %w", err)
    }
    return nil
}
