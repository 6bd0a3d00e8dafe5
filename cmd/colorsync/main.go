package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"colorsync/internal/config"
	"colorsync/internal/console"
	"colorsync/internal/session"
	"colorsync/internal/ui"
)

func main() {
	// Load .env file if it exists
	// Missing is fine, the process environment still applies
	_ = godotenv.Load()

	cfg := config.Load()
	ui.SetLevel(cfg.Env.LogLevel)

	ui.PrintBanner()

	if cfg.Env.IsDevelopment() {
		ui.LogStatus("info", "Environment: "+ui.Warn("DEVELOPMENT"))
	} else {
		ui.LogStatus("info", "Environment: "+ui.Success("PRODUCTION"))
	}

	if err := cfg.Validate(); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sess := session.New()

	var srv *session.Server
	if cfg.ServeHTTP() {
		handler := session.NewHandler(sess, cfg.AllowedOrigin)
		handler.SetEditRate(cfg.EditRate)
		srv = session.NewServer(cfg.Listen, handler)
		if err := srv.Start(); err != nil {
			ui.LogStatus("error", "API server failed: "+err.Error())
			os.Exit(1)
		}
		ui.LogStatus("success", "API: http://"+srv.Addr()+"/api/state")
		ui.LogStatus("info", "Metrics: http://"+srv.Addr()+"/metrics")
	}

	interactive := ui.IsInteractive()
	if srv != nil && !interactive {
		// Headless: serve until signalled
		ui.LogStatus("info", "stdin is not a terminal, console disabled")
		<-ctx.Done()
	} else {
		ui.LogSection("Picker")
		con := console.New(sess, os.Stdin, ui.Out, console.Options{
			SwatchWidth: cfg.SwatchWidth,
			Border:      ui.ParseBorder(cfg.Border),
		})
		if err := con.Run(ctx); err != nil {
			ui.LogStatus("error", "console: "+err.Error())
		}
	}

	ui.LogGracefulShutdown()
	if srv != nil {
		if err := srv.Shutdown(context.Background()); err != nil {
			ui.LogStatus("error", "API shutdown: "+err.Error())
		}
	}
	ui.PrintFooter("Last color " + sess.State().Hex)
}
