package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ttsserver/pkg/log"
)

// @title SSML to Speech API
// @version 1.0
// @description Chunked Google Text-to-Speech synthesis with MP3 or WAV output.
// @BasePath /
func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		panic(err)
	}
	if err := run(app); err != nil {
		app.logger.Error("server stopped", log.Error(err))
		cleanup()
		os.Exit(1)
	}
	cleanup()
}

func run(app *App) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Service.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("shutdown failed", log.Error(err))
		}
	}()
	return app.Service.Start(app.config.ListenAddr())
}
