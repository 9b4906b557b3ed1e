package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/phenrril/newmobile/internal/app"
	"github.com/phenrril/newmobile/internal/catalog"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	application, err := app.NewApp()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to create app")
	}
	zlog.Info().Int("products", application.Catalog.Len()).Msg("catalog loaded")

	if path := os.Getenv("CATALOG_PATH"); path != "" {
		w, err := catalog.Watch(path, application.Catalog)
		if err != nil {
			zlog.Fatal().Err(err).Msg("failed to watch catalog")
		}
		defer w.Close()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		for p := 8081; p <= 8090; p++ {
			alt := net.JoinHostPort("", fmt.Sprintf("%d", p))
			l2, err2 := net.Listen("tcp", alt)
			if err2 == nil {
				ln = l2
				port = fmt.Sprint(p)
				break
			}
		}
		if ln == nil {
			zlog.Fatal().Err(err).Msg("no free port")
		}
	}
	zlog.Info().Str("port", port).Msg("listening")

	server := &http.Server{Handler: application.HTTPHandler()}

	go func() {
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			zlog.Error().Err(err).Msg("serve")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}
