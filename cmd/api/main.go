package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"margin-system/application"
	"margin-system/presenters"
	"margin-system/utils/configs"
	"margin-system/utils/gpooling"
	logger2 "margin-system/utils/logger"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, _ := logger2.NewLogger("production")

	pool_go_routine, _ := gpooling.NewPooling(config.MaxPoolSize)

	app := application.NewMarginApplication(config, lg, pool_go_routine)

	handler := presenters.NewHandler(app, lg)

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler.Router(),
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 60,
	}

	sig := make(chan os.Signal, 1)

	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	pool_go_routine.Submit(func() {
		select {
		case <-sig:
			lg.Warn("shutting down admin server...")
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
			defer cancel()
			_ = srv.Shutdown(ctx)
			pool_go_routine.Release()
		}
	})

	lg.With(zap.Field{
		Key:    "port",
		Type:   zapcore.StringType,
		String: config.Port,
	}).Info("starting margin admin server...")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}
