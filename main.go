package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lasertag/config"
	"lasertag/logging"
	"lasertag/network"
	"lasertag/session"
)

func main() {
	var addr string
	flag.StringVar(&addr, "addr", "", "listen address, overrides LASERTAG_ADDR")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	log := logging.New(cfg.LogFile)
	defer func() { _ = log.Sync() }()

	manager := session.NewManager(log)
	handler := network.NewHandler(manager, cfg.AllowOrigin, log)

	mux := http.NewServeMux()
	mux.Handle("/ws", handler)
	mux.HandleFunc("/api/games", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(manager.List())
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		log.Infof("laser tag server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
