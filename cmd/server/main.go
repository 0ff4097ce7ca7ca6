// cmd/server/main.go
package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/daviddc5/Game2-sub000/internal/auth"
	"github.com/daviddc5/Game2-sub000/internal/cache"
	"github.com/daviddc5/Game2-sub000/internal/database"
	"github.com/daviddc5/Game2-sub000/internal/game"
	"github.com/daviddc5/Game2-sub000/internal/handlers"
	"github.com/daviddc5/Game2-sub000/internal/middleware"
)

func main() {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}

	if err := auth.Init(); err != nil {
		logger.Fatalf("failed to init auth: %v", err)
	}

	// Both backends are optional; the service plays matches fully in memory.
	if err := cache.ConnectRedis(); err != nil {
		logger.WithError(err).Warn("redis unavailable; match action history disabled")
	}
	if err := database.ConnectDB(); err != nil {
		logger.WithError(err).Warn("postgres unavailable; match result history disabled")
	}
	if database.DB != nil {
		defer database.DB.Close()
	}

	srv := handlers.NewDuelServer(game.RulesFromEnv(), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handlers.PingHandler)
	mux.Handle("/duel/characters", middleware.LogMiddleware(logger)(http.HandlerFunc(srv.CharactersHandler)))
	mux.Handle("/duel/ws", middleware.LogMiddleware(logger)(http.HandlerFunc(srv.DuelWSHandler)))

	server := &http.Server{
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	l, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		logger.Fatalf("failed to listen: %v", err)
	}
	logger.Infof("listening on %s", l.Addr())

	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(l)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		logger.Errorf("failed to serve: %v", err)
	case sig := <-sigs:
		logger.Infof("terminating: %v", sig)
	}
}
