// cmd/factory/main.go

package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"contentfactory/internal/adapter/circlo"
	"contentfactory/internal/adapter/gemini"
	"contentfactory/internal/config"
	"contentfactory/internal/logger"
	"contentfactory/internal/server"
	"contentfactory/internal/service/discovery"
	"contentfactory/internal/service/factory"
	"contentfactory/internal/service/personalize"
	"contentfactory/internal/service/studio"
)

func main() {
	// Load .env if present; environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg.Environment, cfg.Log.Level)

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// NATS is optional; the factory degrades to a no-op publisher
	natsConn := initNATS(cfg.NATS, appLog)
	if natsConn != nil {
		defer natsConn.Close()
	}

	// Platform and media adapters
	platform := circlo.NewClient(cfg.Circlo.BaseURL, cfg.Circlo.Token, cfg.Circlo.RequestTimeout, appLog)
	media := gemini.NewMediaClient(cfg.Gemini.APIKey, appLog)

	var writer studio.ScriptWriter
	if cfg.Gemini.APIKey != "" {
		textClient, err := gemini.NewTextClient(ctx, cfg.Gemini.APIKey)
		if err != nil {
			appLog.WithError(err).Warn("text generation unavailable, using templates")
		} else {
			defer textClient.Close()
			writer = textClient
		}
	}

	// Services
	analyzer := discovery.NewAnalyzer(appLog)

	engine := personalize.NewEngine(appLog)
	registerStrategies(engine)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	visual := studio.NewVisualFactory(media, rng, appLog)
	series := studio.NewSeriesProducer(media, appLog)
	video := studio.NewVideoCreator(media, writer, appLog)

	events := factory.NewEventPublisher(natsConn, cfg.Factory.EventsTopic, appLog)

	contentFactory := factory.New(
		platform,
		analyzer,
		engine,
		visual,
		series,
		video,
		events,
		factory.Config{
			CycleInterval: cfg.Factory.CycleInterval,
			PostLimit:     cfg.Factory.PostLimit,
		},
		appLog,
	)

	go contentFactory.Run(ctx)

	// HTTP server
	httpServer := server.NewServer(cfg.Server, contentFactory)

	go func() {
		appLog.WithFields(logrus.Fields{
			"host": cfg.Server.Host,
			"port": cfg.Server.Port,
		}).Info("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Fatal("HTTP server error")
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	appLog.Info("shutdown signal received")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("HTTP server shutdown error")
	}

	appLog.Info("shutdown complete")
}

// initNATS connects to the event bus. A missing URL or failed connection
// is not fatal; cycle events are simply not published.
func initNATS(cfg config.NATSConfig, appLog *logrus.Logger) *nats.Conn {
	if cfg.URL == "" {
		appLog.Info("NATS not configured, cycle events disabled")
		return nil
	}

	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			appLog.WithError(err).Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			appLog.WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		appLog.WithError(err).Warn("NATS connection failed, cycle events disabled")
		return nil
	}
	return nc
}

// registerStrategies installs one idea strategy per supported niche.
func registerStrategies(engine *personalize.Engine) {
	engine.Register(personalize.TechReviewerStrategy{})
	engine.Register(personalize.MusicianStrategy{})
	engine.Register(personalize.TravelerStrategy{})
	engine.Register(personalize.ArtistStrategy{})
	engine.Register(personalize.FoodieStrategy{})
	engine.Register(personalize.FitnessCoachStrategy{})
	engine.Register(personalize.GeneralStrategy{})
}
