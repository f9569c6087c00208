package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"castguide/api"
	"castguide/config"
	"castguide/handlers"
	"castguide/internal/logging"
	"castguide/services/guide"
	"castguide/services/twitch"
	"castguide/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.Setup(cfg.LogLevel, cfg.LogFile)
	log.Info("starting castguide", "addr", cfg.ListenAddr, "categories", len(cfg.Categories))

	client := twitch.NewClient(cfg.ClientID, cfg.ClientSecret, cfg.APIBaseURL, cfg.AuthBaseURL)
	guideSvc := guide.New(client, cfg.Categories, cfg.FetchConcurrency, cfg.FetchTimeout)

	categoriesH := handlers.NewCategoriesHandler(cfg.Categories)
	streamsH := handlers.NewStreamsHandler(client, cfg.Categories, cfg.PlayerParent)
	timeslotsH := handlers.NewTimeslotsHandler(guideSvc)
	scheduleH := handlers.NewScheduleHandler(client)
	broadcastersH := handlers.NewBroadcastersHandler(client)
	videosH := handlers.NewVideosHandler(client)
	searchH := handlers.NewSearchHandler(client)
	pagesH := handlers.NewPagesHandler(cfg.Categories, cfg.PlayerParent)

	router := utils.NewRouter()
	router.Use(api.RequestLogMiddleware(log.With("component", "http")))

	router.HandleFunc("/categories", categoriesH.List).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/streams/{category}", streamsH.ListByCategory).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/timeslots", timeslotsH.Get).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/schedule/{broadcasterId}", scheduleH.Get).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/broadcasters/{broadcasterId}", broadcastersH.Get).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/videos/{broadcasterId}", videosH.ListByBroadcaster).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/search/categories", searchH.Categories).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/search/channels", searchH.Channels).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/player/{channelName}", pagesH.Player).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/", pagesH.Index).Methods(http.MethodGet, http.MethodOptions)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("stopped")
}
