package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adilbekov/recipebox-api/internal/config"
	api "github.com/adilbekov/recipebox-api/internal/http"
	"github.com/adilbekov/recipebox-api/internal/log"
	"github.com/adilbekov/recipebox-api/internal/mail"
	"github.com/adilbekov/recipebox-api/internal/metrics"
	"github.com/adilbekov/recipebox-api/internal/queue"
	"github.com/adilbekov/recipebox-api/internal/repo"
)

func main() {
	cfg := config.Load()

	if _, err := log.Init(cfg.Prod()); err != nil {
		stdlog.Fatalf("log init: %v", err)
	}
	defer log.Sync()

	metrics.MustRegister()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// a failed database connection at startup is the one fatal error
	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Errorf("mongo connect: %v", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	if err := store.EnsureUserIndexes(ctx); err != nil {
		log.Errorf("ensure indexes: %v", err)
		os.Exit(1)
	}

	var limiter api.RateLimiter
	var rds *repo.Redis
	if cfg.RedisAddr != "" {
		rds = repo.NewRedis(cfg.RedisAddr)
		if err := rds.Ping(ctx); err != nil {
			log.Errorf("redis ping: %v (otp rate limiting disabled)", err)
		} else {
			limiter = rds
		}
		defer rds.Close()
	}

	// mail goes through the broker when one is reachable, otherwise straight
	// to the log so dev setups need no infrastructure
	var mailer mail.Sender = mail.LogSender{}
	pub := queue.NewNoop()
	if cfg.RabbitURL != "" {
		if rp, err := queue.NewRabbit(cfg.RabbitURL, cfg.Exchange); err != nil {
			log.Errorf("rabbit connect: %v (mail dispatch falls back to log)", err)
		} else {
			pub = rp
			mailer = &queue.MailDispatcher{Pub: rp, Exchange: cfg.Exchange}
		}
	}
	defer pub.Close()

	h := api.NewHandler(store, store, mailer, pub, cfg.Exchange,
		limiter, cfg.RateLimitPerMin, cfg.JWTSecret, cfg.Prod())
	h.Health = store.Ping
	r := api.NewRouter(h)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	srvErr := make(chan error, 1)
	go func() { srvErr <- srv.ListenAndServe() }()

	log.Infof("recipebox-api listening on :%s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Infof("signal: %s, shutting down", s)
	case err := <-srvErr:
		log.Errorf("server error: %v", err)
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
