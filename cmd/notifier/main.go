package main

import (
	"context"
	"encoding/json"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/adilbekov/recipebox-api/internal/config"
	"github.com/adilbekov/recipebox-api/internal/log"
	"github.com/adilbekov/recipebox-api/internal/mail"
	"github.com/adilbekov/recipebox-api/internal/queue"
)

func main() {
	cfg := config.Load()

	if _, err := log.Init(cfg.Prod()); err != nil {
		stdlog.Fatalf("log init: %v", err)
	}
	defer log.Sync()

	cons, err := queue.NewConsumer(cfg.RabbitURL, cfg.Exchange, cfg.Queue, cfg.BindKey)
	if err != nil {
		log.Errorf("rabbit consumer init: %v", err)
		os.Exit(1)
	}
	defer cons.Close()

	var sender mail.Sender
	if cfg.SMTPUser != "" {
		s, err := mail.NewSMTP(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SenderEmail,
		})
		if err != nil {
			log.Errorf("smtp init: %v", err)
			os.Exit(1)
		}
		sender = s
	} else {
		sender = mail.LogSender{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("notifier up. exchange=%s queue=%s key=%s workers=%d",
		cfg.Exchange, cfg.Queue, cfg.BindKey, cfg.Concurrency)

	if err := cons.Consume(ctx, cfg.Concurrency, func(b []byte) error {
		var m queue.MailRequested
		if err := json.Unmarshal(b, &m); err != nil {
			// malformed payloads are dropped, requeueing cannot fix them
			log.Errorf("bad mail event: %v", err)
			return nil
		}
		return sender.Send(ctx, m.To, m.Subject, m.Body)
	}); err != nil {
		log.Errorf("consumer stopped: %v", err)
		os.Exit(1)
	}
}
