package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/basedalex/yadro-kata/internal/db"
	"github.com/basedalex/yadro-kata/internal/router"
	"github.com/basedalex/yadro-kata/internal/scheduler"
	"github.com/basedalex/yadro-kata/pkg/config"
	"github.com/basedalex/yadro-kata/pkg/dictionary"
	"github.com/basedalex/yadro-kata/pkg/stemmer"
	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var configPath string
	flag.StringVar(&configPath, "c", "config.yaml", "path to config relative to executable")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalln("error loading config:", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalln("error parsing log level:", err)
	}
	log.SetLevel(level)

	if err := db.Migrate(ctx, cfg.DSN); err != nil {
		log.Fatal(err)
	}

	database, err := db.NewPostgres(ctx, cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := seed(ctx, cfg, database); err != nil {
		log.Fatal(err)
	}

	dict := dictionary.New()
	cached, err := stemmer.NewCached(stemmer.New(dict), cfg.CacheSize)
	if err != nil {
		log.Fatal(err)
	}

	h := router.NewHandler(cfg, database, dict, cached)
	if err := h.Reload(ctx); err != nil {
		log.Fatal(err)
	}

	go scheduler.Run(ctx, clock.New(), time.Duration(cfg.ReloadInterval)*time.Hour, h.Reload)

	if err := router.NewServer(ctx, cfg, h); err != nil {
		log.Fatal(err)
	}
}

type seedStore interface {
	CountWords(ctx context.Context) (int, error)
	SaveWords(ctx context.Context, entries map[string]string) error
	SaveUser(ctx context.Context, user db.User, passwordHash string) error
}

// seed fills an empty words table from the word list file and stores the
// admin account from the config. Words already in the database are kept, so
// entries added or deleted over HTTP survive a restart.
func seed(ctx context.Context, cfg *config.Config, database seedStore) error {
	if cfg.DictFile != "" {
		count, err := database.CountWords(ctx)
		if err != nil {
			return err
		}

		if count > 0 {
			log.WithField("words", count).Info("dictionary already stored, skipping seed")
		} else {
			entries, err := dictionary.LoadFile(cfg.DictFile)
			if err != nil {
				return err
			}
			if err := database.SaveWords(ctx, entries); err != nil {
				return err
			}
			log.WithFields(log.Fields{"file": cfg.DictFile, "words": len(entries)}).Info("dictionary seeded")
		}
	}

	if cfg.AdminLogin != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		err = database.SaveUser(ctx, db.User{Login: cfg.AdminLogin, Role: "admin"}, string(hash))
		if err != nil {
			return err
		}
	}

	return nil
}
