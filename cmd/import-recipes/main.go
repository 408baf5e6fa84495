package main

import (
	"context"
	"encoding/json"
	stdlog "log"
	"os"
	"time"

	"github.com/adilbekov/recipebox-api/internal/config"
	"github.com/adilbekov/recipebox-api/internal/domain"
	"github.com/adilbekov/recipebox-api/internal/log"
	"github.com/adilbekov/recipebox-api/internal/repo"
)

// One-shot ETL: reads the recipe JSON export, drops records without a name,
// and replaces the recipes collection wholesale.
func main() {
	cfg := config.Load()

	if _, err := log.Init(cfg.Prod()); err != nil {
		stdlog.Fatalf("log init: %v", err)
	}
	defer log.Sync()

	path := cfg.RecipesFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("read %s: %v", path, err)
		os.Exit(1)
	}

	var all []domain.Recipe
	if err := json.Unmarshal(raw, &all); err != nil {
		log.Errorf("parse %s: %v", path, err)
		os.Exit(1)
	}

	valid := make([]domain.Recipe, 0, len(all))
	for _, r := range all {
		if r.RecipeName != "" {
			valid = append(valid, r)
		}
	}
	log.Infof("found %d records, importing %d valid recipes", len(all), len(valid))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Errorf("mongo connect: %v", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	n, err := store.ReplaceAllRecipes(ctx, valid)
	if err != nil {
		log.Errorf("import: %v (inserted %d)", err, n)
		os.Exit(1)
	}
	log.Infof("successfully imported %d recipes", n)
}
