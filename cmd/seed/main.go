package main

import (
	"flag"
	"log"
	"os"

	"shopstream/internal/config"
	"shopstream/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	dir := flag.String("dir", cfg.DataDir, "data directory for the catalog fixture")
	force := flag.Bool("force", false, "overwrite an existing catalog file")
	flag.Parse()

	path, err := seed.Apply(*dir, *force)
	if err != nil {
		logger.Fatalf("seed catalog: %v", err)
	}
	logger.Printf("catalog fixture at %s", path)
}
