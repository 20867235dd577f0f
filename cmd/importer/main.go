package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"shopstream/internal/importer"
)

func main() {
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC)

	in := flag.String("in", "", "catalog CSV export to import")
	out := flag.String("out", "videos.json", "fixture file to write")
	flag.Parse()

	if *in == "" {
		logger.Fatal("usage: importer -in catalog.csv [-out videos.json]")
	}

	f, err := os.Open(*in)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	videos, err := importer.NewCSVImporter(f).Run()
	if err != nil {
		logger.Fatalf("import: %v", err)
	}

	data, err := json.MarshalIndent(videos, "", "  ")
	if err != nil {
		logger.Fatalf("encode fixture: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Fatalf("write fixture: %v", err)
	}

	products := 0
	for _, v := range videos {
		products += len(v.Products)
	}
	logger.Printf("imported %d videos with %d products into %s", len(videos), products, *out)
}
