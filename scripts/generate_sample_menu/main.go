package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"vineyard/internal/catalog"
)

// Writes the house menu as a gzipped JSON-lines seed file. With -legacy the
// entries use the older "title" and "type" field names, which the loader
// still accepts.
func main() {
	out := flag.String("out", "data/menus/menu.jsonl.gz", "output path")
	legacy := flag.Bool("legacy", false, "write legacy title/type field names")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	items := catalog.DefaultItems()
	if *legacy {
		for i := range items {
			items[i].Title, items[i].Name = items[i].Name, ""
			items[i].Type, items[i].FoodType = items[i].FoodType, ""
		}
	}

	if err := createSeedFile(*out, items); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d menu items\n", *out, len(items))
	fmt.Println("\nLoad it with CATALOG_SEED_FILE, or upload it under S3_PREFIX when S3_ENABLED=true.")
}

func createSeedFile(filePath string, items []catalog.RawItem) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	gzipWriter := gzip.NewWriter(file)
	encoder := json.NewEncoder(gzipWriter)
	for _, item := range items {
		if err := encoder.Encode(item); err != nil {
			return fmt.Errorf("failed to write menu item %s: %w", item.Name, err)
		}
	}

	return gzipWriter.Close()
}
