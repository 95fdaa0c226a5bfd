package main

import (
	"encoding/csv"
	"lms/config"
	"lms/database"
	"lms/models"
	"log"
	"os"
	"strings"
)

// Imports the category tree from Categories.csv (columns: name, slug,
// parent_slug). Parents must appear before their children.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("Categories.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	for _, col := range []string{"name", "slug"} {
		if _, ok := headerIndex[col]; !ok {
			log.Fatalf("Missing required column %q", col)
		}
	}

	db := database.Database.Db

	inserted := 0
	skipped := 0

	for _, row := range records[1:] {
		name := strings.TrimSpace(row[headerIndex["name"]])
		slug := strings.TrimSpace(row[headerIndex["slug"]])
		if name == "" || slug == "" {
			skipped++
			continue
		}

		// Existing slugs are left alone so the import is re-runnable
		if err := db.Where("slug = ?", slug).First(&models.Category{}).Error; err == nil {
			skipped++
			continue
		}

		category := models.Category{Name: name, Slug: slug}

		if idx, ok := headerIndex["parent_slug"]; ok {
			parentSlug := strings.TrimSpace(row[idx])
			if parentSlug != "" {
				var parent models.Category
				if err := db.Where("slug = ?", parentSlug).First(&parent).Error; err != nil {
					log.Printf("Parent %q not found for %q, importing as root", parentSlug, slug)
				} else {
					category.ParentID = &parent.ID
				}
			}
		}

		if err := db.Create(&category).Error; err != nil {
			log.Printf("Failed to insert %q: %v", slug, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import complete: %d inserted, %d skipped", inserted, skipped)
}
