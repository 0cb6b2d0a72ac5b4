package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hotelmol/leads-api/internal/entity"
	"github.com/hotelmol/leads-api/internal/infra/database"
)

// Seeds the blog with its initial posts. Safe to run repeatedly: existing
// slugs are left untouched.
func main() {
	godotenv.Load()

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("DATABASE_URL is required to seed blog posts")
	}

	db, err := database.NewDBConnection(connString)
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}
	defer db.Close()

	repo := database.NewBlogRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Seeding blog posts...")

	for _, post := range seedPosts() {
		if err := repo.Upsert(ctx, post); err != nil {
			log.Fatalf("failed to seed post %q: %v", post.Slug, err)
		}
		log.Printf("seeded %q", post.Slug)
	}

	log.Println("Seeding completed successfully.")
}

func seedPosts() []*entity.BlogPost {
	now := time.Now().UTC()

	welcome := entity.NewBlogPost(
		"Welcome to Hotelmol Blog",
		"welcome-to-hotelmol",
		`# Welcome to Hotelmol

This is the first post on the Hotelmol blog. We are excited to share insights about hospitality automation and AI.

## Why AI?

AI is transforming the hotel industry by:
- Automating guest communication
- Increasing revenue through upsells
- Improving operational efficiency

Stay tuned for more!
`,
	)
	welcome.Excerpt = strPtr("Welcome to the new Hotelmol blog. Discover how AI is transforming hospitality.")
	welcome.CoverImage = strPtr("https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&q=80&w=1000")
	welcome.Keywords = []string{"hotel", "ai", "automation"}
	welcome.MetaTitle = strPtr("Welcome to Hotelmol Blog")
	welcome.MetaDescription = strPtr("The first post on the Hotelmol blog about hotel automation.")
	welcome.Published = true
	welcome.PublishedAt = &now

	return []*entity.BlogPost{welcome}
}

func strPtr(s string) *string {
	return &s
}
