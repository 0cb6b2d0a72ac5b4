package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hotelmol/leads-api/internal/entity"
	"github.com/hotelmol/leads-api/internal/infra/database"
	"github.com/hotelmol/leads-api/internal/infra/http/handlers"
	"github.com/hotelmol/leads-api/internal/infra/http/middleware"
	"github.com/hotelmol/leads-api/internal/infra/integration/n8n"
	"github.com/hotelmol/leads-api/internal/infra/integration/openai"
	"github.com/hotelmol/leads-api/internal/infra/memory"
	"github.com/hotelmol/leads-api/internal/usecase"
)

func main() {
	godotenv.Load()

	leadWebhookURL := os.Getenv("N8N_LEAD_WEBHOOK_URL")
	cookieWebhookURL := os.Getenv("N8N_COOKIE_WEBHOOK_URL")

	// 1. Storage: Postgres when configured, ephemeral fallback otherwise.
	var (
		db           *sql.DB
		leadRepo     entity.LeadRepositoryInterface
		consentRepo  entity.CookieConsentRepositoryInterface
		waitlistRepo entity.WaitlistRepositoryInterface
		blogRepo     entity.BlogRepositoryInterface
		settingRepo  entity.SiteSettingRepositoryInterface
	)

	if connString := os.Getenv("DATABASE_URL"); connString != "" {
		var err error
		db, err = database.NewDBConnection(connString)
		if err != nil {
			log.Fatalf("failed to connect to Postgres: %v", err)
		}
		defer db.Close()

		leadRepo = database.NewLeadRepository(db)
		consentRepo = database.NewCookieConsentRepository(db)
		waitlistRepo = database.NewWaitlistRepository(db)
		blogRepo = database.NewBlogRepository(db)
		settingRepo = database.NewSiteSettingRepository(db)
	} else {
		log.Println("⚠️ DATABASE_URL not set, using in-memory storage (leads only, non-durable)")
		leadRepo = memory.NewStorage()
		consentRepo = memory.ConsentStore{}
		waitlistRepo = memory.WaitlistStore{}
		blogRepo = memory.BlogStore{}
		settingRepo = memory.SettingStore{}
	}

	// 2. Integrations: notification side-channel and summary generation.
	notifier := n8n.NewClient(leadWebhookURL, cookieWebhookURL)
	summarizer := openai.NewClient(os.Getenv("OPENAI_API_KEY"))

	// 3. UseCases
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, notifier)
	recordConsentUC := usecase.NewRecordConsentUseCase(consentRepo, notifier)
	joinWaitlistUC := usecase.NewJoinWaitlistUseCase(waitlistRepo)
	summarizeUC := usecase.NewSummarizePostUseCase(summarizer)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	consentHandler := handlers.NewConsentHandler(recordConsentUC)
	waitlistHandler := handlers.NewWaitlistHandler(joinWaitlistUC)
	blogHandler := handlers.NewBlogHandler(blogRepo, settingRepo)
	summarizeHandler := handlers.NewSummarizeHandler(summarizeUC)
	healthHandler := handlers.NewHealthHandler(db, leadWebhookURL, cookieWebhookURL)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://hotelmol.com", "http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/api/leads/roi", leadHandler.SubmitROI)
	r.Post("/api/leads/contact", leadHandler.SubmitContact)
	r.Post("/api/leads/demo", leadHandler.SubmitDemo)
	r.Post("/api/leads/integration", leadHandler.SubmitIntegration)
	r.Post("/api/cookie-consents", consentHandler.Record)
	r.Post("/api/waitlist", waitlistHandler.Join)
	r.Get("/api/posts", blogHandler.ListPublished)
	r.Get("/api/posts/{slug}", blogHandler.GetBySlug)
	r.Post("/api/posts/summarize", summarizeHandler.Summarize)
	r.Get("/api/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Hotelmol leads API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
