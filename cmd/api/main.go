package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chateaubevvy/bevvy-leads/internal/config"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/database"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/http/handlers"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/http/middleware"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/integration/aigateway"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/integration/ghl"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/mail"
	"github.com/chateaubevvy/bevvy-leads/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)

	// 2. Integrations
	crmClient := ghl.NewClient(cfg.GHLWebhookURL)
	renderer := aigateway.NewClient(cfg.AIGatewayURL, cfg.AIGatewayAPIKey)

	var mailSender usecase.EmailServiceInterface
	if cfg.MailHost != "" {
		mailSender = mail.NewEmailSender(
			cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass,
			cfg.MailFrom, cfg.EventInquiryInbox,
		)
	}

	// 3. UseCases
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo, crmClient, mailSender)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(captureLeadUC)
	relayHandler := handlers.NewRelayHandler(crmClient)
	bottleHandler := handlers.NewBottleHandler(renderer)
	healthHandler := handlers.NewHealthHandler(db, cfg.GHLWebhookURL, cfg.AIGatewayAPIKey, cfg.MailHost)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/leads", func(r chi.Router) {
		r.Post("/waitlist", leadHandler.HandleWaitlist)
		r.Post("/event-inquiry", leadHandler.HandleEventInquiry)
		r.Post("/wine-club", leadHandler.HandleWineClubSignup)
		r.Post("/contact", leadHandler.HandleContactMessage)
	})
	r.Post("/internal/send-to-crm", relayHandler.Handle)
	r.Post("/bottles/generate", bottleHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	log.Printf("🍷 Bevvy leads API listening on :%s", cfg.Port)
	http.ListenAndServe(":"+cfg.Port, r)
}
