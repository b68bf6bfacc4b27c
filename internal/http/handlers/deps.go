package handlers

import (
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"ohioautoparts/internal/catalog"
	"ohioautoparts/internal/config"
	"ohioautoparts/internal/dropship"
	"ohioautoparts/internal/payments"
	"ohioautoparts/internal/repos"
	"ohioautoparts/internal/shipping"
	"ohioautoparts/internal/sourcing"
	"ohioautoparts/internal/vin"
)

type Deps struct {
	ProductHandler  *ProductHandler
	ShippingHandler *ShippingHandler
	VINHandler      *VINHandler
	SourcingHandler *SourcingHandler
	PaymentHandler  *PaymentHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	partRepo := repos.NewPartRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := catalog.NewService(partRepo, cfg.CatalogTTL,
		catalog.NewFeedSource("carparts", cfg.FeedCarP, catalog.SourceHints{Category: "body"}),
		catalog.NewFeedSource("lkq", cfg.FeedLKQ, catalog.SourceHints{}),
	)

	var live shipping.RateFetcher
	if cfg.EasyPostAPIKey != "" {
		live = shipping.NewEasyPost(cfg.EasyPostAPIKey, shipping.FromAddress{
			Name: cfg.ShipFromName, Street1: cfg.ShipFromStreet,
			City: cfg.ShipFromCity, State: cfg.ShipFromState,
			ZIP: cfg.ShipFromZIP, Country: "US",
			Phone: cfg.ShipFromPhone, Email: cfg.ShipFromEmail,
		})
	}
	estimator := shipping.NewEstimator(live)

	sourcingClient := sourcing.NewClient(cfg.SerpAPIKey, cfg.EBayAppID)
	paymentsSvc := payments.New(cfg.StripeSecretKey, cfg.StripeWebhookSecret, catalogSvc)
	forwarder := dropship.NewForwarder(cfg.DropshipWebhookURL, cfg.DropshipAPIKey, catalogSvc, sourcingClient)

	adminHash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 12)

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		ShippingHandler: &ShippingHandler{Catalog: catalogSvc, Estimator: estimator},
		VINHandler:      &VINHandler{Decoder: vin.NewDecoder()},
		SourcingHandler: &SourcingHandler{Catalog: catalogSvc, Sourcing: sourcingClient},
		PaymentHandler: &PaymentHandler{
			Payments: paymentsSvc,
			Orders:   orderRepo,
			Dropship: forwarder,
			PubKey:   cfg.StripePublishable,
		},
		AdminHandler: &AdminHandler{Orders: orderRepo, PasswordHash: adminHash},
	}
}
