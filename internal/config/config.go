package config

import (
	"log"
	"os"
	"time"
)

// FeedConfig holds credentials for one authorized upstream parts feed.
// Any of Token, Username+Password, or APIKey may be set; all are optional.
type FeedConfig struct {
	URL      string
	Token    string
	Username string
	Password string
	APIKey   string
}

func (f FeedConfig) Enabled() bool { return f.URL != "" }

type Config struct {
	Port    string
	DBDSN   string
	LogFile string

	CatalogTTL time.Duration
	FeedLKQ    FeedConfig
	FeedCarP   FeedConfig

	EasyPostAPIKey string
	ShipFromName   string
	ShipFromStreet string
	ShipFromCity   string
	ShipFromState  string
	ShipFromZIP    string
	ShipFromPhone  string
	ShipFromEmail  string

	StripeSecretKey     string
	StripePublishable   string
	StripeWebhookSecret string

	SerpAPIKey string
	EBayAppID  string

	DropshipWebhookURL string
	DropshipAPIKey     string

	AdminPassword string
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func feed(prefix string) FeedConfig {
	return FeedConfig{
		URL:      os.Getenv(prefix + "_API_URL"),
		Token:    os.Getenv(prefix + "_API_TOKEN"),
		Username: os.Getenv(prefix + "_USERNAME"),
		Password: os.Getenv(prefix + "_PASSWORD"),
		APIKey:   os.Getenv(prefix + "_API_KEY"),
	}
}

func Load() Config {
	ttl := 60 * time.Second
	if raw := os.Getenv("CATALOG_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			ttl = d
		}
	}

	cfg := Config{
		Port:    env("PORT", "3000"),
		DBDSN:   env("DB_DSN", "ohioautoparts.db"),
		LogFile: os.Getenv("LOG_FILE"),

		CatalogTTL: ttl,
		FeedLKQ:    feed("LKQ"),
		FeedCarP:   feed("CARPARTS"),

		EasyPostAPIKey: os.Getenv("EASYPOST_API_KEY"),
		ShipFromName:   env("SHIP_FROM_NAME", "Ohio Auto Parts"),
		ShipFromStreet: env("SHIP_FROM_STREET1", "123 Warehouse Rd"),
		ShipFromCity:   env("SHIP_FROM_CITY", "Columbus"),
		ShipFromState:  env("SHIP_FROM_STATE", "OH"),
		ShipFromZIP:    env("SHIP_FROM_ZIP", "43004"),
		ShipFromPhone:  env("SHIP_FROM_PHONE", "5555555555"),
		ShipFromEmail:  env("SHIP_FROM_EMAIL", "support@example.com"),

		StripeSecretKey:     env("STRIPE_SECRET_KEY", "sk_test_xxx"),
		StripePublishable:   env("STRIPE_PUBLISHABLE_KEY", "pk_test_xxx"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		SerpAPIKey: os.Getenv("SERPAPI_KEY"),
		EBayAppID:  os.Getenv("EBAY_APP_ID"),

		DropshipWebhookURL: os.Getenv("DROPSHIP_WEBHOOK_URL"),
		DropshipAPIKey:     os.Getenv("DROPSHIP_API_KEY"),

		AdminPassword: env("ADMIN_PASSWORD", "changeme-admin"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s CATALOG_TTL=%s LKQ=%v CARPARTS=%v EASYPOST=%v STRIPE_WEBHOOK=%v DROPSHIP=%v",
		cfg.Port, cfg.DBDSN, cfg.CatalogTTL,
		cfg.FeedLKQ.Enabled(), cfg.FeedCarP.Enabled(),
		cfg.EasyPostAPIKey != "", cfg.StripeWebhookSecret != "", cfg.DropshipWebhookURL != "")
	return cfg
}
