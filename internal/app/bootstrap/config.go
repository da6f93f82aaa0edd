// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the Sovra site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: SOVRASITE_MONGO_URI, SOVRASITE_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "sovra_site", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "", Desc: "Session signing key (random per process when blank; set in production)"},
	{Name: "session_name", Default: "sovra-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "csrf_key", Default: "", Desc: "CSRF token key, 32 bytes (random per process when blank)"},

	{Name: "site_name", Default: "Sovra", Desc: "Site display name for titles and emails"},
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of the site"},

	// Downstream form processor
	{Name: "form_endpoint_url", Default: "", Desc: "URL that receives contact form submissions (blank disables relay)"},
	{Name: "form_timeout", Default: "15s", Desc: "HTTP timeout for the form relay call"},

	// Contact form throttling
	{Name: "contact_cooldown", Default: "3s", Desc: "Per-visitor wait between contact submissions"},
	{Name: "contact_ip_limit", Default: 5, Desc: "Max contact submissions per IP per window"},
	{Name: "contact_ip_window", Default: "1m", Desc: "Window for the per-IP contact limit"},

	// Email/SMTP configuration for lead notifications
	{Name: "mail_enabled", Default: false, Desc: "Send internal notification emails for new leads"},
	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@sovra.example", Desc: "From email address"},
	{Name: "mail_from_name", Default: "Sovra", Desc: "From display name"},
	{Name: "mail_notify_to", Default: "", Desc: "Mailbox that receives new-lead notifications"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SOVRASITE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SOVRASITE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		CSRFKey:       appValues.String("csrf_key"),

		SiteName: appValues.String("site_name"),
		BaseURL:  appValues.String("base_url"),

		FormEndpointURL: appValues.String("form_endpoint_url"),
		FormTimeout:     appValues.Duration("form_timeout", 15*time.Second),

		ContactCooldown: appValues.Duration("contact_cooldown", 3*time.Second),
		ContactIPLimit:  appValues.Int("contact_ip_limit"),
		ContactIPWindow: appValues.Duration("contact_ip_window", time.Minute),

		MailEnabled:  appValues.Bool("mail_enabled"),
		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),
		MailNotifyTo: appValues.String("mail_notify_to"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The form endpoint URL is allowed to be blank: the contact form then
// reports a not-configured error on submit instead of failing startup,
// which keeps the rest of the site serveable.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.ContactCooldown < 0 {
		return fmt.Errorf("contact_cooldown must not be negative")
	}
	if appCfg.ContactIPLimit <= 0 {
		return fmt.Errorf("contact_ip_limit must be positive")
	}

	if appCfg.FormEndpointURL == "" {
		logger.Warn("form_endpoint_url not set; contact submissions will fail until configured")
	} else if u, err := url.Parse(appCfg.FormEndpointURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("form_endpoint_url is not an absolute URL: %q", appCfg.FormEndpointURL)
	}

	if appCfg.MailEnabled && appCfg.MailNotifyTo == "" {
		return fmt.Errorf("mail_enabled requires mail_notify_to to be set")
	}

	if coreCfg.Env == "prod" {
		if appCfg.SessionKey == "" {
			return fmt.Errorf("session_key must be set in production")
		}
		if appCfg.CSRFKey == "" {
			return fmt.Errorf("csrf_key must be set in production")
		}
	}

	return nil
}
