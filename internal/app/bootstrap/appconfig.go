// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, environment). AppConfig is everything specific to the Sovra
// marketing site: the lead database, the downstream form endpoint, the
// notification mailbox, and the abuse limits on the contact form.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Visitor session configuration. The site has no accounts; sessions
	// only carry contact form state across the submit redirect.
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: sovra-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection for the contact form
	CSRFKey string // 32-byte secret for CSRF tokens (random per process when blank)

	// Site identity
	SiteName string // Display name used in page titles and emails
	BaseURL  string // e.g., "https://sovra.example" or "http://localhost:3000"

	// Downstream form processor
	FormEndpointURL string        // URL the contact form relays submissions to (blank disables relay)
	FormTimeout     time.Duration // HTTP timeout for the relay call

	// Contact form throttling
	ContactCooldown time.Duration // Per-visitor wait between submissions
	ContactIPLimit  int           // Max submissions per IP per window
	ContactIPWindow time.Duration // Window for the per-IP limit

	// Email/SMTP configuration for lead notifications
	MailEnabled  bool   // Send internal notification emails for new leads
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty for Mailpit)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@sovra.example)
	MailFromName string // From display name
	MailNotifyTo string // Mailbox that receives new-lead notifications
}
