// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	aboutfeature "github.com/sovramarkets/sovrasite/internal/app/features/about"
	contactfeature "github.com/sovramarkets/sovrasite/internal/app/features/contact"
	errorsfeature "github.com/sovramarkets/sovrasite/internal/app/features/errors"
	healthfeature "github.com/sovramarkets/sovrasite/internal/app/features/health"
	homefeature "github.com/sovramarkets/sovrasite/internal/app/features/home"
	platformfeature "github.com/sovramarkets/sovrasite/internal/app/features/platform"
	termsfeature "github.com/sovramarkets/sovrasite/internal/app/features/terms"
	leadstore "github.com/sovramarkets/sovrasite/internal/app/store/leads"
	"github.com/sovramarkets/sovrasite/internal/app/system/formrelay"
	"github.com/sovramarkets/sovrasite/internal/app/system/mailer"
	"github.com/sovramarkets/sovrasite/internal/app/system/ratelimit"
	"github.com/sovramarkets/sovrasite/internal/app/system/session"

	// Each views package registers its templates with the engine in init.
	_ "github.com/sovramarkets/sovrasite/internal/app/features/about/views"
	_ "github.com/sovramarkets/sovrasite/internal/app/features/contact/views"
	_ "github.com/sovramarkets/sovrasite/internal/app/features/errors/views"
	_ "github.com/sovramarkets/sovrasite/internal/app/features/home/views"
	_ "github.com/sovramarkets/sovrasite/internal/app/features/platform/views"
	_ "github.com/sovramarkets/sovrasite/internal/app/features/terms/views"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The site is small: public marketing
// pages, the contact form (browser and JSON paths), static assets, and a
// health endpoint.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"

	// Visitor sessions carry contact form state across the submit redirect.
	sessionMgr, err := session.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	// The relay client delivers validated submissions to the configured
	// form processor. A blank endpoint keeps the site up and makes
	// submissions fail with a clear banner instead.
	relay := formrelay.New(appCfg.FormEndpointURL, appCfg.FormTimeout, logger)

	var mail *mailer.Sender
	if appCfg.MailEnabled {
		mail = mailer.NewSender(mailer.Config{
			Host:     appCfg.MailSMTPHost,
			Port:     appCfg.MailSMTPPort,
			User:     appCfg.MailSMTPUser,
			Pass:     appCfg.MailSMTPPass,
			From:     appCfg.MailFrom,
			FromName: appCfg.MailFromName,
		}, logger)
	}

	limiter := ratelimit.NewSubmitLimiter(appCfg.ContactIPLimit, appCfg.ContactIPWindow)
	leads := leadstore.New(deps.SovraMongoDatabase)

	r := chi.NewRouter()

	// CSRF protection for the contact form. API clients pass the token in
	// the X-CSRF-Token header.
	csrfKey := []byte(appCfg.CSRFKey)
	if len(csrfKey) == 0 {
		logger.Warn("csrf_key not set; using a random per-process key")
		csrfKey = securecookie.GenerateRandomKey(32)
	}
	r.Use(csrf.Protect(csrfKey, csrf.Secure(secure), csrf.Path("/")))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.SovraMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	platformHandler := platformfeature.NewHandler(logger)
	r.Mount("/platform", platformfeature.Routes(platformHandler))

	aboutHandler := aboutfeature.NewHandler(logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	termsHandler := termsfeature.NewHandler(logger)
	r.Mount("/terms", termsfeature.Routes(termsHandler))

	// Contact form: page, browser submit, and JSON API
	contactHandler := contactfeature.NewHandler(leads, sessionMgr, relay, mail, appCfg.MailNotifyTo,
		limiter, appCfg.ContactCooldown, errLog, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))
	r.Mount("/api/contact", contactfeature.APIRoutes(contactHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
