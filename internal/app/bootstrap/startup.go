// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/sovramarkets/sovrasite/internal/app/system/timeouts"
	"github.com/sovramarkets/sovrasite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	viewdata.SetSiteName(appCfg.SiteName)
	timeouts.Configure(timeouts.Config{Relay: appCfg.FormTimeout})
	return nil
}
