// Package bootstrap wires the application core with fx so the UI shell that
// embeds this module assembles one graph: config, logger, API client,
// session manager, uploader, wizard.
package bootstrap

import (
	"log/slog"
	"os"

	"github.com/ngoclaithe/camerental/config"
	"github.com/ngoclaithe/camerental/pkg/clock"
	"github.com/ngoclaithe/camerental/rest"
	"github.com/ngoclaithe/camerental/session"
	"github.com/ngoclaithe/camerental/upload"
	"github.com/ngoclaithe/camerental/wizard"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	ClientModule,
	SessionModule,
	UploadModule,
	WizardModule,
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

var ClientModule = fx.Module("client",
	fx.Provide(
		NewClient,
	),
)

func NewClient(cfg config.Config, logger *slog.Logger) (*rest.Client, error) {
	return rest.NewClient(cfg.API, logger)
}

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionManager,
	),
)

func NewSessionManager(cfg config.Config, client *rest.Client, clk clock.Clock, logger *slog.Logger) *session.Manager {
	return session.NewManager(
		client.Auth,
		session.NewMemoryStore(),
		session.NewFileStore(cfg.Session.File),
		clk,
		logger,
	)
}

var UploadModule = fx.Module("upload",
	fx.Provide(
		NewUploader,
	),
)

func NewUploader(cfg config.Config, logger *slog.Logger) *upload.Uploader {
	return upload.NewUploader(cfg.Upload, logger)
}

var WizardModule = fx.Module("wizard",
	fx.Provide(
		NewWizard,
	),
)

func NewWizard(cfg config.Config, client *rest.Client, clk clock.Clock, logger *slog.Logger) *wizard.Wizard {
	return wizard.New(
		client.Customers,
		client.Equipments,
		client.Calendar,
		client.Orders,
		cfg.Calendar,
		clk,
		logger,
	)
}
