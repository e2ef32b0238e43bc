//go:build wireinject

package di

import (
	"github.com/google/wire"

	"leethub-sync/internal/adapter/logging"
	"leethub-sync/internal/app"
	"leethub-sync/internal/config"
	"leethub-sync/internal/domain/ports"
	"leethub-sync/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		provideZerolog,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.ZLogger)),
		provideRecordStore,
		provideProblemProvider,
		provideNotifier,
		provideChangeSource,
		provideSyncConfig,
		usecase.NewSyncProblems,
		provideAppOptions,
		app.New,
	)
	return nil, nil
}
