//go:build wireinject
// +build wireinject

package di

import (
	"CapSwap/pkg/config"
	"CapSwap/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideQuoteProvider,
		ProvideTickerStore,
		ProvideSnapshotStore,

		// Use cases
		ProvideWarmer,
		ProvideSearchService,
		ProvideCompareService,

		// HTTP
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
