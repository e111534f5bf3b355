package fx

import (
	"database/sql"

	"ticticpou-ranking/internal/api"
	"ticticpou-ranking/internal/cache"
	"ticticpou-ranking/internal/config"
	"ticticpou-ranking/internal/database"
	"ticticpou-ranking/internal/db"
	"ticticpou-ranking/internal/logger"
	"ticticpou-ranking/internal/repository"
	"ticticpou-ranking/internal/server"
	"ticticpou-ranking/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewLedgerRepository),
	// external
	fx.Provide(api.NewIdentityClient),
	fx.Provide(cache.New),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewRankingService),
	// server
	fx.Provide(server.NewLeagueServer),
)
