package components

import (
	"context"
	"log/slog"

	"checkout-engine/internal/infra/db"
	"checkout-engine/internal/infra/fixtures"
	"checkout-engine/internal/infra/repository"
	"checkout-engine/internal/pkg/config"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
		func(p *Persistence) commands.CouponRepository { return p.Coupons },
		func(p *Persistence) commands.CatalogRepository { return p.Catalog },
		func(p *Persistence) commands.StoreConfigRepository { return p.StoreConfig },
		func(p *Persistence) queries.CouponReadStore { return p.Coupons },
		func(p *Persistence) queries.ZoneReadStore { return p.StoreConfig },
	),
)

// Persistence bundles the storage ports so the backend can be swapped as a
// unit: Postgres normally, the fixtures store when FIXTURES_PATH is set.
type Persistence struct {
	Coupons     commands.CouponRepository
	Catalog     commands.CatalogRepository
	StoreConfig commands.StoreConfigRepository
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config) (*Persistence, error) {
	if cfg.Fixtures.Path != "" {
		store, err := fixtures.NewStoreFromPath(cfg.Fixtures.Path)
		if err != nil {
			return nil, err
		}
		slog.Info("fixtures mode enabled, skipping database connection", "path", cfg.Fixtures.Path)
		return &Persistence{Coupons: store, Catalog: store, StoreConfig: store}, nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return &Persistence{
		Coupons:     repository.NewCouponRepository(pool),
		Catalog:     repository.NewCatalogRepository(pool),
		StoreConfig: repository.NewStoreConfigRepository(pool),
	}, nil
}
