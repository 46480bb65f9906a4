// crmserver wires the CRM services to a GraphQL endpoint.
package main

import (
	"net/http"

	"github.com/drkyuka/alx-backend-graphql-crm/pkg/config"
	"github.com/drkyuka/alx-backend-graphql-crm/pkg/domain/service"
	"github.com/drkyuka/alx-backend-graphql-crm/pkg/events"
	"github.com/drkyuka/alx-backend-graphql-crm/pkg/graphqlapi"
	"github.com/drkyuka/alx-backend-graphql-crm/pkg/storage/gormstore"

	"github.com/glebarez/sqlite"
	"github.com/graphql-go/handler"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	store := gormstore.New(db)
	if err := store.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	dispatcher := events.NewLogDispatcher(logger)
	catalog := service.NewCatalogService(store.Customers(), store.Products(), dispatcher, logger)
	orders := service.NewOrderService(store.Customers(), store.Products(), store.Orders(), dispatcher, logger)
	inventory := service.NewInventoryService(store.Products(), dispatcher, logger)

	schema, err := graphqlapi.NewSchema(catalog, orders, inventory, logger)
	if err != nil {
		logger.Fatal("failed to build schema", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}))

	logger.Info("CRM server listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("db_driver", cfg.DBDriver),
	)
	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	}
}
