package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/minerahub/dashboard/backend/internal/store"
)

// DB holds the database connections
type DB struct {
	Postgres      *gorm.DB
	Mongo         *mongo.Client
	MongoDatabase string
	logger        *zap.Logger
}

// InitDB opens the connection the configured record source needs. The embedded
// source needs none and yields an empty DB.
func InitDB(ctx context.Context, cfg *Config, logger *zap.Logger) (*DB, error) {
	db := &DB{MongoDatabase: cfg.MongoDatabase, logger: logger}
	switch cfg.RecordSource {
	case SourcePostgres:
		pg, err := InitPostgres(cfg.PostgresConnStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		db.Postgres = pg
		logger.Info("Successfully connected to PostgreSQL!")
	case SourceMongo:
		client, err := InitMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		db.Mongo = client
		logger.Info("Successfully connected to MongoDB!", zap.String("database", cfg.MongoDatabase))
	}
	return db, nil
}

// Source returns the record source backed by whichever connection is open.
func (db *DB) Source() store.Source {
	switch {
	case db.Postgres != nil:
		return store.NewPostgresSource(db.Postgres)
	case db.Mongo != nil:
		return store.NewMongoSource(db.Mongo.Database(db.MongoDatabase))
	default:
		return store.NewEmbeddedSource()
	}
}

// InitPostgres initializes the PostgreSQL database connection using GORM
func InitPostgres(connStr string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// InitMongo initializes the MongoDB connection
func InitMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Ping the primary to verify connection
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// CloseDB closes the database connections
func (db *DB) CloseDB() {
	if db.logger == nil {
		db.logger = zap.NewNop()
	}
	if db.Postgres != nil {
		sqlDB, err := db.Postgres.DB()
		if err != nil {
			db.logger.Error("Error getting SQL DB from GORM", zap.Error(err))
		} else if err := sqlDB.Close(); err != nil {
			db.logger.Error("Error closing PostgreSQL connection", zap.Error(err))
		} else {
			db.logger.Info("PostgreSQL connection closed.")
		}
	}

	if db.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Mongo.Disconnect(ctx); err != nil {
			db.logger.Error("Error closing MongoDB connection", zap.Error(err))
		} else {
			db.logger.Info("MongoDB connection closed.")
		}
	}
}
