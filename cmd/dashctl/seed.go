package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minerahub/dashboard/backend/internal/store"
	"github.com/minerahub/dashboard/backend/pkg/config"
)

var (
	postgresConnStr string
	mongoURI        string
	mongoDatabase   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy the embedded records into an external store",
	Long: `Writes every embedded record into PostgreSQL or MongoDB so the server can run
with RECORD_SOURCE=postgres or RECORD_SOURCE=mongo. Seeding is idempotent.`,
}

var seedPostgresCmd = &cobra.Command{
	Use:   "postgres",
	Short: "Migrate tables and insert the records into PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if postgresConnStr == "" {
			return fmt.Errorf("--conn is required")
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		db, err := config.InitPostgres(postgresConnStr)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer (&config.DB{Postgres: db}).CloseDB()

		snap := store.MustLoadEmbedded()
		if err := store.SeedPostgres(ctx, db, snap); err != nil {
			return err
		}
		logger.Info("Seeded PostgreSQL", zap.Any("counts", snap.Counts()))
		return nil
	},
}

var seedMongoCmd = &cobra.Command{
	Use:   "mongo",
	Short: "Replace the record collections in MongoDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mongoURI == "" {
			return fmt.Errorf("--uri is required")
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		client, err := config.InitMongo(ctx, mongoURI)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		defer (&config.DB{Mongo: client}).CloseDB()

		snap := store.MustLoadEmbedded()
		if err := store.SeedMongo(ctx, client.Database(mongoDatabase), snap); err != nil {
			return err
		}
		logger.Info("Seeded MongoDB", zap.String("database", mongoDatabase), zap.Any("counts", snap.Counts()))
		return nil
	},
}

var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Print the number of embedded records per entity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cmd, store.MustLoadEmbedded().Counts())
	},
}

func init() {
	seedPostgresCmd.Flags().StringVar(&postgresConnStr, "conn", "", "PostgreSQL connection string")
	seedMongoCmd.Flags().StringVar(&mongoURI, "uri", "", "MongoDB connection URI")
	seedMongoCmd.Flags().StringVar(&mongoDatabase, "database", "dashboard", "MongoDB database name")

	seedCmd.AddCommand(seedPostgresCmd)
	seedCmd.AddCommand(seedMongoCmd)
}

func parseUint(raw, what string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	return uint(v), nil
}
