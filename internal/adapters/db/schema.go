package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// column types per dialect, substituted into the schema below
var columnTypes = map[Dialect]*strings.Replacer{
	Postgres: strings.NewReplacer(
		"{uuid}", "UUID",
		"{time}", "TIMESTAMPTZ",
		"{money}", "DOUBLE PRECISION",
		"{string}", "VARCHAR(255)",
	),
	MySQL: strings.NewReplacer(
		"{uuid}", "CHAR(36)",
		"{time}", "DATETIME(6)",
		"{money}", "DOUBLE",
		"{string}", "VARCHAR(255)",
	),
	SQLite: strings.NewReplacer(
		"{uuid}", "TEXT",
		"{time}", "DATETIME",
		"{money}", "REAL",
		"{string}", "TEXT",
	),
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id {uuid} PRIMARY KEY,
		username {string} NOT NULL,
		email {string} NOT NULL UNIQUE,
		name {string} NOT NULL,
		password_hash {string} NOT NULL,
		created_at {time} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS media_elements (
		id {uuid} PRIMARY KEY,
		uploader_id {uuid} NOT NULL,
		name {string} NOT NULL,
		media_url TEXT NOT NULL,
		created_at {time} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS communities (
		id {uuid} PRIMARY KEY,
		name {string} NOT NULL,
		description TEXT NOT NULL,
		created_at {time} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id {uuid} PRIMARY KEY,
		user_id {uuid} NOT NULL,
		community_id {uuid} NOT NULL,
		role_type INTEGER NOT NULL,
		created_at {time} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id {uuid} PRIMARY KEY,
		community_id {uuid} NOT NULL,
		title {string} NOT NULL,
		content TEXT NOT NULL,
		author_id {uuid} NOT NULL,
		created_at {time} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id {uuid} PRIMARY KEY,
		target_type {string} NOT NULL,
		target_id {uuid} NOT NULL,
		author_id {uuid} NOT NULL,
		content TEXT NOT NULL,
		created_at {time} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS collectibles (
		id {uuid} PRIMARY KEY,
		community_id {uuid} NOT NULL,
		name {string} NOT NULL,
		description TEXT NOT NULL,
		owner_id {uuid} NOT NULL,
		estimated_value {money} NOT NULL,
		auction_id {uuid} NULL,
		created_at {time} NOT NULL,
		updated_at {time} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id {uuid} PRIMARY KEY,
		reviewer_id {uuid} NOT NULL,
		collectible_id {uuid} NOT NULL,
		content TEXT NOT NULL,
		rating INTEGER NOT NULL,
		created_at {time} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS auctions (
		id {uuid} PRIMARY KEY,
		community_id {uuid} NOT NULL,
		auctioneer_id {uuid} NOT NULL,
		collectible_id {uuid} NOT NULL,
		starting_price {money} NOT NULL,
		current_price {money} NOT NULL,
		deadline {time} NOT NULL,
		closed_at {time} NULL,
		winner_id {uuid} NULL,
		version BIGINT NOT NULL,
		created_at {time} NOT NULL,
		updated_at {time} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bids (
		id {uuid} PRIMARY KEY,
		auction_id {uuid} NOT NULL,
		bidder_id {uuid} NOT NULL,
		amount {money} NOT NULL,
		created_at {time} NOT NULL
	)`,
}

// Migrate creates any missing table. Statements run one at a time because the
// MySQL driver rejects multi-statement execs by default.
func (c *Connection) Migrate(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("component", "migrate").Str("dialect", string(c.dialect)).Logger()

	types := columnTypes[c.dialect]
	for _, stmt := range schema {
		if _, err := c.db.ExecContext(ctx, types.Replace(stmt)); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	logger.Info().Int("tables", len(schema)).Msg("Schema is up to date")
	return nil
}
