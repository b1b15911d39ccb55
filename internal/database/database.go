package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"ownerhunter/internal/config"
	"ownerhunter/internal/loader"
	"ownerhunter/internal/types"

	_ "github.com/sijms/go-ora/v2"
)

// dsn builds a properly encoded connection string for Oracle Autonomous Database
func dsn(username, password, host, port, service string, walletLocation string) string {
	query := url.Values{"ssl": {"true"}} // ADB requires TCPS on 1522
	if walletLocation != "" {
		// Use wallet-based mTLS connection
		query.Set("wallet_location", walletLocation)
	}

	return (&url.URL{
		Scheme:   "oracle",
		User:     url.UserPassword(username, password),
		Host:     host + ":" + port,
		Path:     "/" + service,
		RawQuery: query.Encode(),
	}).String()
}

// DBConfig holds database connection configuration
type DBConfig struct {
	Host           string
	Port           string
	Service        string
	Username       string
	Password       string
	WalletLocation string
}

// Database reads masterlist entities from an Oracle table.
type Database struct {
	db     *sql.DB
	config DBConfig
	table  string
	logger *zap.Logger
}

var _ loader.Source = (*Database)(nil)

// NewDatabase opens and pings the connection. table must already be validated by config.
func NewDatabase(ctx context.Context, cfg DBConfig, table string, logger *zap.Logger) (*Database, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	connStr := dsn(cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Service, cfg.WalletLocation)

	logger.Info("connecting to oracle", zap.String("host", cfg.Host), zap.String("service", cfg.Service))

	db, err := sql.Open("oracle", connStr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database connection: %w", loader.ErrInputUnreadable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %w", loader.ErrInputUnreadable, err)
	}

	return &Database{
		db:     db,
		config: cfg,
		table:  table,
		logger: logger,
	}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

func entitiesQuery(table string) string {
	return `
		SELECT
			LICENSE_ID, NAME, STATUS, STATUS_DATE, STREET, CITY, COUNTY, SERVICE_TYPE
		FROM ` + table + `
		ORDER BY ROWID
	`
}

// Entities loads every row of the masterlist table.
func (d *Database) Entities(ctx context.Context) ([]types.EntityRecord, error) {
	rows, err := d.db.QueryContext(ctx, entitiesQuery(d.table))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query %s: %w", loader.ErrInputUnreadable, d.table, err)
	}
	defer rows.Close()

	entities, err := scanEntities(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", loader.ErrInputUnreadable, d.table, err)
	}
	d.logger.Info("loaded masterlist", zap.String("table", d.table), zap.Int("entities", len(entities)))
	return entities, nil
}

// rowScanner is the part of *sql.Rows that scanEntities needs.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntities(rows rowScanner) ([]types.EntityRecord, error) {
	entities := []types.EntityRecord{}
	for rows.Next() {
		var licenseID, name, status, statusDate, street, city, county, serviceType sql.NullString
		if err := rows.Scan(&licenseID, &name, &status, &statusDate, &street, &city, &county, &serviceType); err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}
		entities = append(entities, types.NewEntityRecord(
			licenseID.String,
			ptr(name), ptr(status), ptr(statusDate), ptr(street), ptr(city), ptr(county), ptr(serviceType),
		))
	}
	return entities, rows.Err()
}

func ptr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// LoadDatabaseConfig loads database configuration from environment variables,
// filling unset ones from envFile when it exists.
func LoadDatabaseConfig(envFile string) DBConfig {
	_ = config.LoadEnvFile(envFile)

	return DBConfig{
		Host:           config.GetEnvOrDefault("DB_HOST", "localhost"),
		Port:           config.GetEnvOrDefault("DB_PORT", "1521"),
		Service:        config.GetEnvOrDefault("DB_SERVICE", "XE"),
		Username:       config.GetEnvOrDefault("DB_USERNAME", ""),
		Password:       config.GetEnvOrDefault("DB_PASSWORD", ""),
		WalletLocation: config.GetEnvOrDefault("DB_WALLET_LOCATION", ""),
	}
}
