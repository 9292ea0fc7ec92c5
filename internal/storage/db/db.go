package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/ordkort.git/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// DSN builds the driver name and data source for cfg. DATABASE_URL wins over
// the discrete connection fields.
func DSN(cfg config.DBConfig) (string, string, error) {
	switch cfg.Driver {
	case DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = "database.db"
		}
		return DriverSQLite, sqliteDSN(path), nil
	case DriverPostgres, "":
		if cfg.URL != "" {
			return DriverPostgres, postgresURL(cfg.URL), nil
		}
		if cfg.Conn.Host == "" || cfg.Conn.Name == "" {
			return "", "", fmt.Errorf("postgres requires db.url or db.conn host and name")
		}
		ssl := cfg.Conn.SSL
		if ssl == "" {
			ssl = "require"
		}
		port := cfg.Conn.Port
		if port == "" {
			port = "5432"
		}
		dsn := fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, ssl)
		return DriverPostgres, dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// postgresURL defaults sslmode to require, hosted Postgres instances expect it.
func postgresURL(url string) string {
	if strings.Contains(url, "sslmode=") {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&sslmode=require"
	}
	return url + "?sslmode=require"
}

func sqliteDSN(path string) string {
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	if path == ":memory:" {
		return "file::memory:?" + pragmas
	}
	return path + "?" + pragmas + "&_pragma=journal_mode(WAL)"
}

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	driver, dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)
	if driver == DriverSQLite && cfg.SQLitePath == ":memory:" {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	return db, nil
}

// OpenSQLite opens and migrates a SQLite database at path (":memory:" for a
// private in-memory one).
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := InitDB(config.DBConfig{
		Driver:     DriverSQLite,
		SQLitePath: path,
		Cfg:        config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
