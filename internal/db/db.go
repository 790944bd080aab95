package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultURL points at the embedded file store used when no connection
// string is configured.
const DefaultURL = "sqlite:///./eventmaster.db"

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

var ErrUnsupportedURL = errors.New("unsupported database url")

type Option func(*gorm.Config)

// WithLogLevel sets gorm's own logger level.
func WithLogLevel(level logger.LogLevel) Option {
	return func(c *gorm.Config) {
		c.Logger = logger.Default.LogMode(level)
	}
}

// Open picks the driver from the scheme of rawURL. An empty rawURL opens
// DefaultURL.
func Open(rawURL string, opts ...Option) (*gorm.DB, error) {
	if rawURL == "" {
		rawURL = DefaultURL
	}

	switch {
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return OpenPostgresWithURL(rawURL, opts...)
	case strings.HasPrefix(rawURL, "sqlite://"):
		path, err := SQLitePath(rawURL)
		if err != nil {
			return nil, err
		}
		return OpenSQLite(path, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, redact(rawURL))
	}
}

func OpenPostgresWithURL(url string, opts ...Option) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), newConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return db, nil
}

// OpenSQLite opens the embedded store at path with foreign keys enforced.
// The pool is capped at one connection so writers never race for the file
// lock.
func OpenSQLite(path string, opts ...Option) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&" + sqlitePragmas
	} else {
		dsn += "?" + sqlitePragmas
	}

	db, err := gorm.Open(sqlite.Open(dsn), newConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// SQLitePath extracts the file path from a sqlite:///<path> url.
// sqlite:///./a.db is relative, sqlite:////tmp/a.db is absolute.
func SQLitePath(rawURL string) (string, error) {
	path, ok := strings.CutPrefix(rawURL, "sqlite:///")
	if !ok || path == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedURL, rawURL)
	}

	return path, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func newConfig(opts []Option) *gorm.Config {
	conf := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	for _, opt := range opts {
		opt(conf)
	}

	return conf
}

func redact(rawURL string) string {
	scheme, rest, ok := strings.Cut(rawURL, "://")
	if !ok {
		return rawURL
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = "***" + rest[at:]
	}

	return scheme + "://" + rest
}
