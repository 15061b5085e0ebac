// Package engine implements the connection provider, executor, and
// transaction manager of the skillet SQL access layer on top of
// database/sql. SQLite (modernc.org/sqlite) and PostgreSQL (pgx stdlib)
// drivers are registered; the Descriptor selects between them.
package engine

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

// Conn is a live database handle opened from a Descriptor. It is backed by a
// database/sql pool; pooling behavior belongs to database/sql, not to this
// layer. Close releases it.
type Conn struct {
	db     *sql.DB
	driver string
	log    zerolog.Logger
}

// Open opens a connection for the given descriptor and verifies it with a
// ping. Failures (unreachable host, bad credentials, malformed descriptor)
// come back as descriptor validation errors or a ConnError.
func Open(desc types.Descriptor) (*Conn, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open(desc.Driver, dsn(desc))
	if err != nil {
		return nil, &types.ConnError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &types.ConnError{Op: "open", Err: err}
	}

	return &Conn{db: db, driver: desc.Driver, log: zerolog.Nop()}, nil
}

// WithLogger sets the logger used for statement and scope logging.
// The default is a no-op logger.
func (c *Conn) WithLogger(log zerolog.Logger) *Conn {
	c.log = log
	return c
}

// Close releases the underlying database handle.
func (c *Conn) Close() error {
	if err := c.db.Close(); err != nil {
		return &types.ConnError{Op: "close", Err: err}
	}
	return nil
}

// Execute runs a DDL/DML statement outside any scope and returns the
// affected-row count.
func (c *Conn) Execute(stmt types.Statement) (int64, error) {
	return execute(c.db, c.driver, c.log, stmt)
}

// Query runs a SELECT outside any scope and shapes the result per opts.
func (c *Conn) Query(stmt types.Statement, opts types.Options) (*types.Result, error) {
	return query(c.db, c.driver, c.log, stmt, opts)
}

// dsn assembles the driver-specific data source name.
func dsn(desc types.Descriptor) string {
	switch desc.Driver {
	case types.DriverPostgres:
		u := url.URL{
			Scheme: "postgres",
			Host:   desc.Host,
			Path:   "/" + desc.Database,
		}
		if desc.Port != 0 {
			u.Host = fmt.Sprintf("%s:%d", desc.Host, desc.Port)
		}
		if desc.User != "" {
			u.User = url.UserPassword(desc.User, desc.Password)
		}
		u.RawQuery = encodeParams(desc.Params)
		return u.String()
	default:
		// SQLite: Database is a file path or ":memory:".
		if len(desc.Params) == 0 {
			return desc.Database
		}
		return "file:" + desc.Database + "?" + encodeParams(desc.Params)
	}
}

func encodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return q.Encode()
}

// rebind rewrites "?" placeholders to "$1..$n" for the Postgres driver,
// skipping single-quoted literals. SQLite binds "?" natively.
func rebind(driver, query string) string {
	if driver != types.DriverPostgres || !strings.ContainsRune(query, '?') {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inLiteral := false
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
			b.WriteRune(r)
		case r == '?' && !inLiteral:
			n++
			fmt.Fprintf(&b, "$%d", n)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
