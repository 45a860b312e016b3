package db

import (
	"strconv"
	"strings"
)

// Dialect selects the SQL flavour a query is rendered for.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// String returns the driver name.
func (d Dialect) String() string {
	return d.DriverName()
}

// Rebind rewrites '?' placeholders into the dialect's bind syntax. Queries
// are written with '?' and must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ForUpdate returns the row-locking suffix for SELECT statements. SQLite
// serializes writers at the connection level and has no row locks.
func (d Dialect) ForUpdate() string {
	if d == Postgres {
		return " FOR UPDATE"
	}
	return ""
}
