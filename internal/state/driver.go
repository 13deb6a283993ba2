package state

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "modernc.org/sqlite"             // registers the "sqlite" database/sql driver
)

// Driver describes a supported database.
type Driver struct {
	// Name is the database/sql driver name.
	Name string
	// Goose is the goose dialect used for migrations.
	Goose string
	// Numbered is true when placeholders are $1, $2, ... instead of ?.
	Numbered bool
}

// Supported drivers
var drivers = map[string]Driver{
	"sqlite":   {Name: "sqlite", Goose: "sqlite"},
	"postgres": {Name: "pgx", Goose: "postgres", Numbered: true},
}

// UnknownDriverError is returned for an unsupported state driver.
type UnknownDriverError struct {
	Name      string
	Available []string
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("unknown state driver %q\nAvailable drivers: %v\nHint: Check state.driver in nuctab.yaml", e.Name, e.Available)
}

// LookupDriver returns a driver by name ("sqlite" or "postgres").
func LookupDriver(name string) (Driver, error) {
	if d, ok := drivers[strings.ToLower(name)]; ok {
		return d, nil
	}
	names := make([]string, 0, len(drivers))
	for n := range drivers {
		names = append(names, n)
	}
	sort.Strings(names)
	return Driver{}, &UnknownDriverError{Name: name, Available: names}
}

// Rebind rewrites ? placeholders for drivers that number them.
// Queries in this package never contain a literal '?'.
func (d Driver) Rebind(query string) string {
	if !d.Numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
