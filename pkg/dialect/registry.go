package dialect

import (
	"fmt"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Dialect)
)

func register(d Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(d.Name())] = d
}

// Get returns the dialect registered under name (case-insensitive), and
// false if none was registered.
func Get(name string) (Dialect, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[strings.ToLower(name)]
	return d, ok
}

// MustGet is Get, panicking on an unknown name. Intended for call sites
// that already validated name against List() or a flag enum.
func MustGet(name string) Dialect {
	d, ok := Get(name)
	if !ok {
		panic(fmt.Sprintf("dialect: unknown dialect %q", name))
	}
	return d
}

// List returns every registered dialect name, sorted.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}

func init() {
	register(Generic{})
	register(Postgres{})
	register(MySQL{})
	register(SQLite{})
	register(MsSQL{})
	register(Snowflake{})
	register(BigQuery{})
	register(ClickHouse{})
	register(Databricks{})
	register(Hive{})
	register(Redshift{})
	register(DuckDB{})
}

// Names mirrors the dialect names this package registers at init, useful
// for flag help text and config validation without touching the registry.
var Names = []string{
	"generic", "postgresql", "mysql", "sqlite", "mssql", "snowflake",
	"bigquery", "clickhouse", "databricks", "hive", "redshift", "duckdb",
}
