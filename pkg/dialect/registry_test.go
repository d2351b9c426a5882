package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/pkg/dialect"
)

func TestGetIsCaseInsensitive(t *testing.T) {
	d, ok := dialect.Get("PostgreSQL")
	require.True(t, ok)
	assert.Equal(t, "postgresql", d.Name())
}

func TestGetUnknownNameFails(t *testing.T) {
	_, ok := dialect.Get("oracle")
	assert.False(t, ok)
}

func TestMustGetPanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() {
		dialect.MustGet("not-a-dialect")
	})
}

func TestListIsSortedAndMatchesNames(t *testing.T) {
	got := dialect.List()
	require.Len(t, got, len(dialect.Names))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i], "dialect.List() must be sorted")
	}
	for _, name := range dialect.Names {
		_, ok := dialect.Get(name)
		assert.True(t, ok, "dialect %q from Names should be registered", name)
	}
}

func TestGenericEnablesTrailingCommasAndMsSQLLacksConnectBy(t *testing.T) {
	generic, ok := dialect.Get("generic")
	require.True(t, ok)
	assert.True(t, generic.Capabilities().SupportsTrailingCommas, "generic is the permissive baseline and should enable trailing commas")

	mssql, ok := dialect.Get("mssql")
	require.True(t, ok)
	assert.False(t, mssql.Capabilities().SupportsConnectBy)
}
