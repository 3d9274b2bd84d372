package migrations

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_RejectsNilDB(t *testing.T) {
	err := Migrate(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_WrapsDriverFailure(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// every statement goose issues is unexpected to the mock, so the very
	// first version query fails and surfaces as a wrapped migration error
	err = Migrate(db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}
