// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first goose query fails
	err = Migrate(db)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "migration error"), err.Error())
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNilDB)

	err = MigrateClient(db)
	assert.ErrorIs(t, err, errNilDB)
}

func TestEmbeddedMigrations(t *testing.T) {
	server, err := fs.Glob(embedMigrations, "server/*.sql")
	require.NoError(t, err)
	assert.Len(t, server, 2)

	client, err := fs.Glob(embedMigrations, "client/*.sql")
	require.NoError(t, err)
	assert.Len(t, client, 1)
}

func TestMigrateClient_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, MigrateClient(db))

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'session'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "session", name)

	// idempotent
	require.NoError(t, MigrateClient(db))
}
