package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAgentRepository_GetByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAgentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "username", "context", "active"}).
			AddRow(7, "Paul Graham", "paulgraham", "essays", true)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "agents" WHERE username = $1 ORDER BY "agents"."id" LIMIT $2`)).
			WithArgs("paulgraham", 1).
			WillReturnRows(rows)

		agent, err := repo.GetByUsername(ctx, "paulgraham")
		require.NoError(t, err)
		assert.Equal(t, uint(7), agent.ID)
		assert.Equal(t, "essays", agent.Context)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "agents" WHERE username = $1 ORDER BY "agents"."id" LIMIT $2`)).
			WithArgs("nobody", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAgentRepository_ListActive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAgentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "username", "active"}).
		AddRow(7, "Paul Graham", "paulgraham", true).
		AddRow(8, "Another Agent", "another", true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "agents" WHERE active = $1 ORDER BY id asc`)).
		WithArgs(true).
		WillReturnRows(rows)

	agents, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "paulgraham", agents[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
