// file: repository/token_repository_test.go

package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/stretchr/testify/assert"
)

func TestTokenRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTokenRepository(db)
	expires := time.Now().Add(7 * 24 * time.Hour)

	mock.ExpectQuery(`INSERT INTO refresh_tokens`).
		WithArgs(3, "digest-abc", expires).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(10, time.Now()))

	token := &model.RefreshToken{UserID: 3, TokenHash: "digest-abc", ExpiresAt: expires}
	err = repo.Create(token)

	assert.NoError(t, err)
	assert.Equal(t, 10, token.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_GetByTokenHash(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTokenRepository(db)

	t.Run("live row", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}).
			AddRow(10, 3, "digest-abc", time.Now().Add(time.Hour), time.Now(), nil)
		mock.ExpectQuery(`SELECT id, user_id, token_hash, expires_at, created_at, revoked_at FROM refresh_tokens`).
			WithArgs("digest-abc").
			WillReturnRows(rows)

		token, err := repo.GetByTokenHash("digest-abc")
		assert.NoError(t, err)
		assert.Equal(t, 3, token.UserID)
		assert.Nil(t, token.RevokedAt)
	})

	t.Run("revoked row scans revoked_at", func(t *testing.T) {
		revoked := time.Now().Add(-time.Minute)
		rows := sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}).
			AddRow(11, 3, "digest-old", time.Now().Add(time.Hour), time.Now(), revoked)
		mock.ExpectQuery(`SELECT id, user_id, token_hash, expires_at, created_at, revoked_at FROM refresh_tokens`).
			WithArgs("digest-old").
			WillReturnRows(rows)

		token, err := repo.GetByTokenHash("digest-old")
		assert.NoError(t, err)
		assert.NotNil(t, token.RevokedAt)
	})

	t.Run("no row", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id, token_hash, expires_at, created_at, revoked_at FROM refresh_tokens`).
			WithArgs("digest-missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByTokenHash("digest-missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Revoke(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTokenRepository(db)

	t.Run("first revoke wins", func(t *testing.T) {
		mock.ExpectExec(`UPDATE refresh_tokens SET revoked_at = NOW\(\) WHERE id = \$1 AND revoked_at IS NULL`).
			WithArgs(10).
			WillReturnResult(sqlmock.NewResult(0, 1))

		revoked, err := repo.Revoke(10)
		assert.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("second revoke matches nothing", func(t *testing.T) {
		mock.ExpectExec(`UPDATE refresh_tokens SET revoked_at = NOW\(\) WHERE id = \$1 AND revoked_at IS NULL`).
			WithArgs(10).
			WillReturnResult(sqlmock.NewResult(0, 0))

		revoked, err := repo.Revoke(10)
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_RevokeAllByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTokenRepository(db)

	mock.ExpectExec(`UPDATE refresh_tokens SET revoked_at = NOW\(\) WHERE user_id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 4))

	count, err := repo.RevokeAllByUserID(3)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_DeleteExpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTokenRepository(db)

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE expires_at < NOW\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 7))

	count, err := repo.DeleteExpired()
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
