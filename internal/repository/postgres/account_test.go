package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository/postgres"
)

func accountRows(t *testing.T, blocked bool) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows([]string{
		"id", "username", "email", "password_hash", "course", "year", "room_no", "mobile",
		"registered_at", "approved_at", "approved_by", "is_blocked",
		"blocked_at", "blocked_by", "block_reason", "password_reset_at", "password_reset_by",
	})
	now := time.Now()
	if blocked {
		rows.AddRow("acct-1", "rahul", "rahul@campus.edu", "hash", "CSE", "2", "B-204", "987",
			now, now, "administrator", true, now, "administrator", "noise", nil, "")
	} else {
		rows.AddRow("acct-1", "rahul", "rahul@campus.edu", "hash", "CSE", "2", "B-204", "987",
			now, now, "administrator", false, nil, "", "", nil, "")
	}
	return rows
}

func TestAccountRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAccountRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM accounts WHERE username = \\$1").
			WithArgs("rahul").
			WillReturnRows(accountRows(t, false))

		acct, err := repo.GetByUsername(ctx, "rahul")
		assert.NoError(t, err)
		assert.Equal(t, "acct-1", acct.ID)
		assert.False(t, acct.IsBlocked)
		assert.Nil(t, acct.BlockInfo)
	})

	t.Run("BlockedAccountCarriesBlockInfo", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM accounts WHERE username = \\$1").
			WithArgs("rahul").
			WillReturnRows(accountRows(t, true))

		acct, err := repo.GetByUsername(ctx, "rahul")
		assert.NoError(t, err)
		assert.True(t, acct.IsBlocked)
		if assert.NotNil(t, acct.BlockInfo) {
			assert.Equal(t, "noise", acct.BlockInfo.Reason)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM accounts WHERE username = \\$1").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestAccountRepository_SetBlocked(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAccountRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectExec("UPDATE accounts SET is_blocked = TRUE").
			WithArgs(now, "administrator", "noise", "acct-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetBlocked(ctx, "acct-1", &domain.BlockInfo{
			BlockedAt: now, BlockedBy: "administrator", Reason: "noise",
		})
		assert.NoError(t, err)
	})

	t.Run("MissingAccount", func(t *testing.T) {
		now := time.Now()
		mock.ExpectExec("UPDATE accounts SET is_blocked = TRUE").
			WithArgs(now, "administrator", "noise", "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetBlocked(ctx, "ghost", &domain.BlockInfo{
			BlockedAt: now, BlockedBy: "administrator", Reason: "noise",
		})
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestAccountRepository_ClearBlocked(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAccountRepository(db)
	ctx := context.Background()

	t.Run("HistoryAndClearInOneTransaction", func(t *testing.T) {
		rec := &domain.BlockRecord{
			BlockedAt:   time.Now().Add(-time.Hour),
			BlockedBy:   "administrator",
			Reason:      "noise",
			UnblockedAt: time.Now(),
			UnblockedBy: "warden",
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO block_history").
			WithArgs("acct-1", rec.BlockedAt, rec.BlockedBy, rec.Reason, rec.UnblockedAt, rec.UnblockedBy).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE accounts SET is_blocked = FALSE").
			WithArgs("acct-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.ClearBlocked(ctx, "acct-1", rec)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackWhenAccountMissing", func(t *testing.T) {
		rec := &domain.BlockRecord{UnblockedAt: time.Now(), UnblockedBy: "warden"}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO block_history").
			WithArgs("ghost", rec.BlockedAt, rec.BlockedBy, rec.Reason, rec.UnblockedAt, rec.UnblockedBy).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE accounts SET is_blocked = FALSE").
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.ClearBlocked(ctx, "ghost", rec)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_ExistsByUsernameOrEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAccountRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("rahul", "rahul@campus.edu").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsernameOrEmail(ctx, "rahul", "rahul@campus.edu")
	assert.NoError(t, err)
	assert.True(t, exists)
}
