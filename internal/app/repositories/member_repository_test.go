package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
)

func TestMemberWriteErr(t *testing.T) {
	unique := func(constraint string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
	}

	assert.ErrorIs(t, memberWriteErr(unique("members_email_key")), apperrors.ErrEmailAlreadyExists)
	assert.ErrorIs(t, memberWriteErr(unique("members_unique_position_idx")), apperrors.ErrConflict)
	assert.Nil(t, memberWriteErr(unique("some_other_key")))
	assert.Nil(t, memberWriteErr(&pgconn.PgError{Code: "23503", ConstraintName: "members_email_key"}))
	assert.Nil(t, memberWriteErr(errors.New("connection reset")))
}
