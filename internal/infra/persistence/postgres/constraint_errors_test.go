package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm translated", errors.Wrap(gorm.ErrDuplicatedKey, "create user"), true},
		{"pg duplicate key message", errors.New(`duplicate key value violates unique constraint "idx_users_username"`), true},
		{"sqlstate in message", errors.New("ERROR: something (SQLSTATE 23505)"), true},
		{"unrelated error", errors.New("connection refused"), false},
		{"not null violation", errors.New("null value in column (SQLSTATE 23502)"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "password_hash" (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
