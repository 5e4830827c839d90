package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateEntryOn(t *testing.T) {
	handleErr := &mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry '@cook123456' for key 'users.uq_users_handle'",
	}

	assert.True(t, IsDuplicateEntry(handleErr))
	assert.True(t, IsDuplicateEntryOn(handleErr, "uq_users_handle"))
	assert.False(t, IsDuplicateEntryOn(handleErr, "uq_users_email"))

	// Wrapped errors still match.
	assert.True(t, IsDuplicateEntryOn(fmt.Errorf("create user: %w", handleErr), "uq_users_handle"))

	assert.False(t, IsDuplicateEntryOn(errors.New("broken pipe"), "uq_users_handle"))
	assert.False(t, IsDuplicateEntry(nil))
}
