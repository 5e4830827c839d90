package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// IsDuplicateEntry reports whether err is a MySQL unique-constraint violation.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// IsDuplicateEntryOn reports whether err is a unique-constraint violation on
// the named index. MySQL includes the index name in the error message
// ("Duplicate entry '...' for key 'users.uq_users_handle'").
func IsDuplicateEntryOn(err error, index string) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) &&
		mysqlErr.Number == mysqlDuplicateEntry &&
		strings.Contains(mysqlErr.Message, index)
}
