package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/flightsearch/flightsearch/models"
)

// statementBuilder returns a squirrel builder with the placeholder format
// matching the connection's dialect: $N for postgres, ? for sqlite.
func statementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// buildCreateUser builds the INSERT used by CreateUser. The RETURNING clause
// hands back the canonical database representation of the new account, so no
// follow-up SELECT is needed. Both supported engines understand RETURNING.
func buildCreateUser(dialect string, user models.User) (string, []any, error) {
	return statementBuilder(dialect).
		Insert(user.TableName()).
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, email, password_hash, created_at").
		ToSql()
}

// buildFindUserByEmail builds the SELECT used by FindUserByEmail.
func buildFindUserByEmail(dialect string, email string) (string, []any, error) {
	return statementBuilder(dialect).
		Select("user_id", "email", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}
