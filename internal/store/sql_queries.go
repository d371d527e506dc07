package store

import (
	sq "github.com/Masterminds/squirrel"

	"newsroom/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, enabled, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, username, email, password_hash, enabled, created_at, updated_at;`

	getUserByID = `SELECT id, username, email, password_hash, enabled, created_at, updated_at
    FROM users
    WHERE id = $1;`

	getUserByEmail = `SELECT id, username, email, password_hash, enabled, created_at, updated_at
    FROM users
    WHERE email = $1;`

	getUserByUsername = `SELECT id, username, email, password_hash, enabled, created_at, updated_at
    FROM users
    WHERE username = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	createNews = `INSERT INTO news (title, description, created_by, updated_by, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id;`

	getNewsByID = `SELECT n.id, n.title, n.description, n.created_at, n.updated_at,
        c.id, c.username, c.email,
        u.id, u.username, u.email
    FROM news n
    JOIN users c ON c.id = n.created_by
    JOIN users u ON u.id = n.updated_by
    WHERE n.id = $1;`

	deleteNews = `DELETE FROM news
    WHERE id = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders. The sqlite3
// driver accepts the same placeholder form, so one builder serves both
// backends.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListNewsQuery builds the paginated news listing joined with the
// creator and last editor. Rows are ordered by id for a stable pagination
// window.
func buildListNewsQuery(page models.PageRequest) (string, []any, error) {
	return psql.
		Select(
			"n.id", "n.title", "n.description", "n.created_at", "n.updated_at",
			"c.id", "c.username", "c.email",
			"u.id", "u.username", "u.email",
		).
		From("news n").
		Join("users c ON c.id = n.created_by").
		Join("users u ON u.id = n.updated_by").
		OrderBy("n.id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
}

func buildCountNewsQuery() (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("news").
		ToSql()
}

// buildListUsersQuery builds the paginated user listing ordered by id.
func buildListUsersQuery(page models.PageRequest) (string, []any, error) {
	return psql.
		Select("id", "username", "email", "password_hash", "enabled", "created_at", "updated_at").
		From("users").
		OrderBy("id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
}

func buildCountUsersQuery() (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("users").
		ToSql()
}

// buildUpdateNewsQuery builds the UPDATE statement for an edited news item.
// The creator column is never touched.
func buildUpdateNewsQuery(news models.News) (string, []any, error) {
	return psql.
		Update("news").
		Set("title", news.Title).
		Set("description", news.Description).
		Set("updated_by", news.UpdatedBy.ID).
		Set("updated_at", news.UpdatedAt).
		Where(sq.Eq{"id": news.ID}).
		ToSql()
}

// buildUpdateUserQuery builds the UPDATE statement for an edited user
// account. The password hash and enabled flag are managed elsewhere.
func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Update("users").
		Set("username", user.Username).
		Set("email", user.Email).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}
