package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"quiz-platform/internal/identity"
)

func (s *Store) CreateUser(ctx context.Context, user identity.User) (identity.User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO users (name, email, password, role, created_at_unix, updated_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.CreatedAt.UnixNano(),
		user.UpdatedAt.UnixNano(),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return identity.User{}, identity.ErrEmailTaken
		}
		return identity.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return identity.User{}, err
	}
	user.ID = id
	return user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (identity.User, error) {
	var (
		user          identity.User
		createdAtUnix int64
		updatedAtUnix int64
	)
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, email, password, role, created_at_unix, updated_at_unix
		 FROM users WHERE email = ?`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &createdAtUnix, &updatedAtUnix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return identity.User{}, identity.ErrUserNotFound
		}
		return identity.User{}, err
	}

	user.CreatedAt = time.Unix(0, createdAtUnix).UTC()
	user.UpdatedAt = time.Unix(0, updatedAtUnix).UTC()
	return user, nil
}
