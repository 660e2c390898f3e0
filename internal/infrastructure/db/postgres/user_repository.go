package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/adriit/roledash/internal/core/domain"
)

const userColumns = `id, email, username, password_hash, role, created_at, updated_at`

// UserRepository stores accounts in the users table.
type UserRepository struct {
	pool pool
}

func NewUserRepository(p pool) *UserRepository {
	return &UserRepository{pool: p}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if conflict := conflictFor(err); conflict != nil {
			return nil, conflict
		}
		return nil, oops.Code("USER_STORE_CREATE").With("email", user.Email).Wrap(err)
	}
	created := *user
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.queryUser(ctx, "USER_STORE_FIND", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.queryUser(ctx, "USER_STORE_FIND", `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.queryUser(ctx, "USER_STORE_FIND", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT count(*) FROM users`)
}

func (r *UserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	return r.count(ctx, `SELECT count(*) FROM users WHERE role = $1`, string(role))
}

func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.queryUser(ctx, "USER_STORE_DELETE", `DELETE FROM users WHERE email = $1 RETURNING `+userColumns, email)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, email, username string) (*domain.User, error) {
	return r.queryUser(ctx, "USER_STORE_UPDATE",
		`UPDATE users SET email = $2, username = $3, updated_at = $4 WHERE id = $1 RETURNING `+userColumns,
		id, email, username, time.Now().UTC())
}

func (r *UserRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.pool.Ping(ctx)
}

func (r *UserRepository) count(ctx context.Context, sql string, args ...any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, oops.Code("USER_STORE_COUNT").Wrap(err)
	}
	return n, nil
}

// queryUser runs a statement returning at most one user row.
func (r *UserRepository) queryUser(ctx context.Context, code, sql string, args ...any) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		u    domain.User
		role string
	)
	err := r.pool.QueryRow(ctx, sql, args...).
		Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if conflict := conflictFor(err); conflict != nil {
			return nil, conflict
		}
		return nil, oops.Code(code).Wrap(err)
	}
	u.Role = domain.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

// conflictFor maps a unique violation to the ConflictError of its constraint,
// or returns nil for any other error.
func conflictFor(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	if pgErr.ConstraintName == "users_username_key" {
		return domain.ErrUsernameTaken
	}
	return domain.ErrEmailTaken
}
