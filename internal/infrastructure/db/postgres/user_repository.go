package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swdsms/incident-api/internal/core/domain"
)

const userColumns = "id, username, password, role, status, email, firstname, lastname, created_at"

// UserRepository persists user accounts in the users table.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsernameAndRole matches the raw role string exactly as supplied by
// the client. The unique index on username guarantees at most one row.
func (r *UserRepository) FindByUsernameAndRole(ctx context.Context, username, role string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND role = $2`

	var u domain.User
	err := r.db.QueryRow(ctx, query, username, role).Scan(
		&u.ID, &u.Username, &u.Password, &u.Role, &u.Status,
		&u.Email, &u.Firstname, &u.Lastname, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, classifyPersistenceFailure("find user", err)
	}

	return &u, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, username, email).Scan(&exists); err != nil {
		return false, classifyPersistenceFailure("check account uniqueness", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (username, password, role, status, email, firstname, lastname)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + userColumns

	var created domain.User
	err := r.db.QueryRow(ctx, query,
		user.Username, user.Password, user.Role, user.Status,
		user.Email, user.Firstname, user.Lastname,
	).Scan(
		&created.ID, &created.Username, &created.Password, &created.Role, &created.Status,
		&created.Email, &created.Firstname, &created.Lastname, &created.CreatedAt,
	)
	if err != nil {
		return nil, classifyPersistenceFailure("insert user", err)
	}

	return &created, nil
}

// List returns account projections ordered ascending by id. The password
// column is never selected.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, username, role, status, email, firstname, lastname, created_at
			  FROM users ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classifyPersistenceFailure("list users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Role, &u.Status,
			&u.Email, &u.Firstname, &u.Lastname, &u.CreatedAt,
		); err != nil {
			return nil, classifyPersistenceFailure("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPersistenceFailure("list users", err)
	}

	return users, nil
}
