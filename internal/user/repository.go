package user

import (
	"context"
	"database/sql"
	"errors"
	"marketplace-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u *User) (int, error)
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectUserColumns = `SELECT id, name, shop_name, phone, email, password, role, created_at FROM users`

// Create inserts u and returns the generated id. Uniqueness of email and
// phone is left to the table constraints; a violation of either maps to
// ErrUserExists.
func (r *repository) Create(ctx context.Context, u *User) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
	)

	var id int
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, shop_name, phone, email, password, role) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		u.Name, u.ShopName, u.Phone, u.Email, u.Password, string(u.Role),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			log.Info("user already exists", zap.Error(err))
			return 0, ErrUserExists
		}
		log.Error("db: failed to insert user", zap.Error(err))
		return 0, err
	}

	return id, nil
}

// FindByIdentifier looks a user up by email or phone. An email match wins
// over a phone match.
func (r *repository) FindByIdentifier(ctx context.Context, identifier string) (*User, error) {
	query := selectUserColumns + ` WHERE email = $1 OR phone = $1 ORDER BY (email = $1) DESC LIMIT 1`
	return r.scanOne(ctx, "FindByIdentifier", query, identifier)
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	return r.scanOne(ctx, "FindByID", selectUserColumns+` WHERE id = $1`, id)
}

func (r *repository) scanOne(ctx context.Context, method, query string, arg any) (*User, error) {
	var (
		u    User
		role string
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.ShopName, &u.Phone, &u.Email, &u.Password, &role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.FromCtx(ctx).Error("db: failed to query user",
			zap.String("layer", "repository"),
			zap.String("method", method),
			zap.Error(err),
		)
		return nil, err
	}
	u.Role = Role(role)

	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation
}
