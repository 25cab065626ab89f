package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// userRepository is the PostgreSQL-backed implementation of
// [UserRepository]. It executes account CRUD against the "users" table
// using the embedded [*DB] connection.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account record. A unique violation on the
// login column maps to [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.DB.QueryRowContext(ctx, createUser, user.Login, user.PasswordHash, user.Name).Scan(
		&created.UserID,
		&created.Login,
		&created.PasswordHash,
		&created.Name,
		&created.CreatedAt,
	)
	if err != nil {
		if r.errorClassifier.Classify(err) == ErrorClassUniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("login", user.Login).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindUserByLogin retrieves the account with the given login.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.DB.QueryRowContext(ctx, findUserByLogin, login).Scan(
		&user.UserID,
		&user.Login,
		&user.PasswordHash,
		&user.Name,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "userRepository.FindUserByLogin").
			Str("login", login).
			Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
