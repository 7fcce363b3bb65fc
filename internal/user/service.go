package user

import (
	"context"
	"errors"
	"fmt"
	"marketplace-be/internal/logger"
	"strings"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, in RegisterInput) (int, error)
	Login(ctx context.Context, identifier, password string) (string, *PublicUser, error)
	GetProfile(ctx context.Context, id int) (*PublicUser, error)
}

type service struct {
	repo   Repository
	hasher Hasher
	tokens *TokenManager

	// dummyHash is compared against on unknown identifiers.
	dummyHash string
}

// NewService wires the auth service. tokens may be nil, in which case Login
// returns an empty token.
func NewService(repo Repository, hasher Hasher, tokens *TokenManager) (Service, error) {
	dummy, err := hasher.Hash("marketplace-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}
	return &service{repo: repo, hasher: hasher, tokens: tokens, dummyHash: dummy}, nil
}

func (s *service) Register(ctx context.Context, in RegisterInput) (int, error) {
	log := logger.FromCtx(ctx)

	u := &User{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Role:     Role(strings.TrimSpace(in.Role)),
		Phone:    optional(in.Phone),
		ShopName: optional(in.ShopName),
	}
	if u.Name == "" || u.Email == "" || u.Password == "" || u.Role == "" {
		return 0, ErrMissingFields
	}
	if !u.Role.Valid() {
		return 0, ErrInvalidRole
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	hashed, err := s.hasher.Hash(u.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return 0, err
	}
	u.Password = hashed

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			log.Warn("register rejected: identifier taken", zap.String("email", u.Email))
			return 0, ErrUserExists
		}
		log.Error("failed to create user", zap.String("email", u.Email), zap.Error(err))
		return 0, err
	}

	log.Info("register service completed",
		zap.Int("user_id", id),
		zap.String("role", string(u.Role)),
	)
	return id, nil
}

// Login verifies identifier (email or phone) and password. Unknown
// identifiers and wrong passwords both return ErrInvalidCredentials.
func (s *service) Login(ctx context.Context, identifier, password string) (string, *PublicUser, error) {
	log := logger.FromCtx(ctx)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	u, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Spend the same bcrypt work as a real comparison.
			s.hasher.Compare(password, s.dummyHash)
			log.Info("login failed: unknown identifier")
			return "", nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user", zap.Error(err))
		return "", nil, err
	}

	if !s.hasher.Compare(password, u.Password) {
		log.Info("login failed: password mismatch", zap.Int("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	var token string
	if s.tokens != nil {
		token, err = s.tokens.Generate(u)
		if err != nil && !errors.Is(err, ErrTokenDisabled) {
			log.Error("failed to generate jwt", zap.Int("user_id", u.ID), zap.Error(err))
			return "", nil, err
		}
	}

	log.Info("login service completed", zap.Int("user_id", u.ID))
	return token, u.Public(), nil
}

func (s *service) GetProfile(ctx context.Context, id int) (*PublicUser, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Public(), nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
