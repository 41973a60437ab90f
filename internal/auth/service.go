package auth

import (
	"context"
	"errors"
	"log/slog"

	"bookstand/internal/identity"
	"bookstand/internal/platform/metrics"
	dErrors "bookstand/pkg/domain-errors"
	"bookstand/pkg/platform/sentinel"
)

// Service implements registration and login over the user registry. It owns
// no state of its own; the registry and token service are injected.
type Service struct {
	users   identity.UserStore
	tokens  *TokenService
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService constructs a Service.
func NewService(users identity.UserStore, tokens *TokenService, opts ...Option) *Service {
	s := &Service{users: users, tokens: tokens, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new user record. It does not log the user in.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*RegisterResult, error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	req.Normalize()

	if req.Username == "" || req.Password == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "username and password are required")
	}
	if !identity.ValidUsername(req.Username) {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid username format, use letters and numbers only")
	}

	err := s.users.Create(ctx, identity.User{Username: req.Username, Password: req.Password})
	if err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "user already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	s.logger.InfoContext(ctx, "user registered", "username", req.Username)
	s.metrics.IncrementUsersRegistered()

	return &RegisterResult{Message: "user successfully registered, you can now login"}, nil
}

// Login verifies credentials and mints an access token. Unknown usernames and
// wrong passwords fail with the same error so callers cannot probe the
// registry.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenResult, error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	req.Normalize()

	if req.Username == "" || req.Password == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "username and password are required")
	}
	if !identity.ValidUsername(req.Username) {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid username format, use letters and numbers only")
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil || user.Password != req.Password {
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
		}
		s.logger.WarnContext(ctx, "login rejected", "username", req.Username)
		s.metrics.IncrementAuthFailures()
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid username or password")
	}

	token, err := s.tokens.Generate(user.Username)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate token")
	}

	s.logger.InfoContext(ctx, "user logged in", "username", user.Username)
	s.metrics.IncrementLogins()

	return &TokenResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
	}, nil
}
