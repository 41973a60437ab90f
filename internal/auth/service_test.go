package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"bookstand/internal/identity"
	dErrors "bookstand/pkg/domain-errors"
)

type AuthServiceSuite struct {
	suite.Suite
	svc *Service
	ctx context.Context
}

func (s *AuthServiceSuite) SetupTest() {
	tokens := NewTokenService(testAuthConfig(time.Hour))
	s.svc = NewService(identity.NewInMemoryUserStore(), tokens)
	s.ctx = context.Background()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) register(username, password string) error {
	_, err := s.svc.Register(s.ctx, &RegisterRequest{Username: username, Password: password})
	return err
}

func (s *AuthServiceSuite) TestRegister() {
	s.Run("succeeds for valid credentials", func() {
		res, err := s.svc.Register(s.ctx, &RegisterRequest{Username: "alice", Password: "wonderland"})
		s.Require().NoError(err)
		s.NotEmpty(res.Message)
	})

	s.Run("rejects missing fields", func() {
		err := s.register("", "pw")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		err = s.register("alice2", "")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects invalid username", func() {
		err := s.register("al ice", "pw")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("duplicate registration conflicts regardless of password", func() {
		s.Require().NoError(s.register("bob", "first"))

		err := s.register("bob", "second")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func (s *AuthServiceSuite) TestLogin() {
	s.Require().NoError(s.register("alice", "wonderland"))

	s.Run("issues a bearer token for correct credentials", func() {
		res, err := s.svc.Login(s.ctx, &LoginRequest{Username: "alice", Password: "wonderland"})
		s.Require().NoError(err)
		s.Equal("Bearer", res.TokenType)
		s.Equal(3600, res.ExpiresIn)
		s.NotEmpty(res.AccessToken)
	})

	s.Run("unknown user and wrong password fail identically", func() {
		_, errGhost := s.svc.Login(s.ctx, &LoginRequest{Username: "ghost", Password: "x"})
		_, errWrongPw := s.svc.Login(s.ctx, &LoginRequest{Username: "alice", Password: "wrongpw"})

		s.Require().Error(errGhost)
		s.Require().Error(errWrongPw)
		s.True(dErrors.HasCode(errGhost, dErrors.CodeUnauthorized))
		s.True(dErrors.HasCode(errWrongPw, dErrors.CodeUnauthorized))
		s.Equal(errGhost.Error(), errWrongPw.Error(), "login failures must not reveal which check failed")
	})

	s.Run("rejects missing fields", func() {
		_, err := s.svc.Login(s.ctx, &LoginRequest{Username: "alice"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("issued token validates back to the username", func() {
		res, err := s.svc.Login(s.ctx, &LoginRequest{Username: "alice", Password: "wonderland"})
		s.Require().NoError(err)

		claims, err := s.svc.tokens.Validate(res.AccessToken)
		s.Require().NoError(err)
		s.Equal("alice", claims.Username)
	})
}
