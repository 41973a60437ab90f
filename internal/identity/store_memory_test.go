package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"bookstand/pkg/platform/sentinel"
)

type UserStoreSuite struct {
	suite.Suite
	store *InMemoryUserStore
	ctx   context.Context
}

func (s *UserStoreSuite) SetupTest() {
	s.store = NewInMemoryUserStore()
	s.ctx = context.Background()
}

func TestUserStoreSuite(t *testing.T) {
	suite.Run(t, new(UserStoreSuite))
}

func (s *UserStoreSuite) TestCreateAndLookup() {
	s.Run("creates and finds user by username", func() {
		s.Require().NoError(s.store.Create(s.ctx, User{Username: "alice", Password: "wonderland"}))

		found, err := s.store.FindByUsername(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal("wonderland", found.Password)
	})

	s.Run("returns ErrNotFound for unknown username", func() {
		_, err := s.store.FindByUsername(s.ctx, "ghost")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *UserStoreSuite) TestUsernameUniqueness() {
	s.Run("rejects duplicate username regardless of password", func() {
		s.Require().NoError(s.store.Create(s.ctx, User{Username: "alice", Password: "one"}))

		err := s.store.Create(s.ctx, User{Username: "alice", Password: "two"})
		s.Require().ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("username matching is case-sensitive", func() {
		s.Require().NoError(s.store.Create(s.ctx, User{Username: "bob", Password: "pw"}))
		s.Require().NoError(s.store.Create(s.ctx, User{Username: "Bob", Password: "pw"}))

		_, err := s.store.FindByUsername(s.ctx, "BOB")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		found, err := s.store.FindByUsername(s.ctx, "bob")
		s.Require().NoError(err)
		s.Equal("pw", found.Password)
	})
}
