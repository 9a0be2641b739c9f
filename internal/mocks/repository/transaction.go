package repository

import (
	"context"

	"github.com/Renan-rss/instagram-clone/internal/domain/repository"
)

// MockRepositoryFactory hands out a fixed repository instance so tests can
// assert on the calls made inside a transaction.
type MockRepositoryFactory struct {
	UserRepository repository.UserRepository
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}

// MockTransactionManager runs the callback directly against the configured
// factory. When Err is set it is returned without invoking the callback,
// simulating a failure to begin the transaction.
type MockTransactionManager struct {
	Factory repository.RepositoryFactory
	Err     error
}

func (m *MockTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}
