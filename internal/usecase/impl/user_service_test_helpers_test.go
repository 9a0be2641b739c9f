package impl

import (
	"io"
	"log/slog"
	"time"

	"github.com/Renan-rss/instagram-clone/internal/domain/entity"
	mockRepo "github.com/Renan-rss/instagram-clone/internal/mocks/repository"
	mockSvc "github.com/Renan-rss/instagram-clone/internal/mocks/service"
	"github.com/Renan-rss/instagram-clone/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService() userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository()
	hasher := mockSvc.NewMockPasswordHasher()

	// The passthrough transaction manager reuses the same repository mock for
	// calls made inside a transaction, so a single mock sees every call.
	txManager := &mockRepo.MockTransactionManager{
		Factory: &mockRepo.MockRepositoryFactory{UserRepository: userRepo},
	}

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func newStoredUser() *entity.User {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:           uuid.New(),
		FullName:     "Kevyn Bryan",
		Username:     "Kevyn123",
		Email:        "kevyn@teste.com",
		PasswordHash: "hashed_password",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
