// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Renan-rss/instagram-clone/internal/delivery/context"
	"github.com/Renan-rss/instagram-clone/internal/domain/entity"
	domainerrors "github.com/Renan-rss/instagram-clone/internal/domain/errors"
	"github.com/Renan-rss/instagram-clone/internal/domain/repository"
	"github.com/Renan-rss/instagram-clone/internal/domain/service"
	"github.com/Renan-rss/instagram-clone/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser registers a new account. Email is checked before username so a
// request that collides on both reports the email conflict.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "create user input is required")
	}

	srv.log(ctx).Info("Starting user creation", slog.String("username", input.Username), slog.String("email", input.Email))

	var createdUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		emailTaken, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email existence")
		}
		if emailTaken {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already in use")
		}

		usernameTaken, err := userRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username existence")
		}
		if usernameTaken {
			return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username already in use")
		}

		// The digest is computed only after both uniqueness checks pass.
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during user creation", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during user creation")
		}

		newUser := &entity.User{
			FullName:     input.FullName,
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		createdUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User creation failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User created", slog.Any("userID", createdUser.ID))

	return toUserOutput(createdUser), nil
}

// GetUserByID retrieves a single account by its ID.
func (srv *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserOutput(user), nil
}

// GetUserByUsername retrieves a single account by its username.
func (srv *userService) GetUserByUsername(ctx context.Context, username string) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserOutput(user), nil
}

// ListUsers retrieves every account. An empty store yields an empty slice.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, toUserOutput(user))
	}

	return outputs, nil
}

// UpdateUser overwrites an existing account with the input's state. Uniqueness
// is not re-checked here; the database constraints surface a conflict as the
// same duplicate-field errors CreateUser reports.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	if input == nil || input.ID == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "update user input requires an id")
	}

	srv.log(ctx).Info("Starting user update", slog.Any("userID", *input.ID))

	existingUser, err := srv.userRepo.FindByID(ctx, *input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user for update")
	}

	existingUser.FullName = input.FullName
	existingUser.Username = input.Username
	existingUser.Email = input.Email

	// An empty password means "keep the current one"; the stored digest survives.
	if input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during user update", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during user update")
		}
		existingUser.PasswordHash = hashedPassword
	}

	if err := srv.userRepo.Update(ctx, existingUser); err != nil {
		srv.log(ctx).Warn("User update failed", slog.Any("userID", *input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated", slog.Any("userID", existingUser.ID))

	return toUserOutput(existingUser), nil
}

// PatchUser updates only the fields present in the input. Zero affected rows
// means the account does not exist.
func (srv *userService) PatchUser(ctx context.Context, input *usecase.PatchUserInput) (*usecase.UserOutput, error) {
	if input == nil || input.ID == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "patch user input requires an id")
	}

	srv.log(ctx).Info("Starting partial user update", slog.Any("userID", *input.ID))

	passwordHash := input.Password
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during partial update", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during partial update")
		}
		passwordHash = &hashed
	}

	affected, err := srv.userRepo.UpdatePartial(ctx, *input.ID, input.FullName, input.Username, input.Email, passwordHash)
	if err != nil {
		srv.log(ctx).Warn("Partial user update failed", slog.Any("userID", *input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to partially update user")
	}

	hasChanges := input.FullName != nil || input.Username != nil || input.Email != nil || input.Password != nil
	if affected == 0 && hasChanges {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
	}

	updatedUser, err := srv.userRepo.FindByID(ctx, *input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to reload user after partial update")
	}

	srv.log(ctx).Debug("User partially updated", slog.Any("userID", *input.ID))

	return toUserOutput(updatedUser), nil
}

// DeleteUser removes an account. A missing account is reported, not ignored.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Starting user deletion", slog.Any("userID", id))

	exists, err := srv.userRepo.ExistsByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check user existence")
	}
	if !exists {
		return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
	}

	if err := srv.userRepo.DeleteByID(ctx, id); err != nil {
		srv.log(ctx).Error("User deletion failed", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Debug("User deleted", slog.Any("userID", id))

	return nil
}

// toUserOutput projects an entity into the public DTO, dropping the password hash.
func toUserOutput(user *entity.User) *usecase.UserOutput {
	if user == nil {
		return nil
	}

	return &usecase.UserOutput{
		ID:        user.ID,
		FullName:  user.FullName,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
