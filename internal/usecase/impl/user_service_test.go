package impl

import (
	"context"
	"testing"

	"github.com/Renan-rss/instagram-clone/internal/domain/entity"
	domainerrors "github.com/Renan-rss/instagram-clone/internal/domain/errors"
	"github.com/Renan-rss/instagram-clone/internal/domain/repository"
	"github.com/Renan-rss/instagram-clone/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FullName: "Kevyn Bryan",
		Username: "Kevyn123",
		Email:    "kevyn@teste.com",
		Password: "12345678",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil)
	fx.userRepo.On("ExistsByUsername", ctx, input.Username).Return(false, nil)

	generatedID := uuid.New()
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = generatedID
		}).
		Return(nil)

	output, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, generatedID, output.ID)
	assert.Equal(t, input.FullName, output.FullName)
	assert.Equal(t, input.Username, output.Username)
	assert.Equal(t, input.Email, output.Email)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_PasswordIsHashed(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FullName: "Kevyn Bryan",
		Username: "Kevyn123",
		Email:    "kevyn@teste.com",
		Password: "12345678",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil)
	fx.userRepo.On("ExistsByUsername", ctx, input.Username).Return(false, nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.PasswordHash == "hashed_password"
	})).Return(nil)

	_, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_EmailTaken(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FullName: "Kevyn Bryan",
		Username: "Kevyn123",
		Email:    "kevyn@teste.com",
		Password: "12345678",
	}

	fx.userRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil)

	output, err := fx.service.CreateUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))

	// The email collision short-circuits before the username check, the
	// password hashing, and the insert.
	fx.userRepo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_UsernameTaken(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FullName: "Kevyn Bryan",
		Username: "Kevyn123",
		Email:    "kevyn@teste.com",
		Password: "12345678",
	}

	fx.userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil)
	fx.userRepo.On("ExistsByUsername", ctx, input.Username).Return(true, nil)

	output, err := fx.service.CreateUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameAlreadyExists))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_NilInput(t *testing.T) {
	fx := createTestUserService()

	output, err := fx.service.CreateUser(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FullName: "Kevyn Bryan",
		Username: "Kevyn123",
		Email:    "kevyn@teste.com",
		Password: "12345678",
	}

	fx.userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil)
	fx.userRepo.On("ExistsByUsername", ctx, input.Username).Return(false, nil)
	fx.hasher.On("Hash", input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.CreateUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_GetUserByID_Success(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	stored := newStoredUser()
	fx.userRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)

	output, err := fx.service.GetUserByID(ctx, stored.ID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, stored.ID, output.ID)
	assert.Equal(t, stored.Username, output.Username)
	assert.Equal(t, stored.Email, output.Email)
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.On("FindByID", ctx, id).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetUserByID(ctx, id)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetUserByUsername_NotFound(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	fx.userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetUserByUsername(ctx, "ghost")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	fx.userRepo.On("FindAll", ctx).Return([]*entity.User{}, nil)

	outputs, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.NotNil(t, outputs)
	assert.Empty(t, outputs)
}

func TestUserService_ListUsers_ProjectsEveryUser(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	first := newStoredUser()
	second := newStoredUser()
	second.Username = "OtherUser"
	second.Email = "other@teste.com"

	fx.userRepo.On("FindAll", ctx).Return([]*entity.User{first, second}, nil)

	outputs, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, first.Username, outputs[0].Username)
	assert.Equal(t, second.Username, outputs[1].Username)
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	stored := newStoredUser()

	input := &usecase.UpdateUserInput{
		ID:       &stored.ID,
		FullName: "Kevyn B. Updated",
		Username: "Kevyn456",
		Email:    "kevyn.updated@teste.com",
		Password: "new-password",
	}

	fx.userRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)
	fx.hasher.On("Hash", input.Password).Return("new_hash", nil)
	fx.userRepo.On("Update", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.ID == stored.ID &&
			user.FullName == input.FullName &&
			user.Username == input.Username &&
			user.Email == input.Email &&
			user.PasswordHash == "new_hash"
	})).Return(nil)

	output, err := fx.service.UpdateUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.Username)
	assert.Equal(t, input.Email, output.Email)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_EmptyPasswordKeepsDigest(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	stored := newStoredUser()
	originalHash := stored.PasswordHash

	input := &usecase.UpdateUserInput{
		ID:       &stored.ID,
		FullName: "Kevyn B. Updated",
		Username: stored.Username,
		Email:    stored.Email,
	}

	fx.userRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)
	fx.userRepo.On("Update", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.PasswordHash == originalHash && user.FullName == "Kevyn B. Updated"
	})).Return(nil)

	output, err := fx.service.UpdateUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_NilInput(t *testing.T) {
	fx := createTestUserService()

	output, err := fx.service.UpdateUser(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_NilID(t *testing.T) {
	fx := createTestUserService()

	input := &usecase.UpdateUserInput{
		FullName: "Kevyn Bryan",
		Username: "Kevyn123",
		Email:    "kevyn@teste.com",
		Password: "12345678",
	}

	output, err := fx.service.UpdateUser(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	id := uuid.New()
	input := &usecase.UpdateUserInput{
		ID:       &id,
		FullName: "Kevyn Bryan",
		Username: "Kevyn123",
		Email:    "kevyn@teste.com",
		Password: "12345678",
	}

	fx.userRepo.On("FindByID", ctx, id).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.UpdateUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_DuplicateEmailFromConstraint(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	stored := newStoredUser()
	input := &usecase.UpdateUserInput{
		ID:       &stored.ID,
		FullName: stored.FullName,
		Username: stored.Username,
		Email:    "taken@teste.com",
		Password: "12345678",
	}

	fx.userRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)
	fx.hasher.On("Hash", input.Password).Return("new_hash", nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists"))

	output, err := fx.service.UpdateUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestUserService_PatchUser_Success(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	stored := newStoredUser()
	newUsername := "Kevyn456"
	input := &usecase.PatchUserInput{
		ID:       &stored.ID,
		Username: &newUsername,
	}

	fx.userRepo.On("UpdatePartial", ctx, stored.ID, (*string)(nil), &newUsername, (*string)(nil), (*string)(nil)).
		Return(int64(1), nil)

	updated := *stored
	updated.Username = newUsername
	fx.userRepo.On("FindByID", ctx, stored.ID).Return(&updated, nil)

	output, err := fx.service.PatchUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, newUsername, output.Username)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_PatchUser_HashesPassword(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	stored := newStoredUser()
	newPassword := "fresh-password"
	input := &usecase.PatchUserInput{
		ID:       &stored.ID,
		Password: &newPassword,
	}

	fx.hasher.On("Hash", newPassword).Return("fresh_hash", nil)
	fx.userRepo.On("UpdatePartial", ctx, stored.ID, (*string)(nil), (*string)(nil), (*string)(nil), mock.MatchedBy(func(hash *string) bool {
		return hash != nil && *hash == "fresh_hash"
	})).Return(int64(1), nil)
	fx.userRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)

	output, err := fx.service.PatchUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
}

func TestUserService_PatchUser_NotFound(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	id := uuid.New()
	newEmail := "new@teste.com"
	input := &usecase.PatchUserInput{
		ID:    &id,
		Email: &newEmail,
	}

	fx.userRepo.On("UpdatePartial", ctx, id, (*string)(nil), (*string)(nil), &newEmail, (*string)(nil)).
		Return(int64(0), nil)

	output, err := fx.service.PatchUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_PatchUser_NilID(t *testing.T) {
	fx := createTestUserService()

	output, err := fx.service.PatchUser(context.Background(), &usecase.PatchUserInput{})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	fx.userRepo.AssertNotCalled(t, "UpdatePartial", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_PatchUser_EmptyPatchReturnsCurrentState(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	stored := newStoredUser()
	input := &usecase.PatchUserInput{ID: &stored.ID}

	fx.userRepo.On("UpdatePartial", ctx, stored.ID, (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil)).
		Return(int64(0), nil)
	fx.userRepo.On("FindByID", ctx, stored.ID).Return(stored, nil)

	output, err := fx.service.PatchUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, stored.Username, output.Username)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.On("ExistsByID", ctx, id).Return(true, nil)
	fx.userRepo.On("DeleteByID", ctx, id).Return(nil)

	err := fx.service.DeleteUser(ctx, id)

	require.NoError(t, err)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService()

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.On("ExistsByID", ctx, id).Return(false, nil)

	err := fx.service.DeleteUser(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	fx.userRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}
