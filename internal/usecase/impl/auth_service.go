package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/Renan-rss/instagram-clone/internal/delivery/context"
	"github.com/Renan-rss/instagram-clone/internal/domain/entity"
	domainerrors "github.com/Renan-rss/instagram-clone/internal/domain/errors"
	"github.com/Renan-rss/instagram-clone/internal/domain/repository"
	"github.com/Renan-rss/instagram-clone/internal/domain/service"
	"github.com/Renan-rss/instagram-clone/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn verifies the credentials and issues an access token. An unknown
// identifier and a wrong password both collapse into ErrInvalidCredentials so
// the response never reveals which accounts exist.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "sign-in input is required")
	}

	srv.log(ctx).Debug("Starting sign-in", slog.String("identifier", input.Username))

	user, err := srv.loadSignInUser(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("identifier", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to load user for sign-in")
	}

	// Password check stays outside any transaction, bcrypt is CPU-bound.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("identifier", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	token, err := srv.tokenService.Issue(user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Sign-in succeeded", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{
		Username: user.Username,
		Token:    token,
	}, nil
}

// CurrentUser resolves the account behind a verified token subject.
func (srv *authService) CurrentUser(ctx context.Context, username string) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return toUserOutput(user), nil
}

// loadSignInUser resolves the identifier to an account. Identifiers containing
// '@' fall back to an email lookup when no username matches.
func (srv *authService) loadSignInUser(ctx context.Context, identifier string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	if strings.Contains(identifier, "@") {
		return srv.userRepo.FindByEmail(ctx, identifier)
	}

	return nil, err
}
