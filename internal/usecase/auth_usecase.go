package usecase

import (
	"context"
)

// SignInInput defines the credentials for a sign-in attempt. Username doubles
// as the identifier field; an '@' in it is treated as an email address.
type SignInInput struct {
	Username string
	Password string
}

// SignInOutput returns the signed access token after a successful sign-in.
type SignInOutput struct {
	Username string
	Token    string
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
	// CurrentUser resolves the account behind a verified token subject.
	CurrentUser(ctx context.Context, username string) (*UserOutput, error)
}
