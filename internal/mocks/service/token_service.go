package service

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Issue(subject string) (string, error) {
	args := m.Called(subject)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(tokenString string) (string, error) {
	args := m.Called(tokenString)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ExtractSubject(tokenString string) (string, bool) {
	args := m.Called(tokenString)

	return args.String(0), args.Bool(1)
}

func (m *MockTokenService) AccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
