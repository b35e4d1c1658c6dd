package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mhenry-dev/portfolio-api/pkg/brevo"
)

// MockEmailSender is a mock implementation of brevo.Sender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg *brevo.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
