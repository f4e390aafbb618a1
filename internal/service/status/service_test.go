package status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/pkg/logger"
)

type mockStatusRepo struct {
	mock.Mock
}

func (m *mockStatusRepo) Create(ctx context.Context, check *domain.StatusCheck) error {
	return m.Called(ctx, check).Error(0)
}

func (m *mockStatusRepo) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	args := m.Called(ctx, limit)
	checks, _ := args.Get(0).([]*domain.StatusCheck)
	return checks, args.Error(1)
}

func TestService_Create(t *testing.T) {
	repo := &mockStatusRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.StatusCheck) bool {
		return c.ClientName == "probe" && c.ID != "" && !c.Timestamp.IsZero()
	})).Return(nil)

	resp, err := NewService(repo, logger.NewNop()).Create(context.Background(), "probe")

	require.NoError(t, err)
	assert.Equal(t, "probe", resp.ClientName)
	repo.AssertExpectations(t)
}

func TestService_List_UsesCap(t *testing.T) {
	repo := &mockStatusRepo{}
	repo.On("List", mock.Anything, domain.MaxStatusChecks).Return([]*domain.StatusCheck{{ID: "s-1"}}, nil)

	resp, err := NewService(repo, logger.NewNop()).List(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestService_List_Error(t *testing.T) {
	repo := &mockStatusRepo{}
	repo.On("List", mock.Anything, domain.MaxStatusChecks).Return(nil, errors.New("boom"))

	_, err := NewService(repo, logger.NewNop()).List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
