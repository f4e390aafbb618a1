package relink_cultural_events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/pkg/logger"
	"github.com/m04kA/SMC-HeritageService/pkg/ptr"
)

type mockMonasteryRepo struct {
	mock.Mock
}

func (m *mockMonasteryRepo) List(ctx context.Context, filter domain.MonasteryFilter) ([]*domain.Monastery, error) {
	args := m.Called(ctx, filter)
	monasteries, _ := args.Get(0).([]*domain.Monastery)
	return monasteries, args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) ListLinkable(ctx context.Context) ([]*domain.CulturalEvent, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]*domain.CulturalEvent)
	return events, args.Error(1)
}

func (m *mockEventRepo) SetMonasteryID(ctx context.Context, eventID string, monasteryID *string) error {
	return m.Called(ctx, eventID, monasteryID).Error(0)
}

func TestUseCase_Execute(t *testing.T) {
	monasteryRepo := &mockMonasteryRepo{}
	eventRepo := &mockEventRepo{}

	monasteryRepo.On("List", mock.Anything, domain.MonasteryFilter{}).Return([]*domain.Monastery{
		{ID: "new-rumtek", Name: "Rumtek Monastery"},
		{ID: "enchey", Name: "Enchey Monastery"},
	}, nil)

	eventRepo.On("ListLinkable", mock.Anything).Return([]*domain.CulturalEvent{
		// старый ID после пересева монастырей
		{ID: "e-1", MonasteryName: ptr.Ptr("Rumtek Monastery"), MonasteryID: ptr.Ptr("old-rumtek")},
		// уже привязано верно
		{ID: "e-2", MonasteryName: ptr.Ptr("Enchey Monastery"), MonasteryID: ptr.Ptr("enchey")},
		// монастыря больше нет
		{ID: "e-3", MonasteryName: ptr.Ptr("Ralang Monastery"), MonasteryID: ptr.Ptr("ralang")},
	}, nil)

	eventRepo.On("SetMonasteryID", mock.Anything, "e-1", ptr.Ptr("new-rumtek")).Return(nil)
	eventRepo.On("SetMonasteryID", mock.Anything, "e-3", (*string)(nil)).Return(nil)

	resp, err := NewUseCase(monasteryRepo, eventRepo, logger.NewNop()).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Linked)
	assert.Equal(t, 1, resp.Unlinked)
	assert.Equal(t, 2, resp.Updated)
	eventRepo.AssertExpectations(t)
	eventRepo.AssertNotCalled(t, "SetMonasteryID", mock.Anything, "e-2", mock.Anything)
}
