package initialize_cultural_events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/seed"
	"github.com/m04kA/SMC-HeritageService/pkg/logger"
)

type memoryEventRepo struct {
	items []*domain.CulturalEvent
}

func (r *memoryEventRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *memoryEventRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := len(r.items)
	r.items = nil
	return int64(n), nil
}

func (r *memoryEventRepo) CreateMany(ctx context.Context, events []*domain.CulturalEvent) (int, error) {
	r.items = append(r.items, events...)
	return len(events), nil
}

type staticMonasteryRepo struct {
	items []*domain.Monastery
}

func (r *staticMonasteryRepo) List(ctx context.Context, filter domain.MonasteryFilter) ([]*domain.Monastery, error) {
	return r.items, nil
}

type noTx struct{}

func (noTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestUseCase_Execute_LinksByMonasteryName(t *testing.T) {
	events := &memoryEventRepo{}
	monasteries := &staticMonasteryRepo{items: []*domain.Monastery{
		{ID: "rumtek-id", Name: "Rumtek Monastery"},
		{ID: "enchey-id", Name: "Enchey Monastery"},
	}}

	uc := NewUseCase(events, monasteries, seed.MustLoad(), noTx{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, 8, resp.Count)
	assert.Equal(t, 2, resp.Linked)
	assert.Equal(t, "Successfully initialized 8 cultural events", resp.Message)

	for _, e := range events.items {
		switch {
		case e.MonasteryName != nil && *e.MonasteryName == "Rumtek Monastery":
			require.NotNil(t, e.MonasteryID)
			assert.Equal(t, "rumtek-id", *e.MonasteryID)
		case e.MonasteryName != nil && *e.MonasteryName == "Enchey Monastery":
			require.NotNil(t, e.MonasteryID)
			assert.Equal(t, "enchey-id", *e.MonasteryID)
		default:
			// нет названия или монастырь не засеян
			assert.Nil(t, e.MonasteryID, e.Title)
		}
	}
}

func TestUseCase_Execute_WithoutMonasteriesLeavesUnlinked(t *testing.T) {
	events := &memoryEventRepo{}
	uc := NewUseCase(events, &staticMonasteryRepo{}, seed.MustLoad(), noTx{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Zero(t, resp.Linked)
	for _, e := range events.items {
		assert.Nil(t, e.MonasteryID)
	}
}

func TestUseCase_Execute_GatingAndForce(t *testing.T) {
	events := &memoryEventRepo{}
	uc := NewUseCase(events, &staticMonasteryRepo{}, seed.MustLoad(), noTx{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	firstID := events.items[0].ID

	skipped, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.False(t, skipped.Initialized)
	assert.Equal(t, "Database already contains 8 cultural events", skipped.Message)
	assert.Len(t, events.items, 8)

	forced, err := uc.Execute(context.Background(), &Request{Force: true})
	require.NoError(t, err)
	assert.True(t, forced.Initialized)
	assert.Len(t, events.items, 8)
	assert.NotEqual(t, firstID, events.items[0].ID)
}
