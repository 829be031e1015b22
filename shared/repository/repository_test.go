package repository_test

import (
	"context"
	"mahalo/config"
	"mahalo/infras/otel/mocks"
	cacheMocks "mahalo/shared/cache/mocks"
	"mahalo/shared/dto"
	"mahalo/shared/repository"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (n note) Key() string {
	return n.ID
}

func (n note) Fields() map[string]string {
	return map[string]string{"id": n.ID, "text": n.Text}
}

func mirroredConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Mirror.Enable = true
	cfg.Mirror.MaxRetries = 1

	return cfg
}

func TestRepositoryInsertGetDelete(t *testing.T) {
	ctx := context.Background()
	mirror := cacheMocks.NewMemoryCache()
	repo := repository.NewRepository[note]("note", "mirror:note:", nil, mirror, mirroredConfig(), mocks.NewOtel())

	assert.NoError(t, repo.Insert(ctx, note{ID: "1", Text: "first"}))
	assert.NoError(t, repo.Insert(ctx, note{ID: "2", Text: "second"}))

	got, ok := repo.Get(ctx, "1")
	assert.True(t, ok)
	assert.Equal(t, "first", got.Text)

	// Point writes reach the mirror.
	assert.Equal(t, 2, mirror.Len())

	assert.NoError(t, repo.Delete(ctx, "1"))
	_, ok = repo.Get(ctx, "1")
	assert.False(t, ok)
	assert.Equal(t, 1, mirror.Len())
}

func TestRepositoryReadsPreferMirror(t *testing.T) {
	ctx := context.Background()
	mirror := cacheMocks.NewMemoryCache()

	// A record written by another process exists only in the mirror.
	assert.NoError(t, mirror.Save(ctx, "mirror:note:9", note{ID: "9", Text: "external"}, 0))

	repo := repository.NewRepository[note]("note", "mirror:note:", []note{{ID: "1", Text: "local"}}, mirror, mirroredConfig(), mocks.NewOtel())

	all := repo.All(ctx)
	assert.Len(t, all, 1)
	assert.Equal(t, "9", all[0].ID)

	// Memory reconciled to the mirror's state: the local-only record is gone.
	_, ok := repo.Get(ctx, "1")
	assert.False(t, ok)
}

func TestRepositoryFallsBackToMemoryOnEmptyMirror(t *testing.T) {
	ctx := context.Background()
	mirror := cacheMocks.NewMemoryCache()
	repo := repository.NewRepository[note]("note", "mirror:note:", []note{{ID: "1", Text: "seed"}}, mirror, mirroredConfig(), mocks.NewOtel())

	all := repo.All(ctx)
	assert.Len(t, all, 1)
	assert.Equal(t, "seed", all[0].Text)
}

func TestRepositorySwallowsMirrorFailures(t *testing.T) {
	ctx := context.Background()
	mirror := cacheMocks.NewMemoryCache()
	mirror.FailOps = true

	repo := repository.NewRepository[note]("note", "mirror:note:", nil, mirror, mirroredConfig(), mocks.NewOtel())

	// The in-memory write succeeds even though every mirror op fails.
	assert.NoError(t, repo.Insert(ctx, note{ID: "1", Text: "kept"}))

	got, ok := repo.Get(ctx, "1")
	assert.True(t, ok)
	assert.Equal(t, "kept", got.Text)
}

func TestRepositoryGetAllFilterSortPaginate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRepository[note]("note", "mirror:note:", nil, cacheMocks.NewMemoryCache(), mirroredConfig(), mocks.NewOtel())

	for i := 1; i <= 5; i++ {
		text := "even"
		if i%2 == 1 {
			text = "odd"
		}

		assert.NoError(t, repo.Insert(ctx, note{ID: strconv.Itoa(i), Text: text}))
	}

	filter := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "text", Value: "odd", Operator: dto.FilterOperatorEq},
	}}

	page, total := repo.GetAll(ctx, dto.QueryParams{Page: 1, Limit: 2, SortBy: "id", SortDir: dto.SortDirDesc}, filter)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 2)
	assert.Equal(t, "5", page[0].ID)
	assert.Equal(t, "3", page[1].ID)

	page, total = repo.GetAll(ctx, dto.QueryParams{Page: 2, Limit: 2, SortBy: "id", SortDir: dto.SortDirDesc}, filter)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 1)
	assert.Equal(t, "1", page[0].ID)
}
