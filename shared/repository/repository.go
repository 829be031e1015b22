package repository

import (
	"context"
	"encoding/json"
	"mahalo/config"
	"mahalo/infras/otel"
	"mahalo/shared/cache"
	"mahalo/shared/constant"
	"mahalo/shared/dto"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultMirrorRetries = 3
	mirrorRetryBaseWait  = 100 * time.Millisecond

	noExpiry = 0
)

// Entity is a record the generic store can keep: it exposes its unique key
// and a flat string view of its fields for filtering and sorting.
type Entity interface {
	Key() string
	Fields() map[string]string
}

// Repository is a keyed in-memory store with an optional external mirror.
// Memory is the primary copy: every write lands there first and is then
// propagated to the mirror best-effort, with a fixed retry count and
// exponential backoff. Reads prefer the mirror when it holds data, and
// reconcile memory to it (last write wins, no transactional isolation).
type Repository[T Entity] struct {
	mu      sync.RWMutex
	items   map[string]T
	order   []string
	entitas string
	prefix  string
	mirror  cache.RedisCache
	cfg     *config.Config
	otel    otel.Otel
}

func NewRepository[T Entity](entitasName, mirrorPrefix string, initial []T, mirror cache.RedisCache, cfg *config.Config, otl otel.Otel) *Repository[T] {
	repo := &Repository[T]{
		items:   map[string]T{},
		order:   []string{},
		entitas: entitasName,
		prefix:  mirrorPrefix,
		mirror:  mirror,
		cfg:     cfg,
		otel:    otl,
	}

	for _, item := range initial {
		repo.items[item.Key()] = item
		repo.order = append(repo.order, item.Key())
	}

	return repo
}

func (repo *Repository[T]) mirrorEnabled() bool {
	return repo.mirror != nil && repo.cfg.Mirror.Enable
}

func (repo *Repository[T]) mirrorKey(id string) string {
	return repo.prefix + id
}

func (repo *Repository[T]) maxRetries() int {
	if repo.cfg.Mirror.MaxRetries > 0 {
		return repo.cfg.Mirror.MaxRetries
	}

	return defaultMirrorRetries
}

// propagate pushes one point write to the mirror. Failures are logged and
// swallowed: the in-memory write has already happened and is never rolled
// back, so callers cannot observe mirror outages.
func (repo *Repository[T]) propagate(ctx context.Context, op func() error) {
	if !repo.mirrorEnabled() {
		return
	}

	wait := mirrorRetryBaseWait

	var err error

	for attempt := 0; attempt < repo.maxRetries(); attempt++ {
		if err = op(); err == nil {
			return
		}

		time.Sleep(wait)
		wait *= 2
	}

	log.Error().Err(err).Str("entity", repo.entitas).Msg("mirror write failed after retries, continuing with in-memory state")
}

// snapshot returns every record. The mirror wins when it is non-empty;
// memory is reconciled to match it so later writes build on mirror state.
func (repo *Repository[T]) snapshot(ctx context.Context) []T {
	if repo.mirrorEnabled() {
		values, err := repo.mirror.GetAllByPrefix(ctx, repo.prefix+constant.Asterix)
		if err != nil {
			log.Warn().Err(err).Str("entity", repo.entitas).Msg("failed to read mirror, falling back to in-memory state")
		} else if len(values) > 0 {
			return repo.reconcile(values)
		}
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.collect()
}

func (repo *Repository[T]) collect() []T {
	items := make([]T, 0, len(repo.order))

	for _, id := range repo.order {
		items = append(items, repo.items[id])
	}

	return items
}

func (repo *Repository[T]) reconcile(values map[string]string) []T {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.items = map[string]T{}
	repo.order = []string{}

	for _, raw := range values {
		var item T

		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			log.Error().Err(err).Str("entity", repo.entitas).Msg("failed to decode mirrored record, skipping")

			continue
		}

		repo.items[item.Key()] = item
		repo.order = append(repo.order, item.Key())
	}

	// Keys are timestamp-derived, so key order restores insertion order.
	sort.Strings(repo.order)

	return repo.collect()
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+"."+repo.entitas+".insert")
	defer scope.End()

	repo.mu.Lock()

	id := model.Key()
	if _, exists := repo.items[id]; !exists {
		repo.order = append(repo.order, id)
	}

	repo.items[id] = model
	repo.mu.Unlock()

	repo.propagate(ctx, func() error {
		return repo.mirror.Save(ctx, repo.mirrorKey(id), model, noExpiry)
	})

	return nil
}

// Update performs a point overwrite of an existing record.
func (repo *Repository[T]) Update(ctx context.Context, model T) error {
	return repo.Insert(ctx, model)
}

func (repo *Repository[T]) Get(ctx context.Context, id string) (T, bool) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+"."+repo.entitas+".get")
	defer scope.End()

	for _, item := range repo.snapshot(ctx) {
		if item.Key() == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

func (repo *Repository[T]) Delete(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+"."+repo.entitas+".delete")
	defer scope.End()

	repo.mu.Lock()
	delete(repo.items, id)

	if idx := slices.Index(repo.order, id); idx >= 0 {
		repo.order = slices.Delete(repo.order, idx, idx+1)
	}
	repo.mu.Unlock()

	repo.propagate(ctx, func() error {
		return repo.mirror.Delete(ctx, repo.mirrorKey(id))
	})

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, id string) bool {
	_, ok := repo.Get(ctx, id)

	return ok
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) int {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+"."+repo.entitas+".count")
	defer scope.End()

	count := 0

	for _, item := range repo.snapshot(ctx) {
		if filter.Matches(item.Fields()) {
			count++
		}
	}

	return count
}

// All returns every stored record in insertion order, mirror-preferring.
func (repo *Repository[T]) All(ctx context.Context) []T {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+"."+repo.entitas+".all")
	defer scope.End()

	return repo.snapshot(ctx)
}

// GetAll returns the filtered, sorted page of records plus the total number
// of matches before pagination.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, int) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+"."+repo.entitas+".get_all")
	defer scope.End()

	matched := []T{}

	for _, item := range repo.snapshot(ctx) {
		if filter.Matches(item.Fields()) {
			matched = append(matched, item)
		}
	}

	if params.SortBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Fields()[params.SortBy] < matched[j].Fields()[params.SortBy]
		})
	}

	if params.SortDir == dto.SortDirDesc {
		slices.Reverse(matched)
	}

	total := len(matched)

	if params.Limit <= 0 {
		return matched, total
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * params.Limit
	if start >= total {
		return []T{}, total
	}

	end := min(start+params.Limit, total)

	return matched[start:end], total
}
