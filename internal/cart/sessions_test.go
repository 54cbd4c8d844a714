package cart

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCartRepository struct {
	repo.InMemoryCartRepository
}

func (*failingCartRepository) Load(context.Context, string) ([]models.CartLineItem, error) {
	return nil, errors.New("connection refused")
}

// blockingCartRepository holds the first Save and every Load of blockedLoad until released.
type blockingCartRepository struct {
	*repo.InMemoryCartRepository
	blockedLoad string
	entered     chan struct{}
	release     chan struct{}
	once        sync.Once
}

func newBlockingCartRepository() *blockingCartRepository {
	return &blockingCartRepository{
		InMemoryCartRepository: repo.NewInMemoryCartRepository(),
		entered:                make(chan struct{}),
		release:                make(chan struct{}),
	}
}

func (r *blockingCartRepository) Save(ctx context.Context, sessionID string, items []models.CartLineItem) error {
	r.once.Do(func() {
		close(r.entered)
		<-r.release
	})
	return r.InMemoryCartRepository.Save(ctx, sessionID, items)
}

func (r *blockingCartRepository) Load(ctx context.Context, sessionID string) ([]models.CartLineItem, error) {
	if sessionID == r.blockedLoad {
		close(r.entered)
		<-r.release
	}
	return r.InMemoryCartRepository.Load(ctx, sessionID)
}

func TestSessions_GetReturnsSameStoreForSession(t *testing.T) {
	sessions := NewSessions(repo.NewInMemoryCartRepository())
	ctx := context.Background()

	a, err := sessions.Get(ctx, "a")
	require.NoError(t, err)
	again, err := sessions.Get(ctx, "a")
	require.NoError(t, err)
	b, err := sessions.Get(ctx, "b")
	require.NoError(t, err)

	assert.Same(t, a, again)
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, sessions.Len())
}

func TestSessions_PersistsMutations(t *testing.T) {
	cartRepo := repo.NewInMemoryCartRepository()
	sessions := NewSessions(cartRepo)
	ctx := context.Background()

	store, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	store.AddItems(blueShirt, 2)

	saved, err := cartRepo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 2, saved[0].Quantity)

	store.Clear()
	_, err = cartRepo.Load(ctx, "s1")
	assert.ErrorIs(t, err, repo.ErrCartNotFound)
}

func TestSessions_ReloadsAfterEviction(t *testing.T) {
	cartRepo := repo.NewInMemoryCartRepository()
	sessions := NewSessions(cartRepo)
	ctx := context.Background()

	store, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	store.AddItem(goldRing)

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, sessions.EvictIdle(time.Millisecond))
	assert.Equal(t, 0, sessions.Len())

	reloaded, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.NotSame(t, store, reloaded)
	assert.Equal(t, 1, reloaded.ItemCount())
	assert.Equal(t, "100.00", reloaded.Total().StringFixed(2))
}

func TestSessions_LoadError(t *testing.T) {
	sessions := NewSessions(&failingCartRepository{})

	_, err := sessions.Get(context.Background(), "s1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 0, sessions.Len())
}

func TestSessions_SlowSaveDoesNotPersistStaleCart(t *testing.T) {
	cartRepo := newBlockingCartRepository()
	sessions := NewSessions(cartRepo)
	ctx := context.Background()
	store, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		store.AddItem(blueShirt)
	}()
	<-cartRepo.entered

	go func() {
		defer wg.Done()
		store.AddItem(goldRing)
	}()
	require.Eventually(t, func() bool { return store.ItemCount() == 2 }, time.Second, time.Millisecond)

	close(cartRepo.release)
	wg.Wait()

	saved, err := cartRepo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, blueShirt.ID, saved[0].ID)
	assert.Equal(t, goldRing.ID, saved[1].ID)
}

func TestSessions_SlowLoadDoesNotBlockOtherSessions(t *testing.T) {
	cartRepo := newBlockingCartRepository()
	cartRepo.blockedLoad = "slow"
	sessions := NewSessions(cartRepo)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := sessions.Get(ctx, "slow")
		assert.NoError(t, err)
	}()
	<-cartRepo.entered

	fast, err := sessions.Get(ctx, "fast")
	require.NoError(t, err)
	assert.NotNil(t, fast)

	close(cartRepo.release)
	<-done
	assert.Equal(t, 2, sessions.Len())
}
