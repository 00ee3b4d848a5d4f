package numbering

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"challan-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeBillerStore mimics the repository contract: the increment is
// atomic under its lock, the way the real store is atomic in SQL.
type fakeBillerStore struct {
	mu      sync.Mutex
	billers map[string]*models.User
}

func newFakeBillerStore(users ...*models.User) *fakeBillerStore {
	store := &fakeBillerStore{billers: map[string]*models.User{}}
	for _, u := range users {
		store.billers[u.Username] = u
	}
	return store
}

func (f *fakeBillerStore) GetByUsername(username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.billers[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeBillerStore) IncrementChallanNumber(username string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.billers[username]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	u.LastChallanNumber++
	return u.LastChallanNumber, nil
}

func TestAllocateFormat(t *testing.T) {
	store := newFakeBillerStore(&models.User{Username: "gagan", BillingCode: "GP", LastChallanNumber: 10000})
	allocator := NewAllocator(store)

	first, err := allocator.Allocate("gagan")
	require.NoError(t, err)
	assert.Equal(t, "GP10001", first)

	second, err := allocator.Allocate("gagan")
	require.NoError(t, err)
	assert.Equal(t, "GP10002", second)
}

func TestAllocateUnknownBiller(t *testing.T) {
	allocator := NewAllocator(newFakeBillerStore())

	_, err := allocator.Allocate("nobody")
	assert.ErrorIs(t, err, ErrBillerNotFound)
}

func TestAllocateConcurrentNoDuplicates(t *testing.T) {
	store := newFakeBillerStore(
		&models.User{Username: "gagan", BillingCode: "GP", LastChallanNumber: 10000},
		&models.User{Username: "naveen", BillingCode: "NV", LastChallanNumber: 10000},
	)
	allocator := NewAllocator(store)

	const perBiller = 50
	ids := make(chan string, perBiller*2)
	var wg sync.WaitGroup
	for i := 0; i < perBiller; i++ {
		for _, username := range []string{"gagan", "naveen"} {
			wg.Add(1)
			go func(username string) {
				defer wg.Done()
				id, err := allocator.Allocate(username)
				assert.NoError(t, err)
				ids <- id
			}(username)
		}
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate identifier %s", id)
		seen[id] = true
	}
	require.Len(t, seen, perBiller*2)

	// every suffix in each series must land in the expected range
	for id := range seen {
		var prefix string
		switch {
		case strings.HasPrefix(id, "GP"):
			prefix = "GP"
		case strings.HasPrefix(id, "NV"):
			prefix = "NV"
		default:
			t.Fatalf("unexpected prefix on %s", id)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 10001)
		assert.LessOrEqual(t, n, 10000+perBiller)
	}
}
