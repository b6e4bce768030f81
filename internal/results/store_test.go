package results

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resumeforge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T, cfg Config) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(cfg)
	s.now = clock.Now
	t.Cleanup(s.Stop)
	return s, clock
}

func newResult(text string) types.ResumeResult {
	return types.ResumeResult{ID: uuid.New(), Text: text, Filename: "Jane_Doe_Resume.txt"}
}

func TestStore_PutGet(t *testing.T) {
	s, _ := newTestStore(t, Config{})
	r := newResult("RESUME_TEXT")

	s.Put(r)

	got, err := s.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestStore_UnknownID(t *testing.T) {
	s, _ := newTestStore(t, Config{})

	_, err := s.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Expiry(t *testing.T) {
	s, clock := newTestStore(t, Config{TTL: time.Minute})
	r := newResult("RESUME_TEXT")
	s.Put(r)

	clock.Advance(59 * time.Second)
	_, err := s.Get(r.ID)
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = s.Get(r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_EvictsOldest(t *testing.T) {
	s, _ := newTestStore(t, Config{MaxEntries: 2})
	first, second, third := newResult("1"), newResult("2"), newResult("3")

	s.Put(first)
	s.Put(second)
	s.Put(third)

	assert.Equal(t, 2, s.Len())
	_, err := s.Get(first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(third.ID)
	assert.NoError(t, err)
}

func TestStore_PutSameIDReplaces(t *testing.T) {
	s, _ := newTestStore(t, Config{MaxEntries: 2})
	r := newResult("old")
	s.Put(r)
	r.Text = "new"
	s.Put(r)

	got, err := s.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Text)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Sweep(t *testing.T) {
	s, clock := newTestStore(t, Config{TTL: time.Minute})
	stale := newResult("stale")
	s.Put(stale)
	clock.Advance(2 * time.Minute)
	fresh := newResult("fresh")
	s.Put(fresh)

	s.sweep()

	assert.Equal(t, 1, s.Len())
	_, err := s.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestStore_StopTwice(t *testing.T) {
	s := NewStore(Config{})
	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s, _ := newTestStore(t, Config{MaxEntries: 50})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				r := newResult("x")
				s.Put(r)
				_, _ = s.Get(r.ID)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 50)
}
