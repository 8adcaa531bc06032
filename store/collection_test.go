package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"shopadmin/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func roles(ids ...string) []models.Role {
	out := make([]models.Role, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Role{RoleID: models.ID(id), RoleName: "role " + id})
	}
	return out
}

func TestLoadFetchesOnce(t *testing.T) {
	var calls atomic.Int32
	c := NewCollection("roles", func(context.Context) ([]models.Role, error) {
		calls.Add(1)
		return roles("R1", "R2"), nil
	}, nil)

	assert.False(t, c.Loaded())
	for i := 0; i < 3; i++ {
		got, err := c.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	}
	assert.EqualValues(t, 1, calls.Load())

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())

	c.Invalidate()
	assert.False(t, c.Loaded())
	_, err = c.Load(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load())
}

func TestConcurrentLoadsShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	c := NewCollection("roles", func(context.Context) ([]models.Role, error) {
		calls.Add(1)
		<-release
		return roles("R1"), nil
	}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Load(context.Background())
			assert.NoError(t, err)
			assert.Len(t, got, 1)
		}()
	}
	// Give every goroutine a chance to join the in-flight fetch.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
}

func TestRefreshStartsNewFetchAfterWrite(t *testing.T) {
	var (
		mu      sync.Mutex
		backend = roles("R1")
		calls   atomic.Int32
	)
	entered := make(chan struct{})
	release := make(chan struct{})
	c := NewCollection("roles", func(context.Context) ([]models.Role, error) {
		mu.Lock()
		snapshot := append([]models.Role(nil), backend...)
		mu.Unlock()
		if calls.Add(1) == 1 {
			close(entered)
			<-release
		}
		return snapshot, nil
	}, nil)

	loaded := make(chan []models.Role, 1)
	go func() {
		got, err := c.Load(context.Background())
		assert.NoError(t, err)
		loaded <- got
	}()
	<-entered

	// A write lands while the first load is still in flight.
	mu.Lock()
	backend = roles("R1", "R2")
	mu.Unlock()

	got, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	close(release)
	assert.Len(t, <-loaded, 2, "the older fetch must not replace newer items")
	assert.Len(t, c.Items(), 2)
	assert.EqualValues(t, 2, calls.Load())
}

func TestCancelledCallerDoesNotCancelSharedFetch(t *testing.T) {
	release := make(chan struct{})
	fetched := make(chan error, 1)
	c := NewCollection("roles", func(ctx context.Context) ([]models.Role, error) {
		<-release
		fetched <- ctx.Err()
		return roles("R1"), nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Refresh(ctx)
		done <- err
	}()
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(release)
	assert.NoError(t, <-fetched)
	require.Eventually(t, c.Loaded, time.Second, 5*time.Millisecond)
	assert.Len(t, c.Items(), 1)
}

func TestRefreshErrorKeepsCache(t *testing.T) {
	fail := false
	c := NewCollection("roles", func(context.Context) ([]models.Role, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return roles("R1"), nil
	}, nil)

	_, err := c.Load(context.Background())
	require.NoError(t, err)
	fail = true
	_, err = c.Refresh(context.Background())
	assert.EqualError(t, err, "boom")
	assert.Len(t, c.Items(), 1)
	assert.True(t, c.Loaded())
}

func TestLocalPatches(t *testing.T) {
	c := NewCollection("roles", func(context.Context) ([]models.Role, error) {
		return roles("R1", "R2", "R3"), nil
	}, nil)
	_, err := c.Load(context.Background())
	require.NoError(t, err)
	v := c.Version()

	assert.True(t, c.Remove("R2"))
	assert.False(t, c.Remove("R2"))
	assert.False(t, c.Remove("R"))
	c.Insert(models.Role{RoleID: "R4", RoleName: "role R4"})
	assert.True(t, c.Update("R1", func(r *models.Role) { r.RoleName = "Owner" }))
	assert.True(t, c.Replace(models.Role{RoleID: "R3", RoleName: "Auditor"}))
	assert.False(t, c.Update("R9", func(*models.Role) {}))

	want := []models.Role{
		{RoleID: "R1", RoleName: "Owner"},
		{RoleID: "R3", RoleName: "Auditor"},
		{RoleID: "R4", RoleName: "role R4"},
	}
	if diff := cmp.Diff(want, c.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	assert.Greater(t, c.Version(), v)

	r, ok := c.Get("R4")
	assert.True(t, ok)
	assert.Equal(t, "role R4", r.RoleName)
}

func TestItemsIsACopy(t *testing.T) {
	c := NewCollection("roles", func(context.Context) ([]models.Role, error) {
		return roles("R1"), nil
	}, nil)
	_, err := c.Load(context.Background())
	require.NoError(t, err)

	items := c.Items()
	items[0].RoleName = "mutated"
	r, _ := c.Get("R1")
	assert.Equal(t, "role R1", r.RoleName)
}
