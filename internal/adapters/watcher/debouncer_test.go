package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lesstag/internal/adapters/watcher"
)

type batches struct {
	mu  sync.Mutex
	got [][]string
}

func (b *batches) add(paths []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, paths)
}

func (b *batches) all() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.got
}

func TestDebouncer_Add_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/static/css/theme.less")
		d.Add("/static/css/base.less")
		d.Add("/static/css/theme.less")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []string{"/static/css/base.less", "/static/css/theme.less"}, b.all()[0])
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/a.less")
		time.Sleep(50 * time.Millisecond)
		d.Add("/b.less")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, b.all())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Len(t, b.all(), 1)
		assert.Len(t, b.all()[0], 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.add)

		d.Add("/a.less")
		d.Flush()
		require.Len(t, b.all(), 1)

		// The stopped timer must not deliver the batch again.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, b.all(), 1)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	var b batches
	d := watcher.NewDebouncer(100*time.Millisecond, b.add)

	d.Flush()

	assert.Empty(t, b.all())
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(50*time.Millisecond, b.add)

		d.Add("/a.less")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Len(t, b.all(), 1)

		d.Flush()
		assert.Len(t, b.all(), 1)
	})
}

func TestDebouncer_Flush_WaitsForFiredBatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			time.Sleep(time.Second)
			b.add(paths)
		})

		d.Add("/a.less")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, b.all())

		d.Flush()
		require.Len(t, b.all(), 1)
		assert.Equal(t, []string{"/a.less"}, b.all()[0])
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/a.less")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
