package future

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestImmediate_IsFulfilled(t *testing.T) {
	f := Immediate(42)
	select {
	case <-f.Done():
	default:
		t.Fatal("immediate future must be done")
	}
	assert.Equal(t, 42, f.Await())
}

func TestCreate_FulfillFromGoroutine(t *testing.T) {
	p, f := Create[string]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Fulfill("done")
	}()
	assert.Equal(t, "done", f.Await())
}

func TestAwait_ManyConsumers(t *testing.T) {
	p, f := Create[int]()
	var wg sync.WaitGroup
	got := make([]int, 5)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = f.Await()
		}()
	}
	p.Fulfill(7)
	wg.Wait()
	assert.Equal(t, []int{7, 7, 7, 7, 7}, got)
}

func TestFulfill_TwicePanics(t *testing.T) {
	p, _ := Create[int]()
	p.Fulfill(1)
	assert.PanicsWithValue(t, ErrAlreadyFulfilled, func() { p.Fulfill(2) })
}

func TestForward_OnFulfilledPromisePanicsInCaller(t *testing.T) {
	p, f := Create[int]()
	p.Fulfill(1)
	assert.PanicsWithValue(t, ErrAlreadyFulfilled, func() { p.Forward(Immediate(2)) })
	assert.Equal(t, 1, f.Await())
}

func TestSpawn_PanicIsRaisedOnAwait(t *testing.T) {
	f := Spawn(func() int { panic("producer failed") })
	assert.PanicsWithValue(t, "producer failed", func() { f.Await() })
	assert.PanicsWithValue(t, "producer failed", func() { _, _ = f.AwaitContext(context.Background()) })
}

func TestAwaitContext_Canceled(t *testing.T) {
	p, f := Create[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.AwaitContext(ctx)
	require.ErrorIs(t, err, context.Canceled)

	p.Fulfill(3)
	v, err := f.AwaitContext(ctx)
	require.NoError(t, err, "a fulfilled future wins over a done context")
	assert.Equal(t, 3, v)
}

func TestForward(t *testing.T) {
	p, f := Create[int]()
	p.Forward(Immediate(9))
	assert.Equal(t, 9, f.Await())
}

func TestThen(t *testing.T) {
	f := Then(Immediate(2), func(v int) string { return string(rune('a' + v)) })
	assert.Equal(t, "c", f.Await())

	boom := Then(Immediate(1), func(v int) int { panic("transform") })
	assert.PanicsWithValue(t, "transform", func() { boom.Await() })
}
