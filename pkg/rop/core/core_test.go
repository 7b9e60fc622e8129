package core

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ib-77/fluentrop/pkg/rop"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 3, GetWorkerMaxCount(ctx, 3))
	assert.Equal(t, 8, GetWorkerMaxCount(WithWorkerOptions(ctx, 8), 3))
	assert.Equal(t, 3, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 3))

	assert.True(t, IsDrainEnabled(ctx, true))
	assert.False(t, IsDrainEnabled(WithDrainOptions(ctx, false), true))
}

func TestEmit_KeepsOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert.Equal(t, []int{3, 1, 2}, Collect(Emit(ctx, 3, 1, 2)))
}

func TestEmitResults_WrapsValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var sent atomic.Int32
	out := Collect(EmitResultsWithHandlers(ctx, EmitHandlers[string]{
		OnSent: func(ctx context.Context, v string) { sent.Add(1) },
	}, "a", "b"))

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Value())
	assert.Equal(t, "b", out[1].Value())
	assert.EqualValues(t, 2, sent.Load())
}

func TestEmit_CanceledBeforeStart(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var notSent []int
	out := Collect(EmitResultsWithHandlers(ctx, EmitHandlers[int]{
		OnStartFail: func(ctx context.Context, values []int) { notSent = values },
	}, 1, 2))
	assert.Empty(t, out)
	assert.Equal(t, []int{1, 2}, notSent)
}

func TestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert.Equal(t, 1, First(ctx, Emit(ctx, 1, 2, 3), -1))
	assert.Equal(t, -1, First(ctx, Emit[int](ctx), -1))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	blocked := make(chan int)
	assert.Equal(t, -1, First(canceled, blocked, -1))
	close(blocked)
}

func TestStart_RunsStageOnEveryItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var sent atomic.Int32

	out := Start(ctx, EmitResults(ctx, 1, 2, 3, 4),
		func(ctx context.Context, in rop.Result[int]) rop.Result[int] { return rop.Success(in.Value() * 2) },
		CancellationHandlers[int, int]{},
		func(ctx context.Context, out rop.Result[int]) { sent.Add(1) },
		3)

	var values []int
	for r := range out {
		values = append(values, r.Value())
	}
	assert.ElementsMatch(t, []int{2, 4, 6, 8}, values)
	assert.EqualValues(t, 4, sent.Load())
}

func TestStart_DrainsOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan rop.Result[int], 5)
	for i := range 5 {
		in <- rop.Success(i)
	}
	close(in)

	out := Collect(Start(ctx, in, func(ctx context.Context, r rop.Result[int]) rop.Result[int] {
		if r.Value() == 0 {
			cancel()
		}
		return r
	}, DrainHandlers[int, int](), nil, 1))

	require.Len(t, out, 5)
	canceled := 0
	for _, r := range out {
		if r.IsCanceled() {
			canceled++
		}
	}
	assert.Equal(t, 4, canceled)
}

func TestCancelResult(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancelCause(context.Background())
	stop := errors.New("shutdown")
	cancel(stop)

	info := rop.NewInfo("seen")
	r := CancelResult[int, string](ctx, rop.Success(1).WithReason(info))
	require.True(t, r.IsCanceled())
	assert.True(t, r.HasErrorIs(stop))
	assert.Equal(t, info, r.Reasons()[0])

	again := CancelResult[string, string](ctx, r)
	assert.Len(t, again.Errors(), 1)
}
