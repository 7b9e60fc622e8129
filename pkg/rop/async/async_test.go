package async

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/future"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func slow[T any](ctx context.Context, d time.Duration, r rop.Result[T]) Future[T] {
	return Go(ctx, func(ctx context.Context) rop.Result[T] {
		time.Sleep(d)
		return r
	})
}

func TestBind_LeftAsync(t *testing.T) {
	ctx := context.Background()
	out := Bind(ctx, slow(ctx, 5*time.Millisecond, rop.Success(2)),
		func(ctx context.Context, v int) rop.Result[string] { return rop.Success(strconv.Itoa(v * 2)) })
	assert.Equal(t, "4", Await(ctx, out).Value())
}

func TestBind_FailedInputSkipsFunction(t *testing.T) {
	ctx := context.Background()
	e := rop.NewError("upstream")
	var called atomic.Bool
	out := Bind(ctx, From(rop.Fail[int](e)), func(ctx context.Context, v int) rop.Result[int] {
		called.Store(true)
		return rop.Success(v)
	})
	r := Await(ctx, out)
	assert.False(t, called.Load())
	assert.Equal(t, []*rop.Error{e}, r.Errors())
}

func TestBindAsync_RightAsync(t *testing.T) {
	ctx := context.Background()
	info := rop.NewInfo("first")
	out := BindAsync(ctx, rop.Success(3).WithReason(info), func(ctx context.Context, v int) Future[int] {
		return slow(ctx, time.Millisecond, rop.FailMsg[int]("second"))
	})
	r := Await(ctx, out)
	require.True(t, r.IsFailed())
	assert.Equal(t, info, r.Reasons()[0])
	assert.Equal(t, "second", r.Errors()[0].Message())
}

func TestBindFull_MatchesSyncSemantics(t *testing.T) {
	ctx := context.Background()
	f := func(ctx context.Context, v int) rop.Result[int] { return rop.Success(v + 1).WithSuccess("inc") }
	fAsync := func(ctx context.Context, v int) Future[int] { return Go(ctx, func(ctx context.Context) rop.Result[int] { return f(ctx, v) }) }

	in := rop.Success(1).WithSuccess("start")
	sync := solo.Bind(ctx, in, f)
	full := Await(ctx, BindFull(ctx, From(in), fAsync))
	assert.Equal(t, sync.Value(), full.Value())
	assert.Len(t, full.Reasons(), len(sync.Reasons()))
}

func TestBindTryFull_AbsorbsPanicOfInnerFuture(t *testing.T) {
	ctx := context.Background()
	out := BindTryFull(ctx, From(rop.Success(1)), func(ctx context.Context, v int) Future[int] {
		return Go(ctx, func(ctx context.Context) rop.Result[int] { panic("inner") })
	})
	r := Await(ctx, out)
	require.True(t, r.IsFailed())
	assert.Equal(t, "inner", r.Errors()[0].Message())
}

func TestBind_PanicPropagatesToAwait(t *testing.T) {
	ctx := context.Background()
	out := Bind(ctx, From(rop.Success(1)), func(ctx context.Context, v int) rop.Result[int] { panic("bad") })
	assert.PanicsWithValue(t, "bad", func() { Await(ctx, out) })
}

func TestMapVariants(t *testing.T) {
	ctx := context.Background()
	in := rop.Success(2).WithSuccess("kept")

	left := Await(ctx, Map(ctx, From(in), func(ctx context.Context, v int) int { return v * 10 }))
	assert.Equal(t, 20, left.Value())
	assert.Equal(t, in.Reasons(), left.Reasons())

	right := Await(ctx, MapAsync(ctx, in, func(ctx context.Context, v int) future.Future[string] {
		return future.Immediate(strconv.Itoa(v))
	}))
	assert.Equal(t, "2", right.Value())
	assert.Equal(t, in.Reasons(), right.Reasons())
}

func TestMapTry_ThrowingMapperDoesNotEscape(t *testing.T) {
	ctx := context.Background()
	out := MapTry(ctx, From(rop.Success(1)), func(ctx context.Context, v int) (int, error) {
		return 0, errors.New("boom")
	})
	r := Await(ctx, out)
	require.True(t, r.IsFailed())
	errs := r.Errors()
	assert.Contains(t, errs[len(errs)-1].Message(), "boom")
}

func TestTapFamily(t *testing.T) {
	ctx := context.Background()
	var tapped, tappedAsync, failures atomic.Int32

	r := Await(ctx, TapAsync(ctx, Tap(ctx, From(rop.Success(1)), func(ctx context.Context, v int) {
		tapped.Add(1)
	}), func(ctx context.Context, v int) future.Future[rop.Unit] {
		return future.Spawn(func() rop.Unit {
			tappedAsync.Add(1)
			return rop.Unit{}
		})
	}))
	assert.True(t, r.IsSuccess())

	f := Await(ctx, TapError(ctx, From(rop.FailMsg[int]("x")), func(ctx context.Context, errs []*rop.Error) {
		failures.Add(int32(len(errs)))
	}))
	assert.True(t, f.IsFailed())

	tt := Await(ctx, TapTry(ctx, From(rop.Success(1)), func(ctx context.Context, v int) error { return errors.New("sink") }))
	assert.Equal(t, "sink", tt.Errors()[0].Message())

	assert.EqualValues(t, 1, tapped.Load())
	assert.EqualValues(t, 1, tappedAsync.Load())
	assert.EqualValues(t, 1, failures.Load())
}

func TestEnsureFamily(t *testing.T) {
	ctx := context.Background()
	err := rop.NewError("guard")

	assert.True(t, Await(ctx, Ensure(ctx, From(rop.Success(1)), true, err)).IsSuccess())
	assert.Equal(t, []*rop.Error{err}, Await(ctx, Ensure(ctx, From(rop.Success(1)), false, err)).Errors())
	assert.True(t, Await(ctx, EnsureIf(ctx, From(rop.Success(1)), false, false, err)).IsSuccess())

	positive := func(ctx context.Context, v int) bool { return v > 0 }
	assert.True(t, Await(ctx, EnsureFunc(ctx, From(rop.Success(-1)), positive, err)).IsFailed())

	remote := func(ctx context.Context, v int) future.Future[bool] { return future.Immediate(v%2 == 0) }
	assert.True(t, Await(ctx, EnsureAsync(ctx, From(rop.Success(2)), remote, err)).IsSuccess())
	assert.True(t, Await(ctx, EnsureAsync(ctx, From(rop.Success(3)), remote, err)).IsFailed())
}

func TestCheckFull(t *testing.T) {
	ctx := context.Background()
	in := rop.Success("alice")
	ok := Await(ctx, CheckFull(ctx, From(in), func(ctx context.Context, s string) Future[int] {
		return From(rop.Success(len(s)))
	}))
	assert.Equal(t, in, ok)

	failed := Await(ctx, Check(ctx, From(in), func(ctx context.Context, s string) rop.Empty {
		return rop.FailMsg[rop.Unit]("taken")
	}))
	assert.Equal(t, "taken", failed.Errors()[0].Message())
}

func TestMatchAndFinally(t *testing.T) {
	ctx := context.Background()
	onSuccess := func(ctx context.Context, v int) string { return "ok" }
	onFailure := func(ctx context.Context, errs []*rop.Error) string { return "fail:" + errs[0].Message() }

	assert.Equal(t, "ok", Match(ctx, From(rop.Success(1)), onSuccess, onFailure).Await())
	assert.Equal(t, "fail:x", Match(ctx, From(rop.FailMsg[int]("x")), onSuccess, onFailure).Await())

	n := Finally(ctx, From(rop.FailMsg[int]("x")), func(ctx context.Context, r rop.Result[int]) int {
		return len(r.Errors())
	}).Await()
	assert.Equal(t, 1, n)
}

func TestThen_LiftsAnySoloOperation(t *testing.T) {
	ctx := context.Background()
	out := Then(ctx, From(rop.Success(4)), func(ctx context.Context, r rop.Result[int]) rop.Result[int] {
		return solo.MapIfFunc(ctx, r, func(ctx context.Context, v int) bool { return v%2 == 0 },
			func(ctx context.Context, v int) int { return v / 2 })
	})
	assert.Equal(t, 2, Await(ctx, out).Value())
}

func TestAwait_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, never := future.Create[rop.Result[int]]()

	out := Map(ctx, never, func(ctx context.Context, v int) int { return v })
	cancel()

	r := Await(context.Background(), out)
	require.True(t, r.IsFailed())
	assert.True(t, r.IsCanceled())
	assert.True(t, r.HasErrorIs(context.Canceled))
}

func TestCombine_KeepsInputOrder(t *testing.T) {
	ctx := context.Background()
	out := Combine(ctx,
		slow(ctx, 20*time.Millisecond, rop.Success(1)),
		slow(ctx, 1*time.Millisecond, rop.Success(2)),
		slow(ctx, 10*time.Millisecond, rop.Success(3)),
	)
	r := Await(ctx, out)
	require.True(t, r.IsSuccess())
	assert.Equal(t, []int{1, 2, 3}, r.Value())
}

func TestCombine_WaitsConcurrently(t *testing.T) {
	ctx := context.Background()
	start := time.Now()
	inputs := make([]Future[int], 5)
	for i := range inputs {
		inputs[i] = slow(ctx, 50*time.Millisecond, rop.Success(i))
	}
	r := Await(ctx, Combine(ctx, inputs...))
	require.True(t, r.IsSuccess())
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestCombine_ErrorsInInputOrder(t *testing.T) {
	ctx := context.Background()
	e1, e2 := rop.NewError("first"), rop.NewError("second")
	r := Await(ctx, Combine(ctx,
		slow(ctx, 10*time.Millisecond, rop.Fail[int](e1)),
		From(rop.Success(5)),
		slow(ctx, 1*time.Millisecond, rop.Fail[int](e2)),
	))
	require.True(t, r.IsFailed())
	assert.Equal(t, []*rop.Error{e1, e2}, r.Errors())
}

func TestCombine_Empty(t *testing.T) {
	ctx := context.Background()
	r := Await(ctx, Combine[int](ctx))
	require.True(t, r.IsSuccess())
	assert.Empty(t, r.Value())
}

func TestCombine_PanicOfInputIsRaised(t *testing.T) {
	ctx := context.Background()
	out := Combine(ctx, From(rop.Success(1)), Go(ctx, func(ctx context.Context) rop.Result[int] { panic("input") }))
	assert.PanicsWithValue(t, "input", func() { Await(ctx, out) })
}

func TestTapAsyncAndEnsureAsync_CanceledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, neverDone := future.Create[rop.Unit]()
	_, neverAnswered := future.Create[bool]()

	tapped := TapAsync(ctx, From(rop.Success(1)), func(ctx context.Context, v int) future.Future[rop.Unit] {
		return neverDone
	})
	ensured := EnsureAsync(ctx, From(rop.Success(1)), func(ctx context.Context, v int) future.Future[bool] {
		return neverAnswered
	}, rop.NewError("guard"))
	cancel()

	wait, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	for _, out := range []Future[int]{tapped, ensured} {
		r, err := out.AwaitContext(wait)
		require.NoError(t, err, "output must resolve once ctx is done")
		require.True(t, r.IsFailed())
		assert.True(t, r.IsCanceled())
		assert.True(t, r.HasErrorIs(context.Canceled))
	}
}
