package windowkit_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/dataiter/windowkit/pkg/windowkit"
	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func collect[T any](t testing.TB, itr iterkit.PullIter[T]) []T {
	t.Helper()
	vs, err := iterkit.CollectPullIter(itr)
	assert.NoError(t, err)
	return vs
}

func TestNew(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		source = testcase.Let(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntB(0, 42), func() int { return t.Random.Int() })
		})
		policy = testcase.LetValue(s, windowkit.FixedBatch)
		size   = testcase.Let(s, func(t *testcase.T) int { return t.Random.IntB(1, 7) })
	)
	act := func(t *testcase.T) (*windowkit.Windower[int], error) {
		return windowkit.New(source.Get(t), policy.Get(t), size.Get(t))
	}

	s.Then("it returns a windower bound to the configuration", func(t *testcase.T) {
		w, err := act(t)
		assert.Must(t).NoError(err)
		assert.Must(t).Equal(policy.Get(t), w.Policy())
		assert.Must(t).Equal(size.Get(t), w.Size())
		assert.Must(t).Equal(0, w.Cursor())
		assert.Must(t).False(w.Exhausted())
	})

	s.When("size is zero", func(s *testcase.Spec) {
		size.LetValue(s, 0)

		s.Then("configuration error is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.Must(t).True(errors.Is(err, windowkit.ErrConfiguration))
		})
	})

	s.When("size is negative", func(s *testcase.Spec) {
		size.Let(s, func(t *testcase.T) int { return t.Random.IntB(1, 7) * -1 })

		s.Then("configuration error is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.Must(t).True(errors.Is(err, windowkit.ErrConfiguration))
		})

		s.And("the policy is sliding window", func(s *testcase.Spec) {
			policy.LetValue(s, windowkit.SlidingWindow)

			s.Then("configuration error is returned", func(t *testcase.T) {
				_, err := act(t)
				assert.Must(t).True(errors.Is(err, windowkit.ErrConfiguration))
			})
		})
	})

	s.When("policy is unknown", func(s *testcase.Spec) {
		policy.LetValue(s, windowkit.Policy(42))

		s.Then("configuration error is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.Must(t).True(errors.Is(err, windowkit.ErrConfiguration))
		})
	})
}

func TestBatch(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		source = testcase.Let(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntB(1, 200), func() int { return t.Random.Int() })
		})
		size = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, len(source.Get(t)))
		})
	)
	subject := testcase.Let(s, func(t *testcase.T) *windowkit.Windower[int] {
		w, err := windowkit.Batch(source.Get(t), size.Get(t))
		assert.Must(t).NoError(err)
		return w
	})

	s.Then("number of batches equals ceil(length / size)", func(t *testcase.T) {
		batches := collect[[]int](t, subject.Get(t))
		assert.Must(t).Equal(windowkit.BatchCount(len(source.Get(t)), size.Get(t)), len(batches))
	})

	s.Then("every batch except the last has the configured size", func(t *testcase.T) {
		batches := collect[[]int](t, subject.Get(t))
		assert.Must(t).NotEmpty(batches)
		for _, batch := range batches[:len(batches)-1] {
			assert.Must(t).Equal(size.Get(t), len(batch))
		}
		last := batches[len(batches)-1]
		assert.Must(t).True(0 < len(last) && len(last) <= size.Get(t))
	})

	s.Then("concatenated batches reproduce the source in order", func(t *testcase.T) {
		var got []int
		for _, batch := range collect[[]int](t, subject.Get(t)) {
			got = append(got, batch...)
		}
		assert.Must(t).Equal(source.Get(t), got)
	})

	s.Then("Value is repeatable without side effects", func(t *testcase.T) {
		w := subject.Get(t)
		for w.Next() {
			assert.Must(t).Equal(w.Value(), w.Value())
		}
	})

	s.Then("appending to a batch doesn't write into the source", func(t *testcase.T) {
		og := slices.Clone(source.Get(t))
		w := subject.Get(t)
		for w.Next() {
			_ = append(w.Value(), t.Random.Int())
		}
		assert.Must(t).Equal(og, source.Get(t))
	})

	s.When("size is larger than the source", func(s *testcase.Spec) {
		size.Let(s, func(t *testcase.T) int { return len(source.Get(t)) + t.Random.IntB(1, 10) })

		s.Then("a single short batch holds the whole source", func(t *testcase.T) {
			batches := collect[[]int](t, subject.Get(t))
			assert.Must(t).Equal([][]int{source.Get(t)}, batches)
		})
	})

	s.When("source is empty", func(s *testcase.Spec) {
		source.Let(s, func(t *testcase.T) []int { return []int{} })
		size.Let(s, func(t *testcase.T) int { return t.Random.IntB(1, 10) })

		s.Then("no batch is produced", func(t *testcase.T) {
			w := subject.Get(t)
			assert.Must(t).False(w.Next())
			assert.Must(t).True(w.Exhausted())
		})
	})

	s.Describe("exhaustion", func(s *testcase.Spec) {
		s.Then("once exhausted, Next keeps reporting exhaustion", func(t *testcase.T) {
			w := subject.Get(t)
			for w.Next() {
			}
			for i := 0; i < 3; i++ {
				assert.Must(t).False(w.Next())
			}
			assert.Must(t).True(w.Value() == nil)
			assert.Must(t).Equal(len(source.Get(t)), w.Cursor())
		})

		s.Then("Close ends the iteration early", func(t *testcase.T) {
			w := subject.Get(t)
			assert.Must(t).True(w.Next())
			assert.Must(t).NoError(w.Close())
			assert.Must(t).False(w.Next())
			assert.Must(t).True(w.Exhausted())
		})
	})
}

func TestBatch_example(t *testing.T) {
	source := slices.Collect(iterkit.IntRange(1, 20))
	w, err := windowkit.Batch(source, 4)
	assert.NoError(t, err)

	batches := collect[[]int](t, w)
	assert.Equal(t, 5, len(batches))
	for _, batch := range batches {
		assert.Equal(t, 4, len(batch))
	}
	assert.Equal(t, []int{5, 6, 7, 8}, batches[1])

	empty, err := windowkit.Batch([]int{}, 4)
	assert.NoError(t, err)
	assert.Empty(t, collect[[]int](t, empty))
}

func TestSliding(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		source = testcase.Let(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntB(1, 200), func() int { return t.Random.Int() })
		})
		size = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, len(source.Get(t)))
		})
	)
	subject := testcase.Let(s, func(t *testcase.T) *windowkit.Windower[int] {
		w, err := windowkit.Sliding(source.Get(t), size.Get(t))
		assert.Must(t).NoError(err)
		return w
	})

	s.Then("number of windows equals length - size + 1", func(t *testcase.T) {
		windows := collect[[]int](t, subject.Get(t))
		assert.Must(t).Equal(len(source.Get(t))-size.Get(t)+1, len(windows))
		assert.Must(t).Equal(windowkit.WindowCount(len(source.Get(t)), size.Get(t)), len(windows))
	})

	s.Then("window i equals source[i:i+size]", func(t *testcase.T) {
		for i, window := range collect[[]int](t, subject.Get(t)) {
			assert.Must(t).Equal(source.Get(t)[i:i+size.Get(t)], window)
		}
	})

	s.Then("cursor advances one position per window", func(t *testcase.T) {
		w := subject.Get(t)
		var prev int
		for w.Next() {
			assert.Must(t).Equal(prev+1, w.Cursor())
			prev = w.Cursor()
		}
	})

	s.When("size is larger than the source", func(s *testcase.Spec) {
		size.Let(s, func(t *testcase.T) int { return len(source.Get(t)) + t.Random.IntB(1, 10) })

		s.Then("no window is produced", func(t *testcase.T) {
			assert.Must(t).Empty(collect[[]int](t, subject.Get(t)))
		})
	})

	s.When("size equals the source length", func(s *testcase.Spec) {
		size.Let(s, func(t *testcase.T) int { return len(source.Get(t)) })

		s.Then("exactly one window covers the whole source", func(t *testcase.T) {
			assert.Must(t).Equal([][]int{source.Get(t)}, collect[[]int](t, subject.Get(t)))
		})
	})

	s.Test("exhaustion is final", func(t *testcase.T) {
		w := subject.Get(t)
		for w.Next() {
		}
		assert.Must(t).True(w.Exhausted())
		assert.Must(t).False(w.Next())
		assert.Must(t).False(w.Next())
	})
}

func TestSliding_example(t *testing.T) {
	prices := []int{100, 102, 98, 105, 107, 103, 99, 101, 104, 106}
	w, err := windowkit.Sliding(prices, 3)
	assert.NoError(t, err)

	windows := collect[[]int](t, w)
	assert.Equal(t, 8, len(windows))
	assert.Equal(t, []int{100, 102, 98}, windows[0])
	assert.Equal(t, []int{102, 98, 105}, windows[1])

	short, err := windowkit.Sliding([]int{1, 2}, 5)
	assert.NoError(t, err)
	assert.Empty(t, collect[[]int](t, short))
}

func TestNew_idempotentConstruction(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	source := random.Slice(rnd.IntB(0, 100), func() int { return rnd.Int() })
	size := rnd.IntB(1, 10)

	for _, policy := range []windowkit.Policy{windowkit.FixedBatch, windowkit.SlidingWindow} {
		w1, err := windowkit.New(source, policy, size)
		assert.NoError(t, err)
		w2, err := windowkit.New(source, policy, size)
		assert.NoError(t, err)
		assert.Equal(t, collect[[]int](t, w1), collect[[]int](t, w2))
	}
}

func TestWindower_Seq(t *testing.T) {
	w, err := windowkit.Batch([]string{"a", "b", "c", "d", "e"}, 2)
	assert.NoError(t, err)

	var got [][]string
	for batch := range w.Seq() {
		got = append(got, batch)
		break
	}
	for batch := range w.Seq() {
		got = append(got, batch)
	}
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, got)
	assert.Empty(t, slices.Collect(w.Seq()))
}

func TestBatchCount(t *testing.T) {
	assert.Equal(t, 5, windowkit.BatchCount(20, 4))
	assert.Equal(t, 6, windowkit.BatchCount(21, 4))
	assert.Equal(t, 0, windowkit.BatchCount(0, 4))
	assert.Equal(t, 0, windowkit.BatchCount(10, 0))
	assert.Equal(t, 1, windowkit.BatchCount(10, math.MaxInt))
	assert.Equal(t, 2, windowkit.BatchCount(math.MaxInt, math.MaxInt-1))

	w, err := windowkit.Batch([]int{1, 2, 3}, math.MaxInt)
	assert.NoError(t, err)
	assert.Equal(t, windowkit.BatchCount(3, math.MaxInt), len(collect[[]int](t, w)))
}

func TestWindowCount(t *testing.T) {
	assert.Equal(t, 8, windowkit.WindowCount(10, 3))
	assert.Equal(t, 0, windowkit.WindowCount(2, 5))
	assert.Equal(t, 1, windowkit.WindowCount(5, 5))
	assert.Equal(t, 0, windowkit.WindowCount(5, -1))
}

func BenchmarkSliding(b *testing.B) {
	rnd := random.New(random.CryptoSeed{})
	values := random.Slice(1024, func() int { return rnd.IntN(1000) })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w, err := windowkit.Sliding(values, 16)
		if err != nil {
			b.Fatal(err)
		}
		for w.Next() {
			//
		}
	}
}
