package scheduler

import (
	"context"
	goerrors "errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/go-sif/lazyframe/config"
	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func inc(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return args[0].(int) + 1, nil
}

func sum(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	total := 0
	for _, v := range args[0].([]interface{}) {
		total += v.(int)
	}
	return total, nil
}

func fail(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return nil, fmt.Errorf("boom")
}

func explode(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	panic("kaboom")
}

func testScheduler(t *testing.T, mutate func(cfg *config.Config)) *Scheduler {
	cfg := config.Default()
	cfg.NumWorkers = 4
	if mutate != nil {
		mutate(cfg)
	}
	s, err := New(cfg, WithLogger(zerolog.Nop()))
	require.Nil(t, err)
	return s
}

func key(name string, i int) graph.Key {
	return graph.Key{Name: name, Index: i}
}

func TestGetResolvesDependencies(t *testing.T) {
	g := graph.New(map[graph.Key]interface{}{
		key("x", 0):      1,
		key("x", 1):      10,
		key("inc", 0):    graph.NewTask(inc, key("x", 0)),
		key("inc", 1):    graph.NewTask(inc, key("x", 1)),
		key("total", 0):  graph.NewTask(sum, []interface{}{key("inc", 0), key("inc", 1)}),
		key("alias", 0):  key("total", 0),
		key("inline", 0): graph.NewTask(inc, graph.NewTask(inc, key("x", 0))),
	})
	s := testScheduler(t, nil)
	res, err := s.Get(context.Background(), g, []graph.Key{key("alias", 0), key("inc", 1), key("inline", 0)})
	require.Nil(t, err)
	require.Equal(t, []interface{}{13, 11, 3}, res)
	require.Equal(t, 7, s.Stats().GetNumTasks())
}

func TestGetMissingKey(t *testing.T) {
	g := graph.New(map[graph.Key]interface{}{
		key("a", 0): graph.NewTask(inc, key("missing", 0)),
	})
	s := testScheduler(t, nil)
	_, err := s.Get(context.Background(), g, []graph.Key{key("a", 0)})
	var merr errors.MissingKeyError
	require.True(t, goerrors.As(err, &merr))
	require.Equal(t, "('missing', 0)", merr.Key)

	_, err = s.Get(context.Background(), g, []graph.Key{key("b", 0)})
	require.True(t, goerrors.As(err, &merr))
}

func TestGetSurfacesTaskErrors(t *testing.T) {
	nodes := map[graph.Key]interface{}{
		key("bad", 0): graph.NewTask(fail),
	}
	for i := 0; i < 50; i++ {
		nodes[key("x", i)] = i
		nodes[key("inc", i)] = graph.NewTask(inc, key("x", i))
	}
	g := graph.New(nodes)
	s := testScheduler(t, nil)
	keys := []graph.Key{key("bad", 0)}
	for i := 0; i < 50; i++ {
		keys = append(keys, key("inc", i))
	}
	_, err := s.Get(context.Background(), g, keys)
	var terr errors.TaskError
	require.True(t, goerrors.As(err, &terr))
	require.Equal(t, "('bad', 0)", terr.Key)
	require.EqualError(t, terr.Err, "boom")
}

func TestGetRecoversPanics(t *testing.T) {
	g := graph.New(map[graph.Key]interface{}{
		key("bad", 0): graph.NewTask(explode),
	})
	s := testScheduler(t, nil)
	_, err := s.Get(context.Background(), g, []graph.Key{key("bad", 0)})
	var terr errors.TaskError
	require.True(t, goerrors.As(err, &terr))
	require.Contains(t, terr.Err.Error(), "kaboom")
}

func TestGetDetectsCycles(t *testing.T) {
	g := graph.New(map[graph.Key]interface{}{
		key("a", 0): graph.NewTask(inc, key("b", 0)),
		key("b", 0): graph.NewTask(inc, key("a", 0)),
	})
	s := testScheduler(t, nil)
	_, err := s.Get(context.Background(), g, []graph.Key{key("a", 0)})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "cycle")
}

func TestGetHonoursCancellation(t *testing.T) {
	g := graph.New(map[graph.Key]interface{}{
		key("x", 0): 1,
		key("a", 0): graph.NewTask(inc, key("x", 0)),
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := testScheduler(t, nil)
	_, err := s.Get(ctx, g, []graph.Key{key("a", 0)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGetLimitsConcurrency(t *testing.T) {
	var running, peak int64
	track := func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		n := atomic.AddInt64(&running, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		atomic.AddInt64(&running, -1)
		return nil, nil
	}
	nodes := map[graph.Key]interface{}{}
	keys := []graph.Key{}
	for i := 0; i < 100; i++ {
		nodes[key("t", i)] = graph.NewTask(track)
		keys = append(keys, key("t", i))
	}
	s := testScheduler(t, func(cfg *config.Config) { cfg.NumWorkers = 2 })
	_, err := s.Get(context.Background(), graph.New(nodes), keys)
	require.Nil(t, err)
	require.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestGetServesCachedResults(t *testing.T) {
	var calls int64
	counted := func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		atomic.AddInt64(&calls, 1)
		return args[0].(int) * 2, nil
	}
	g := graph.New(map[graph.Key]interface{}{
		key("x", 0):      21,
		key("double", 0): graph.NewTask(counted, key("x", 0)),
		key("inc", 0):    graph.NewTask(inc, key("double", 0)),
	})
	s := testScheduler(t, func(cfg *config.Config) { cfg.CacheSize = 10 })
	for i := 0; i < 3; i++ {
		res, err := s.Get(context.Background(), g, []graph.Key{key("inc", 0)})
		require.Nil(t, err)
		require.Equal(t, []interface{}{43}, res)
	}
	require.Equal(t, int64(1), atomic.LoadInt64(&calls))
	require.Equal(t, int64(1), s.Stats().GetNumCacheHits())
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.NumWorkers = 0
	_, err := New(cfg)
	require.NotNil(t, err)
}
