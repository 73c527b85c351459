package scheduler

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/go-sif/lazyframe/config"
	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/internal/pcache"
	"github.com/go-sif/lazyframe/internal/stats"
	"github.com/go-sif/lazyframe/internal/util"
	"github.com/go-sif/lazyframe/logging"
)

// Scheduler executes task graphs on a bounded pool of goroutines
type Scheduler struct {
	config    *config.Config
	logger    zerolog.Logger
	cache     pcache.ResultCache
	statsLock sync.Mutex
	lastRun   *stats.RunStatistics
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithLogger replaces the logger built from the Scheduler's config
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// New is a factory for Schedulers. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) (*Scheduler, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scheduler{
		config: cfg,
		logger: logging.New(os.Stderr, cfg.Level(), cfg.PrettyLogs),
	}
	if cfg.CacheSize > 0 {
		var fraction float32
		if cfg.CompressCache {
			fraction = 0.5
		}
		cache, err := pcache.NewLRU(&pcache.LRUConfig{Size: cfg.CacheSize, CompressedFraction: fraction})
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the configuration of this Scheduler
func (s *Scheduler) Config() *config.Config {
	return s.config
}

// Stats returns the statistics of the most recent call to Get, or nil
func (s *Scheduler) Stats() *stats.RunStatistics {
	s.statsLock.Lock()
	defer s.statsLock.Unlock()
	return s.lastRun
}

// resolved marks a computed value substituted for a Key, so that it is
// never searched for further tasks
type resolved struct {
	value interface{}
}

type completion struct {
	key      graph.Key
	value    interface{}
	err      error
	duration time.Duration
}

// plan is the part of a graph which must execute to produce a set of keys
type plan struct {
	nodes      map[graph.Key]interface{}
	waiting    map[graph.Key]int
	dependents map[graph.Key][]graph.Key
	results    map[graph.Key]interface{}
}

// newPlan walks g from keys. Tasks whose results are cached are not expanded.
func (s *Scheduler) newPlan(g *graph.Graph, keys []graph.Key, rs *stats.RunStatistics) (*plan, error) {
	p := &plan{
		nodes:      make(map[graph.Key]interface{}),
		waiting:    make(map[graph.Key]int),
		dependents: make(map[graph.Key][]graph.Key),
		results:    make(map[graph.Key]interface{}),
	}
	stack := append([]graph.Key(nil), keys...)
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := p.nodes[k]; seen {
			continue
		}
		if _, done := p.results[k]; done {
			continue
		}
		v, ok := g.Get(k)
		if !ok {
			return nil, errors.MissingKeyError{Key: k.String()}
		}
		if _, isTask := v.(*graph.Task); isTask && s.cache != nil {
			if cached, hit := s.cache.Get(k.String()); hit {
				p.results[k] = cached
				rs.CacheHit()
				continue
			}
		}
		p.nodes[k] = v
		deps := g.Dependencies(k)
		p.waiting[k] = len(deps)
		for _, d := range deps {
			p.dependents[d] = append(p.dependents[d], k)
		}
		stack = append(stack, deps...)
	}
	// dependencies served from the cache are already satisfied
	for k := range p.results {
		for _, d := range p.dependents[k] {
			p.waiting[d]--
		}
	}
	return p, nil
}

// Get computes the values of keys within g, returning them in the same order.
// Independent tasks run concurrently on at most NumWorkers goroutines. The
// first failing task cancels the run and is returned as an errors.TaskError.
func (s *Scheduler) Get(ctx context.Context, g *graph.Graph, keys []graph.Key) ([]interface{}, error) {
	rs := &stats.RunStatistics{}
	s.statsLock.Lock()
	s.lastRun = rs
	s.statsLock.Unlock()

	p, err := s.newPlan(g, keys, rs)
	if err != nil {
		return nil, err
	}
	rs.Start(len(p.nodes))
	defer rs.Finish()
	s.logger.Debug().Int("tasks", len(p.nodes)).Int("cached", len(p.results)).Int("targets", len(keys)).Msg("Starting graph execution")

	ready := make([]graph.Key, 0, len(p.nodes))
	for k, n := range p.waiting {
		if n == 0 {
			ready = append(ready, k)
		}
	}
	graph.SortKeys(ready)

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(s.config.NumWorkers)
	done := make(chan completion, len(p.nodes))
	running := 0
	remaining := len(p.nodes)

coordinate:
	for remaining > 0 {
		for len(ready) > 0 && ectx.Err() == nil {
			k := ready[0]
			ready = ready[1:]
			input := substitute(p.nodes[k], p.results)
			running++
			eg.Go(func() error {
				if err := ectx.Err(); err != nil {
					return err
				}
				start := time.Now()
				value, err := evaluate(input)
				if err != nil {
					err = errors.TaskError{Key: k.String(), Err: err}
				}
				done <- completion{key: k, value: value, err: err, duration: time.Since(start)}
				return err
			})
		}
		if running == 0 {
			break
		}
		select {
		case c := <-done:
			running--
			remaining--
			rs.EndTask(c.duration, c.err != nil)
			if c.err != nil {
				s.logger.Error().Err(c.err).Str("key", c.key.String()).Msg("Task failed")
				break coordinate
			}
			p.results[c.key] = c.value
			if _, isTask := p.nodes[c.key].(*graph.Task); isTask && s.cache != nil {
				s.cache.Add(c.key.String(), c.value)
			}
			for _, d := range p.dependents[c.key] {
				p.waiting[d]--
				if p.waiting[d] == 0 {
					ready = append(ready, d)
				}
			}
		case <-ectx.Done():
			break coordinate
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if remaining > 0 {
		return nil, fmt.Errorf("graph contains a cycle: %d tasks could not be scheduled", remaining)
	}
	s.logger.Debug().Int("tasks", len(p.nodes)).Msg("Finished graph execution")

	res := make([]interface{}, len(keys))
	for i, k := range keys {
		res[i] = p.results[k]
	}
	return res, nil
}

// substitute replaces every Key within a node value by its computed result
func substitute(v interface{}, results map[graph.Key]interface{}) interface{} {
	switch tv := v.(type) {
	case graph.Key:
		return resolved{results[tv]}
	case *graph.Task:
		args := make([]interface{}, len(tv.Args))
		for i, a := range tv.Args {
			args[i] = substitute(a, results)
		}
		return &graph.Task{Fn: tv.Fn, Args: args, Kwargs: tv.Kwargs}
	case []interface{}:
		res := make([]interface{}, len(tv))
		for i, a := range tv {
			res[i] = substitute(a, results)
		}
		return res
	}
	return v
}

// evaluate computes a substituted node value, running inline tasks depth-first
func evaluate(v interface{}) (interface{}, error) {
	switch tv := v.(type) {
	case resolved:
		return tv.value, nil
	case *graph.Task:
		args := make([]interface{}, len(tv.Args))
		for i, a := range tv.Args {
			arg, err := evaluate(a)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return util.SafePartitionFunc(graph.FuncName(tv.Fn), tv.Fn)(args, tv.Kwargs)
	case []interface{}:
		res := make([]interface{}, len(tv))
		for i, a := range tv {
			e, err := evaluate(a)
			if err != nil {
				return nil, err
			}
			res[i] = e
		}
		return res, nil
	}
	return v, nil
}
