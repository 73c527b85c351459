package testing

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-sif/lazyframe"
	"github.com/go-sif/lazyframe/config"
	"github.com/go-sif/lazyframe/scheduler"
)

// LocalRun computes a Collection on a fresh, silent scheduler with a certain number of workers.
// Panics escaping the computation are returned as errors.
func LocalRun(ctx context.Context, c lazyframe.Collection, numWorkers int) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = anErr
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()

	cfg := config.Default()
	cfg.NumWorkers = numWorkers
	s, err := scheduler.New(cfg, scheduler.WithLogger(zerolog.Nop()))
	if err != nil {
		return nil, err
	}
	return lazyframe.Compute(ctx, c, lazyframe.WithScheduler(s))
}
