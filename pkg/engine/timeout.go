package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chazu/pathdxf/pkg/design"
)

// EvalTimeout is the hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// ErrSuperseded is returned when a newer evaluation started before this
// one finished.
var ErrSuperseded = errors.New("evaluation superseded by newer request")

// evalResult passes evaluation output through a channel.
type evalResult struct {
	paths  []*design.Path
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, but returns a timeout error
// if the evaluation exceeds EvalTimeout. The generation counter discards
// results from evaluations that a newer call has superseded.
//
// On timeout the goroutine may still be running; its result is dropped.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) ([]*design.Path, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, ErrSuperseded
		}
		return res.paths, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
