package escape

import "sync"

// partition splits [0, total) into at most workers contiguous spans of
// near-equal size.
func partition(total, workers int) []span {
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	spans := make([]span, 0, workers)
	size := total / workers
	extra := total % workers

	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + size
		if w < extra {
			hi++
		}
		spans = append(spans, span{lo: lo, hi: hi})
		lo = hi
	}

	return spans
}

// stepParallel steps each span on its own goroutine. Pixels only read their
// own state, so spans never share memory; the WaitGroup is the barrier
// before the iteration counter moves.
func (e *Engine) stepParallel() {
	deltas := make([]Counts, len(e.ranges))

	wg := sync.WaitGroup{}
	wg.Add(len(e.ranges))
	for w, r := range e.ranges {
		w, r := w, r // per-iteration copies; go.mod targets Go 1.21 loop semantics
		go func() {
			deltas[w] = e.stepRange(r.lo, r.hi)
			wg.Done()
		}()
	}
	wg.Wait()

	for _, d := range deltas {
		e.merge(d)
	}
}
