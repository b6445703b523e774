package dispatch

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ortholayer/gridroute/netroute"
	"github.com/ortholayer/gridroute/rgraph"
)

// stickyErr tracks the error from the lowest-index net that failed,
// independent of which worker goroutine finishes first. errgroup.Group's
// own Wait() returns whichever error arrived first in wall-clock time,
// which is nondeterministic under concurrency; connecting the same batch
// of nets twice must fail the same way both times.
type stickyErr struct {
	mu  sync.Mutex
	idx int
	err error
}

func newStickyErr() *stickyErr {
	return &stickyErr{idx: -1}
}

func (s *stickyErr) record(idx int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil || idx < s.idx {
		s.idx = idx
		s.err = err
	}
}

func (s *stickyErr) get() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ConnectNets routes every net in nets against g, fanned out across p's
// fixed worker capacity. Net i is partitioned to worker i%p.WorkerCount(),
// so which worker a given net lands on is a pure function of its index,
// not of runtime scheduling. Each worker owns its own netroute.Router
// (and therefore its own astar.Pathfinder scratch state) over the shared,
// read-only g, so no two goroutines ever touch the same Router.
//
// Results are written into results, which must already be sized
// len(nets); ConnectNets never appends to it, only writes results[i] for
// each net's own index, so the slots workers write to are always
// disjoint and no locking is needed around results itself.
//
// If one or more nets fail to route, ConnectNets returns the error from
// the lowest-index failing net, regardless of which worker reached it
// first.
func ConnectNets(p *Pool, g *rgraph.Graph, nets []netroute.Net, results []netroute.Result, opts ...netroute.RouteOption) error {
	if len(results) != len(nets) {
		panic("dispatch: results must be pre-sized to len(nets)")
	}
	if len(nets) == 0 {
		return nil
	}

	workers := p.WorkerCount()
	if workers > len(nets) {
		workers = len(nets)
	}

	routers := make([]*netroute.Router, workers)
	for w := range routers {
		routers[w] = netroute.NewRouter(g, opts...)
	}

	sticky := newStickyErr()
	var eg errgroup.Group
	eg.SetLimit(workers)

	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			router := routers[w]
			for i := w; i < len(nets); i += workers {
				res, err := router.RouteNet(nets[i])
				if err != nil {
					sticky.record(i, err)
					continue
				}
				results[i] = res
			}
			return nil
		})
	}

	_ = eg.Wait()
	return sticky.get()
}
