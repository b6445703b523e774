package dispatch

import (
	"errors"
	"sync"
	"testing"

	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/netroute"
	"github.com/ortholayer/gridroute/rgraph"
	"github.com/stretchr/testify/require"
)

// resetForTest clears the process-wide singleton state between tests.
// Never exposed outside the package: production callers get exactly one
// InitThreadPool per process, by design.
func resetForTest(t *testing.T) {
	t.Helper()
	initMu.Lock()
	defer initMu.Unlock()
	initialized = false
	defaultPool = nil
	defaultPoolOnce = sync.Once{}
}

func buildFanGraph(t *testing.T, n int) *rgraph.Graph {
	t.Helper()
	anchors := make([]rgraph.Anchor, 0, 2*n+1)
	anchors = append(anchors, rgraph.Anchor{Position: geom.Point{X: 0, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll})
	for i := 0; i < n; i++ {
		x := int32(10 * (i + 1))
		anchors = append(anchors,
			rgraph.Anchor{Position: geom.Point{X: x, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
			rgraph.Anchor{Position: geom.Point{X: x, Y: 5}, Box: rgraph.NoBox, Connect: geom.DirAll},
		)
	}
	g, err := rgraph.NewBuilder().Build(anchors, nil)
	require.NoError(t, err)
	return g
}

func TestConnectNetsRoutesEveryNetConcurrently(t *testing.T) {
	resetForTest(t)
	const n = 40
	g := buildFanGraph(t, n)

	nets := make([]netroute.Net, n)
	for i := 0; i < n; i++ {
		x := int32(10 * (i + 1))
		nets[i] = netroute.Net{Endpoints: []geom.Point{{X: 0, Y: 0}, {X: x, Y: 0}, {X: x, Y: 5}}}
	}

	require.NoError(t, InitThreadPool(8))

	results := make([]netroute.Result, n)
	err := ConnectNets(Default(), g, nets, results)
	require.NoError(t, err)

	for i, res := range results {
		require.NotEmpty(t, res.Wires, "net %d produced no wires", i)
	}
}

func TestConnectNetsReportsLowestFailingNetIndex(t *testing.T) {
	resetForTest(t)
	g := buildFanGraph(t, 3)

	good := netroute.Net{Endpoints: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	bad := netroute.Net{Endpoints: []geom.Point{{X: 0, Y: 0}, {X: 999, Y: 999}}}
	// A later failing net with a different error, so the assertions below
	// tell which failing net's error was returned.
	laterBad := netroute.Net{Endpoints: []geom.Point{{X: 0, Y: 0}}}
	nets := []netroute.Net{good, bad, laterBad, good}

	require.NoError(t, InitThreadPool(4))

	results := make([]netroute.Result, len(nets))
	err := ConnectNets(Default(), g, nets, results)
	require.Error(t, err)
	require.True(t, errors.Is(err, netroute.ErrUnresolvedPosition))
	require.False(t, errors.Is(err, netroute.ErrTooFewEndpoints))
}

func TestInitThreadPoolRejectsSecondCall(t *testing.T) {
	resetForTest(t)
	require.NoError(t, InitThreadPool(2))

	err := InitThreadPool(4)
	require.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestInitThreadPoolRejectsNonPositiveCount(t *testing.T) {
	resetForTest(t)
	err := InitThreadPool(0)
	require.ErrorIs(t, err, ErrInvalidWorkerCount)
}

func TestIsInitializedReflectsInitThreadPoolWithoutTriggeringDefault(t *testing.T) {
	resetForTest(t)
	require.False(t, IsInitialized())

	require.NoError(t, InitThreadPool(3))
	require.True(t, IsInitialized())
	require.Equal(t, 3, Default().WorkerCount())
}

func TestIsInitializedTrueAfterLazyDefault(t *testing.T) {
	resetForTest(t)
	require.False(t, IsInitialized())

	Default()
	require.True(t, IsInitialized())
}
