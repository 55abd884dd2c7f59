package raptor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/* P1: bestTimes[s] <= bestNonTransferTimes[s] for all s, all rounds. */
func TestRoundStateBestTimesNeverExceedsNonTransfer(t *testing.T) {
	r := newRoundState(3, 1<<20, nil)
	r.setDepartureTime(0)

	r.setTimeAtStop(Stop(0), 500, 0, noStop, 100, 400, false, 0, 400, 0)
	require.LessOrEqual(t, r.bestTimes[0], r.bestNonTransferTimes[0])

	r.setTimeAtStop(Stop(0), 460, noIndex, Stop(1), 0, 0, true, noIndex, 0, 60)
	require.LessOrEqual(t, r.bestTimes[0], r.bestNonTransferTimes[0])
	require.Equal(t, Seconds(460), r.bestTimes[0])
	require.Equal(t, Seconds(500), r.bestNonTransferTimes[0])
}

func TestRoundStateSetTimeAtStopRejectsBeyondMaxDuration(t *testing.T) {
	r := newRoundState(1, 600, nil)
	r.setDepartureTime(28800)

	changed := r.setTimeAtStop(Stop(0), 28800+900, 0, noStop, 0, 900, false, 0, 28800, 0)
	require.False(t, changed)
	require.Equal(t, Seconds(Unreached), r.bestTimes[0])
}

func TestRoundStateSetTimeAtStopOnlyImprovesOnStrictlyLowerTimes(t *testing.T) {
	r := newRoundState(1, 1<<20, nil)
	r.setDepartureTime(0)

	require.True(t, r.setTimeAtStop(Stop(0), 500, 0, noStop, 100, 400, false, 0, 400, 0))
	require.False(t, r.setTimeAtStop(Stop(0), 500, 1, noStop, 50, 450, false, 1, 400, 0))
	require.True(t, r.setTimeAtStop(Stop(0), 499, 1, noStop, 50, 449, false, 1, 400, 0))
	require.Equal(t, Seconds(499), r.bestTimes[0])
	require.Equal(t, 1, r.previousPattern[0])
}

/* P2: across rounds k, bestTimes[s] is non-increasing. min() is how a later
   round inherits an earlier (fewer-transfer) round's improvements. */
func TestRoundStateMinKeepsTheBetterArrival(t *testing.T) {
	prev := newRoundState(2, 1<<20, nil)
	prev.setDepartureTime(1000)
	prev.setTimeAtStop(Stop(0), 1500, 0, noStop, 0, 500, false, 0, 1000, 0)

	next := newRoundState(2, 1<<20, prev)
	next.setDepartureTime(1000)
	next.setTimeAtStop(Stop(0), 1600, 1, noStop, 0, 600, false, 1, 1000, 0)

	next.min(prev)

	require.Equal(t, Seconds(1500), next.bestTimes[0])
	require.Equal(t, 0, next.previousPattern[0])
}

func TestRoundStateMinAdjustsWaitCarryByDepartureDelta(t *testing.T) {
	later := newRoundState(1, 1<<20, nil)
	later.setDepartureTime(1060)
	later.setTimeAtStop(Stop(0), 1500, 0, noStop, 40, 400, false, 0, 1060, 0)

	earlier := newRoundState(1, 1<<20, nil)
	earlier.setDepartureTime(1000)

	earlier.min(later)

	require.Equal(t, Seconds(1500), earlier.bestTimes[0])
	require.Equal(t, Seconds(40+60), earlier.nonTransferWaitTime[0])
}

func TestRoundStateCopyIsIndependent(t *testing.T) {
	r := newRoundState(1, 1<<20, nil)
	r.setDepartureTime(0)
	r.setTimeAtStop(Stop(0), 500, 0, noStop, 100, 400, false, 0, 400, 0)

	c := r.copy()
	c.setTimeAtStop(Stop(0), 100, 2, noStop, 0, 100, false, 2, 0, 0)

	require.Equal(t, Seconds(500), r.bestTimes[0])
	require.Equal(t, Seconds(100), c.bestTimes[0])
}
