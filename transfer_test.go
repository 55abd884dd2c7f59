package raptor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunTransferRelaxationWalksUnderMaxWalkTime(t *testing.T) {
	transfers := map[Stop][]Transfer{
		0: {{TargetStop: 1, DistanceMillimeters: 300 * 1000}},
	}
	network := NewStaticNetwork(2, nil, transfers, nil)

	r := newRoundState(2, 1<<20, nil)
	r.setDepartureTime(0)
	r.setInitialTime(Stop(0), 1000)

	RunTransferRelaxation(network, r, 1.5, 10)

	require.Equal(t, Seconds(1000+200), r.bestTimes[1])
	require.Equal(t, Stop(0), r.transferStop[1])
	require.Equal(t, Seconds(200), r.transferTime[1])
	require.Equal(t, Seconds(1000), r.bestNonTransferTimes[1])
}

func TestRunTransferRelaxationRejectsWalkBeyondMaxWalkTime(t *testing.T) {
	transfers := map[Stop][]Transfer{
		0: {{TargetStop: 1, DistanceMillimeters: 2000 * 1000}},
	}
	network := NewStaticNetwork(2, nil, transfers, nil)

	r := newRoundState(2, 1<<20, nil)
	r.setDepartureTime(0)
	r.setInitialTime(Stop(0), 1000)

	RunTransferRelaxation(network, r, 1.0, 5)

	require.Equal(t, Seconds(Unreached), r.bestTimes[1])
}

func TestRunTransferRelaxationOnlyWalksFromNonTransferTouchedStops(t *testing.T) {
	transfers := map[Stop][]Transfer{
		1: {{TargetStop: 2, DistanceMillimeters: 100 * 1000}},
	}
	network := NewStaticNetwork(3, nil, transfers, nil)

	r := newRoundState(3, 1<<20, nil)
	r.setDepartureTime(0)
	r.setInitialTime(Stop(0), 1000)
	/* a transfer-only arrival at stop 1 must not itself radiate another
	   transfer -- only nonTransferStopsTouched stops do. */
	r.setTimeAtStop(Stop(1), 1100, noIndex, Stop(0), 0, 0, true, noIndex, 0, 100)

	RunTransferRelaxation(network, r, 1.0, 10)

	require.Equal(t, Seconds(Unreached), r.bestTimes[2])
}
