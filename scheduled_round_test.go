package raptor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourcePatternOfStopReturnsOwnBoardingPattern(t *testing.T) {
	r := newRoundState(2, 1<<20, nil)
	r.setDepartureTime(0)
	r.setTimeAtStop(Stop(1), 500, 3, Stop(0), 0, 500, false, 0, 0, 0)

	require.Equal(t, 3, sourcePatternOfStop(r, Stop(1)))
}

func TestSourcePatternOfStopUnwindsOneTransferHop(t *testing.T) {
	r := newRoundState(3, 1<<20, nil)
	r.setDepartureTime(0)
	r.setTimeAtStop(Stop(1), 500, 3, Stop(0), 0, 500, false, 0, 0, 0)
	r.setTimeAtStop(Stop(2), 560, noIndex, Stop(1), 0, 0, true, noIndex, 0, 60)

	require.Equal(t, 3, sourcePatternOfStop(r, Stop(2)))
}

/* A single scheduled trip boarded at the access stop relaxes every
   downstream stop of the pattern it rides. */
func TestRunScheduledRoundRelaxesEveryDownstreamStop(t *testing.T) {
	pattern := &TripPattern{
		Stops:        []Stop{0, 1, 2},
		HasSchedules: true,
		Schedules: []TripSchedule{
			{Arrivals: []int{29100, 29400, 29700}, Departures: []int{29100, 29400, 29700}, ServiceCode: 0},
		},
	}
	network := NewStaticNetwork(3, []*TripPattern{pattern}, nil, map[string]ServiceSet{"20250814": NewServiceSet(0)})
	filter := PrefilterPatterns(network, "20250814", nil)
	services := NewServiceSet(0)

	previous := newRoundState(3, 1<<20, nil)
	previous.setDepartureTime(28800)
	previous.setInitialTime(Stop(0), 28860)

	output := newRoundState(3, 1<<20, previous)
	output.setDepartureTime(28800)

	RunScheduledRound(network, filter, services, previous, output)

	require.Equal(t, Seconds(29400), output.bestTimes[1])
	require.Equal(t, Seconds(29700), output.bestTimes[2])
}

/* A touched middle stop of an in-progress trip only searches trips earlier
   than the one currently ridden -- scanPattern caps
   FindEarliestBoardableTrip's upper bound at tripIndex -- so reaching stop 1
   too late for trip 0 does not move the ride onto the later trip 1. */
func TestRunScheduledRoundDoesNotSwitchToALaterTripOnceBoarded(t *testing.T) {
	pattern := &TripPattern{
		Stops:        []Stop{0, 1, 2},
		HasSchedules: true,
		Schedules: []TripSchedule{
			{Arrivals: []int{29100, 29400, 29700}, Departures: []int{29100, 29400, 29700}, ServiceCode: 0},
			{Arrivals: []int{29700, 30000, 30300}, Departures: []int{29700, 30000, 30300}, ServiceCode: 0},
		},
	}
	network := NewStaticNetwork(3, []*TripPattern{pattern}, nil, map[string]ServiceSet{"20250814": NewServiceSet(0)})
	filter := PrefilterPatterns(network, "20250814", nil)
	services := NewServiceSet(0)

	previous := newRoundState(3, 1<<20, nil)
	previous.setDepartureTime(28800)
	previous.setInitialTime(Stop(0), 28860)
	previous.setInitialTime(Stop(1), 29900)

	output := newRoundState(3, 1<<20, previous)
	output.setDepartureTime(28800)

	RunScheduledRound(network, filter, services, previous, output)

	require.Equal(t, Seconds(29400), output.bestTimes[1])
	require.Equal(t, Seconds(29700), output.bestTimes[2])
}
