package raptor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCeilDivSignedMatchesMathCeilForMixedSigns(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{-30, 300, 0},
		{-350, 300, -1},
		{350, 300, 2},
		{300, 300, 1},
		{0, 300, 0},
		{90, 300, 1},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ceilDivSigned(c.a, c.b), "ceilDivSigned(%d, %d)", c.a, c.b)
	}
}

/* S5: headway=300s, phase=120s, window start 08:00 (28800), earliestBoardTime
   08:01:30 (28890) boards at 08:02:00 (28920); with phase=0 the same
   earliestBoardTime boards at 08:05:00 (29100). */
func TestBestFrequencyBoardingMatchesScenarioS5(t *testing.T) {
	pattern := &TripPattern{
		Stops: []Stop{0, 1},
		Schedules: []TripSchedule{
			{
				Arrivals:   []int{0, 600},
				Departures: []int{0, 0},
				Entries:    []FrequencyEntry{{StartSeconds: 28800, EndSeconds: 36000, HeadwaySeconds: 300}},
			},
		},
	}
	services := NewServiceSet(0)

	withPhase := func(phase int) *FrequencyOffsets {
		return &FrequencyOffsets{phases: map[frequencyKey]int{{pattern: 7, schedule: 0, entry: 0}: phase}}
	}

	candidate, ok := bestFrequencyBoarding(pattern, withPhase(120), 7, services, 0, 28890)
	require.True(t, ok)
	require.Equal(t, Seconds(28920), candidate.tripStart)

	candidate, ok = bestFrequencyBoarding(pattern, withPhase(0), 7, services, 0, 28890)
	require.True(t, ok)
	require.Equal(t, Seconds(29100), candidate.tripStart)
}

func TestBestFrequencyBoardingRejectsOutsideEntryWindow(t *testing.T) {
	pattern := &TripPattern{
		Stops: []Stop{0, 1},
		Schedules: []TripSchedule{
			{
				Arrivals:   []int{0, 600},
				Departures: []int{0, 0},
				Entries:    []FrequencyEntry{{StartSeconds: 28800, EndSeconds: 29000, HeadwaySeconds: 300}},
			},
		},
	}
	services := NewServiceSet(0)
	offsets := &FrequencyOffsets{phases: map[frequencyKey]int{{pattern: 0, schedule: 0, entry: 0}: 0}}

	_, ok := bestFrequencyBoarding(pattern, offsets, 0, services, 0, 28890)
	require.False(t, ok)
}

func TestNewFrequencyOffsetsIsDeterministicPerSeed(t *testing.T) {
	network := NewStaticNetwork(2, []*TripPattern{{
		Stops:          []Stop{0, 1},
		HasFrequencies: true,
		Schedules: []TripSchedule{
			{
				Arrivals:   []int{0, 600},
				Departures: []int{0, 0},
				Entries:    []FrequencyEntry{{StartSeconds: 28800, EndSeconds: 36000, HeadwaySeconds: 300}},
			},
		},
	}}, nil, map[string]ServiceSet{"20250814": NewServiceSet(0)})
	filter := PrefilterPatterns(network, "20250814", nil)

	a := NewFrequencyOffsets(rand.New(rand.NewSource(42)), network, filter)
	b := NewFrequencyOffsets(rand.New(rand.NewSource(42)), network, filter)

	require.Equal(t, a.phases, b.phases)
}
