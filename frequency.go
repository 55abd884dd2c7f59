package raptor

import (
	"math/rand"
	"sort"
)

/* frequencyKey identifies a single (pattern, trip, entry) frequency block --
   the unit a Monte Carlo draw assigns one random phase to (§4.7). */
type frequencyKey struct {
	pattern  int
	schedule int
	entry    int
}

/* FrequencyOffsets holds one phase draw per frequency entry for a single
   Monte Carlo sub-iteration (C7). Offsets must be derivable from a seed, so
   every draw comes from the single *rand.Rand the caller seeded (§9
   "Monte Carlo determinism") -- grounded on jwmdev-brt08's
   rand.New(rand.NewSource(engineSeed ^ ...)) pattern for reproducible,
   per-seed simulation randomness. */
type FrequencyOffsets struct {
	phases map[frequencyKey]int
}

/* NewFrequencyOffsets draws a uniform phase in [0, headwaySeconds) for every
   frequency entry of every frequency-active pattern, in a fixed
   (pattern, schedule, entry) order so that repeated calls with the same rng
   state are reproducible regardless of map iteration order. */
func NewFrequencyOffsets(rng *rand.Rand, network NetworkView, filter *PatternFilter) *FrequencyOffsets {
	offsets := &FrequencyOffsets{phases: map[frequencyKey]int{}}

	patterns := append([]int(nil), filter.FrequencyPatterns...)
	sort.Ints(patterns)

	for _, patternIndex := range patterns {
		pattern := network.Pattern(patternIndex)
		for scheduleIndex := range pattern.Schedules {
			schedule := &pattern.Schedules[scheduleIndex]
			if !schedule.IsFrequency() {
				continue
			}
			for entryIndex, entry := range schedule.Entries {
				if entry.HeadwaySeconds <= 0 {
					continue
				}
				key := frequencyKey{patternIndex, scheduleIndex, entryIndex}
				offsets.phases[key] = rng.Intn(entry.HeadwaySeconds)
			}
		}
	}

	return offsets
}

func (f *FrequencyOffsets) phase(pattern, schedule, entry int) int {
	return f.phases[frequencyKey{pattern, schedule, entry}]
}

/* ceilDivSigned computes ceil(a/b) for b > 0 and any sign of a, relying on
   Go's truncating integer division and bumping up by one whenever
   truncation discarded a positive remainder. */
func ceilDivSigned(a, b int) int {
	q := a / b
	r := a - q*b
	if r > 0 {
		q++
	}
	return q
}

type frequencyCandidate struct {
	scheduleIndex int
	tripStart     Seconds
}

/* bestFrequencyBoarding takes, for every active frequency schedule and entry
   on pattern, the one vehicle whose departure at stop position p is (§4.7):

     windowStart + phi + ceil((earliestBoardTime - windowStart - phi) / headway) * headway + departures[p]

   That vehicle is kept only if its departure is strictly later than
   earliestBoardTime and inside the entry's [start, end] window; otherwise
   the entry offers no candidate (a later headway of it is not tried). Among
   the kept vehicles the one with the smallest trip start is returned. */
func bestFrequencyBoarding(pattern *TripPattern, offsets *FrequencyOffsets, patternIndex int, services ServiceSet, p int, earliestBoardTime Seconds) (frequencyCandidate, bool) {
	var best frequencyCandidate
	found := false

	for scheduleIndex := range pattern.Schedules {
		schedule := &pattern.Schedules[scheduleIndex]
		if !schedule.IsFrequency() || !services.Contains(schedule.ServiceCode) {
			continue
		}

		for entryIndex := range schedule.Entries {
			entry := &schedule.Entries[entryIndex]
			if entry.HeadwaySeconds <= 0 {
				continue
			}

			phase := offsets.phase(patternIndex, scheduleIndex, entryIndex)
			raw := earliestBoardTime - entry.StartSeconds - phase
			n := ceilDivSigned(raw, entry.HeadwaySeconds)
			tripStart := entry.StartSeconds + phase + n*entry.HeadwaySeconds
			boardTime := tripStart + schedule.Departures[p]

			if boardTime <= earliestBoardTime {
				continue
			}
			if boardTime < entry.StartSeconds || boardTime > entry.EndSeconds {
				continue
			}

			if !found || tripStart < best.tripStart {
				best = frequencyCandidate{scheduleIndex: scheduleIndex, tripStart: tripStart}
				found = true
			}
		}
	}

	return best, found
}

/* RunFrequencyRound superimposes frequency patterns onto the scheduled
   upper bound already sitting in output (C8, §4.5 step 2c): output must
   already hold the result of RunScheduledRound + RunTransferRelaxation for
   this minute before this is called. Grounded on the same touched-pattern
   scan skeleton as RunScheduledRound (scheduled_round.go) -- the spec
   explicitly shares C3-C6 between the scheduled and frequency treatments,
   so the scan shape is deliberately duplicated here rather than factored
   into one generic walker, the same way the teacher keeps
   SimpleRaptorDepartAt and SimpleRaptorArriveBy as two parallel top-level
   functions instead of one parameterized by direction. */
func RunFrequencyRound(network NetworkView, filter *PatternFilter, services ServiceSet, offsets *FrequencyOffsets, previous *RoundState, output *RoundState) {
	touchedSeen := map[int]bool{}
	var touchedPatterns []int

	previous.bestStopsTouched.forEach(func(stop Stop) {
		exclude := sourcePatternOfStop(previous, stop)
		for _, patternIndex := range network.PatternsForStop(stop) {
			if !filter.IsFrequencyActive(patternIndex) {
				continue
			}
			if patternIndex == exclude {
				continue
			}
			if !touchedSeen[patternIndex] {
				touchedSeen[patternIndex] = true
				touchedPatterns = append(touchedPatterns, patternIndex)
			}
		}
	})

	sort.Ints(touchedPatterns)

	for _, patternIndex := range touchedPatterns {
		scanFrequencyPattern(network.Pattern(patternIndex), patternIndex, services, offsets, previous, output)
	}
}

func scanFrequencyPattern(pattern *TripPattern, patternIndex int, services ServiceSet, offsets *FrequencyOffsets, previous *RoundState, output *RoundState) {
	onTrip := false
	committedSchedule := -1
	tripStart := 0
	boardStop := noStop
	boardDepartureTime := 0
	waitAtBoard := 0

	for p, stop := range pattern.Stops {
		if onTrip {
			schedule := &pattern.Schedules[committedSchedule]
			alightTime := tripStart + schedule.Arrivals[p]
			if alightTime < boardDepartureTime {
				logInvariantViolation("alight before board on frequency pattern %d trip %d at stop %d", patternIndex, committedSchedule, stop)
			}

			cumulativeWait := previous.nonTransferWaitTime[boardStop] + waitAtBoard
			cumulativeInVehicle := previous.nonTransferInVehicleTravelTime[boardStop] + (alightTime - boardDepartureTime)

			output.setTimeAtStop(stop, alightTime, patternIndex, boardStop, cumulativeWait, cumulativeInVehicle, false, committedSchedule, boardDepartureTime, 0)
		}

		if previous.bestStopsTouched.has(stop) && patternIndex != sourcePatternOfStop(previous, stop) {
			earliestBoardTime := previous.bestTimes[stop] + MinimumBoardWait

			if candidate, ok := bestFrequencyBoarding(pattern, offsets, patternIndex, services, p, earliestBoardTime); ok {
				candidateBoardTime := candidate.tripStart + pattern.Schedules[candidate.scheduleIndex].Departures[p]
				if !onTrip || candidateBoardTime < boardDepartureTime {
					onTrip = true
					committedSchedule = candidate.scheduleIndex
					tripStart = candidate.tripStart
					boardStop = stop
					boardDepartureTime = candidateBoardTime
					waitAtBoard = candidateBoardTime - previous.bestTimes[stop]
				}
			}
		}
	}
}
