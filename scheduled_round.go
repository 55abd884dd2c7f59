package raptor

import "sort"

/* sourcePatternOfStop returns the pattern that should be excluded when
   re-boarding from stop in the round being built from round (§4.3 step 1,
   "excluding the pattern by which that stop was most recently reached").

   Per the Open Question recorded in SPEC_FULL §9.1: when the stop's
   bestTimes arrival is itself a transfer, the pattern used to reach the
   pre-transfer stop is used instead -- one hop, not a recursive unwind
   through a chain of transfers. */
func sourcePatternOfStop(round *RoundState, stop Stop) int {
	if round.transferStop[stop] != noStop {
		return round.previousPattern[round.transferStop[stop]]
	}
	return round.previousPattern[stop]
}

/* RunScheduledRound is one RAPTOR round over scheduled patterns (C5, §4.3):
   it determines the touched patterns from round k-1's touched stops, then
   walks each one in stop order, boarding/alighting/relaxing into output.

   Grounded on the teacher's per-round stop-time scan in
   SimpleRaptorDepartAt (mod.go) -- same "for each marked stop, look at what
   I can reach, relax the following stops" skeleton, regrounded from the
   teacher's flat per-trip stop-times onto per-pattern stop positions with
   an explicit boarding search (C4) standing in for "take the next
   unscanned stop-time". */
func RunScheduledRound(network NetworkView, filter *PatternFilter, services ServiceSet, previous *RoundState, output *RoundState) {
	touchedSeen := map[int]bool{}
	var touchedPatterns []int

	previous.bestStopsTouched.forEach(func(stop Stop) {
		exclude := sourcePatternOfStop(previous, stop)
		for _, patternIndex := range network.PatternsForStop(stop) {
			if !filter.IsScheduledActive(patternIndex) {
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

	/* §5 ordering guarantees: pattern traversal within a round is in
	   touched-pattern index order. */
	sort.Ints(touchedPatterns)

	for _, patternIndex := range touchedPatterns {
		scanPattern(network.Pattern(patternIndex), patternIndex, services, previous, output)
	}
}

/* scanPattern walks one pattern's stops in order, boarding the earliest
   trip it can whenever a touched stop permits it, alighting and relaxing
   every stop it rides through, and backing up to an earlier trip whenever a
   later touched stop would allow catching one (§4.3 step 2). */
func scanPattern(pattern *TripPattern, patternIndex int, services ServiceSet, previous *RoundState, output *RoundState) {
	onTrip := false
	tripIndex := -1
	boardStop := noStop
	boardDepartureTime := 0
	waitAtBoard := 0

	for p, stop := range pattern.Stops {
		if onTrip {
			schedule := &pattern.Schedules[tripIndex]
			alightTime := schedule.Arrivals[p]
			if alightTime < boardDepartureTime {
				logInvariantViolation("alight before board on pattern %d trip %d at stop %d", patternIndex, tripIndex, stop)
			}

			cumulativeWait := previous.nonTransferWaitTime[boardStop] + waitAtBoard
			cumulativeInVehicle := previous.nonTransferInVehicleTravelTime[boardStop] + (alightTime - boardDepartureTime)

			output.setTimeAtStop(stop, alightTime, patternIndex, boardStop, cumulativeWait, cumulativeInVehicle, false, tripIndex, boardDepartureTime, 0)
		}

		if previous.bestStopsTouched.has(stop) && patternIndex != sourcePatternOfStop(previous, stop) {
			earliestBoardTime := previous.bestTimes[stop] + BoardSlack

			upperBound := len(pattern.Schedules)
			if onTrip {
				upperBound = tripIndex
			}

			if idx := FindEarliestBoardableTrip(pattern, services, p, upperBound, earliestBoardTime); idx != -1 {
				onTrip = true
				tripIndex = idx
				boardStop = stop
				boardDepartureTime = pattern.Schedules[idx].Departures[p]
				waitAtBoard = boardDepartureTime - previous.bestTimes[stop]
			}
		}
	}
}
