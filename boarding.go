package raptor

/* isBoardableSchedule is the skip-predicate of §4.3 step 3: frequency trips
   are handled by the frequency round (C8), and trips whose service is
   inactive today are never boarded. */
func isBoardableSchedule(schedule *TripSchedule, services ServiceSet) bool {
	return !schedule.IsFrequency() && services.Contains(schedule.ServiceCode)
}

/* FindEarliestBoardableTrip is the trip boarding search (C4, §4.4). Given a
   pattern, a stop position, an *exclusive* upper bound on the trip index to
   consider, and the earliest time a rider could board, it returns the index
   of the earliest-departing trip that is still boardable, or -1.

   It serves two callers identically: the initial board search of §4.3 step
   2 (upperBoundExclusive == len(pattern.Schedules)) and the "back up to an
   earlier trip" search (upperBoundExclusive == the currently boarded trip's
   index) -- both want the smallest trip index whose departure at this stop
   position is strictly later than earliestBoardTime.

   Grounded on the teacher's SliceIterator (slice_it.go) for the bounded
   forward/backward scan shape; the binary-bracket + threshold switch below
   has no teacher analogue since go-raptor never indexes trips within a
   pattern at all, it walks a flat, already-filtered stop-times list. */
func FindEarliestBoardableTrip(pattern *TripPattern, services ServiceSet, stopPosition int, upperBoundExclusive int, earliestBoardTime Seconds) int {
	if upperBoundExclusive <= 0 {
		return -1
	}

	if upperBoundExclusive <= TripSearchBinaryThreshold {
		return linearBackwardBoardSearch(pattern, services, stopPosition, upperBoundExclusive, earliestBoardTime)
	}

	return binaryThenLinearBoardSearch(pattern, services, stopPosition, upperBoundExclusive, earliestBoardTime)
}

/* linearBackwardBoardSearch scans from upperBoundExclusive-1 down to 0. The
   first trip that is boardable-in-principle (active, non-frequency) AND
   already too early to catch (departures[p] <= earliestBoardTime) ends the
   scan -- trips are sorted ascending, so everything before it is too early
   as well. The returned candidate is the last trip seen during the descent
   whose departure was still strictly later than earliestBoardTime, i.e. the
   smallest such index. */
func linearBackwardBoardSearch(pattern *TripPattern, services ServiceSet, stopPosition int, upperBoundExclusive int, earliestBoardTime Seconds) int {
	candidate := -1

	for idx := upperBoundExclusive - 1; idx >= 0; idx-- {
		schedule := &pattern.Schedules[idx]
		if !isBoardableSchedule(schedule, services) {
			continue
		}

		departure := schedule.Departures[stopPosition]
		if departure <= earliestBoardTime {
			break
		}

		candidate = idx
	}

	return candidate
}

/* binaryThenLinearBoardSearch narrows to a window of width <= 10 by binary
   search on departures[stopPosition] (valid because the pattern's
   non-overtaking invariant, §3, makes departures[p] monotonic across trip
   index whenever departures[0] is), then linear-scans forward from the
   window's lower edge applying the boardability + threshold checks the
   binary phase ignored. */
func binaryThenLinearBoardSearch(pattern *TripPattern, services ServiceSet, stopPosition int, upperBoundExclusive int, earliestBoardTime Seconds) int {
	lo, hi := 0, upperBoundExclusive

	for hi-lo > 10 {
		mid := (lo + hi) / 2
		if pattern.Schedules[mid].Departures[stopPosition] > earliestBoardTime {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	for idx := lo; idx < upperBoundExclusive; idx++ {
		schedule := &pattern.Schedules[idx]
		if !isBoardableSchedule(schedule, services) {
			continue
		}
		if schedule.Departures[stopPosition] > earliestBoardTime {
			return idx
		}
	}

	return -1
}
