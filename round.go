package raptor

/* Seconds is a seconds-since-midnight (or seconds-of-day) timestamp, the way
   the teacher aliases TimestampInSeconds in raptor_models.go -- kept here as
   a plain int alias since this core never needs the teacher's int64 range
   (a search never spans more than a few days of seconds). */
type Seconds = int

const noStop = Stop(-1)
const noIndex = -1

/* RoundState is the central entity (§3): one per RAPTOR round k, holding the
   best arrival times reached so far (with and without trailing transfers)
   plus the provenance needed to reconstruct a path. previous links to round
   k-1 by pointer -- an ordered chain, not a cycle, walked by deepCopy and by
   cumulative wait/in-vehicle accounting. */
type RoundState struct {
	departureTime      Seconds
	waitCarryOffset    Seconds
	maxDurationSeconds Seconds

	bestTimes            []Seconds
	bestNonTransferTimes []Seconds

	previousPattern []int
	previousTrip    []int
	previousStop    []Stop
	boardTime       []Seconds

	transferStop []Stop
	transferTime []Seconds

	nonTransferWaitTime            []Seconds
	nonTransferInVehicleTravelTime []Seconds

	bestStopsTouched       stopSet
	nonTransferStopsTouched stopSet
	stopTimesImproved      bool

	previous *RoundState
}

/* newRoundState allocates one round's arrays up front (§5 resource policy:
   allocation is front-loaded, hot loops allocate nothing). */
func newRoundState(stopCount int, maxDurationSeconds Seconds, previous *RoundState) *RoundState {
	r := &RoundState{
		maxDurationSeconds:             maxDurationSeconds,
		bestTimes:                      make([]Seconds, stopCount),
		bestNonTransferTimes:           make([]Seconds, stopCount),
		previousPattern:                make([]int, stopCount),
		previousTrip:                   make([]int, stopCount),
		previousStop:                   make([]Stop, stopCount),
		boardTime:                      make([]Seconds, stopCount),
		transferStop:                   make([]Stop, stopCount),
		transferTime:                   make([]Seconds, stopCount),
		nonTransferWaitTime:            make([]Seconds, stopCount),
		nonTransferInVehicleTravelTime: make([]Seconds, stopCount),
		bestStopsTouched:               newStopSet(stopCount),
		nonTransferStopsTouched:        newStopSet(stopCount),
		previous:                       previous,
	}
	for s := 0; s < stopCount; s++ {
		r.bestTimes[s] = Unreached
		r.bestNonTransferTimes[s] = Unreached
		r.previousPattern[s] = noIndex
		r.previousTrip[s] = noIndex
		r.previousStop[s] = noStop
		r.transferStop[s] = noStop
	}
	return r
}

/* setInitialTime writes an access-walk arrival unconditionally (§4.2) --
   used only to seed round 0 at the start of each departure minute. The
   arrival moves with the departure minute, so any wait carried onto the
   stop by setDepartureTime is reset to zero. */
func (r *RoundState) setInitialTime(stop Stop, t Seconds) {
	r.bestTimes[stop] = t
	r.bestNonTransferTimes[stop] = t
	r.nonTransferWaitTime[stop] = 0
	r.bestStopsTouched.set(stop)
	r.nonTransferStopsTouched.set(stop)
}

/* setTimeAtStop updates the arrival at stop if t strictly improves on the
   recorded time (§4.2). transfer distinguishes a transfer-leg relaxation
   (only bestTimes/transferStop/transferTime are touched) from a
   transit-alighting relaxation (bestNonTransferTimes and its provenance are
   also touched). Returns true if anything changed. */
func (r *RoundState) setTimeAtStop(
	stop Stop,
	t Seconds,
	pattern int,
	fromStop Stop,
	wait Seconds,
	inVehicle Seconds,
	transfer bool,
	trip int,
	boardTime Seconds,
	transferTime Seconds,
) bool {
	if t > r.departureTime+r.maxDurationSeconds {
		return false
	}

	if wait < 0 || inVehicle < 0 {
		logInvariantViolation("negative wait/in-vehicle component at stop %d: wait=%d inVehicle=%d", stop, wait, inVehicle)
	}
	if wait+inVehicle > t-r.departureTime && !transfer {
		logInvariantViolation("components larger than total at stop %d: wait=%d inVehicle=%d total=%d", stop, wait, inVehicle, t-r.departureTime)
	}

	changed := false

	if !transfer && t < r.bestNonTransferTimes[stop] {
		r.bestNonTransferTimes[stop] = t
		r.previousPattern[stop] = pattern
		r.previousTrip[stop] = trip
		r.previousStop[stop] = fromStop
		r.boardTime[stop] = boardTime
		r.nonTransferWaitTime[stop] = wait
		r.nonTransferInVehicleTravelTime[stop] = inVehicle
		r.nonTransferStopsTouched.set(stop)
		changed = true
	}

	if t < r.bestTimes[stop] {
		if transfer {
			if transferTime < 0 {
				logInvariantViolation("negative transfer time at stop %d: %d", stop, transferTime)
			}
			r.transferStop[stop] = fromStop
			r.transferTime[stop] = transferTime
		} else {
			r.transferStop[stop] = noStop
			r.transferTime[stop] = 0
		}
		r.bestTimes[stop] = t
		r.bestStopsTouched.set(stop)
		changed = true
	}

	if changed {
		r.stopTimesImproved = true
	}

	return changed
}

/* min merges other into r, componentwise, keeping the better (lower)
   arrival time and preferring other on ties (fewer transfers, since other
   is always the round produced one fewer boarding away -- §4.2, §4.5 step
   2b). Wait-time carry is adjusted by the departure-time delta between the
   two rounds so cumulative wait-time accounting stays correct when an
   earlier departure minute inherits an arrival computed for a later one. */
func (r *RoundState) min(other *RoundState) {
	delta := other.departureTime - r.departureTime

	for s := range r.bestTimes {
		stop := Stop(s)

		if other.bestTimes[s] <= r.bestTimes[s] {
			r.bestTimes[s] = other.bestTimes[s]
			r.transferStop[s] = other.transferStop[s]
			r.transferTime[s] = other.transferTime[s]
			r.bestStopsTouched.set(stop)
		}

		if other.bestNonTransferTimes[s] <= r.bestNonTransferTimes[s] {
			r.bestNonTransferTimes[s] = other.bestNonTransferTimes[s]
			r.previousPattern[s] = other.previousPattern[s]
			r.previousTrip[s] = other.previousTrip[s]
			r.previousStop[s] = other.previousStop[s]
			r.boardTime[s] = other.boardTime[s]
			r.nonTransferWaitTime[s] = other.nonTransferWaitTime[s] + delta
			r.nonTransferInVehicleTravelTime[s] = other.nonTransferInVehicleTravelTime[s]
			r.nonTransferStopsTouched.set(stop)
		}
	}
}

/* setDepartureTime records the new departure minute and carries every
   already-reached stop's accumulated wait forward by the delta (§4.2): a
   stop's nonTransferWaitTime was recorded relative to whatever departure
   minute was active when it was last written, and if this round's own
   minute moves earlier without that stop being re-touched, the rider is now
   waiting waitCarryOffset seconds longer for the same fixed vehicle. Gated
   on bestNonTransferTimes[s] != Unreached so a stop never directly boarded
   this search (wait stays its zero value) is left alone, and so the very
   first call of a fresh RoundState -- whose departureTime starts at the
   zero value, making the offset meaningless -- touches nothing.
   nonTransferInVehicleTravelTime is a sum of absolute alight-minus-board
   durations and does not depend on the search's departure minute, so it is
   not carried here; min()'s departure-delta adjustment (above) is the
   separate, narrower mechanism for merging wait across rounds within one
   minute and does not substitute for this. Touched bitsets are cleared
   here -- once per minute, per round, per §4.5 step 2a. */
func (r *RoundState) setDepartureTime(t Seconds) {
	r.waitCarryOffset = r.departureTime - t
	r.departureTime = t

	if r.waitCarryOffset != 0 {
		for s := range r.bestNonTransferTimes {
			if r.bestNonTransferTimes[s] != Unreached {
				r.nonTransferWaitTime[s] += r.waitCarryOffset
			}
		}
	}

	r.bestStopsTouched.clear()
	r.nonTransferStopsTouched.clear()
	r.stopTimesImproved = false
}

/* copy returns a shallow copy of r -- used for the frequency sub-search
   (§4.2), which must not mutate the scheduled upper bound while probing a
   Monte Carlo draw. previous is shared, not cloned. */
func (r *RoundState) copy() *RoundState {
	c := *r
	c.bestTimes = append([]Seconds(nil), r.bestTimes...)
	c.bestNonTransferTimes = append([]Seconds(nil), r.bestNonTransferTimes...)
	c.previousPattern = append([]int(nil), r.previousPattern...)
	c.previousTrip = append([]int(nil), r.previousTrip...)
	c.previousStop = append([]Stop(nil), r.previousStop...)
	c.boardTime = append([]Seconds(nil), r.boardTime...)
	c.transferStop = append([]Stop(nil), r.transferStop...)
	c.transferTime = append([]Seconds(nil), r.transferTime...)
	c.nonTransferWaitTime = append([]Seconds(nil), r.nonTransferWaitTime...)
	c.nonTransferInVehicleTravelTime = append([]Seconds(nil), r.nonTransferInVehicleTravelTime...)
	c.bestStopsTouched = stopSet{words: append([]uint64(nil), r.bestStopsTouched.words...)}
	c.nonTransferStopsTouched = stopSet{words: append([]uint64(nil), r.nonTransferStopsTouched.words...)}
	return &c
}

/* deepCopy clones r and its entire ancestor chain -- used only when a path
   must survive beyond the next minute (Monte Carlo path retention, §4.2). */
func (r *RoundState) deepCopy() *RoundState {
	if r == nil {
		return nil
	}
	c := r.copy()
	c.previous = r.previous.deepCopy()
	return c
}
