package raptor

/* LegKind distinguishes a ride leg from a transfer leg in a reconstructed
   path (§4.8). */
type LegKind int

const (
	RideLeg LegKind = iota
	TransferLeg
)

/* Leg is one segment of a reconstructed journey, walked backward from a
   stop's final-round arrival to the access leg that started the search
   (§4.8). A RideLeg names the pattern/trip boarded and the stop range it
   covers; a TransferLeg names only the stops and the walk duration. */
type Leg struct {
	Kind LegKind

	FromStop Stop
	ToStop   Stop

	DepartureTime Seconds
	ArrivalTime   Seconds

	Pattern int
	Trip    int

	TransferSeconds Seconds
}

/* ReconstructPath walks provenance backward from stop in round (the final
   round of one search iteration, possibly a deep copy retained for this
   purpose) and returns the legs in forward (origin-to-destination) order
   (C10, §4.8). Only ride and transfer legs are emitted: the access walk and
   the waiting time before each boarding are not legs, so the legs'
   durations sum to less than the stop's total travel time whenever there
   is any access walk or wait.

   Grounded on the teacher's journey-building walk in SimpleRaptorDepartAt /
   SimpleRaptorArriveBy (mod.go), which backtracks through RoundSegment.Spans
   to build a Journey -- here backtracking through the spec's parallel
   provenance arrays and the round-to-round previous chain instead of a
   linked span list. */
func ReconstructPath(round *RoundState, stop Stop) []Leg {
	var legs []Leg

	current := round
	at := stop

	for current != nil {
		if current.bestTimes[at] == Unreached {
			break
		}

		if current.transferStop[at] != noStop {
			from := current.transferStop[at]
			legs = append(legs, Leg{
				Kind:            TransferLeg,
				FromStop:        from,
				ToStop:          at,
				DepartureTime:   current.bestNonTransferTimes[from],
				ArrivalTime:     current.bestTimes[at],
				Pattern:         noIndex,
				Trip:            noIndex,
				TransferSeconds: current.transferTime[at],
			})
			at = from
			continue
		}

		pattern := current.previousPattern[at]
		if pattern == noIndex {
			/* round 0: the access leg. Nothing further to walk. */
			break
		}

		legs = append(legs, Leg{
			Kind:          RideLeg,
			FromStop:      current.previousStop[at],
			ToStop:        at,
			DepartureTime: current.boardTime[at],
			ArrivalTime:   current.bestNonTransferTimes[at],
			Pattern:       pattern,
			Trip:          current.previousTrip[at],
		})

		at = current.previousStop[at]
		current = current.previous
	}

	reverseLegs(legs)
	return legs
}

func reverseLegs(legs []Leg) {
	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}
}
