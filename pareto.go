package raptor

/* Label is one point in a stop's Pareto set: an (arrivalTime, numTransfers,
   totalWait, totalInVehicle) tuple (§4.9). Lower is better on every
   dimension; a label is kept only if no other label at the same stop
   dominates it (is <= on every dimension and < on at least one). */
type Label struct {
	ArrivalTime    Seconds
	NumTransfers   int
	TotalWait      Seconds
	TotalInVehicle Seconds

	Pattern   int
	Trip      int
	FromStop  Stop
	BoardTime Seconds

	IsTransfer   bool
	TransferTime Seconds
}

func dominates(a, b Label) bool {
	le := a.ArrivalTime <= b.ArrivalTime && a.NumTransfers <= b.NumTransfers &&
		a.TotalWait <= b.TotalWait && a.TotalInVehicle <= b.TotalInVehicle
	lt := a.ArrivalTime < b.ArrivalTime || a.NumTransfers < b.NumTransfers ||
		a.TotalWait < b.TotalWait || a.TotalInVehicle < b.TotalInVehicle
	return le && lt
}

/* ParetoFront holds the undominated label set per stop for the
   multi-criteria variant (C11). Unlike RoundState's scalar bestTimes, a
   stop may carry several simultaneously-optimal labels (e.g. one arriving
   earlier with more transfers, one arriving later with fewer). */
type ParetoFront struct {
	labels    [][]Label
	touched   stopSet
	numRounds int
}

func newParetoFront(stopCount int) *ParetoFront {
	return &ParetoFront{
		labels:  make([][]Label, stopCount),
		touched: newStopSet(stopCount),
	}
}

/* insert adds label to stop's front if no existing label dominates it,
   removing any existing labels the new one dominates (§4.9: "inserts into
   the set and prunes dominated labels"). Returns true if the front changed.

   A label identical to one already on the front is rejected outright:
   dominates() requires strict inequality on at least one dimension, so two
   bit-for-bit equal labels neither dominate nor are dominated by each
   other, and without this check the same optimum re-offered on a later
   minute would accumulate as a duplicate entry instead of being absorbed. */
func (f *ParetoFront) insert(stop Stop, label Label) bool {
	existing := f.labels[stop]

	for _, other := range existing {
		if other == label {
			return false
		}
		if dominates(other, label) {
			return false
		}
	}

	kept := existing[:0]
	for _, other := range existing {
		if !dominates(label, other) {
			kept = append(kept, other)
		}
	}
	kept = append(kept, label)

	f.labels[stop] = kept
	f.touched.set(stop)
	return true
}

/* Labels returns the Pareto-optimal labels recorded for stop. */
func (f *ParetoFront) Labels(stop Stop) []Label {
	return f.labels[stop]
}

/* SearchMultiCriteria runs the same scheduled-round / transfer-relaxation
   scan as Search, but keeps a Pareto label set per stop instead of a scalar
   best arrival (C11, §4.9). It reuses RoundState internally for boarding
   search and touched-pattern bookkeeping (the trip-boarding search, §4.4,
   is unchanged), but folds every relaxed time into fronts keyed by the
   same dimensions §4.9 names, rather than discarding all but the earliest
   arrival.

   Grounded on no direct teacher analogue (the teacher is single-criterion
   only); this shares the scan skeleton of scheduled_round.go and
   transfer.go via plain RoundState scans, feeding their outputs into
   ParetoFront.insert after every round of every minute instead of only
   keeping the fastest path. */
func SearchMultiCriteria(network NetworkView, access map[Stop]Seconds, req *Request) (*ParetoFront, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := PrefilterPatterns(network, req.Date, req.TransitModes)
	services := network.ActiveServicesForDate(req.Date)
	stopCount := network.StopCount()
	maxDuration := req.MaxTripDurationMinutes * 60

	rounds := make([]*RoundState, req.MaxRides+1)
	rounds[0] = newRoundState(stopCount, maxDuration, nil)
	for k := 1; k <= req.MaxRides; k++ {
		rounds[k] = newRoundState(stopCount, maxDuration, rounds[k-1])
	}

	front := newParetoFront(stopCount)

	for minute := req.ToTime - DepartureStep; minute >= req.FromTime; minute -= DepartureStep {
		for _, r := range rounds {
			r.setDepartureTime(minute)
		}
		for stop, walkSeconds := range access {
			rounds[0].setInitialTime(stop, minute+walkSeconds)
		}

		for k := 1; k <= req.MaxRides; k++ {
			rounds[k].min(rounds[k-1])
			RunScheduledRound(network, filter, services, rounds[k-1], rounds[k])
			RunTransferRelaxation(network, rounds[k], req.WalkSpeed, req.MaxWalkTime)

			/* Only stops actually touched this minute can have produced a new
			   candidate label: bestNonTransferTimes/transferStop persist
			   unwritten across minutes once set, so scanning every stop
			   unconditionally would re-offer the same label every minute for
			   as long as it remained optimal, relying solely on insert's
			   duplicate/domination check to absorb it instead of never
			   generating it in the first place. */
			rounds[k].nonTransferStopsTouched.forEach(func(s Stop) {
				if rounds[k].bestNonTransferTimes[s] == Unreached {
					return
				}
				front.insert(s, Label{
					ArrivalTime:    rounds[k].bestNonTransferTimes[s],
					NumTransfers:   k - 1,
					TotalWait:      rounds[k].nonTransferWaitTime[s],
					TotalInVehicle: rounds[k].nonTransferInVehicleTravelTime[s],
					Pattern:        rounds[k].previousPattern[s],
					Trip:           rounds[k].previousTrip[s],
					FromStop:       rounds[k].previousStop[s],
					BoardTime:      rounds[k].boardTime[s],
				})
			})
			rounds[k].bestStopsTouched.forEach(func(s Stop) {
				if rounds[k].transferStop[s] == noStop {
					return
				}
				front.insert(s, Label{
					ArrivalTime:    rounds[k].bestTimes[s],
					NumTransfers:   k - 1,
					TotalWait:      rounds[k].nonTransferWaitTime[rounds[k].transferStop[s]],
					TotalInVehicle: rounds[k].nonTransferInVehicleTravelTime[rounds[k].transferStop[s]],
					FromStop:       rounds[k].transferStop[s],
					IsTransfer:     true,
					TransferTime:   rounds[k].transferTime[s],
				})
			})
		}
	}

	return front, nil
}
