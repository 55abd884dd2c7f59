package raptor

import "math/rand"

/* Request carries the tunable options of one search (§6). Validate must be
   called -- every public entry point below calls it first -- before any
   round state is allocated. */
type Request struct {
	FromTime Seconds
	ToTime   Seconds

	MaxRides               int
	MaxTripDurationMinutes int

	MaxWalkTime float64
	WalkSpeed   float64

	TransitModes map[Mode]bool
	Date         string

	MonteCarloDrawsPerMinute int
	RetainPaths              bool

	/* Seed seeds the per-search Monte Carlo RNG (§6 expansion, §9.1) so that
	   runs are reproducible given the same seed (R1). */
	Seed int64
}

/* Validate fails fast on a malformed request (§7.1), before any search work
   begins. */
func (r *Request) Validate() *ConfigError {
	if r.ToTime <= r.FromTime {
		return configErrorf("ToTime", r.ToTime, "must be greater than FromTime (%d)", r.FromTime)
	}
	if r.MaxRides < 0 {
		return configErrorf("MaxRides", r.MaxRides, "must be >= 0")
	}
	if r.MaxTripDurationMinutes <= 0 {
		return configErrorf("MaxTripDurationMinutes", r.MaxTripDurationMinutes, "must be > 0")
	}
	if r.MaxWalkTime < 0 {
		return configErrorf("MaxWalkTime", r.MaxWalkTime, "must be >= 0")
	}
	if r.WalkSpeed <= 0 {
		return configErrorf("WalkSpeed", r.WalkSpeed, "must be > 0")
	}
	if r.MonteCarloDrawsPerMinute < 1 {
		return configErrorf("MonteCarloDrawsPerMinute", r.MonteCarloDrawsPerMinute, "must be >= 1")
	}
	return nil
}

/* SearchResult is the product of one Search call (§6 "Produced"). Times is
   ordered latest-minute-first, then by Monte Carlo draw, each inner slice
   holding travel times in seconds (or Unreached) indexed by stop. FinalRounds
   parallels Times only when the request asked for RetainPaths; pass an entry
   to ReconstructPath (path.go) to recover the boarding chain for a stop. */
type SearchResult struct {
	Times       [][]Seconds
	FinalRounds []*RoundState
}

/* Search runs the range-RAPTOR minute driver (C9, §4.5): it steps backward
   over the departure window, reusing round-state arrays via min(), and runs
   the scheduled round, frequency round and transfer relaxation each minute.

   Grounded on the teacher's SimpleRaptorDepartAt (mod.go) for the overall
   "seed access, run rounds, collect a result" shape -- regrounded onto a
   backward-stepping departure window and a persistent round-state array
   since the teacher runs exactly one departure time per call and never
   reuses state across calls. access maps a stop reachable from the search
   origin to its walking time in seconds. */
func Search(network NetworkView, access map[Stop]Seconds, req *Request) (*SearchResult, error) {
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

	rng := rand.New(rand.NewSource(req.Seed))
	hasFrequency := len(filter.FrequencyPatterns) > 0

	result := &SearchResult{}

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
		}

		finalScheduled := rounds[req.MaxRides]
		scheduledTimes := extractTravelTimes(finalScheduled, minute)

		for draw := 0; draw < req.MonteCarloDrawsPerMinute; draw++ {
			if !hasFrequency {
				result.Times = append(result.Times, scheduledTimes)
				if req.RetainPaths {
					result.FinalRounds = append(result.FinalRounds, finalScheduled.deepCopy())
				}
				continue
			}

			offsets := NewFrequencyOffsets(rng, network, filter)

			working := make([]*RoundState, req.MaxRides+1)
			for k, r := range rounds {
				working[k] = r.copy()
			}
			for k := 1; k <= req.MaxRides; k++ {
				working[k].previous = working[k-1]
			}

			for k := 1; k <= req.MaxRides; k++ {
				RunScheduledRound(network, filter, services, working[k-1], working[k])
				RunFrequencyRound(network, filter, services, offsets, working[k-1], working[k])
				RunTransferRelaxation(network, working[k], req.WalkSpeed, req.MaxWalkTime)
			}

			final := working[req.MaxRides]
			result.Times = append(result.Times, extractTravelTimes(final, minute))
			if req.RetainPaths {
				result.FinalRounds = append(result.FinalRounds, final.deepCopy())
			}
		}
	}

	return result, nil
}

/* extractTravelTimes converts a round's clock-time bestTimes (§3: transit or
   transfer arrival, whichever is better -- the field S2 requires a
   transfer-only arrival to surface through) into travel times relative to
   departureMinute, preserving the Unreached sentinel. */
func extractTravelTimes(round *RoundState, departureMinute Seconds) []Seconds {
	times := make([]Seconds, len(round.bestTimes))
	for s, t := range round.bestTimes {
		if t == Unreached {
			times[s] = Unreached
			continue
		}
		times[s] = t - departureMinute
	}
	return times
}
