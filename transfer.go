package raptor

/* RunTransferRelaxation walks every transfer edge out of a stop reached by
   transit this round (C6, §4.6). Transfers never form their own round --
   they are appended to the round in which the vehicle arrived, which is
   why this takes a single round rather than a (previous, output) pair the
   way RunScheduledRound does.

   Grounded on the teacher's inline transfer relaxation inside
   SimpleRaptorDepartAt (the potential_transfers_for_stop loop in mod.go),
   pulled out into its own per-round pass instead of being interleaved with
   the stop-time scan, per §4.6's "transfers are appended to the round, not
   their own round". */
func RunTransferRelaxation(network NetworkView, round *RoundState, walkSpeedMetersPerSecond float64, maxWalkMinutes float64) {
	maxDistanceMillimeters := walkSpeedMetersPerSecond * maxWalkMinutes * 60 * 1000

	round.nonTransferStopsTouched.forEach(func(sourceStop Stop) {
		for _, transfer := range network.TransfersForStop(sourceStop) {
			if float64(transfer.DistanceMillimeters) >= maxDistanceMillimeters {
				continue
			}

			walkSeconds := int(float64(transfer.DistanceMillimeters) / 1000.0 / walkSpeedMetersPerSecond)
			arrival := round.bestNonTransferTimes[sourceStop] + walkSeconds

			round.setTimeAtStop(transfer.TargetStop, arrival, noIndex, sourceStop, 0, 0, true, noIndex, 0, walkSeconds)
		}
	})
}
