package raptor

/* bit-exact constants consumed by the round state, boarding search and driver */
const (
	/* Unreached is the sentinel arrival time for a stop that was never touched. */
	Unreached = (1 << 31) - 1

	/* BoardSlack is the minimum time a rider needs at a stop before boarding; a
	   trip departing at exactly arrival+BoardSlack is NOT boardable (strict >). */
	BoardSlack = 60

	/* MinimumBoardWait mirrors BoardSlack for frequency-pattern boarding (§4.7). */
	MinimumBoardWait = 60

	/* DepartureStep is the range-RAPTOR minute-sweep granularity, in seconds. */
	DepartureStep = 60

	/* TripSearchBinaryThreshold is the trip-count break-even point (§4.4) at or
	   below which the linear backward scan outperforms a binary search. */
	TripSearchBinaryThreshold = 46
)
