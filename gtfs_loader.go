package raptor

import (
	"sort"
	"strings"

	"github.com/patrickbr/gtfsparser"
)

/* BuildNetworkFromGTFS adapts an already-parsed gtfsparser feed into a
   StaticNetwork (SPEC_FULL §2.2 -- the one domain dependency wired into
   this repo, used exactly as the teacher's own raptor_test.go walks a feed:
   feed.Stops, feed.Trips, trip.StopTimes, stop_time.Stop()/.Arrival_time()/
   .Departure_time()/.Sequence(), feed.Transfers keyed by a from/to stop
   pair). Trips are grouped into patterns by their ordered stop sequence,
   since the teacher's flat per-trip stop-times list has no pattern concept
   at all -- the grouping itself is new, grounded on the spec's §3 pattern
   definition rather than on any teacher code.

   Only one calendar service is loaded per call (serviceID, matched against
   trip.Service.Id() the way the teacher's TestForwardRaptor filters on
   "Weekday"); the returned network treats every loaded schedule as active
   under service code 0 on date. Frequency-based trips (GTFS frequencies.txt)
   are out of scope for this loader -- the teacher's test never touches
   them, so there is no grounded API usage to build that path on; every
   pattern produced here is schedule-only.

   walkSpeedMetersPerSecond converts transfers.txt's minimum-transfer-time
   (seconds) into the millimeter distances this core's Transfer type
   carries (§3), since GTFS transfers are specified in time, not distance. */
func BuildNetworkFromGTFS(feed *gtfsparser.Feed, serviceID string, date string, walkSpeedMetersPerSecond float64) (*StaticNetwork, map[string]Stop) {
	stopIndex := map[string]Stop{}
	for id := range feed.Stops {
		if _, ok := stopIndex[id]; !ok {
			stopIndex[id] = Stop(len(stopIndex))
		}
	}

	type patternKey string
	patternsByKey := map[patternKey]*TripPattern{}
	var patternOrder []patternKey

	for _, trip := range feed.Trips {
		if trip.Service == nil || trip.Service.Id() != serviceID {
			continue
		}

		stopTimes := trip.StopTimes
		sort.Slice(stopTimes, func(i, j int) bool {
			return stopTimes[i].Sequence() < stopTimes[j].Sequence()
		})

		stops := make([]Stop, len(stopTimes))
		arrivals := make([]int, len(stopTimes))
		departures := make([]int, len(stopTimes))
		keyParts := make([]string, len(stopTimes))

		for i, st := range stopTimes {
			stops[i] = stopIndex[st.Stop().Id]
			arrivals[i] = st.Arrival_time().SecondsSinceMidnight()
			departures[i] = st.Departure_time().SecondsSinceMidnight()
			keyParts[i] = st.Stop().Id
		}

		key := patternKey(strings.Join(keyParts, ">"))
		pattern, ok := patternsByKey[key]
		if !ok {
			pattern = &TripPattern{Stops: stops, HasSchedules: true}
			patternsByKey[key] = pattern
			patternOrder = append(patternOrder, key)
		}

		pattern.Schedules = append(pattern.Schedules, TripSchedule{
			Arrivals:    arrivals,
			Departures:  departures,
			ServiceCode: 0,
		})
	}

	patterns := make([]*TripPattern, 0, len(patternOrder))
	for _, key := range patternOrder {
		pattern := patternsByKey[key]
		sort.Slice(pattern.Schedules, func(i, j int) bool {
			return pattern.Schedules[i].Departures[0] < pattern.Schedules[j].Departures[0]
		})
		patterns = append(patterns, pattern)
	}

	transfersByStop := map[Stop][]Transfer{}
	for pair, transfer := range feed.Transfers {
		from, fromOK := stopIndex[pair.From_stop.Id]
		to, toOK := stopIndex[pair.To_stop.Id]
		if !fromOK || !toOK || from == to {
			continue
		}
		distanceMillimeters := int(float64(transfer.Min_transfer_time) * walkSpeedMetersPerSecond * 1000)
		transfersByStop[from] = append(transfersByStop[from], Transfer{TargetStop: to, DistanceMillimeters: distanceMillimeters})
	}

	servicesByDate := map[string]ServiceSet{date: NewServiceSet(0)}

	network := NewStaticNetwork(len(stopIndex), patterns, transfersByStop, servicesByDate)
	return network, stopIndex
}
