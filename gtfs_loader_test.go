package raptor

import (
	"testing"

	"github.com/patrickbr/gtfsparser"
	"github.com/stretchr/testify/require"
)

/* The teacher's own fixtures (gtfs_subway.zip, gtfslirr.zip) are large
   binary GTFS feeds that were never retrieved into the example pack, so
   this exercises BuildNetworkFromGTFS against an unparsed (empty) feed
   instead of a real zip -- it still drives the real gtfsparser import and
   the adapter's grouping logic end to end, just over zero stops/trips. */
func TestBuildNetworkFromGTFSEmptyFeed(t *testing.T) {
	feed := gtfsparser.NewFeed()

	network, stopIndex := BuildNetworkFromGTFS(feed, "Weekday", "20250814", 1.3)

	require.NotNil(t, network)
	require.Empty(t, stopIndex)
	require.Equal(t, 0, network.StopCount())
	require.Equal(t, 0, network.PatternCount())
}
