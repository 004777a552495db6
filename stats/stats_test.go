package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunStatistics(t *testing.T) {
	rs := &RunStatistics{}
	rs.Start()
	start := rs.GetStartTime()
	rs.Start()
	require.Equal(t, start, rs.GetStartTime())

	rs.StartReduction()
	time.Sleep(2 * time.Millisecond)
	slow := rs.EndReduction(LocalMerge, 2, 100, false)
	rs.StartReduction()
	fast := rs.EndReduction(LocalMerge, 4, 100, false)
	rs.StartReduction()
	rs.EndReduction(SharedAtomic, 4, 100, true)
	rs.Finish()

	require.True(t, slow >= 2*time.Millisecond)
	require.True(t, fast < slow)
	require.Len(t, rs.GetTimings(), 3)
	require.EqualValues(t, 200, rs.GetNumValuesProcessed())
	require.True(t, rs.GetRuntime() >= slow)

	fastest, ok := rs.GetFastest(LocalMerge)
	require.True(t, ok)
	require.Equal(t, 4, fastest.Workers)
	_, ok = rs.GetFastest(SharedAtomic)
	require.False(t, ok)
}
