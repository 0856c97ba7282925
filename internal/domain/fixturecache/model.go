package fixturecache

import (
	"time"

	"github.com/betmetrics/betmetrics-api/internal/domain/fixture"
)

// Snapshot is the cached fixture set for one UTC calendar day. At most
// one snapshot exists per date; once written it is treated as immutable
// for the remainder of that day.
type Snapshot struct {
	CacheDate        string
	Fixtures         []fixture.Fixture
	FixturesByLeague map[string][]fixture.Fixture
	APICallsCount    int
	Message          string
	CreatedAt        time.Time
}

// DateKey formats an instant as the snapshot partition key. The cache is
// keyed on the UTC calendar date regardless of the caller's timezone.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
