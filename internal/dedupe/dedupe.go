// Package dedupe provides the shared singleflight group used to
// deduplicate concurrent match reads. A burst of polls for the same
// join code performs one database load and snapshot decode; the other
// callers wait for that result.
package dedupe

import "golang.org/x/sync/singleflight"

// MatchGroup deduplicates match state loads keyed by join code.
var MatchGroup singleflight.Group
