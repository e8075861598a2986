package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent reads of the same data. Only one database load runs for a given
// key while other callers wait for its result.

import "golang.org/x/sync/singleflight"

// SessionGroup deduplicates session snapshot loads keyed by session code.
// Clients poll their session frequently, often from several tabs.
var SessionGroup singleflight.Group

// StatsGroup deduplicates the aggregate stats query (single key "stats").
var StatsGroup singleflight.Group
