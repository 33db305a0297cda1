// Package merge combines per-source record lists into the final deduplicated,
// parish-grouped result. It is a pure pass: no I/O, deterministic for a given
// input order.
package merge

import (
	"sort"

	"go.uber.org/zap"

	"github.com/votewatch-ja/stations-cli/internal/model"
)

// dedupKey identifies a station across sources.
type dedupKey struct {
	name   string
	parish string
}

// Merge deduplicates the concatenated per-source records and groups them by
// parish. Records must arrive in source-processing order: on a (name, parish)
// collision the first occurrence wins and later duplicates are dropped
// whole, with no field-level merging.
//
// Keys are compared exactly as given. No case or whitespace normalization is
// applied, so near-identical AI-extracted names from different documents can
// survive as separate records; changing that would change the published
// dataset, so it stays literal.
func Merge(records []model.PollingStationRecord) ([]model.ParishGroup, int) {
	seen := make(map[dedupKey]bool, len(records))
	buckets := make(map[string][]model.PollingStationRecord)
	total := 0

	for _, r := range records {
		if r.Name == "" || r.Parish == "" {
			zap.L().Debug("dropping record without name or parish",
				zap.String("station_code", r.StationCode))
			continue
		}

		key := dedupKey{name: r.Name, parish: r.Parish}
		if seen[key] {
			continue
		}
		seen[key] = true

		buckets[r.Parish] = append(buckets[r.Parish], r)
		total++
	}

	groups := make([]model.ParishGroup, 0, len(buckets))
	for name, stations := range buckets {
		sort.Slice(stations, func(i, j int) bool {
			return stations[i].StationCode < stations[j].StationCode
		})
		groups = append(groups, model.ParishGroup{Name: name, Stations: stations})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})

	return groups, total
}
