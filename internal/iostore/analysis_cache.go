package iostore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"
)

// CacheVersion is bumped whenever the analysis payload shape or the scoring
// formulas change, invalidating older cached entries.
const CacheVersion = 1

// DefaultCacheMaxAge bounds how long a cached analysis stays valid. The
// engine itself is deterministic, so staleness only matters when the
// technology record on disk changes between runs.
const DefaultCacheMaxAge = 7 * 24 * time.Hour

// BuildAnalysisKey derives a stable cache key from everything that affects
// the analysis result. Skill order must not matter, so the list is sorted
// before hashing.
func BuildAnalysisKey(tech *schema.Technology, industry string, currentSkills []string) string {
	skills := make([]string, len(currentSkills))
	for i, s := range currentSkills {
		skills[i] = strings.ToLower(strings.TrimSpace(s))
	}
	sort.Strings(skills)

	// The full record participates so edits to any input field miss the cache.
	techJSON, _ := json.Marshal(tech)

	h := sha256.New()
	h.Write(techJSON)
	h.Write([]byte{0})
	h.Write([]byte(industry))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(skills, ",")))

	return fmt.Sprintf("analysis:%s:%s", tech.ID, hex.EncodeToString(h.Sum(nil))[:16])
}

// LookupAnalysis returns a cached analysis for the key if one exists, is the
// current version, and is younger than maxAge. A decode failure is treated
// as a miss, never an error.
func LookupAnalysis(store contract.CacheStore, key string, maxAge time.Duration, now time.Time) (*schema.EmergingTechAnalysis, bool) {
	if store == nil {
		return nil, false
	}

	data, version, ts, err := store.Get(key)
	if err != nil || version != CacheVersion {
		return nil, false
	}
	if now.Sub(time.Unix(ts, 0)) > maxAge {
		return nil, false
	}

	var analysis schema.EmergingTechAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, false
	}
	return &analysis, true
}

// StoreAnalysis writes an analysis result to the cache. Failures are
// surfaced so callers can warn, but a failed write never blocks the run.
func StoreAnalysis(store contract.CacheStore, key string, analysis *schema.EmergingTechAnalysis, now time.Time) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis for caching: %w", err)
	}
	return store.Set(key, data, CacheVersion, now.Unix())
}
