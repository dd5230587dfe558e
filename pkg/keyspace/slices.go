package keyspace

import "time"

// Slice is one contiguous region of an attack's keyspace, expressed in
// hashcat skip/limit terms. Offsets are cumulative across phases.
type Slice struct {
	Skip  int64
	Limit int64
}

// SliceSize converts an agent's benchmark speed into a slice size whose
// projected runtime lands inside [minDur, maxDur]. Falls back to the
// probe size when the speed is unusable.
func SliceSize(speed float64, target, minDur, maxDur time.Duration) int64 {
	if speed <= 0 {
		return DefaultProbeKeyspace
	}
	if target < minDur {
		target = minDur
	}
	if target > maxDur {
		target = maxDur
	}
	size := int64(speed * target.Seconds())
	if size < 1 {
		size = 1
	}
	return size
}

// Plan splits a single-phase keyspace into consecutive disjoint slices
// covering [0, total). The final slice absorbs total mod sliceSize, so
// the slice count is max(total/sliceSize, 1).
func Plan(total, sliceSize int64) []Slice {
	if total <= 0 {
		return nil
	}
	if sliceSize <= 0 {
		sliceSize = DefaultProbeKeyspace
	}
	var slices []Slice
	var offset int64
	for {
		remaining := total - offset
		limit := sliceSize
		if remaining < 2*sliceSize {
			limit = remaining
		}
		slices = append(slices, Slice{Skip: offset, Limit: limit})
		offset += limit
		if offset >= total {
			return slices
		}
	}
}

// NextSlice returns the next undispatched slice given the cumulative
// high-water mark. Each phase is sliced independently; the final slice
// of a phase absorbs that phase's remainder. ok is false when the whole
// keyspace has been dispatched.
func NextSlice(phases []Phase, dispatched, sliceSize int64) (Slice, bool) {
	if sliceSize <= 0 {
		sliceSize = DefaultProbeKeyspace
	}
	var phaseStart int64
	for _, ph := range phases {
		phaseEnd := phaseStart + ph.Keyspace
		if dispatched < phaseEnd {
			remaining := phaseEnd - dispatched
			limit := sliceSize
			if remaining < 2*sliceSize {
				limit = remaining
			}
			return Slice{Skip: dispatched, Limit: limit}, true
		}
		phaseStart = phaseEnd
	}
	return Slice{}, false
}
