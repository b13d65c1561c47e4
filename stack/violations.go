package stack

import "github.com/plus3/ziggurat/sim"

// ViolationRecord is one entry of the append-only ground-violation audit
// log: which piece was penalized, by how much, and when. Records are never
// mutated after creation.
type ViolationRecord struct {
	PieceID sim.PieceID `json:"piece_id"`
	Penalty int         `json:"penalty"`
	Tick    uint64      `json:"tick"`
}

// ViolationLog prevents double-penalizing a piece for ground contact and
// keeps the audit trail for analytics.
type ViolationLog struct {
	records []ViolationRecord
	seen    map[sim.PieceID]struct{}
}

// NewViolationLog creates an empty log.
func NewViolationLog() *ViolationLog {
	return &ViolationLog{seen: make(map[sim.PieceID]struct{})}
}

// Recorded reports whether the piece has already been penalized.
func (vl *ViolationLog) Recorded(id sim.PieceID) bool {
	_, ok := vl.seen[id]
	return ok
}

// Append records a penalty. Appending a piece that is already recorded is
// a no-op and returns false, which makes the penalty path idempotent.
func (vl *ViolationLog) Append(rec ViolationRecord) bool {
	if vl.Recorded(rec.PieceID) {
		return false
	}
	vl.records = append(vl.records, rec)
	vl.seen[rec.PieceID] = struct{}{}
	return true
}

// Records returns a copy of the log in append order.
func (vl *ViolationLog) Records() []ViolationRecord {
	out := make([]ViolationRecord, len(vl.records))
	copy(out, vl.records)
	return out
}

// Len returns the number of records.
func (vl *ViolationLog) Len() int {
	return len(vl.records)
}

// Reset clears the log for a new run.
func (vl *ViolationLog) Reset() {
	vl.records = vl.records[:0]
	vl.seen = make(map[sim.PieceID]struct{})
}

// restore replaces the log contents from a snapshot.
func (vl *ViolationLog) restore(records []ViolationRecord) {
	vl.Reset()
	for _, rec := range records {
		vl.records = append(vl.records, rec)
		vl.seen[rec.PieceID] = struct{}{}
	}
}
