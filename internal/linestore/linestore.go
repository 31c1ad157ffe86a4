package linestore

// Backend names one of the three interchangeable LineStore implementations.
type Backend uint8

const (
	// BackendVector is the dynamic-array implementation: O(1) Get,
	// O(n-r) Insert/Erase. Best for small files and read-dominated work.
	BackendVector Backend = iota
	// BackendGap is the gap-buffer implementation: a movable gap over a
	// flat byte array plus a block-indexed line table.
	BackendGap
	// BackendRope is the AVL-tree-of-lines implementation: structural
	// split/concat, good for large files and far-apart edits.
	BackendRope
)

// String returns the backend's canonical name, as reported by the
// "backend" colon command.
func (b Backend) String() string {
	switch b {
	case BackendVector:
		return "vector"
	case BackendGap:
		return "gap"
	case BackendRope:
		return "rope"
	default:
		return "unknown"
	}
}

// ParseBackend maps a name ("vector", "gap", "rope") to a Backend. It
// returns false for an unrecognized name.
func ParseBackend(name string) (Backend, bool) {
	switch name {
	case "vector":
		return BackendVector, true
	case "gap":
		return BackendGap, true
	case "rope":
		return BackendRope, true
	default:
		return 0, false
	}
}

// LineStore is the public contract shared by all three backends. All
// operations have identical observable semantics across backends; they
// differ only in asymptotic cost. Row indices are always clamped rather
// than erroring: out-of-range reads return "", out-of-range mutations are
// silently no-ops or clamped to the nearest valid position.
type LineStore interface {
	// Init replaces the entire content. An empty slice seeds one empty
	// line, since a LineStore may never report zero lines.
	Init(lines []string)

	// Count returns the number of lines, always >= 1.
	Count() int

	// Get returns the exact bytes last written at row r, or "" if r is
	// out of range.
	Get(r int) string

	// InsertLine inserts s before row r. r == Count() appends.
	InsertLine(r int, s string)

	// InsertLines inserts ss (in order) before row r. r == Count() appends.
	InsertLines(r int, ss []string)

	// EraseLine removes row r. A no-op if r is out of range. Re-seeds an
	// empty line if this would leave the store empty.
	EraseLine(r int)

	// EraseLines removes rows [r, rEnd). Out-of-range bounds are clamped;
	// rEnd < r is treated as an empty range. Re-seeds an empty line if
	// this would leave the store empty.
	EraseLines(r, rEnd int)

	// ReplaceLine replaces the content of row r. A no-op if r is out of
	// range.
	ReplaceLine(r int, s string)

	// Backend reports which implementation this is, for the "backend"
	// colon command.
	Backend() Backend
}

// New constructs an empty LineStore of the given backend.
func New(b Backend) LineStore {
	switch b {
	case BackendGap:
		return newGapStore()
	case BackendRope:
		return newRopeStore()
	default:
		return newVectorStore()
	}
}

// NewFromLines constructs a LineStore of the given backend, pre-populated
// with lines.
func NewFromLines(b Backend, lines []string) LineStore {
	s := New(b)
	s.Init(lines)
	return s
}

// seedEmpty returns lines, or a single empty line if lines is empty. Every
// backend calls this from Init/EraseLine/EraseLines to uphold the
// never-zero-lines invariant.
func seedEmpty(lines []string) []string {
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
