package tabula

// JoinPolicy determines which row pairs survive a join.
type JoinPolicy int

const (
	// InnerJoin keeps only (left, right) pairs whose correspondence columns match
	InnerJoin JoinPolicy = iota
	// LeftJoin keeps every left row, pairing unmatched rows with an all-missing right side
	LeftJoin
	// RightJoin keeps every right row, pairing unmatched rows with an all-missing left side
	RightJoin
	// FullJoin keeps every left row (matched or not), then every right row with no match on the left
	FullJoin
	// SemiJoin keeps every left row with at least one match in right, without appending right's columns
	SemiJoin
	// AntiJoin keeps every left row with no match in right, without appending right's columns
	AntiJoin
)

// ToString produces a string representation of a JoinPolicy
func (p JoinPolicy) ToString() string {
	switch p {
	case InnerJoin:
		return "inner"
	case LeftJoin:
		return "left"
	case RightJoin:
		return "right"
	case FullJoin:
		return "full"
	case SemiJoin:
		return "semi"
	case AntiJoin:
		return "anti"
	default:
		return "unknown"
	}
}

// Correspondence pairs a left-table column with the right-table column it
// is matched against. Names may differ; the output retains the left name
// and drops the right-side key column.
type Correspondence struct {
	Left  string
	Right string
}

// On builds a same-name correspondence list from column names, for the
// common case where both tables name their key columns identically.
func On(colNames ...string) []Correspondence {
	cs := make([]Correspondence, len(colNames))
	for i, n := range colNames {
		cs[i] = Correspondence{Left: n, Right: n}
	}
	return cs
}

// JoinSpec describes a join between two Tables: a non-empty ordered list of
// column correspondences and a policy. Non-key columns sharing a name in
// both inputs are retained on both sides, disambiguated with LeftSuffix and
// RightSuffix (defaulting to "_left" and "_right").
type JoinSpec struct {
	On          []Correspondence
	Policy      JoinPolicy
	LeftSuffix  string
	RightSuffix string
}
