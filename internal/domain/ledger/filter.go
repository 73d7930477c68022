package ledger

// Owned is any record that names the subject allowed to see it.
type Owned interface {
	OwnedBy() string
}

// Filter returns the records whose owner equals subject. Inclusion requires
// exact string equality; prefix, substring or case-insensitive matches never
// qualify. The input is scanned linearly and never mutated, and the output
// is a fresh slice preserving input order. There is deliberately no index or
// cache in front of this scan: the filter is the security boundary and must
// re-derive visibility from ground truth on every call.
func Filter[T Owned](records []T, subject string) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		if record.OwnedBy() == subject {
			out = append(out, record)
		}
	}
	return out
}
