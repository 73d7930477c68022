package identity

// State classifies the outcome of resolving a credential.
type State int

const (
	// StateAnonymous means no credential was presented.
	StateAnonymous State = iota
	// StateResolved means the credential mapped to a real subject.
	StateResolved
	// StateUnauthenticated means the credential was checked and rejected.
	StateUnauthenticated
	// StateFailed means resolution itself broke (bad encoding, network fault).
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateResolved:
		return "resolved"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving a credential to a subject.
// The zero value is the anonymous resolution, so a context that was never
// populated reads as "no subject present" rather than as a real identity.
// Subject is non-empty only when State is StateResolved, which keeps
// failure outcomes from ever colliding with a legitimate owner value.
type Resolution struct {
	State   State
	Subject string
	Reason  string
}

// Anonymous is the resolution for a request without a credential.
func Anonymous() Resolution {
	return Resolution{State: StateAnonymous}
}

// Resolved wraps a successfully resolved subject.
func Resolved(subject string) Resolution {
	return Resolution{State: StateResolved, Subject: subject}
}

// Unauthenticated marks a credential that was checked and rejected.
func Unauthenticated(reason string) Resolution {
	return Resolution{State: StateUnauthenticated, Reason: reason}
}

// Failed marks a credential that could not be resolved at all.
func Failed(reason string) Resolution {
	return Resolution{State: StateFailed, Reason: reason}
}

// Authenticated reports whether the resolution carries a real subject.
func (r Resolution) Authenticated() bool {
	return r.State == StateResolved
}
