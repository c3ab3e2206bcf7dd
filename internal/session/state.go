package session

// State is the authentication state of a [Session].
type State int

const (
	// StateLoading is the state before Start resolved.
	StateLoading State = iota
	// StateAuthenticated means a verified token and a current user are held.
	StateAuthenticated
	// StateAnonymous means no usable token is held.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}
