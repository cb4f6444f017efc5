package transport

// Any is a type-erased Transport box. A Connection is generic over nothing;
// it always talks to exactly one Any, which holds whichever concrete
// Transport (Unix, Pipe, or a test double) was supplied at construction
// time. This mirrors the boxed trait-object transport the original runtime
// uses to keep its connection type independent of the concrete socket
// implementation, so swapping in a test transport never requires
// recompiling the dispatch machinery.
type Any struct {
	inner Transport
}

// NewAny boxes t.
func NewAny(t Transport) Any {
	return Any{inner: t}
}

func (a Any) PollableFD() int { return a.inner.PollableFD() }

func (a Any) Send(data []byte, fds []int) (int, error) {
	return a.inner.Send(data, fds)
}

func (a Any) Recv(buf []byte) (int, []int, error) {
	return a.inner.Recv(buf)
}

func (a Any) Close() error { return a.inner.Close() }

// Unwrap returns the boxed concrete Transport, for callers (typically
// tests) that need the concrete type back via a type assertion or switch.
func (a Any) Unwrap() Transport { return a.inner }

var _ Transport = Any{}
