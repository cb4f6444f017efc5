package transport

// Pipe is a Transport meant for tests: a pair of connected, kernel-backed
// Unix endpoints with no compositor on the other end. Using a real
// AF_UNIX socket pair instead of an in-process byte channel means fd
// passing, short reads, and EAGAIN all behave exactly as they do against a
// live compositor socket.
type Pipe struct {
	*Unix
}

// NewPipePair returns two connected Pipe transports. Writes to one are
// readable from the other, including any attached file descriptors.
func NewPipePair() (client, server Pipe, err error) {
	a, b, err := SocketPair()
	if err != nil {
		return Pipe{}, Pipe{}, err
	}
	return Pipe{a}, Pipe{b}, nil
}
