package transport

import (
	"bytes"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestPipeSendRecv(t *testing.T) {
	client, server, err := NewPipePair()
	if err != nil {
		t.Fatalf("NewPipePair: %v", err)
	}
	defer client.Close()
	defer server.Close()

	msg := []byte("wl_display@1.get_registry")
	if _, err := client.Send(msg, nil); err != nil {
		t.Fatalf("Send: %v", err)
	}

	buf := make([]byte, 64)
	n, fds, err := recvWithRetry(server, buf)
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if fds != nil {
		t.Fatalf("expected no fds, got %v", fds)
	}
	if !bytes.Equal(buf[:n], msg) {
		t.Fatalf("Recv() = %q, want %q", buf[:n], msg)
	}
}

func TestPipeSendRecvWithFD(t *testing.T) {
	client, server, err := NewPipePair()
	if err != nil {
		t.Fatalf("NewPipePair: %v", err)
	}
	defer client.Close()
	defer server.Close()

	r, w, err := unix.Pipe2(unix.O_CLOEXEC)
	if err != nil {
		t.Fatalf("pipe2: %v", err)
	}
	defer unix.Close(w)

	payload := []byte("keymap")
	if _, err := client.Send(payload, []int{r}); err != nil {
		t.Fatalf("Send with fd: %v", err)
	}
	unix.Close(r)

	buf := make([]byte, 64)
	n, fds, err := recvWithRetry(server, buf)
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if len(fds) != 1 {
		t.Fatalf("expected exactly one fd, got %d", len(fds))
	}
	defer unix.Close(fds[0])
	if !bytes.Equal(buf[:n], payload) {
		t.Fatalf("Recv() = %q, want %q", buf[:n], payload)
	}
}

func TestRecvWouldBlockWhenIdle(t *testing.T) {
	client, server, err := NewPipePair()
	if err != nil {
		t.Fatalf("NewPipePair: %v", err)
	}
	defer client.Close()
	defer server.Close()

	buf := make([]byte, 16)
	_, _, err = server.Recv(buf)
	if err != ErrWouldBlock {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}
}

func TestDisconnectDetected(t *testing.T) {
	client, server, err := NewPipePair()
	if err != nil {
		t.Fatalf("NewPipePair: %v", err)
	}
	defer server.Close()
	client.Close()

	buf := make([]byte, 16)
	_, _, err = recvWithRetry(server, buf)
	if !ErrDisconnected(err) {
		t.Fatalf("expected disconnect error, got %v", err)
	}
}

// recvWithRetry polls briefly for ErrWouldBlock since the pipe is
// non-blocking and delivery is asynchronous relative to Send returning.
func recvWithRetry(t interface {
	Recv([]byte) (int, []int, error)
}, buf []byte) (int, []int, error) {
	deadline := time.Now().Add(time.Second)
	for {
		n, fds, err := t.Recv(buf)
		if err != ErrWouldBlock || time.Now().After(deadline) {
			return n, fds, err
		}
		time.Sleep(time.Millisecond)
	}
}
