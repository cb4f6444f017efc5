package ringbuffer

import (
	"bytes"
	"testing"
)

func TestWriteReadRoundtrip(t *testing.T) {
	r := New(16)
	data := []byte("hello, wayland!!")
	n, err := r.Write(data)
	if err != nil || n != len(data) {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if !r.IsFull() {
		t.Fatal("expected ring to be full")
	}
	out := make([]byte, len(data))
	n, _ = r.Read(out)
	if n != len(data) || !bytes.Equal(out, data) {
		t.Fatalf("Read() = %q, want %q", out, data)
	}
	if !r.IsEmpty() {
		t.Fatal("expected ring to be empty after full read")
	}
}

// TestWrapAround exercises the scenario of two messages, each 3072 bytes,
// flowing through a 4096-byte ring: the second message's write and
// subsequent read must wrap across the end of the backing array.
func TestWrapAround(t *testing.T) {
	r := New(4096)
	msg1 := bytes.Repeat([]byte{0xAA}, 3072)
	msg2 := bytes.Repeat([]byte{0xBB}, 3072)

	if n, _ := r.Write(msg1); n != len(msg1) {
		t.Fatalf("write msg1: wrote %d", n)
	}
	out1 := make([]byte, len(msg1))
	if n, _ := r.Read(out1); n != len(msg1) || !bytes.Equal(out1, msg1) {
		t.Fatalf("read msg1 mismatch")
	}

	// Ring now has start=3072, len=0, free=4096. Writing msg2 (3072 bytes)
	// starts at offset 3072 and must wrap after 1024 bytes.
	first, second := r.WriteSlices()
	if len(first)+len(second) < len(msg2) {
		t.Fatalf("not enough free space for msg2")
	}
	n, _ := r.Write(msg2)
	if n != len(msg2) {
		t.Fatalf("write msg2: wrote %d", n)
	}
	if r.Len() != len(msg2) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(msg2))
	}

	out2 := make([]byte, len(msg2))
	n, _ = r.Read(out2)
	if n != len(msg2) || !bytes.Equal(out2, msg2) {
		t.Fatalf("read msg2 mismatch (n=%d)", n)
	}
}

func TestPeekAtDoesNotConsume(t *testing.T) {
	r := New(8)
	r.Write([]byte("abcd"))
	buf := make([]byte, 2)
	if n := r.PeekAt(1, buf); n != 2 || string(buf) != "bc" {
		t.Fatalf("PeekAt(1,..) = %q, n=%d", buf, n)
	}
	if r.Len() != 4 {
		t.Fatalf("PeekAt must not consume, Len() = %d", r.Len())
	}
}

func TestPeekAtShortAvailability(t *testing.T) {
	r := New(8)
	r.Write([]byte("ab"))
	buf := make([]byte, 4)
	n := r.PeekAt(1, buf)
	if n != 1 {
		t.Fatalf("PeekAt should return only available bytes, got n=%d", n)
	}
}

func TestProducePanicsOnOverflow(t *testing.T) {
	r := New(4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Produce exceeding free space")
		}
	}()
	r.Produce(5)
}

func TestConsumePanicsOnUnderflow(t *testing.T) {
	r := New(4)
	r.Write([]byte("ab"))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Consume exceeding buffered length")
		}
	}()
	r.Consume(3)
}

func TestResetDiscardsBufferedBytes(t *testing.T) {
	r := New(8)
	r.Write([]byte("abcd"))
	r.Reset()
	if !r.IsEmpty() || r.Free() != 8 {
		t.Fatalf("Reset did not fully clear ring: len=%d free=%d", r.Len(), r.Free())
	}
}
