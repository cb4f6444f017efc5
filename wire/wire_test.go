package wire

import "testing"

func TestObjectIDRanges(t *testing.T) {
	if !ObjectID(2).CreatedByClient() {
		t.Fatal("id 2 should be client-allocated")
	}
	if ObjectID(2).CreatedByServer() {
		t.Fatal("id 2 should not be server-allocated")
	}
	if !ObjectID(0xFF000001).CreatedByServer() {
		t.Fatal("id 0xFF000001 should be server-allocated")
	}
	if ObjectID(0).CreatedByClient() {
		t.Fatal("id 0 is never client-allocated")
	}
}

func TestFixedRoundtrip(t *testing.T) {
	cases := []float64{0, 1, -1, 3.5, -3.5, 0.00390625}
	for _, f := range cases {
		got := FixedFromFloat64(f).Float64()
		if got != f {
			t.Errorf("FixedFromFloat64(%v).Float64() = %v", f, got)
		}
	}
	if FixedFromInt(7).Int() != 7 {
		t.Fatal("FixedFromInt(7).Int() != 7")
	}
}

func TestArgValueSize(t *testing.T) {
	cases := []struct {
		name string
		arg  ArgValue
		want int
	}{
		{"int", ArgInt(1), 4},
		{"uint", ArgUint(1), 4},
		{"fixed", ArgFixedVal(0), 4},
		{"object", ArgObjectVal(3), 4},
		{"new_id", ArgNewIDVal(3), 4},
		{"opt_object_null", ArgOptObjectVal(0, false), 4},
		{"opt_object_set", ArgOptObjectVal(5, true), 4},
		{"string_empty", ArgStringVal(""), 8},
		{"string_abc", ArgStringVal("abc"), 8},     // len 3, +1 nul = 4, no pad, +4 len-prefix
		{"string_abcd", ArgStringVal("abcd"), 12},  // len 4, +1 nul = 5, pad 3 = 8, +4
		{"opt_string_null", ArgOptStringVal("", false), 4},
		{"array_empty", ArgArrayVal(nil), 4},
		{"array_3", ArgArrayVal([]byte{1, 2, 3}), 8},
		{"fd", ArgFdVal(7), 0},
		{"any_new_id", ArgAnyNewIDVal("wl_seat", 1, 5), stringWireLen("wl_seat") + 8},
	}
	for _, c := range cases {
		if got := c.arg.Size(); got != c.want {
			t.Errorf("%s: Size() = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestArgsPoolReuse(t *testing.T) {
	var p ArgsPool
	buf := p.Get()
	if buf != nil {
		t.Fatal("expected nil slice from empty pool")
	}
	buf = append(buf, ArgInt(1), ArgInt(2))
	p.Put(buf)

	reused := p.Get()
	if cap(reused) < 2 {
		t.Fatalf("expected reused backing array with capacity >= 2, got cap %d", cap(reused))
	}
	if len(reused) != 0 {
		t.Fatalf("expected zero-length slice, got len %d", len(reused))
	}
}
