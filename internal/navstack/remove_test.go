package navstack

import (
	"reflect"
	"testing"
)

func TestHoldAndRestore(t *testing.T) {
	cases := []struct {
		name    string
		entries []string
		target  string
		want    []string
		held    int
		ok      bool
	}{
		{name: "middle", entries: []string{"a", "b", "c"}, target: "b", want: []string{"a", "c"}, held: 1, ok: true},
		{name: "bottom", entries: []string{"a", "b", "c", "d"}, target: "a", want: []string{"b", "c", "d"}, held: 3, ok: true},
		{name: "top", entries: []string{"a", "b"}, target: "b", want: []string{"a"}, held: 0, ok: true},
		{name: "only", entries: []string{"a"}, target: "a", want: []string{}, held: 0, ok: true},
		{name: "missing", entries: []string{"a", "b"}, target: "z", want: []string{"a", "b"}, held: 0, ok: false},
		{name: "empty", entries: nil, target: "a", want: nil, held: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rest, removed, held, ok := holdAndRestore(tc.entries, func(s string) bool { return s == tc.target })
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if held != tc.held {
				t.Fatalf("expected held=%d, got %d", tc.held, held)
			}
			if ok && removed != tc.target {
				t.Fatalf("expected removed %q, got %q", tc.target, removed)
			}
			if len(rest) != len(tc.want) || (len(rest) > 0 && !reflect.DeepEqual(rest, tc.want)) {
				t.Fatalf("expected %v, got %v", tc.want, rest)
			}
		})
	}
}

func TestHoldAndRestoreLeavesInputUntouched(t *testing.T) {
	entries := []string{"a", "b", "c"}
	rest, _, _, _ := holdAndRestore(entries, func(s string) bool { return s == "a" })
	if !reflect.DeepEqual(entries, []string{"a", "b", "c"}) {
		t.Fatalf("input mutated: %v", entries)
	}
	rest[0] = "x"
	if entries[1] != "b" {
		t.Fatalf("result aliases input")
	}
}

func TestHoldAndRestoreRemovesTopmostMatch(t *testing.T) {
	entries := []int{1, 2, 1, 3}
	rest, _, held, ok := holdAndRestore(entries, func(v int) bool { return v == 1 })
	if !ok || held != 1 {
		t.Fatalf("expected topmost match with one held entry, got ok=%v held=%d", ok, held)
	}
	if !reflect.DeepEqual(rest, []int{1, 2, 3}) {
		t.Fatalf("unexpected result %v", rest)
	}
}
