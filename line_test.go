package riffline

import "testing"

func TestLineInsert(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(l *Line)
		want    string
		wantPos int
	}{
		{
			name:    "empty",
			edit:    func(l *Line) {},
			want:    "",
			wantPos: 0,
		},
		{
			name:    "append",
			edit:    func(l *Line) { l.Insert("abc") },
			want:    "abc",
			wantPos: 3,
		},
		{
			name: "insert in middle",
			edit: func(l *Line) {
				l.Insert("abc")
				l.MoveLeft()
				l.Insert("X")
			},
			want:    "abXc",
			wantPos: 3,
		},
		{
			name: "insert at start",
			edit: func(l *Line) {
				l.Insert("bc")
				l.MoveLeft()
				l.MoveLeft()
				l.Insert("a")
			},
			want:    "abc",
			wantPos: 1,
		},
		{
			name: "multi-character text",
			edit: func(l *Line) {
				l.Insert("ad")
				l.MoveLeft()
				l.Insert("^B")
			},
			want:    "a^Bd",
			wantPos: 3,
		},
		{
			name:    "empty text",
			edit:    func(l *Line) { l.Insert("") },
			want:    "",
			wantPos: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Line
			tt.edit(&l)
			if got := l.Snapshot(); got != tt.want {
				t.Errorf("Snapshot() = %q, want %q", got, tt.want)
			}
			if l.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", l.Pos(), tt.wantPos)
			}
		})
	}
}

func TestLineDeleteBeforeCursor(t *testing.T) {
	var l Line
	if l.DeleteBeforeCursor() {
		t.Error("delete on empty line should be a no-op")
	}

	l.Insert("abcd")
	l.MoveLeft()
	if !l.DeleteBeforeCursor() {
		t.Fatal("delete should remove a character")
	}
	if got := l.Snapshot(); got != "abd" {
		t.Errorf("Snapshot() = %q, want %q", got, "abd")
	}
	if l.Pos() != 2 || l.Tail() != "d" {
		t.Errorf("Pos() = %d, Tail() = %q; want 2, %q", l.Pos(), l.Tail(), "d")
	}

	l.MoveLeft()
	l.MoveLeft()
	if l.DeleteBeforeCursor() {
		t.Error("delete at position 0 should be a no-op")
	}
	if got := l.Snapshot(); got != "abd" {
		t.Errorf("Snapshot() = %q, want %q", got, "abd")
	}
}

func TestLineMoveBounds(t *testing.T) {
	var l Line
	if l.MoveLeft() || l.MoveRight() {
		t.Error("moves on empty line should be no-ops")
	}

	l.Insert("ab")
	if l.MoveRight() {
		t.Error("move right at end should be a no-op")
	}
	if l.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", l.Pos())
	}

	l.MoveLeft()
	l.MoveLeft()
	if l.MoveLeft() {
		t.Error("move left at start should be a no-op")
	}
	if l.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", l.Pos())
	}
}

func TestLineInvariantHolds(t *testing.T) {
	// a fixed pseudo-random walk over every operation
	ops := []func(l *Line){
		func(l *Line) { l.Insert("x") },
		func(l *Line) { l.Insert("yz") },
		func(l *Line) { l.DeleteBeforeCursor() },
		func(l *Line) { l.MoveLeft() },
		func(l *Line) { l.MoveRight() },
		func(l *Line) { l.Clear() },
	}

	var l Line
	seed := uint32(7)
	for i := 0; i < 2000; i++ {
		seed = seed*1103515245 + 12345
		ops[int(seed>>16)%len(ops)](&l)
		if l.Pos() < 0 || l.Pos() > l.Len() {
			t.Fatalf("step %d: pos %d outside [0, %d]", i, l.Pos(), l.Len())
		}
		if len(l.Snapshot()) != l.Len() {
			t.Fatalf("step %d: snapshot length mismatch", i)
		}
	}
}

func TestLineClear(t *testing.T) {
	var l Line
	l.Insert("hello")
	l.MoveLeft()
	l.Clear()
	if l.Len() != 0 || l.Pos() != 0 || l.Snapshot() != "" {
		t.Errorf("after Clear: len %d, pos %d, %q", l.Len(), l.Pos(), l.Snapshot())
	}

	l.Insert("new")
	if got := l.Snapshot(); got != "new" {
		t.Errorf("Snapshot() = %q, want %q", got, "new")
	}
}

func TestLineSnapshotDoesNotMutate(t *testing.T) {
	var l Line
	l.Insert("abc")
	l.MoveLeft()
	_ = l.Snapshot()
	if l.Snapshot() != "abc" || l.Pos() != 2 {
		t.Errorf("Snapshot changed state: %q pos %d", l.Snapshot(), l.Pos())
	}
}
