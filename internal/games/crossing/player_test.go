package crossing

import "testing"

func TestPlayerStartsOnSpawnTile(t *testing.T) {
	p := NewPlayer(testBoard(), 2, 5)
	if p.Col != 2 || p.Row != 5 {
		t.Errorf("spawn tile = (%d,%d), expected (2,5)", p.Col, p.Row)
	}
	if p.X != 202 || p.Y != 415 {
		t.Errorf("spawn pixels = (%d,%d), expected (202,415)", p.X, p.Y)
	}
	if p.Pending() {
		t.Error("new player should have no pending move")
	}
}

func TestPlayerBoundaryRejection(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		dir      Direction
		accepted bool
	}{
		{"left from col 0", 0, 3, DirLeft, false},
		{"left from col 1", 1, 3, DirLeft, true},
		{"right from last col", 4, 3, DirRight, false},
		{"right from col 3", 3, 3, DirRight, true},
		{"down from bottom row", 2, 5, DirDown, false},
		{"down from row 4", 2, 4, DirDown, true},
		{"up from row 1", 2, 1, DirUp, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(testBoard(), 2, 5)
			placePlayer(p, tc.col, tc.row)

			if got := p.HandleInput(tc.dir); got != tc.accepted {
				t.Fatalf("HandleInput(%v) = %v, expected %v", tc.dir, got, tc.accepted)
			}
			if !tc.accepted {
				if p.Col != tc.col || p.Row != tc.row || p.Pending() {
					t.Errorf("rejected move changed state: (%d,%d) pending=%v", p.Col, p.Row, p.Pending())
				}
			}
		})
	}
}

func TestPlayerMoveIsDeferredUntilUpdate(t *testing.T) {
	p := NewPlayer(testBoard(), 2, 5)

	p.HandleInput(DirUp)
	if p.Row != 4 {
		t.Errorf("row after accepted move = %d, expected 4", p.Row)
	}
	if p.Y != 415 {
		t.Errorf("pixels should not move before Update, y = %d", p.Y)
	}

	if p.Update() {
		t.Error("moving to row 4 is not a win")
	}
	if p.Y != 4*83 || p.X != 202 {
		t.Errorf("after Update pixels = (%d,%d), expected (202,332)", p.X, p.Y)
	}
	if p.Pending() {
		t.Error("Update should clear the pending move")
	}
}

func TestPlayerLastMoveWins(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		dirs     []Direction
		wantCol  int
		wantRow  int
	}{
		{"up then left", 2, 5, []Direction{DirUp, DirLeft}, 1, 5},
		{"left twice from col 1", 1, 5, []Direction{DirLeft, DirLeft}, 0, 5},
		{"right three times", 2, 3, []Direction{DirRight, DirRight, DirRight}, 3, 3},
		{"rejected move keeps the earlier one", 0, 5, []Direction{DirUp, DirLeft}, 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(testBoard(), 2, 5)
			placePlayer(p, tc.col, tc.row)

			for _, d := range tc.dirs {
				p.HandleInput(d)
			}
			p.Update()

			if p.Col != tc.wantCol || p.Row != tc.wantRow {
				t.Errorf("tile = (%d,%d), expected (%d,%d)", p.Col, p.Row, tc.wantCol, tc.wantRow)
			}
			if p.X != p.Col*101 || p.Y != p.Row*83 {
				t.Errorf("pixels (%d,%d) out of sync with tile (%d,%d)", p.X, p.Y, p.Col, p.Row)
			}
		})
	}
}

func TestPlayerReachingWaterResets(t *testing.T) {
	p := NewPlayer(testBoard(), 2, 5)
	placePlayer(p, 4, 1)

	p.HandleInput(DirUp)
	if !p.Update() {
		t.Fatal("reaching row 0 should report a win")
	}
	if p.Col != 2 || p.Row != 5 || p.X != 202 || p.Y != 415 {
		t.Errorf("after win player at tile (%d,%d) px (%d,%d), expected spawn", p.Col, p.Row, p.X, p.Y)
	}
	if p.Pending() {
		t.Error("win reset should clear the pending move")
	}
}

func TestPlayerResetDropsPendingMove(t *testing.T) {
	p := NewPlayer(testBoard(), 2, 5)
	p.HandleInput(DirLeft)
	p.Reset()
	p.Update()

	if p.Col != 2 || p.X != 202 {
		t.Errorf("reset should discard the pending move, col=%d x=%d", p.Col, p.X)
	}
}
