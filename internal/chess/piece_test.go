package chess

import "testing"

func TestPieceIdentity(t *testing.T) {
	t.Parallel()
	knight := NewPiece(Knight, White, 62)
	moved := knight.MoveTo(45)

	if knight.Square != 62 || knight.Moved {
		t.Errorf("MoveTo modified the original piece: %+v", knight)
	}
	if moved.Square != 45 || !moved.Moved || moved.Type != Knight || moved.Alliance != White {
		t.Errorf("MoveTo(45) = %+v", moved)
	}
	if knight.Same(moved) {
		t.Error("pieces on different squares are the Same")
	}

	flagged := knight
	flagged.Moved = true
	if !knight.Same(flagged) {
		t.Error("Moved flag takes part in identity")
	}
	if knight.Same(NewPiece(Knight, Black, 62)) {
		t.Error("pieces of different sides are the Same")
	}
}

func TestPieceString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		piece  Piece
		want   string
		letter byte
	}{
		{NewPiece(Knight, White, 36), "Ne4", 'N'},
		{NewPiece(Queen, Black, 3), "qd8", 'q'},
		{NewPiece(Pawn, Black, 12), "pe7", 'p'},
		{Piece{}, "-", ' '},
	}

	for _, tt := range tests {
		if got := tt.piece.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.piece.Letter(); got != tt.letter {
			t.Errorf("Letter() = %q, want %q", got, tt.letter)
		}
	}

	if !(Piece{}).IsZero() || NewPiece(Pawn, White, 48).IsZero() {
		t.Error("IsZero() misreports")
	}
	if NewPiece(Rook, Black, 0).Value() != 500 {
		t.Error("rook value is not 500")
	}
}

func TestTile(t *testing.T) {
	t.Parallel()
	empty := NewTile(20, nil)
	if empty.IsOccupied() || empty.Square() != 20 || empty.String() != "-" {
		t.Errorf("empty tile = %+v", empty)
	}
	if _, ok := empty.Piece(); ok {
		t.Error("empty tile returned a piece")
	}
	if NewTile(20, nil) != empty {
		t.Error("empty tiles for the same square differ")
	}

	p := NewPiece(Bishop, Black, 20)
	occupied := NewTile(20, &p)
	got, ok := occupied.Piece()
	if !ok || !got.Same(p) {
		t.Errorf("Piece() = %v, %v; want %v", got, ok, p)
	}
	if occupied.String() != "b" {
		t.Errorf("String() = %q, want b", occupied.String())
	}

	// The tile keeps its own copy.
	p.Square = 21
	if got, _ := occupied.Piece(); got.Square != 20 {
		t.Error("tile shares storage with the caller's piece")
	}
}
