package chess

// Tile is one of the 64 squares of a board, either empty or holding exactly
// one piece. Tiles are values and never change occupant.
type Tile struct {
	square   Square
	piece    Piece
	occupied bool
}

// emptyTiles holds the shared empty tile for every square.
var emptyTiles = func() [NumTiles]Tile {
	var tiles [NumTiles]Tile
	for sq := range tiles {
		tiles[sq] = Tile{square: Square(sq)}
	}
	return tiles
}()

// NewTile returns the empty tile for sq when piece is nil, otherwise a tile
// occupied by *piece.
func NewTile(sq Square, piece *Piece) Tile {
	if piece == nil {
		return emptyTiles[sq]
	}
	return Tile{square: sq, piece: *piece, occupied: true}
}

// Square returns the coordinate of the tile.
func (t Tile) Square() Square {
	return t.square
}

// IsOccupied reports whether a piece stands on the tile.
func (t Tile) IsOccupied() bool {
	return t.occupied
}

// Piece returns the occupant and true, or the zero Piece and false for an
// empty tile.
func (t Tile) Piece() (Piece, bool) {
	return t.piece, t.occupied
}

// String returns "-" for an empty tile or the occupant's letter.
func (t Tile) String() string {
	if !t.occupied {
		return "-"
	}
	return string(t.piece.Letter())
}
