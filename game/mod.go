package game

import "errors"

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Player identifies the owner of a cell. Empty marks an unoccupied cell.
type Player int

const (
	Empty Player = iota
	PlayerOne
	PlayerTwo
)

// PlayerFromIndex converts a 0-based turn index (0 moves first) to a Player.
func PlayerFromIndex(i int) Player {
	switch i {
	case 0:
		return PlayerOne
	case 1:
		return PlayerTwo
	default:
		panic("player index out of range")
	}
}

// PlayerFromCell converts a 1-based cell value (1 or 2) to a Player.
func PlayerFromCell(v int) Player {
	switch v {
	case 0:
		return Empty
	case 1:
		return PlayerOne
	case 2:
		return PlayerTwo
	default:
		panic("cell value out of range")
	}
}

// Index returns the 0-based turn index of the player.
func (p Player) Index() int {
	switch p {
	case PlayerOne:
		return 0
	case PlayerTwo:
		return 1
	default:
		panic("empty player has no index")
	}
}

// Cell returns the 1-based cell value (0 for Empty).
func (p Player) Cell() int {
	return int(p)
}

func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		panic("empty player has no opponent")
	}
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player1"
	case PlayerTwo:
		return "Player2"
	default:
		return "Empty"
	}
}

// Move is the cell a play occupies.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when there is no move to play (drawn or cutoff positions).
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
)
