package domain

import (
	"strings"

	"github.com/pkg/errors"
)

const Size = 8

var directions = [8][2]int{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}

var corners = [4]Move{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

// Board is a value: assignment copies all cells, so a caller's board is never
// shared with the board returned by ApplyMove.
type Board [Size][Size]Cell

func NewBoard() Board {
	var b Board
	b[3][3], b[4][4] = Light.Disc(), Light.Disc()
	b[3][4], b[4][3] = Dark.Disc(), Dark.Disc()
	return b
}

func Corners() [4]Move {
	return corners
}

func (b Board) At(m Move) (Cell, error) {
	if !m.Valid() {
		return Empty, errors.WithMessagef(ErrOutOfRange, "cell %s", m)
	}
	return b[m.Row][m.Col], nil
}

func (b Board) IsValidMove(m Move, side Side) (bool, error) {
	if err := checkArgs(m, side); err != nil {
		return false, err
	}
	return b.legal(m.Row, m.Col, side), nil
}

func (b Board) ApplyMove(m Move, side Side) (Board, error) {
	if err := checkArgs(m, side); err != nil {
		return Board{}, err
	}
	if b[m.Row][m.Col] != Empty {
		return Board{}, errors.WithMessagef(ErrIllegalMove, "cell %s is occupied", m)
	}
	flipped := 0
	next := b
	next[m.Row][m.Col] = side.Disc()
	for _, d := range directions {
		n := b.run(m.Row, m.Col, d[0], d[1], side)
		for i := 1; i <= n; i++ {
			next[m.Row+i*d[0]][m.Col+i*d[1]] = side.Disc()
		}
		flipped += n
	}
	if flipped == 0 {
		return Board{}, errors.WithMessagef(ErrIllegalMove, "%s at %s captures nothing", side, m)
	}
	return next, nil
}

func (b Board) Score() Score {
	var s Score
	for r := range b {
		for _, cell := range b[r] {
			switch cell {
			case Dark.Disc():
				s.Dark++
			case Light.Disc():
				s.Light++
			}
		}
	}
	return s
}

func (b Board) HasLegalMove(side Side) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.legal(r, c, side) {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists the legal moves of side in row-major order.
func (b Board) LegalMoves(side Side) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.legal(r, c, side) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (b Board) Mobility(side Side) int {
	count := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.legal(r, c, side) {
				count++
			}
		}
	}
	return count
}

// IsTerminal reports that neither side can move. The board does not have to be full.
func (b Board) IsTerminal() bool {
	return !b.HasLegalMove(Dark) && !b.HasLegalMove(Light)
}

func (b Board) legal(row, col int, side Side) bool {
	if !side.Valid() || b[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if b.run(row, col, d[0], d[1], side) > 0 {
			return true
		}
	}
	return false
}

// run counts the opponent discs walked from (row, col) along (dr, dc). The count
// is zero unless the run is closed by a disc of side.
func (b Board) run(row, col, dr, dc int, side Side) int {
	own, opp := side.Disc(), side.Opponent().Disc()
	n := 0
	for r, c := row+dr, col+dc; inBounds(r, c); r, c = r+dr, c+dc {
		switch b[r][c] {
		case opp:
			n++
		case own:
			return n
		default:
			return 0
		}
	}
	return 0
}

func inBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

func checkArgs(m Move, side Side) error {
	if !m.Valid() {
		return errors.WithMessagef(ErrOutOfRange, "move %s", m)
	}
	if !side.Valid() {
		return errors.WithMessagef(ErrUnknownSide, "side %d", side)
	}
	return nil
}

// ParseBoard reads 8 rows of 8 cells: '.' empty, 'B' or 'X' dark, 'W' or 'O' light.
func ParseBoard(rows []string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return Board{}, errors.WithMessagef(ErrInvalidBoard, "expected %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != Size {
			return Board{}, errors.WithMessagef(ErrInvalidBoard, "row %d has %d cells", r+1, len(row))
		}
		for c := 0; c < Size; c++ {
			switch row[c] {
			case '.', '-', '_':
				b[r][c] = Empty
			default:
				side, err := ParseSide(string(row[c]))
				if err != nil {
					return Board{}, errors.WithMessagef(ErrInvalidBoard, "cell %s: %v", Move{r, c}, err)
				}
				b[r][c] = side.Disc()
			}
		}
	}
	return b, nil
}

func (b Board) Rows() []string {
	rows := make([]string, Size)
	for r := range b {
		var sb strings.Builder
		for _, cell := range b[r] {
			sb.WriteRune(cell.Rune())
		}
		rows[r] = sb.String()
	}
	return rows
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r, row := range b.Rows() {
		sb.WriteByte(byte('1' + r))
		for _, cell := range row {
			sb.WriteByte(' ')
			sb.WriteRune(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
