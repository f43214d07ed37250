package domain

import "fmt"

// BoardSize is the side length of every generated board.
const BoardSize = 8

// Pos addresses a cell by row and column.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// offsets in up, down, left, right order
var offsets4 = [4]Pos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
