package grid

// Direction is one of the four cardinal wire directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Offset returns the unit tile step for the direction.
func (d Direction) Offset() Tile {
	switch d {
	case Up:
		return Tile{Y: 1}
	case Down:
		return Tile{Y: -1}
	case Left:
		return Tile{X: -1}
	case Right:
		return Tile{X: 1}
	}
	return Tile{}
}

// Scaled returns the offset multiplied by n tiles.
func (d Direction) Scaled(n int) Tile {
	o := d.Offset()
	return Tile{X: o.X * n, Y: o.Y * n}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
