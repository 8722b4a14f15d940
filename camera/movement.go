package camera

// Movement is the set of movement keys held during a tick.
type Movement uint8

const (
	MoveForward Movement = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
)

func (m Movement) Has(key Movement) bool {
	return m&key != 0
}
