package morris

import "fmt"

type Color byte

const (
	NoColor Color = 0
	Blue    Color = 1
	Orange  Color = 2
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case Blue:
		return Orange
	case Orange:
		return Blue
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

type Phase byte

const (
	Placing Phase = 1 + iota
	Sliding
	Flying
)

func (p Phase) String() string {
	switch p {
	case Placing:
		return "placing"
	case Sliding:
		return "sliding"
	case Flying:
		return "flying"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
