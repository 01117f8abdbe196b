package testdata

type Window uint32

// Point is a location on screen.
//
// @message
type Point struct {
	X int16
	Y int16
}

// @message kind=request opcode=43 reply=GetInputFocusBody
type GetInputFocus struct {
	_ struct{} `wire:"pad=1"`
}

// GetInputFocusBody carries the focused window.
//
// @message kind=reply
type GetInputFocusBody struct {
	Focus Window
}

// Expose reports damaged regions of a window.
// Regions arrive in no particular order.
//
// @message kind=event opcode=12
type Expose struct {
	Window Window
	_      uint16   `wire:"len=Rects"`
	_      struct{} `wire:"pad=2"`
	Rects  []Point  `wire:"pad=2"`
}

// No annotation - should be skipped
type IgnoredType struct {
	Field uint32
}
