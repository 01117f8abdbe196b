package testdata

// @message
type Bitmap struct {
	Data   []byte `wire:"length=Width*Height"`
	Width  uint16
	Height uint16
}
