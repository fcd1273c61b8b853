package render

// Sink receives a finished frame, one cell at a time.
//
// Buffer.Flush calls Home once, then PutCell for every cell of a row from left
// to right, NextLine between rows and Present after the last row. Sinks must not
// rely on line wrapping: the cursor only moves to the next row on NextLine.
type Sink interface {
	// Home moves the cursor back to the fixed frame origin so the new frame
	// overwrites the previous one in place.
	Home() error
	// PutCell writes one cell at the cursor and advances it by one column.
	PutCell(c Cell) error
	// NextLine moves the cursor to column 0 of the next row.
	NextLine() error
	// Present marks the frame as complete.
	Present() error
}
