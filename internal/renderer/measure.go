package renderer

// Measurement is a layout negotiation result: the minimum and maximum
// cell widths the rendered tree wants from its container.
type Measurement struct {
	Min int
	Max int
}

// Measure bounds a previously rendered width by the available width.
// Both bounds equal min(renderedWidth, maxAvailable); a tree asks for
// exactly the width it last rendered at. Callers that have not
// rendered yet pass 0.
func Measure(renderedWidth, maxAvailable int) Measurement {
	w := renderedWidth
	if w > maxAvailable {
		w = maxAvailable
	}
	return Measurement{Min: w, Max: w}
}
