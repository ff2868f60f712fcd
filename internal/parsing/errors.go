package parsing

import "fmt"

// InsufficientTextError signals that extracted text is too short to score
// meaningfully, which almost always means upstream extraction failed (empty
// document or scanned image).
type InsufficientTextError struct {
	Length  int
	Minimum int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("insufficient text: %d characters after normalization (minimum %d)", e.Length, e.Minimum)
}

// CheckLength returns an InsufficientTextError if normalized text is shorter
// than MinTextLength.
func CheckLength(text string) error {
	if len(text) < MinTextLength {
		return &InsufficientTextError{Length: len(text), Minimum: MinTextLength}
	}
	return nil
}
