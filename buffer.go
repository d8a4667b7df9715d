package minicalc

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Buffer is the expression line of a calculator. Keys append to it one token
// at a time without any checking; whether the text makes sense is decided only
// when it is evaluated. The zero value is an empty buffer ready to use. It is
// not safe to use a Buffer concurrently.
type Buffer struct {
	text []byte
}

// Append adds a token's text to the end of the buffer.
func (b *Buffer) Append(t Token) {
	b.text = append(b.text, t.String()...)
}

// DeleteLast removes the last character of the buffer. It does nothing if the
// buffer is empty.
func (b *Buffer) DeleteLast() {
	_, sz := utf8.DecodeLastRune(b.text)
	b.text = b.text[:len(b.text)-sz]
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = b.text[:0]
}

// Replace sets the content of the buffer to text.
func (b *Buffer) Replace(text string) {
	b.text = append(b.text[:0], text...)
}

// Current returns the text in the buffer.
func (b *Buffer) Current() string {
	return string(b.text)
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return utf8.RuneCount(b.text)
}

// Evaluate evaluates the buffer's expression. On success, the buffer's text is
// replaced with the formatted result, so that further keys continue from it.
// On failure, the buffer is unchanged and the error matches either
// ErrMalformed or ErrDivisionByZero.
func (b *Buffer) Evaluate() (float64, error) {
	r, err := EvalString(b.Current())
	if err != nil {
		return 0, err
	}
	b.Replace(Format(r))
	return r, nil
}

// Press applies a key to the buffer. Only Equals can fail, with the error from
// Evaluate.
func (b *Buffer) Press(k Key) error {
	switch k.Action {
	case Insert:
		b.Append(k.Token)
	case Delete:
		b.DeleteLast()
	case Clear:
		b.Clear()
	case Equals:
		_, err := b.Evaluate()
		return err
	default:
		return errors.Errorf("minicalc: unknown key action %v", k.Action)
	}
	return nil
}
