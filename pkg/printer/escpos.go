package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command bytes
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width + double height
)

// Job builds an ESC/POS byte stream for a thermal receipt.
// Widths are counted in runes so Indonesian product names with multi-byte
// characters still pad correctly. 32 columns fits 58mm paper.
type Job struct {
	buf   bytes.Buffer
	width int
}

// NewJob creates a print job with the given character width, sending the
// printer initialize command first.
func NewJob(charWidth int) *Job {
	if charWidth <= 0 {
		charWidth = 32
	}
	j := &Job{width: charWidth}
	j.buf.Write([]byte{esc, '@'})
	return j
}

// Width returns the printable width in characters.
func (j *Job) Width() int {
	return j.width
}

// Align sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (j *Job) Align(align int) *Job {
	j.buf.Write([]byte{esc, 'a', byte(align)})
	return j
}

// Bold enables or disables emphasized text.
func (j *Job) Bold(on bool) *Job {
	b := byte(0)
	if on {
		b = 1
	}
	j.buf.Write([]byte{esc, 'E', b})
	return j
}

// Size sets the character size (FontNormal or FontDouble).
func (j *Job) Size(size byte) *Job {
	j.buf.Write([]byte{gs, '!', size})
	return j
}

// Line writes a line of text followed by a line feed.
func (j *Job) Line(s string) *Job {
	j.buf.WriteString(s)
	j.buf.WriteByte(lf)
	return j
}

// Linef writes a formatted line of text.
func (j *Job) Linef(format string, args ...interface{}) *Job {
	return j.Line(fmt.Sprintf(format, args...))
}

// Rule prints a full-width dashed separator.
func (j *Job) Rule() *Job {
	j.buf.WriteString(strings.Repeat("-", j.width))
	j.buf.WriteByte(lf)
	return j
}

// Pair prints a left-aligned key and right-aligned value on one line.
// When the pair overflows the width, at least one space is kept between them.
func (j *Job) Pair(key, value string) *Job {
	pad := j.width - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
	if pad < 1 {
		pad = 1
	}
	j.buf.WriteString(key)
	j.buf.WriteString(strings.Repeat(" ", pad))
	j.buf.WriteString(value)
	j.buf.WriteByte(lf)
	return j
}

// Feed advances the paper n lines.
func (j *Job) Feed(n int) *Job {
	for i := 0; i < n; i++ {
		j.buf.WriteByte(lf)
	}
	return j
}

// Cut sends the partial paper cut command.
func (j *Job) Cut() *Job {
	j.buf.Write([]byte{gs, 'V', 0x01})
	return j
}

// Bytes returns the accumulated ESC/POS byte stream.
func (j *Job) Bytes() []byte {
	return j.buf.Bytes()
}
