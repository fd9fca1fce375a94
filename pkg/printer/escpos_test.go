package printer

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewJobStartsWithInit(t *testing.T) {
	job := NewJob(32)
	data := job.Bytes()
	if !bytes.HasPrefix(data, []byte{esc, '@'}) {
		t.Fatalf("job does not start with initialize command: %v", data[:2])
	}
}

func TestNewJobDefaultsWidth(t *testing.T) {
	if got := NewJob(0).Width(); got != 32 {
		t.Errorf("Width() = %d, want 32", got)
	}
	if got := NewJob(48).Width(); got != 48 {
		t.Errorf("Width() = %d, want 48", got)
	}
}

func TestPairPadsToWidth(t *testing.T) {
	job := NewJob(32)
	job.Pair("Subtotal", "Rp 75.000")

	line := lastLine(t, job)
	if utf8.RuneCountInString(line) != 32 {
		t.Errorf("line width = %d, want 32: %q", utf8.RuneCountInString(line), line)
	}
	if !strings.HasPrefix(line, "Subtotal") {
		t.Errorf("key not left-aligned: %q", line)
	}
	if !strings.HasSuffix(line, "Rp 75.000") {
		t.Errorf("value not right-aligned: %q", line)
	}
}

func TestPairKeepsSeparatorWhenOverflowing(t *testing.T) {
	job := NewJob(10)
	job.Pair("Voucher Game Mobile Legends", "Rp 25.000")

	line := lastLine(t, job)
	if !strings.Contains(line, " Rp 25.000") {
		t.Errorf("overflowing pair lost its separator space: %q", line)
	}
}

func TestLineTextUnaffectedByFormatting(t *testing.T) {
	job := NewJob(32)
	job.Align(AlignCenter).Bold(true).Size(FontDouble).Line("Konter Jaya")

	if got := lastLine(t, job); got != "Konter Jaya" {
		t.Errorf("line text = %q, want %q", got, "Konter Jaya")
	}
}

func TestRuleMatchesWidth(t *testing.T) {
	job := NewJob(16)
	job.Rule()

	line := lastLine(t, job)
	if line != strings.Repeat("-", 16) {
		t.Errorf("Rule() = %q, want 16 dashes", line)
	}
}

func TestCutAppendsPartialCut(t *testing.T) {
	job := NewJob(32)
	job.Cut()
	if !bytes.HasSuffix(job.Bytes(), []byte{gs, 'V', 0x01}) {
		t.Error("Cut() did not append the partial cut command")
	}
}

// lastLine returns the text between the last two line feeds in the job
// buffer, with ESC/POS command sequences stripped so only printable text is
// measured.
func lastLine(t *testing.T, j *Job) string {
	t.Helper()
	parts := bytes.Split(stripCommands(j.Bytes()), []byte{lf})
	if len(parts) < 2 {
		t.Fatal("job has no complete lines")
	}
	return string(parts[len(parts)-2])
}

// stripCommands removes the command sequences the builder emits: ESC @
// (two bytes) and the three-byte ESC a/E and GS !/V commands.
func stripCommands(data []byte) []byte {
	var out []byte
	for i := 0; i < len(data); {
		switch data[i] {
		case esc:
			if i+1 < len(data) && data[i+1] == '@' {
				i += 2
			} else {
				i += 3
			}
		case gs:
			i += 3
		default:
			out = append(out, data[i])
			i++
		}
	}
	return out
}
