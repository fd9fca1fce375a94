package receipt

import (
	"html"
	"strings"
)

// documentHead is the fixed prologue of every receipt document. The layout is
// sized for 58mm thermal paper so the same markup prints and exports to PDF
// identically. Styling lives entirely here; composers only emit content.
const documentHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { margin: 0; padding: 8px; font-family: 'Courier New', monospace; font-size: 12px; color: #000; }
  .receipt { width: 58mm; margin: 0 auto; }
  .center { text-align: center; }
  .store-name { font-size: 14px; font-weight: bold; text-align: center; }
  .sep { border-top: 1px dashed #000; margin: 6px 0; }
  .row { display: flex; justify-content: space-between; }
  .item { margin-bottom: 4px; }
  .item-name { font-weight: bold; }
  .item-note { font-size: 11px; }
  .total { font-weight: bold; font-size: 13px; }
  .footer { text-align: center; margin-top: 8px; }
</style>
</head>
<body>
<div class="receipt">
`

const documentFoot = `</div>
</body>
</html>
`

// document accumulates escaped receipt markup. It mirrors the fluent builder
// used for ESC/POS output in pkg/printer, but produces HTML.
type document struct {
	b strings.Builder
}

func newDocument() *document {
	d := &document{}
	d.b.WriteString(documentHead)
	return d
}

// line writes a single escaped text line with the given class.
func (d *document) line(class, text string) *document {
	d.b.WriteString(`<div class="` + class + `">` + html.EscapeString(text) + "</div>\n")
	return d
}

// keyValue writes a left key and right-aligned value on one row.
func (d *document) keyValue(class, key, value string) *document {
	d.b.WriteString(`<div class="row ` + class + `"><span>` +
		html.EscapeString(key) + `</span><span>` +
		html.EscapeString(value) + "</span></div>\n")
	return d
}

// separator writes a full-width dashed rule.
func (d *document) separator() *document {
	d.b.WriteString("<div class=\"sep\"></div>\n")
	return d
}

// open starts a grouping block; close ends the most recent one.
func (d *document) open(class string) *document {
	d.b.WriteString(`<div class="` + class + "\">\n")
	return d
}

func (d *document) close() *document {
	d.b.WriteString("</div>\n")
	return d
}

// finish closes the document and returns the complete markup.
func (d *document) finish() string {
	d.b.WriteString(documentFoot)
	return d.b.String()
}
