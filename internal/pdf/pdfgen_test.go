package pdf

import (
	"bytes"
	"fmt"
	"strings"
)

// Test documents are generated rather than checked in as binaries: a handful
// of uncompressed objects with a correct cross-reference table is all the
// decoder needs, and generated bytes keep the fixtures reviewable.

const (
	regularFace = "F1"
	boldFace    = "F2"
)

// textOp renders one string at a position in the given face at 10pt.
func textOp(face string, x, y float64, s string) string {
	var escaped strings.Builder
	for _, r := range s {
		if r == '(' || r == ')' || r == '\\' {
			escaped.WriteByte('\\')
		}
		escaped.WriteRune(r)
	}
	return fmt.Sprintf("BT /%s 10 Tf 1 0 0 1 %g %g Tm (%s) Tj ET", face, x, y, escaped.String())
}

// buildPDF assembles a complete single-xref PDF, one content stream per page.
// Both faces map every code in 32..126 to a width of 500, so at 10pt each
// glyph advances exactly 5 points.
func buildPDF(pages [][]string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := map[int]int{}
	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	n := len(pages)
	fontRegular := 3 + 2*n
	fontBold := fontRegular + 1

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, n)
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), n))

	for i, ops := range pages {
		pageObj := 3 + 2*i
		contentObj := pageObj + 1
		writeObj(pageObj, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] "+
				"/Resources << /Font << /%s %d 0 R /%s %d 0 R >> >> /Contents %d 0 R >>",
			regularFace, fontRegular, boldFace, fontBold, contentObj))

		stream := strings.Join(ops, "\n")
		writeObj(contentObj, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream",
			len(stream), stream))
	}

	widths := strings.TrimSuffix(strings.Repeat("500 ", 95), " ")
	fontDict := func(base string) string {
		return fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s "+
			"/Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [%s] >>",
			base, widths)
	}
	writeObj(fontRegular, fontDict("Helvetica"))
	writeObj(fontBold, fontDict("Helvetica-Bold"))

	xrefOffset := buf.Len()
	size := fontBold + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num < size; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		size, xrefOffset)

	return buf.Bytes()
}
