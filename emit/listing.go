package emit

import (
	"fmt"
	"io"

	"github.com/shalan/zx16/parser"
)

// ListingOptions controls the cosmetic details of the listing columns;
// the defaults reproduce spec.md's fixed layout exactly.
type ListingOptions struct {
	CodeColumnWidth int // total width reserved for the code-word column
	AddressDigits   int // hex digits used for the address column
}

// DefaultListingOptions matches the reference listing layout.
func DefaultListingOptions() ListingOptions {
	return ListingOptions{CodeColumnWidth: 12, AddressDigits: 4}
}

// WriteListing writes the two-pass assembly listing: a header, a rule,
// then one record per source line interleaving its resolved address and
// encoded machine code with the verbatim source text.
func WriteListing(w io.Writer, prog *parser.Program, opts ListingOptions) error {
	if _, err := fmt.Fprintln(w, "Line   Address   Machine Code    Source"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "-----------------------------------------------------"); err != nil {
		return err
	}

	for _, line := range prog.Lines {
		addrCol := fmt.Sprintf("%*s", opts.AddressDigits+2, "")
		if line.Section != parser.SectionNone {
			addrCol = fmt.Sprintf("0x%0*X", opts.AddressDigits, line.Address)
		}

		codeCol := formatCode(line, opts.CodeColumnWidth)

		if _, err := fmt.Fprintf(w, "%4d   %-*s   %-*s %s\n",
			line.LineNo, opts.AddressDigits+2, addrCol, opts.CodeColumnWidth, codeCol, line.Original); err != nil {
			return err
		}
	}
	return nil
}

// formatCode renders a line's Code[] as space-separated hex words, 2
// digits per byte-sized slot or 4 digits per word-sized slot. It does not
// pad; WriteListing pads the result to the code column width.
func formatCode(line *parser.Line, width int) string {
	if line.CodeCount == 0 {
		return ""
	}
	digits := 4
	if line.ElementSize == 1 {
		digits = 2
	}
	out := ""
	for j := 0; j < line.CodeCount; j++ {
		if j > 0 {
			out += " "
		}
		out += fmt.Sprintf("%0*X", digits, line.Code[j])
	}
	return out
}
