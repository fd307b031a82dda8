// Package emit turns an assembled *parser.Program into its two output
// artifacts: the flat binary memory image and the human-readable listing.
package emit

import "github.com/shalan/zx16/parser"

// BuildImage scatters every line's Code[] into a zero-filled byte buffer
// sized to the highest emitted end address, little-endian. It runs after
// both passes and never fails: by the time it runs, pass 1 and pass 2
// have already validated everything that could go wrong.
func BuildImage(prog *parser.Program) []byte {
	maxEnd := 0
	for _, line := range prog.Lines {
		if line.CodeCount == 0 {
			continue
		}
		end := int(line.Address) + line.CodeCount*line.ElementSize
		if end > maxEnd {
			maxEnd = end
		}
	}
	if maxEnd == 0 {
		maxEnd = 1
	}

	image := make([]byte, maxEnd)
	for _, line := range prog.Lines {
		if line.CodeCount == 0 || (line.Section != parser.SectionText && line.Section != parser.SectionData) {
			continue
		}
		for j := 0; j < line.CodeCount; j++ {
			addr := int(line.Address) + j*line.ElementSize
			switch line.ElementSize {
			case 1:
				image[addr] = byte(line.Code[j])
			case 2:
				image[addr] = byte(line.Code[j])
				image[addr+1] = byte(line.Code[j] >> 8)
			}
		}
	}
	return image
}
