package parser

import (
	"strings"
	"unicode"
)

// SplitLine implements the line-parsing pipeline of the assembler: strip
// the comment, trim, peel off an optional "label:" prefix, then split the
// remainder into a lower-cased mnemonic and its verbatim operand string.
//
// It never mutates its argument, so callers that keep the original text
// around for the listing (Line.Original) are unaffected by tokenization.
func SplitLine(raw string) (label, mnemonic, operands string) {
	s := stripComment(raw)
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", ""
	}

	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		label = strings.TrimSpace(s[:idx])
		s = strings.TrimSpace(s[idx+1:])
		if s == "" {
			return label, "", ""
		}
	}

	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return label, strings.ToLower(s), ""
	}
	mnemonic = strings.ToLower(s[:idx])
	operands = strings.TrimLeft(s[idx:], " \t")
	return label, mnemonic, operands
}

// stripComment truncates s at the first '#' or ';'. Quotes are not
// recognized, so a '#' or ';' inside a .asciiz string operand also starts
// a comment.
func stripComment(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx >= 0 {
		return s[:idx]
	}
	return s
}

// splitValues splits a comma-separated directive operand list (.byte,
// .word) into trimmed value tokens.
func splitValues(operands string) []string {
	parts := strings.Split(operands, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// splitOperands splits an instruction's operand remainder on commas (and
// trims surrounding whitespace from each token), tolerating the
// whitespace-only separator some hand-written sources use between a
// register and an immediate.
func splitOperands(operands string) []string {
	if strings.TrimSpace(operands) == "" {
		return nil
	}
	if strings.Contains(operands, ",") {
		return splitValues(operands)
	}
	return strings.Fields(operands)
}

// SplitOperands is the exported form used by the encoder.
func SplitOperands(operands string) []string { return splitOperands(operands) }

// stripQuotes removes a single pair of surrounding double quotes, if
// present, from a .asciiz string operand.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// StripQuotes is the exported form used by the encoder.
func StripQuotes(s string) string { return stripQuotes(s) }

// SplitValues is the exported form used by the encoder.
func SplitValues(operands string) []string { return splitValues(operands) }
