package stringutil

import "strings"

// StripANSI removes CSI (\x1b[...) and OSC (\x1b]...BEL or ST) escape
// sequences from s. Other two-byte escapes are dropped as well.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '\x1b' {
			result.WriteByte(s[i])
			i++
			continue
		}
		if i+1 >= len(s) {
			break
		}
		switch s[i+1] {
		case '[':
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7E) {
				i++
			}
			i++ // final byte
		case ']':
			i += 2
			for i < len(s) {
				if s[i] == '\x07' {
					i++
					break
				}
				if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
					i += 2
					break
				}
				i++
			}
		default:
			i += 2
		}
	}

	return result.String()
}
