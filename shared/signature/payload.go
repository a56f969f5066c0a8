package signature

import (
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Payload is the signed message. The JSON form is a wire contract shared with the
// verifying server: keys url, time-stamp, client-id in that order, no whitespace.
type Payload struct {
	URL       string `json:"url"`
	TimeStamp string `json:"time-stamp"`
	ClientID  string `json:"client-id"`
}

// Marshal renders p exactly as JSON.stringify renders {url, "time-stamp", "client-id"}.
func Marshal(p Payload) []byte {
	buf := make([]byte, 0, len(p.URL)+len(p.TimeStamp)+len(p.ClientID)+40)

	buf = append(buf, `{"url":`...)
	buf = appendString(buf, p.URL)
	buf = append(buf, `,"time-stamp":`...)
	buf = appendString(buf, p.TimeStamp)
	buf = append(buf, `,"client-id":`...)
	buf = appendString(buf, p.ClientID)
	buf = append(buf, '}')

	return buf
}

// appendString quotes s the way ECMAScript does: only quote, backslash and control
// characters are escaped; HTML characters and U+2028/U+2029 stay literal.
func appendString(buf []byte, s string) []byte {
	buf = append(buf, '"')

	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				buf = append(buf, '\\', '"')
			case '\\':
				buf = append(buf, '\\', '\\')
			case '\b':
				buf = append(buf, '\\', 'b')
			case '\f':
				buf = append(buf, '\\', 'f')
			case '\n':
				buf = append(buf, '\\', 'n')
			case '\r':
				buf = append(buf, '\\', 'r')
			case '\t':
				buf = append(buf, '\\', 't')
			default:
				if c < 0x20 {
					buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
				} else {
					buf = append(buf, c)
				}
			}

			i++

			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf = utf8.AppendRune(buf, utf8.RuneError)
		} else {
			buf = append(buf, s[i:i+size]...)
		}

		i += size
	}

	return append(buf, '"')
}
