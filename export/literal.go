package export

import "strings"

// noteReplacer normalizes characters EA stores in an encoded form.
// U+0092 is what a Windows-1252 right single quote becomes when the text
// was decoded as Latin-1; its UTF-8 bytes are 0xC2 0x92.
var noteReplacer = strings.NewReplacer(
	"&#235;", "ë",
	"&#233;", "é",
	"\u0092", "'",
)

// FilterNote applies the note filter to free text. Nil passes through.
func FilterNote(note *string) *string {
	if note == nil {
		return nil
	}
	filtered := noteReplacer.Replace(*note)
	return &filtered
}

// EscapeLongString prepares s for a '''...''' literal by doubling every
// backslash. Newlines are kept as they are.
func EscapeLongString(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// UnescapeLongString reverses EscapeLongString.
func UnescapeLongString(s string) string {
	return strings.ReplaceAll(s, `\\`, `\`)
}

// StripGUID removes one leading '{' and one trailing '}' when s is wrapped
// in both. Anything else is returned unchanged.
func StripGUID(s string) string {
	if len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}' {
		return s[1 : len(s)-1]
	}
	return s
}
