package widgetconf

import "strings"

// FormatOptions serializes options into the explicit configuration form,
// one `value='..' default='true' option='..' help='..'` part per option
// joined by '|'. Keys are only written when set.
//
// Parsing the result yields options equal to the input. Texts containing '|'
// or one of the key prefixes cannot be represented.
func FormatOptions(opts []SelectOption) string {
	var b strings.Builder
	for i, o := range opts {
		if i > 0 {
			b.WriteByte(optionDelimiter)
		}
		writeOptionKey(&b, "value", o.Value)
		if o.Default {
			b.WriteByte(' ')
			writeOptionKey(&b, "default", "true")
		}
		if label, ok := o.RawLabel(); ok {
			b.WriteByte(' ')
			writeOptionKey(&b, "option", label)
		}
		if help, ok := o.Help(); ok {
			b.WriteByte(' ')
			writeOptionKey(&b, "help", help)
		}
	}
	return b.String()
}

func writeOptionKey(b *strings.Builder, key, text string) {
	b.WriteString(key)
	b.WriteString("='")
	b.WriteString(text)
	b.WriteByte('\'')
}
