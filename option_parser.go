package widgetconf

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode"
)

const optionDelimiter = '|'

type optionKey uint8

const (
	keyPositional optionKey = iota
	keyValue
	keyDefault
	keyOption
	keyHelp
)

var optionKeyPrefixes = [...]struct {
	key    optionKey
	prefix string
}{
	{keyValue, "value='"},
	{keyDefault, "default='"},
	{keyOption, "option='"},
	{keyHelp, "help='"},
}

func (k optionKey) String() string {
	switch k {
	case keyValue:
		return "value"
	case keyDefault:
		return "default"
	case keyOption:
		return "option"
	case keyHelp:
		return "help"
	default:
		return "positional"
	}
}

// optionField is one production of an option part: either the positional
// span before the first key, or a keyed field.
type optionField struct {
	key  optionKey
	text string
	pos  int
}

// keyAt returns the key whose prefix starts at s[i:].
func keyAt(s string, i int) (optionKey, int, bool) {
	for _, k := range optionKeyPrefixes {
		if strings.HasPrefix(s[i:], k.prefix) {
			return k.key, len(k.prefix), true
		}
	}
	return keyPositional, 0, false
}

// nextKey returns the position of the first key prefix at or after from, or -1.
func nextKey(s string, from int) int {
	for i := from; i < len(s); i++ {
		if _, _, ok := keyAt(s, i); ok {
			return i
		}
	}
	return -1
}

// scanKeyText reads a keyed field's text starting at from. The text ends where
// the next key begins or at the end of the part; trailing whitespace and one
// closing quote are dropped, so quotes inside the text are kept.
func scanKeyText(s string, from int) (string, int) {
	end := nextKey(s, from)
	if end < 0 {
		end = len(s)
	}
	text := strings.TrimRightFunc(s[from:end], unicode.IsSpace)
	return strings.TrimSuffix(text, "'"), end
}

// scanOptionPart splits a trimmed part into its productions in input order.
func scanOptionPart(part string) []optionField {
	fields := make([]optionField, 0, 4)
	i := nextKey(part, 0)
	switch {
	case i < 0:
		return append(fields, optionField{key: keyPositional, text: part})
	case i > 0:
		fields = append(fields, optionField{key: keyPositional, text: strings.TrimSpace(part[:i])})
	}
	for i >= 0 && i < len(part) {
		key, n, _ := keyAt(part, i)
		text, next := scanKeyText(part, i+n)
		fields = append(fields, optionField{key: key, text: text, pos: i})
		i = nextKey(part, next)
	}
	return fields
}

// optionFromFields assembles an option from the productions of one part.
// The returned reason is non-empty when the part has no value.
func optionFromFields(fields []optionField) (SelectOption, string) {
	var positional, value, def, label, help *optionField
	for i := range fields {
		f := &fields[i]
		var slot **optionField
		switch f.key {
		case keyPositional:
			slot = &positional
		case keyValue:
			slot = &value
		case keyDefault:
			slot = &def
		case keyOption:
			slot = &label
		case keyHelp:
			slot = &help
		}
		if *slot == nil {
			*slot = f
		}
	}

	var opt SelectOption
	switch {
	case value != nil:
		opt.Value = value.text
	case positional != nil:
		text := positional.text
		var shortLabel string
		hasShortLabel := false
		if cut, ok := strings.CutSuffix(text, "*"); ok {
			opt.Default = true
			text = strings.TrimSpace(cut)
		}
		if idx := strings.IndexByte(text, ':'); idx >= 0 {
			shortLabel = strings.TrimSpace(text[idx+1:])
			hasShortLabel = true
			text = strings.TrimSpace(text[:idx])
			if cut, ok := strings.CutSuffix(text, "*"); ok {
				opt.Default = true
				text = strings.TrimSpace(cut)
			}
		}
		opt.Value = text
		if hasShortLabel {
			opt = opt.WithLabel(shortLabel)
		}
	default:
		return SelectOption{}, "no value before " + fields[0].key.String() + " key"
	}

	if def != nil {
		opt.Default = strings.EqualFold(def.text, "true")
	}
	if label != nil {
		opt = opt.WithLabel(label.text)
	}
	if help != nil {
		opt = opt.WithHelp(help.text)
	}
	return opt, ""
}

// parseOptionList parses input and reports every discarded fragment and every
// default that lost to an earlier one.
func parseOptionList(input string) ([]SelectOption, []*FragmentError) {
	if strings.TrimSpace(input) == "" {
		return []SelectOption{}, nil
	}
	parts := strings.Split(input, string(optionDelimiter))
	opts := make([]SelectOption, 0, len(parts))
	indexes := make([]int, 0, len(parts))
	var problems []*FragmentError
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		opt, reason := optionFromFields(scanOptionPart(part))
		if reason != "" {
			problems = append(problems, &FragmentError{Index: i, Fragment: part, Reason: reason, Err: ErrMalformedFragment})
			continue
		}
		opts = append(opts, opt)
		indexes = append(indexes, i)
	}
	seenDefault := false
	for i := range opts {
		if !opts[i].Default {
			continue
		}
		if seenDefault {
			opts[i].Default = false
			problems = append(problems, &FragmentError{Index: indexes[i], Fragment: opts[i].Value, Reason: "default already set", Err: ErrDuplicateDefault})
			continue
		}
		seenDefault = true
	}
	return opts, problems
}

// ParseOptions parses a select widget configuration string into options.
//
// Parts are separated by '|'. Each part holds any of the keys value='..',
// default='..', option='..' and help='..'. Without an explicit value key the
// text before the first key is the value; a trailing '*' marks it as default
// and a ':' separates the value from its label. Parts without a value are
// dropped and logged. At most one option is returned as default: the first.
func ParseOptions(input string, opts ...ParseOption) []SelectOption {
	cfg := newParseConfig(opts)
	result, problems := parseOptionList(input)
	for _, p := range problems {
		level := slog.LevelInfo
		if errors.Is(p.Err, ErrDuplicateDefault) {
			level = slog.LevelDebug
		}
		cfg.logger.Log(context.Background(), level, "widgetconf: option fragment ignored",
			slog.Int("index", p.Index),
			slog.String("fragment", p.Fragment),
			slog.String("reason", p.Reason),
		)
	}
	return result
}
