package widgetconf

import (
	"slices"
	"strings"
)

// SplitToolbar splits a ';' delimited toolbar specification into raw tokens.
// "[" opens a block, "]" closes one, "-" is a separator and every other
// non-empty entry is a button name.
func SplitToolbar(spec string) []ToolbarToken {
	if strings.TrimSpace(spec) == "" {
		return nil
	}
	parts := strings.Split(spec, specDelimiter)
	tokens := make([]ToolbarToken, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case specBlockStart:
			tokens = append(tokens, BlockStart())
		case specBlockEnd:
			tokens = append(tokens, BlockEnd())
		case specSeparator:
			tokens = append(tokens, Separator())
		default:
			tokens = append(tokens, Button(part))
		}
	}
	return tokens
}

// FormatToolbar writes tokens back into a toolbar specification.
func FormatToolbar(tokens []ToolbarToken) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
		b.WriteString(specDelimiter)
	}
	return b.String()
}

// ToolbarButtons returns the button names of tokens in order.
func ToolbarButtons(tokens []ToolbarToken) []string {
	var names []string
	for _, t := range tokens {
		if t.Kind == TokenButton {
			names = append(names, t.Name)
		}
	}
	return names
}

// WrapToolbar encloses tokens in a single block unless they already start
// with a block start and end with a block end. Empty input stays empty.
func WrapToolbar(tokens []ToolbarToken) []ToolbarToken {
	if len(tokens) == 0 {
		return tokens
	}
	if tokens[0].Kind == TokenBlockStart && tokens[len(tokens)-1].Kind == TokenBlockEnd {
		return tokens
	}
	wrapped := make([]ToolbarToken, 0, len(tokens)+2)
	wrapped = append(wrapped, BlockStart())
	wrapped = append(wrapped, tokens...)
	return append(wrapped, BlockEnd())
}

// toolbarNormalizer carries the scan state of NormalizeToolbar.
type toolbarNormalizer struct {
	rules               VisibilityRules
	out                 []ToolbarToken
	lastSep             int
	lastBlock           int
	buttonInBlockAdded  bool
	buttonSinceSepAdded bool
}

// NormalizeToolbar applies the visibility rules to raw tokens and cleans up
// the result: separators never repeat, never lead and never touch the inside
// of a block boundary, and blocks left without buttons are removed. An
// unclosed block is closed at the end.
func NormalizeToolbar(raw []ToolbarToken, rules VisibilityRules) []ToolbarToken {
	n := toolbarNormalizer{
		rules:     rules,
		out:       make([]ToolbarToken, 0, len(raw)),
		lastSep:   -1,
		lastBlock: -1,
	}
	for _, t := range raw {
		switch t.Kind {
		case TokenBlockStart:
			n.blockStart()
		case TokenBlockEnd:
			n.blockEnd()
		case TokenSeparator:
			n.separator()
		case TokenButton:
			n.button(t.Name)
		}
	}
	n.blockEnd()
	n.dropTrailingSeparator()
	return n.out
}

func (n *toolbarNormalizer) dropTrailingSeparator() {
	if n.lastSep >= 0 && n.lastSep == len(n.out)-1 {
		n.out = n.out[:n.lastSep]
	}
	n.lastSep = -1
}

func (n *toolbarNormalizer) blockStart() {
	if n.lastBlock >= 0 {
		n.blockEnd()
	}
	n.dropTrailingSeparator()
	n.lastBlock = len(n.out)
	n.buttonInBlockAdded = false
	n.buttonSinceSepAdded = false
	n.out = append(n.out, BlockStart())
}

func (n *toolbarNormalizer) blockEnd() {
	if n.lastBlock < 0 {
		return
	}
	n.dropTrailingSeparator()
	if n.buttonInBlockAdded {
		n.out = append(n.out, BlockEnd())
	} else {
		n.out = n.out[:n.lastBlock]
	}
	n.lastBlock = -1
	n.buttonInBlockAdded = false
}

func (n *toolbarNormalizer) separator() {
	if !n.buttonSinceSepAdded {
		return
	}
	n.lastSep = len(n.out)
	n.buttonSinceSepAdded = false
	n.out = append(n.out, Separator())
}

func (n *toolbarNormalizer) button(name string) {
	if !n.rules.Shows(name) {
		return
	}
	n.out = append(n.out, Button(name))
	n.buttonSinceSepAdded = true
	if n.lastBlock >= 0 {
		n.buttonInBlockAdded = true
	}
}

func cloneTokens(tokens []ToolbarToken) []ToolbarToken {
	if tokens == nil {
		return nil
	}
	return slices.Clone(tokens)
}
