package widgetconf

// ToolbarToken is one element of a toolbar specification.
type ToolbarToken struct {
	Kind TokenKind
	// Name is the button name for TokenButton and empty otherwise.
	Name string
}

// TokenKind discriminates toolbar tokens.
type TokenKind uint8

const (
	// TokenButton is a named button.
	TokenButton TokenKind = iota
	// TokenSeparator is a visual separator between buttons.
	TokenSeparator
	// TokenBlockStart opens a group of buttons.
	TokenBlockStart
	// TokenBlockEnd closes a group of buttons.
	TokenBlockEnd
)

const (
	specDelimiter  = ";"
	specBlockStart = "["
	specBlockEnd   = "]"
	specSeparator  = "-"
)

func (k TokenKind) String() string {
	switch k {
	case TokenButton:
		return "button"
	case TokenSeparator:
		return "separator"
	case TokenBlockStart:
		return "block-start"
	case TokenBlockEnd:
		return "block-end"
	default:
		return "unknown"
	}
}

// Button returns a button token.
func Button(name string) ToolbarToken { return ToolbarToken{Kind: TokenButton, Name: name} }

// Separator returns a separator token.
func Separator() ToolbarToken { return ToolbarToken{Kind: TokenSeparator} }

// BlockStart returns a block start token.
func BlockStart() ToolbarToken { return ToolbarToken{Kind: TokenBlockStart} }

// BlockEnd returns a block end token.
func BlockEnd() ToolbarToken { return ToolbarToken{Kind: TokenBlockEnd} }

// String returns the token as written in a toolbar specification.
func (t ToolbarToken) String() string {
	switch t.Kind {
	case TokenSeparator:
		return specSeparator
	case TokenBlockStart:
		return specBlockStart
	case TokenBlockEnd:
		return specBlockEnd
	default:
		return t.Name
	}
}
