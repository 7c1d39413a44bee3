package widgetconf

// SelectOption is one selectable choice of a select style widget.
//
// Label and help text are optional. An absent label is distinct from an
// empty one: Label falls back to Value only when no label was given.
type SelectOption struct {
	Value   string
	Default bool

	label    string
	hasLabel bool
	help     string
	hasHelp  bool
}

// NewSelectOption returns an option with the given value and no label or help.
func NewSelectOption(value string, isDefault bool) SelectOption {
	return SelectOption{Value: value, Default: isDefault}
}

// WithLabel returns a copy of o carrying label.
func (o SelectOption) WithLabel(label string) SelectOption {
	o.label = label
	o.hasLabel = true
	return o
}

// WithHelp returns a copy of o carrying help text.
func (o SelectOption) WithHelp(help string) SelectOption {
	o.help = help
	o.hasHelp = true
	return o
}

// Label returns the display text, falling back to Value when no label is set.
func (o SelectOption) Label() string {
	if o.hasLabel {
		return o.label
	}
	return o.Value
}

// RawLabel returns the label as configured and whether one was configured.
func (o SelectOption) RawLabel() (string, bool) {
	return o.label, o.hasLabel
}

// Help returns the help text and whether one was configured.
func (o SelectOption) Help() (string, bool) {
	return o.help, o.hasHelp
}

// DefaultOption returns the option marked as default, if any.
func DefaultOption(opts []SelectOption) (SelectOption, bool) {
	for _, o := range opts {
		if o.Default {
			return o, true
		}
	}
	return SelectOption{}, false
}

// FindOption returns the first option whose value equals value.
func FindOption(opts []SelectOption, value string) (SelectOption, bool) {
	for _, o := range opts {
		if o.Value == value {
			return o, true
		}
	}
	return SelectOption{}, false
}
