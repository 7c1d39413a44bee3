package widgetconf

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedFragment reports an option part without a value.
	ErrMalformedFragment = errors.New("malformed option fragment")
	// ErrDuplicateDefault reports a default after the first one.
	ErrDuplicateDefault = errors.New("duplicate default option")
	// ErrUnknownButton reports a toolbar button missing from the catalog.
	ErrUnknownButton = errors.New("unknown toolbar button")
	// ErrUnbalancedBlock reports a block end without start or a block left open.
	ErrUnbalancedBlock = errors.New("unbalanced toolbar block")
)

// FragmentError describes one problem found in a configuration string.
type FragmentError struct {
	// Index is the position of the fragment in its delimited list.
	Index    int
	Fragment string
	Reason   string
	Err      error
}

func (e *FragmentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("fragment %d %q: %v", e.Index, e.Fragment, e.Err)
	}
	return fmt.Sprintf("fragment %d %q: %v: %s", e.Index, e.Fragment, e.Err, e.Reason)
}

func (e *FragmentError) Unwrap() error {
	return e.Err
}

// ValidateOptions returns every problem ParseOptions would silently resolve:
// discarded fragments and defaults after the first. The result is nil for a
// clean input and otherwise joins *FragmentError values.
func ValidateOptions(input string) error {
	_, problems := parseOptionList(input)
	return joinFragmentErrors(problems)
}

// ValidateToolbar reports unknown button names and unbalanced blocks in a
// toolbar specification. NormalizeToolbar accepts such input; this check is
// for callers that want strict configurations.
func ValidateToolbar(spec string) error {
	var problems []*FragmentError
	open := -1
	for i, t := range SplitToolbar(spec) {
		switch t.Kind {
		case TokenBlockStart:
			if open >= 0 {
				problems = append(problems, &FragmentError{Index: open, Fragment: specBlockStart, Reason: "block not closed", Err: ErrUnbalancedBlock})
			}
			open = i
		case TokenBlockEnd:
			if open < 0 {
				problems = append(problems, &FragmentError{Index: i, Fragment: specBlockEnd, Reason: "no open block", Err: ErrUnbalancedBlock})
			}
			open = -1
		case TokenButton:
			if !IsKnownButton(t.Name) {
				problems = append(problems, &FragmentError{Index: i, Fragment: t.Name, Err: ErrUnknownButton})
			}
		}
	}
	if open >= 0 {
		problems = append(problems, &FragmentError{Index: open, Fragment: specBlockStart, Reason: "block not closed", Err: ErrUnbalancedBlock})
	}
	return joinFragmentErrors(problems)
}

func joinFragmentErrors(problems []*FragmentError) error {
	if len(problems) == 0 {
		return nil
	}
	errs := make([]error, len(problems))
	for i, p := range problems {
		errs[i] = p
	}
	return errors.Join(errs...)
}
