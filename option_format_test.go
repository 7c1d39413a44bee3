package widgetconf

import (
	"slices"
	"testing"
)

func TestFormatOptionsExplicitForm(t *testing.T) {
	opts := []SelectOption{
		NewSelectOption("x", true).WithLabel("X"),
		NewSelectOption("y", false).WithHelp("why"),
		NewSelectOption("z", false),
	}
	got := FormatOptions(opts)
	want := "value='x' default='true' option='X'|value='y' help='why'|value='z'"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if FormatOptions(nil) != "" {
		t.Fatalf("expected empty string for no options")
	}
}

func TestFormatOptionsRoundTrip(t *testing.T) {
	inputs := []string{
		"1:One|2:Two",
		"a*|b|c",
		"a default='true'|b default='true'",
		"de:Deutsch*|en:English|fr help='French' option=''",
		"value=' padded ' option='P' help='h'",
		":empty value|x*",
		"ok|default='true'|help='only help'",
		"dk:Don't know|y:Yes",
		"value='it's' option='rock'n'roll' help='ends in quote''",
		"",
	}
	for _, input := range inputs {
		first := ParseOptions(input, quiet())
		second := ParseOptions(FormatOptions(first), quiet())
		if !slices.Equal(first, second) {
			t.Fatalf("%q: round trip changed options:\n first=%+v\nsecond=%+v", input, first, second)
		}
	}
}
