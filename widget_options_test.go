package widgetconf

import (
	"bytes"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"testing"
)

const sampleWidgetConfig = "height:400px, link ,anchor,hidebuttons:bold;italic,stylesxml:/system/styles.xml," +
	"formatselect.options:p;h1;h2,fullpage,buttonbar:[;bold;italic;-;link;unlink;style;]"

func TestParseWidgetOptions(t *testing.T) {
	wo := ParseWidgetOptions(sampleWidgetConfig, quiet())
	if wo.Height != "400px" {
		t.Fatalf("unexpected height %q", wo.Height)
	}
	if wo.StylesXMLPath != "/system/styles.xml" || wo.StylesFormatPath != "" {
		t.Fatalf("unexpected styles: %q %q", wo.StylesXMLPath, wo.StylesFormatPath)
	}
	if !slices.Equal(wo.FormatSelect, []string{"p", "h1", "h2"}) {
		t.Fatalf("unexpected formats %v", wo.FormatSelect)
	}
	if !wo.FullPage {
		t.Fatalf("expected full page flag")
	}
	if !slices.Equal(wo.Additional.Names(), []string{"anchor", "link"}) {
		t.Fatalf("unexpected additional buttons %v", wo.Additional.Names())
	}
	if !slices.Equal(wo.Hidden.Names(), []string{"bold", "italic"}) {
		t.Fatalf("unexpected hidden buttons %v", wo.Hidden.Names())
	}
	if wo.ButtonBar != "[;bold;italic;-;link;unlink;style;]" {
		t.Fatalf("unexpected button bar %q", wo.ButtonBar)
	}
}

func TestWidgetOptionsString(t *testing.T) {
	wo := ParseWidgetOptions(sampleWidgetConfig, quiet())
	want := "height:400px,stylesxml:/system/styles.xml,formatselect.options:p;h1;h2,fullpage," +
		"anchor,link,hidebuttons:bold;italic,buttonbar:[;bold;italic;-;link;unlink;style;]"
	if got := wo.String(); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
	again := ParseWidgetOptions(wo.String(), quiet())
	if !reflect.DeepEqual(again, wo) {
		t.Fatalf("round trip changed options:\n%+v\n%+v", wo, again)
	}
	if ParseWidgetOptions("", quiet()).String() != "" {
		t.Fatalf("expected empty configuration")
	}
}

func TestWidgetOptionsToolbar(t *testing.T) {
	wo := ParseWidgetOptions(sampleWidgetConfig, quiet())
	got := FormatToolbar(BuildToolbar(wo.ToolbarRequest("html", nil)))
	if got != "[;link;unlink;style;];" {
		t.Fatalf("unexpected toolbar %q", got)
	}
}

func TestParseWidgetOptionsUnknownKey(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	wo := ParseWidgetOptions("table,colour:red", WithLogger(logger))
	if !wo.Additional.Has("table") || len(wo.Additional) != 1 {
		t.Fatalf("unexpected additional buttons %v", wo.Additional.Names())
	}
	if !strings.Contains(buf.String(), "widget option ignored") || !strings.Contains(buf.String(), "colour:red") {
		t.Fatalf("expected diagnostic, got %q", buf.String())
	}
}
