package widgetconf

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults holds system-wide widget configurations keyed by widget class.
//
// The file format is:
//
//	widgets:
//	  html:
//	    configuration: "link,anchor,buttonbar:[;bold;italic;]"
//	  select:
//	    configuration: "a*|b|c"
type Defaults struct {
	Widgets map[string]WidgetDefaults `yaml:"widgets"`
}

// WidgetDefaults is the system-wide configuration of one widget class.
type WidgetDefaults struct {
	Configuration string `yaml:"configuration"`
}

// ParseDefaults decodes a defaults document.
func ParseDefaults(data []byte) (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse widget defaults: %w", err)
	}
	return &d, nil
}

// LoadDefaults reads a defaults file.
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read widget defaults: %w", err)
	}
	return ParseDefaults(data)
}

// LoadDefaultsOptional reads a defaults file if present and returns empty
// defaults otherwise.
func LoadDefaultsOptional(path string) (*Defaults, error) {
	d, err := LoadDefaults(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Defaults{}, nil
		}
		return nil, err
	}
	return d, nil
}

// WidgetConfiguration implements DefaultsSource. An exact class name wins;
// otherwise names match case insensitively, the smallest sorted name first.
// Blank configurations count as absent.
func (d *Defaults) WidgetConfiguration(class string) (string, bool) {
	if d == nil {
		return "", false
	}
	w, ok := d.Widgets[class]
	if !ok {
		names := make([]string, 0, len(d.Widgets))
		for name := range d.Widgets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if strings.EqualFold(name, class) {
				w, ok = d.Widgets[name], true
				break
			}
		}
	}
	if !ok || strings.TrimSpace(w.Configuration) == "" {
		return "", false
	}
	return w.Configuration, true
}
