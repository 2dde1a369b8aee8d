package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	stderrors "errors"

	"github.com/go-drift/slidertabs/pkg/errors"
	"github.com/go-drift/slidertabs/pkg/rendering"
	"gopkg.in/yaml.v3"
)

// StylingFileName is the optional per-app styling source.
const StylingFileName = "slidertabs.yaml"

// config mirrors SliderTabsThemeData in the YAML styling file. Colors
// are hex strings; the duration is integer milliseconds. Pointers
// distinguish "absent" from an explicit zero.
type config struct {
	BackgroundColor        string `yaml:"backgroundColor,omitempty"`
	BackgroundColorPressed string `yaml:"backgroundColorPressed,omitempty"`
	SliderColor            string `yaml:"sliderColor,omitempty"`
	OnTabTextColor         string `yaml:"onTabTextColor,omitempty"`
	OnSurfaceTextColor     string `yaml:"onSurfaceTextColor,omitempty"`

	LeftTabText  string `yaml:"leftTabText,omitempty"`
	RightTabText string `yaml:"rightTabText,omitempty"`

	AnimationDurationMS *int `yaml:"animationDuration,omitempty"`

	CornerRadius    *float64 `yaml:"cornerRadius,omitempty"`
	SliderInset     *float64 `yaml:"sliderInset,omitempty"`
	PreferredWidth  *float64 `yaml:"preferredWidth,omitempty"`
	PreferredHeight *float64 `yaml:"preferredHeight,omitempty"`
	FontSize        *float64 `yaml:"fontSize,omitempty"`

	Motion          string   `yaml:"motion,omitempty"`
	SpringFrequency *float64 `yaml:"springFrequency,omitempty"`
	SpringDamping   *float64 `yaml:"springDamping,omitempty"`
}

// LoadOptional reads slidertabs.yaml from dir if present and overlays it
// on the default theme. A missing file is not an error; every attribute
// is optional and falls back to its default.
func LoadOptional(dir string) (*SliderTabsThemeData, error) {
	path := filepath.Join(dir, StylingFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return DefaultSliderTabsTheme(), nil
		}
		return nil, &errors.WidgetError{
			Op:   "theme.LoadOptional",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.WidgetError{
			Op:   "theme.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to parse %s: %w", StylingFileName, err),
		}
	}

	return cfg.apply(DefaultSliderTabsTheme())
}

// apply overlays parsed attributes on base.
func (c *config) apply(base *SliderTabsThemeData) (*SliderTabsThemeData, error) {
	out := *base

	colorFields := []struct {
		raw  string
		dest *rendering.Color
	}{
		{c.BackgroundColor, &out.BackgroundColor},
		{c.BackgroundColorPressed, &out.BackgroundColorPressed},
		{c.SliderColor, &out.SliderColor},
		{c.OnTabTextColor, &out.OnTabTextColor},
		{c.OnSurfaceTextColor, &out.OnSurfaceTextColor},
	}
	for _, field := range colorFields {
		if field.raw == "" {
			continue
		}
		color, err := rendering.ParseHexColor(field.raw)
		if err != nil {
			return nil, &errors.WidgetError{
				Op:   "theme.LoadOptional",
				Kind: errors.KindConfig,
				Err:  err,
			}
		}
		*field.dest = color
	}

	if c.LeftTabText != "" {
		out.LeftTabText = c.LeftTabText
	}
	if c.RightTabText != "" {
		out.RightTabText = c.RightTabText
	}
	if c.AnimationDurationMS != nil {
		ms := *c.AnimationDurationMS
		if ms < 0 {
			ms = 0
		}
		out.AnimationDuration = time.Duration(ms) * time.Millisecond
	}
	if c.CornerRadius != nil {
		out.CornerRadius = *c.CornerRadius
	}
	if c.SliderInset != nil {
		out.SliderInset = *c.SliderInset
	}
	if c.PreferredWidth != nil {
		out.PreferredWidth = *c.PreferredWidth
	}
	if c.PreferredHeight != nil {
		out.PreferredHeight = *c.PreferredHeight
	}
	if c.FontSize != nil {
		out.FontSize = *c.FontSize
	}
	switch c.Motion {
	case "":
	case "ease":
		out.Motion = MotionEase
	case "spring":
		out.Motion = MotionSpring
	default:
		return nil, &errors.WidgetError{
			Op:   "theme.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unknown motion %q: want \"ease\" or \"spring\"", c.Motion),
		}
	}
	if c.SpringFrequency != nil {
		out.SpringFrequency = *c.SpringFrequency
	}
	if c.SpringDamping != nil {
		out.SpringDamping = *c.SpringDamping
	}

	return &out, nil
}
