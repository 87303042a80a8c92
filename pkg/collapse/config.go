package collapse

import "github.com/go-fold/fold/pkg/dom"

// Config is a widget's effective configuration, immutable after
// construction.
type Config struct {
	// AllowMultiple permits several items to be open at once. When false,
	// opening one item closes every other open item first.
	AllowMultiple bool
	// Animated enables transition animation for open and close.
	Animated bool
	// Keyboard enables the keyboard router on trigger elements.
	Keyboard bool
	// CloseOnOutsideClick closes open items when a click lands outside the
	// widget root.
	CloseOnOutsideClick bool
}

// Options carries explicit construction overrides. A nil field leaves the
// corresponding setting to the root's data attributes (or the default);
// a set field always wins over markup.
type Options struct {
	AllowMultiple       *bool
	Animated            *bool
	Keyboard            *bool
	CloseOnOutsideClick *bool
}

// Bool is a convenience for building Options literals.
func Bool(v bool) *bool { return &v }

// Data attributes the configuration is sourced from. A bare attribute
// (empty value) counts as true.
const (
	attrAllowMultiple = "data-allow-multiple"
	attrAnimated      = "data-animated"
	attrKeyboard      = "data-keyboard"
	attrCloseOutside  = "data-close-outside"
)

// configFor resolves the effective configuration: defaults, then the root's
// data attributes, then explicit options, capped by what the behavior
// supports.
func configFor(b Behavior, root *dom.Element, opts *Options) Config {
	cfg := Config{
		AllowMultiple:       false,
		Animated:            true,
		Keyboard:            true,
		CloseOnOutsideClick: false,
	}

	cfg.AllowMultiple = attrBool(root, attrAllowMultiple, cfg.AllowMultiple)
	cfg.Animated = attrBool(root, attrAnimated, cfg.Animated)
	cfg.Keyboard = attrBool(root, attrKeyboard, cfg.Keyboard)
	cfg.CloseOnOutsideClick = attrBool(root, attrCloseOutside, cfg.CloseOnOutsideClick)

	if opts != nil {
		if opts.AllowMultiple != nil {
			cfg.AllowMultiple = *opts.AllowMultiple
		}
		if opts.Animated != nil {
			cfg.Animated = *opts.Animated
		}
		if opts.Keyboard != nil {
			cfg.Keyboard = *opts.Keyboard
		}
		if opts.CloseOnOutsideClick != nil {
			cfg.CloseOnOutsideClick = *opts.CloseOnOutsideClick
		}
	}

	if !b.AllowsMultiple {
		cfg.AllowMultiple = false
	}
	if !b.Keyboard {
		cfg.Keyboard = false
	}
	return cfg
}

func attrBool(el *dom.Element, name string, fallback bool) bool {
	v, ok := el.Attribute(name)
	if !ok {
		return fallback
	}
	switch v {
	case "", "true":
		return true
	case "false":
		return false
	default:
		return fallback
	}
}
