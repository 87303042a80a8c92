// Package collapse implements the interactive collapsible-panel runtime:
// it attaches open/close behavior to declarative markup, keeps
// accessibility attributes consistent with visual state, animates
// transitions through the document's style engine, and extends itself to
// markup inserted after initial load.
//
// One generic widget implementation serves every collapsible component
// shape; a [Behavior] capability record parameterizes the selectors and
// capabilities, so the multi-item accordion and the single-panel disclosure
// components share the same state machine.
package collapse

import "time"

// Behavior is the capability record for one widget family: the selector
// contract it binds to and the capabilities its markup supports.
type Behavior struct {
	// Name is the block base class, e.g. "accordion". Structural parts are
	// located by fixed suffixes under it: Name__item, Name__trigger,
	// Name__content, Name__close.
	Name string

	// ActivationAttr is the attribute that marks a root element for this
	// behavior, e.g. "data-accordion".
	ActivationAttr string

	// EventNamespace prefixes emitted event types ("accordion:opened").
	// Defaults to Name when empty.
	EventNamespace string

	// AllowsMultiple reports whether the markup shape supports holding more
	// than one panel open. When false, any allow-multiple configuration is
	// ignored.
	AllowsMultiple bool

	// Keyboard reports whether keyboard routing applies to this family.
	Keyboard bool

	// AnimationSupported reports whether the family's stylesheet declares
	// native transitions. When false the coordinator commits terminal state
	// after FallbackDelay instead of waiting for a transition-completion
	// notification.
	AnimationSupported bool

	// FallbackDelay is the fixed commit delay used when AnimationSupported
	// is false. It should match the stylesheet's declared duration.
	FallbackDelay time.Duration
}

// Accordion returns the behavior for the multi-item accordion component.
func Accordion() Behavior {
	return Behavior{
		Name:               "accordion",
		ActivationAttr:     "data-accordion",
		AllowsMultiple:     true,
		Keyboard:           true,
		AnimationSupported: true,
	}
}

// Disclosure returns the behavior for generic single-panel interactive
// components: one trigger/content pair directly under the root, no native
// transition declarations, fixed-delay commit.
func Disclosure() Behavior {
	return Behavior{
		Name:               "disclosure",
		ActivationAttr:     "data-disclosure",
		AllowsMultiple:     false,
		Keyboard:           true,
		AnimationSupported: false,
		FallbackDelay:      300 * time.Millisecond,
	}
}

func (b Behavior) namespace() string {
	if b.EventNamespace != "" {
		return b.EventNamespace
	}
	return b.Name
}

func (b Behavior) itemClass() string    { return b.Name + "__item" }
func (b Behavior) triggerClass() string { return b.Name + "__trigger" }
func (b Behavior) contentClass() string { return b.Name + "__content" }
func (b Behavior) closeClass() string   { return b.Name + "__close" }
