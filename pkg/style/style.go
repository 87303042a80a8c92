// Package style defines the style contract the Fold runtime consumes: the
// state class names widgets toggle, and the transition rules the document's
// style engine uses to decide which inline-style changes animate.
//
// The runtime performs no measurement of timing values itself. It declares
// which properties transition and for how long, and relies on the style
// engine's completion notification, mirroring how the original markup relied
// on its stylesheet's transition declarations.
package style

import "time"

// State class names shared between the runtime and the host stylesheet.
const (
	// ClassActive marks an open item (trigger and item root).
	ClassActive = "is-active"
	// ClassDisabled marks a disabled widget root.
	ClassDisabled = "is-disabled"
	// ClassLoading marks a widget root awaiting content.
	ClassLoading = "is-loading"
)

// DefaultDuration is the transition duration assumed when a tokens file
// declares a rule without one.
const DefaultDuration = 300 * time.Millisecond

// Rule declares that elements carrying Class animate changes to the listed
// inline-style properties over Duration.
type Rule struct {
	Class      string
	Properties []string
	Duration   time.Duration
}

// Sheet is the set of transition rules in effect for a document.
type Sheet struct {
	Rules []Rule
}

// TransitionFor returns the duration of the transition covering property on
// an element with the given classes, or false if no rule matches. The first
// matching rule wins, in declaration order.
func (s *Sheet) TransitionFor(classes []string, property string) (time.Duration, bool) {
	if s == nil {
		return 0, false
	}
	for _, rule := range s.Rules {
		if !containsString(classes, rule.Class) {
			continue
		}
		if containsString(rule.Properties, property) {
			return rule.Duration, true
		}
	}
	return 0, false
}

// Default returns the sheet matching the stock component stylesheet:
// accordion content panes animate height and opacity. The generic
// single-panel components declare no transitions; their runtime commits on
// a fixed delay instead.
func Default() *Sheet {
	return &Sheet{
		Rules: []Rule{
			{Class: "accordion__content", Properties: []string{"height", "opacity"}, Duration: DefaultDuration},
		},
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
