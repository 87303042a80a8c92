// Package dom provides the retained element tree the Fold runtime attaches
// behavior to: elements with tags, classes, attributes, inline styles and a
// hidden flag, bubbling event dispatch, document-level focus tracking, and
// subtree mutation observation.
//
// The tree is owned by the host page, not by widgets. Widgets hold
// non-owning references into it and mutate only the subtree under their own
// root.
//
// # Style engine
//
// The document carries a [style.Sheet]. When an inline-style property
// covered by a matching rule changes across a frame boundary on a visible
// element, the style engine starts a transition run and delivers a bubbling
// "transitionend" event when the rule's duration elapses, driven by the
// motion package's clock and timers. Changes made within a single frame
// overwrite each other without animating, which is what lets a caller force
// a starting value and then set the target value on the next frame to
// produce an animated transition.
//
// # Concurrency
//
// The tree is single-threaded and cooperative. All mutation happens from
// the pump-driven event loop; there is no internal locking beyond what the
// motion package does for its own queues.
package dom
