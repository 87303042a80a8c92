// Package motion provides the cooperative scheduling primitives the Fold
// runtime is built on: an injectable clock, a dispatch (microtask) queue,
// a frame-callback queue, and deadline timers.
//
// # Execution model
//
// There is no background goroutine. A driver (the CLI run loop or the test
// harness) repeatedly pumps the package:
//
//	motion.DrainDispatch() // queued callbacks from the previous slice
//	motion.StepFrame()     // frame callbacks, advances the frame counter
//	motion.StepTimers()    // deadline timers due per the active clock
//
// Between pumps, ordinary code runs to completion without preemption, so
// state reads and writes within one call are atomic with respect to other
// calls. The only suspension points a caller can observe are the frame
// boundary ([RequestFrame]) and timer expiry ([After]).
package motion

import "sync"

var (
	loopMu         sync.Mutex
	dispatchQueue  []func()
	frameCallbacks []func()
	frameCount     uint64
)

// Dispatch queues a callback to run at the start of the next pump, before
// any frame callbacks. Used to deliver asynchronous notifications (mutation
// reports, event replays) outside the current call stack.
func Dispatch(fn func()) {
	if fn == nil {
		return
	}
	loopMu.Lock()
	dispatchQueue = append(dispatchQueue, fn)
	loopMu.Unlock()
}

// DrainDispatch runs all callbacks queued via Dispatch. Callbacks queued
// while draining run on the next drain, not this one.
func DrainDispatch() {
	loopMu.Lock()
	callbacks := dispatchQueue
	dispatchQueue = nil
	loopMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// RequestFrame queues a callback for the next frame step, the analogue of
// an animation-frame request.
func RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	loopMu.Lock()
	frameCallbacks = append(frameCallbacks, fn)
	loopMu.Unlock()
}

// StepFrame advances the frame counter and runs the callbacks queued before
// this step. Callbacks queued during the step run on the following frame.
func StepFrame() {
	loopMu.Lock()
	frameCount++
	callbacks := frameCallbacks
	frameCallbacks = nil
	loopMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// FrameCount returns the number of frame steps since startup (or the last
// Reset). Style bookkeeping uses it to tell same-frame overwrites apart
// from frame-crossing changes.
func FrameCount() uint64 {
	loopMu.Lock()
	defer loopMu.Unlock()
	return frameCount
}

// HasPendingWork returns true if any dispatches, frame callbacks, or timers
// are outstanding.
func HasPendingWork() bool {
	loopMu.Lock()
	pending := len(dispatchQueue) > 0 || len(frameCallbacks) > 0
	loopMu.Unlock()
	return pending || HasActiveTimers()
}

// Reset clears all queues, timers, and the frame counter. Test teardown only.
func Reset() {
	loopMu.Lock()
	dispatchQueue = nil
	frameCallbacks = nil
	frameCount = 0
	loopMu.Unlock()
	resetTimers()
}
