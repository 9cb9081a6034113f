package blink

import "fmt"

// The errors below carry the system error code reported by the window
// manager. Registration, creation and retrieval errors are fatal to their
// phase and are never retried; a paint acquisition error only skips the
// current paint.

// ClassRegistrationError means the window manager rejected the class
// descriptor or its name collided with an already registered class.
type ClassRegistrationError struct {
	Code uint32
}

func (e *ClassRegistrationError) Error() string {
	return fmt.Sprintf("window class registration failed (system error %d)", e.Code)
}

// WindowCreationError means the window manager refused to create the window.
type WindowCreationError struct {
	Code uint32
}

func (e *WindowCreationError) Error() string {
	return fmt.Sprintf("window creation failed (system error %d)", e.Code)
}

// EventRetrievalError means the blocking message retrieval itself failed.
// The dispatch loop cannot make progress after this.
type EventRetrievalError struct {
	Code uint32
}

func (e *EventRetrievalError) Error() string {
	return fmt.Sprintf("message retrieval failed (system error %d)", e.Code)
}

// PaintAcquisitionError means no drawing surface could be acquired for a
// paint message. The paint is skipped, the application keeps running.
type PaintAcquisitionError struct {
	Code uint32
}

func (e *PaintAcquisitionError) Error() string {
	return fmt.Sprintf("paint acquisition failed (system error %d)", e.Code)
}
