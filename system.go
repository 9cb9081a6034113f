package blink

import "github.com/pkg/errors"

// The types in this file describe the windowing system that hosts the
// application. All handles are opaque capability tokens handed out by the
// system; they are never interpreted or manipulated arithmetically, only
// passed back into System calls.

// Window identifies a created window instance. The window manager owns it,
// the application only holds a reference and never disposes it directly; it
// goes away as a side effect of the close/destroy sequence.
type Window uintptr

// DeviceContext is the drawing surface handed out between BeginPaint and
// EndPaint. It is only valid inside that pair.
type DeviceContext uintptr

// Cursor is a loaded cursor resource.
type Cursor uintptr

// Instance is the handle of the owning application instance.
type Instance uintptr

// ClassID identifies a registered window class.
type ClassID uint16

// UseDefault as a window position or size lets the window manager pick.
// Mirrors CW_USEDEFAULT.
const UseDefault = ^0x7FFFFFFF

// ClassStyle holds window class style bits, mirroring the Win32 CS_ values.
type ClassStyle uint32

const (
	// ClassVRedraw and ClassHRedraw repaint the whole window when it is
	// resized vertically/horizontally.
	ClassVRedraw ClassStyle = 0x0001
	ClassHRedraw ClassStyle = 0x0002
	// ClassOwnDC gives each window of the class its own device context, so
	// repeated paints reuse one context instead of fetching and releasing
	// one every time.
	ClassOwnDC ClassStyle = 0x0020
)

// WindowStyle holds window style bits, mirroring the Win32 WS_ values.
type WindowStyle uint

const (
	// StyleOverlappedWindow is a top-level window with title bar, system
	// menu, sizing border and minimize/maximize boxes.
	StyleOverlappedWindow WindowStyle = 0x00CF0000
	StyleVisible          WindowStyle = 0x10000000
)

// Message kinds handled by the shell, mirroring the Win32 WM_ values. Any
// other kind is delegated to the system's default handler.
const (
	MsgDestroy uint32 = 0x0002
	MsgPaint   uint32 = 0x000F
	MsgClose   uint32 = 0x0010
)

// Message is one queued event as retrieved by the dispatch loop. It is
// produced by the system and consumed exactly once.
type Message struct {
	Window Window
	Kind   uint32
	WParam uintptr
	LParam uintptr
	Time   uint32
	X, Y   int
}

// Rect is the invalidated region delivered with a paint event.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Procedure is the window procedure. The system invokes it synchronously on
// the thread that runs the dispatch loop, once per routed message. It may
// also be invoked during window creation, before the loop has started, so it
// must not rely on any loop state.
type Procedure func(window Window, kind uint32, wParam, lParam uintptr) uintptr

// Class describes a reusable window behavior: its style bits, procedure,
// owning instance, cursor and process-unique name. It must be fully
// populated before registration and is not changed afterwards.
type Class struct {
	Name     string
	Style    ClassStyle
	Instance Instance
	Cursor   Cursor
	Proc     Procedure
}

func (c *Class) validate() error {
	if c.Name == "" {
		return errors.New("window class has no name")
	}
	if c.Proc == nil {
		return errors.New("window class has no procedure")
	}
	return nil
}

// System is the windowing collaborator. The real implementation talks to
// Win32 (see system_windows.go), tests use a scripted fake. All methods must
// be called from the single thread that owns the window; the system
// guarantees procedure invocations happen on that same thread, which is why
// the shell's state needs no synchronization.
type System interface {
	// Instance returns the handle of the running application instance.
	Instance() Instance

	// LoadArrowCursor loads the default arrow cursor.
	LoadArrowCursor() Cursor

	// RegisterClass installs the class descriptor with the window manager.
	// It fails with a ClassRegistrationError if the name collides with an
	// already registered class or the descriptor is rejected.
	RegisterClass(c *Class) (ClassID, error)

	// CreateWindow creates a top-level window of a registered class. The
	// procedure may be called synchronously during this call. Fails with a
	// WindowCreationError.
	CreateWindow(c *Class, title string, style WindowStyle, x, y, width, height int) (Window, error)

	// ShowWindow makes the window visible with its default show state.
	ShowWindow(w Window)

	// NextMessage blocks until the next message for the calling thread is
	// available and returns it with ok=true. It returns ok=false without a
	// message when the quit sentinel is retrieved, and an
	// EventRetrievalError when retrieval itself fails.
	NextMessage() (m Message, ok bool, err error)

	// Translate converts raw input messages, e.g. key presses into
	// character messages, queueing any results.
	Translate(m *Message)

	// Dispatch routes the message to its target window's procedure and
	// returns only after the procedure has returned.
	Dispatch(m *Message)

	// DefaultHandler performs the system's default handling for a message.
	DefaultHandler(w Window, kind uint32, wParam, lParam uintptr) uintptr

	// DestroyWindow asks the window manager to destroy the window, which
	// later delivers a destroy notification as a separate message.
	DestroyWindow(w Window)

	// PostQuit puts the quit sentinel on the queue so that a later
	// NextMessage reports it.
	PostQuit(exitCode int)

	// RequestClose sends a close request to the window.
	RequestClose(w Window)

	// Invalidate marks the whole window as needing a repaint.
	Invalidate(w Window)

	// BeginPaint starts a scoped paint for the window and returns the
	// drawing surface and the invalidated region. Every successful call
	// must be matched by EndPaint. Fails with a PaintAcquisitionError.
	BeginPaint(w Window) (DeviceContext, Rect, error)

	// EndPaint closes the paint that BeginPaint opened for this window.
	EndPaint(w Window)

	// FillRect fills the rectangle on the surface with a flat pattern.
	FillRect(dc DeviceContext, r Rect, p Pattern)
}
