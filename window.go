package blink

import (
	"runtime"

	"github.com/pkg/errors"
)

// NewMainWindow returns a window with the default title, the overlapped
// visible style and system-chosen position and size.
func NewMainWindow() *MainWindow {
	return &MainWindow{
		Title:     "blink",
		X:         UseDefault,
		Y:         UseDefault,
		Width:     UseDefault,
		Height:    UseDefault,
		Style:     StyleOverlappedWindow | StyleVisible,
		ClassName: "blink_window_class",
	}
}

// MainWindow is the application's single top-level window. Configure the
// public fields before Show; they are not applied afterwards.
type MainWindow struct {
	Title     string
	X         int
	Y         int
	Width     int
	Height    int
	Style     WindowStyle
	ClassName string

	handle Window
	sys    System
}

// Show registers the window class, creates the window, makes it visible and
// runs the dispatch loop until the application quits. It blocks for the
// lifetime of the window and must stay on one OS thread, which it locks
// itself. Registration and creation failures abort startup; no window
// handle exists after either.
func (w *MainWindow) Show(sys System) error {
	runtime.LockOSThread()

	w.sys = sys
	shell := NewShell(sys)
	class := &Class{
		Name:     w.ClassName,
		Style:    ClassHRedraw | ClassVRedraw | ClassOwnDC,
		Instance: sys.Instance(),
		Cursor:   sys.LoadArrowCursor(),
		Proc:     shell.HandleMessage,
	}
	if _, err := sys.RegisterClass(class); err != nil {
		return errors.Wrap(err, "registering window class")
	}

	window, err := sys.CreateWindow(class, w.Title, w.Style, w.X, w.Y, w.Width, w.Height)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	w.handle = window
	sys.ShowWindow(window)

	return RunLoop(sys)
}

// Close asks the window to close, which starts the close/destroy/quit
// sequence. It does nothing before Show.
func (w *MainWindow) Close() {
	if w.handle != 0 {
		w.sys.RequestClose(w.handle)
	}
}

// Repaint invalidates the whole window so a paint message gets delivered.
func (w *MainWindow) Repaint() {
	if w.handle != 0 {
		w.sys.Invalidate(w.handle)
	}
}
