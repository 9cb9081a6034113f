//go:build windows

package blink

import (
	"syscall"

	"github.com/gonutz/w32"
)

// NewSystem returns the Win32-backed windowing system. It also hides the
// console window that comes up when the program was not built with the
// -H=windowsgui linker flag.
func NewSystem() (System, error) {
	hideConsoleWindow()
	return &winSystem{}, nil
}

// winSystem talks to the Win32 window manager. One instance serves the one
// thread that owns the window; msg and ps are reused across calls on that
// thread, there is never more than one retrieval or one open paint at a
// time.
type winSystem struct {
	msg w32.MSG
	ps  w32.PAINTSTRUCT
}

func (s *winSystem) Instance() Instance {
	return Instance(w32.GetModuleHandle(""))
}

func (s *winSystem) LoadArrowCursor() Cursor {
	return Cursor(w32.LoadCursor(0, w32.MakeIntResource(w32.IDC_ARROW)))
}

func (s *winSystem) RegisterClass(c *Class) (ClassID, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	proc := c.Proc
	class := w32.WNDCLASSEX{
		Style: uint32(c.Style),
		WndProc: syscall.NewCallback(func(
			window w32.HWND,
			msg uint32,
			wParam, lParam uintptr,
		) uintptr {
			return proc(Window(window), msg, wParam, lParam)
		}),
		Instance:  w32.HINSTANCE(c.Instance),
		Cursor:    w32.HCURSOR(c.Cursor),
		ClassName: syscall.StringToUTF16Ptr(c.Name),
	}
	atom := w32.RegisterClassEx(&class)
	if atom == 0 {
		return 0, &ClassRegistrationError{Code: w32.GetLastError()}
	}
	return ClassID(atom), nil
}

func (s *winSystem) CreateWindow(c *Class, title string, style WindowStyle, x, y, width, height int) (Window, error) {
	window := w32.CreateWindowEx(
		0,
		syscall.StringToUTF16Ptr(c.Name),
		syscall.StringToUTF16Ptr(title),
		uint(style),
		x, y, width, height,
		0, 0, w32.HINSTANCE(c.Instance), nil,
	)
	if window == 0 {
		return 0, &WindowCreationError{Code: w32.GetLastError()}
	}
	return Window(window), nil
}

func (s *winSystem) ShowWindow(w Window) {
	w32.ShowWindow(w32.HWND(w), w32.SW_SHOWNORMAL)
}

func (s *winSystem) NextMessage() (Message, bool, error) {
	ret := w32.GetMessage(&s.msg, 0, 0, 0)
	if ret == -1 {
		return Message{}, false, &EventRetrievalError{Code: w32.GetLastError()}
	}
	if ret == 0 {
		// quit sentinel
		return Message{}, false, nil
	}
	return Message{
		Window: Window(s.msg.Hwnd),
		Kind:   s.msg.Message,
		WParam: s.msg.WParam,
		LParam: s.msg.LParam,
		Time:   s.msg.Time,
		X:      int(s.msg.Pt.X),
		Y:      int(s.msg.Pt.Y),
	}, true, nil
}

func (s *winSystem) Translate(m *Message) {
	msg := nativeMessage(m)
	w32.TranslateMessage(&msg)
}

func (s *winSystem) Dispatch(m *Message) {
	msg := nativeMessage(m)
	w32.DispatchMessage(&msg)
}

func nativeMessage(m *Message) w32.MSG {
	return w32.MSG{
		Hwnd:    w32.HWND(m.Window),
		Message: m.Kind,
		WParam:  m.WParam,
		LParam:  m.LParam,
		Time:    m.Time,
		Pt:      w32.POINT{X: int32(m.X), Y: int32(m.Y)},
	}
}

func (s *winSystem) DefaultHandler(w Window, kind uint32, wParam, lParam uintptr) uintptr {
	return w32.DefWindowProc(w32.HWND(w), kind, wParam, lParam)
}

func (s *winSystem) DestroyWindow(w Window) {
	w32.DestroyWindow(w32.HWND(w))
}

func (s *winSystem) PostQuit(exitCode int) {
	w32.PostQuitMessage(exitCode)
}

func (s *winSystem) RequestClose(w Window) {
	w32.SendMessage(w32.HWND(w), w32.WM_CLOSE, 0, 0)
}

func (s *winSystem) Invalidate(w Window) {
	w32.InvalidateRect(w32.HWND(w), nil, true)
}

func (s *winSystem) BeginPaint(w Window) (DeviceContext, Rect, error) {
	hdc := w32.BeginPaint(w32.HWND(w), &s.ps)
	if hdc == 0 {
		return 0, Rect{}, &PaintAcquisitionError{Code: w32.GetLastError()}
	}
	r := s.ps.RcPaint
	return DeviceContext(hdc), Rect{
		Left:   int(r.Left),
		Top:    int(r.Top),
		Right:  int(r.Right),
		Bottom: int(r.Bottom),
	}, nil
}

func (s *winSystem) EndPaint(w Window) {
	w32.EndPaint(w32.HWND(w), &s.ps)
}

func (s *winSystem) FillRect(dc DeviceContext, r Rect, p Pattern) {
	hdc := w32.HDC(dc)
	color := w32.COLORREF(0x00FFFFFF)
	if p == PatternBlack {
		color = 0
	}
	w32.SelectObject(hdc, w32.GetStockObject(w32.DC_PEN))
	w32.SetDCPenColor(hdc, color)
	w32.SelectObject(hdc, w32.GetStockObject(w32.DC_BRUSH))
	w32.SetDCBrushColor(hdc, color)
	w32.Rectangle(hdc, r.Left, r.Top, r.Right, r.Bottom)
}

// hideConsoleWindow hides the associated console window if it was created
// because the ldflag H=windowsgui was not provided when building.
func hideConsoleWindow() {
	console := w32.GetConsoleWindow()
	if console == 0 {
		return // no console attached
	}
	// If this application is the process that created the console window,
	// then this program was not compiled with the -H=windowsgui flag and on
	// start-up it created a console along with the main application window.
	// In this case hide the console window.
	// See
	// http://stackoverflow.com/questions/9009333/how-to-check-if-the-program-is-run-from-a-console
	// and thanks to
	// https://github.com/hajimehoshi
	// for the tip.
	_, consoleProcID := w32.GetWindowThreadProcessId(console)
	if w32.GetCurrentProcessId() == consoleProcID {
		w32.ShowWindowAsync(console, w32.SW_HIDE)
	}
}
