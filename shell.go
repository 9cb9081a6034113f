package blink

import "log/slog"

// Shell is the window procedure. The system calls HandleMessage once per
// routed message, always on the dispatch-loop thread, possibly already
// during window creation. All persistent state lives in the paint toggle;
// no synchronization is needed because only that one thread ever calls in.
type Shell struct {
	sys   System
	paint PaintState
}

func NewShell(sys System) *Shell {
	return &Shell{sys: sys}
}

// HandleMessage decides the response for each message kind and always
// returns a defined result, unknown kinds included.
func (s *Shell) HandleMessage(window Window, kind uint32, wParam, lParam uintptr) uintptr {
	switch kind {
	case MsgClose:
		// Destruction is requested here; the destroy notification arrives
		// later as its own message.
		s.sys.DestroyWindow(window)
		return 0
	case MsgDestroy:
		s.sys.PostQuit(0)
		return 0
	case MsgPaint:
		s.handlePaint(window)
		return 0
	}
	return s.sys.DefaultHandler(window, kind, wParam, lParam)
}

func (s *Shell) handlePaint(window Window) {
	dc, region, err := s.sys.BeginPaint(window)
	if err != nil {
		// Skip this paint, keep the toggle, keep running.
		slog.Error("blink: skipping paint", "error", err)
		return
	}
	defer s.sys.EndPaint(window)
	s.sys.FillRect(dc, region, s.paint.Current())
	s.paint.Flip()
}
