package blink

// fakeSystem is a scripted stand-in for the window manager. Messages are
// served from a queue, destroy requests and the quit sentinel are queued the
// way the real system queues them, and every call the shell makes is
// recorded so tests can check ordering and balance.
type fakeSystem struct {
	class *Class

	registerErr error
	createErr   error
	retrieveErr error
	// paintErrs is consumed one entry per BeginPaint, nil meaning success.
	// Once exhausted, every paint succeeds.
	paintErrs []error
	// region is the invalidated rectangle reported by BeginPaint.
	region Rect
	// createSends, when not zero, is a message kind delivered synchronously
	// to the procedure during CreateWindow, the way the window manager
	// sends setup messages before the dispatch loop exists.
	createSends uint32

	queue []Message
	quit  bool

	nextHandle Window
	created    []Window
	lastTitle  string
	lastStyle  WindowStyle
	lastBounds [4]int
	shown      int

	trace      []traceEntry
	dispatched []uint32
	destroyed  []Window
	closed     []Window
	invalid    []Window

	begins int
	ends   int
	fills  []fakeFill

	defaultResult uintptr
	defaultCalls  []Message
}

type traceEntry struct {
	op   string
	kind uint32
}

type fakeFill struct {
	dc      DeviceContext
	region  Rect
	pattern Pattern
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{
		nextHandle:    100,
		region:        Rect{Left: 0, Top: 0, Right: 10, Bottom: 10},
		defaultResult: 42,
	}
}

func (f *fakeSystem) Instance() Instance { return 1 }

func (f *fakeSystem) LoadArrowCursor() Cursor { return 7 }

func (f *fakeSystem) RegisterClass(c *Class) (ClassID, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	if f.registerErr != nil {
		return 0, f.registerErr
	}
	f.class = c
	return 1, nil
}

func (f *fakeSystem) CreateWindow(c *Class, title string, style WindowStyle, x, y, width, height int) (Window, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextHandle++
	w := f.nextHandle
	f.created = append(f.created, w)
	f.lastTitle = title
	f.lastStyle = style
	f.lastBounds = [4]int{x, y, width, height}
	if f.createSends != 0 && f.class != nil {
		f.class.Proc(w, f.createSends, 0, 0)
	}
	return w, nil
}

func (f *fakeSystem) ShowWindow(w Window) { f.shown++ }

func (f *fakeSystem) NextMessage() (Message, bool, error) {
	if len(f.queue) > 0 {
		m := f.queue[0]
		f.queue = f.queue[1:]
		return m, true, nil
	}
	if f.quit {
		return Message{}, false, nil
	}
	if f.retrieveErr != nil {
		return Message{}, false, f.retrieveErr
	}
	// A real retrieval would block forever here, in a test that is a
	// scripting mistake.
	panic("fakeSystem: retrieval would block forever")
}

func (f *fakeSystem) Translate(m *Message) {
	f.trace = append(f.trace, traceEntry{"translate", m.Kind})
}

func (f *fakeSystem) Dispatch(m *Message) {
	f.trace = append(f.trace, traceEntry{"dispatch", m.Kind})
	f.dispatched = append(f.dispatched, m.Kind)
	if f.class != nil {
		f.class.Proc(m.Window, m.Kind, m.WParam, m.LParam)
	}
}

func (f *fakeSystem) DefaultHandler(w Window, kind uint32, wParam, lParam uintptr) uintptr {
	f.defaultCalls = append(f.defaultCalls, Message{
		Window: w,
		Kind:   kind,
		WParam: wParam,
		LParam: lParam,
	})
	return f.defaultResult
}

func (f *fakeSystem) DestroyWindow(w Window) {
	f.destroyed = append(f.destroyed, w)
	// The destroy notification arrives later as its own message.
	f.queue = append(f.queue, Message{Window: w, Kind: MsgDestroy})
}

func (f *fakeSystem) PostQuit(exitCode int) { f.quit = true }

func (f *fakeSystem) RequestClose(w Window) {
	f.closed = append(f.closed, w)
	f.queue = append(f.queue, Message{Window: w, Kind: MsgClose})
}

func (f *fakeSystem) Invalidate(w Window) {
	f.invalid = append(f.invalid, w)
	f.queue = append(f.queue, Message{Window: w, Kind: MsgPaint})
}

func (f *fakeSystem) BeginPaint(w Window) (DeviceContext, Rect, error) {
	var err error
	if len(f.paintErrs) > 0 {
		err = f.paintErrs[0]
		f.paintErrs = f.paintErrs[1:]
	}
	if err != nil {
		return 0, Rect{}, err
	}
	f.begins++
	return 55, f.region, nil
}

func (f *fakeSystem) EndPaint(w Window) { f.ends++ }

func (f *fakeSystem) FillRect(dc DeviceContext, r Rect, p Pattern) {
	f.fills = append(f.fills, fakeFill{dc: dc, region: r, pattern: p})
}
