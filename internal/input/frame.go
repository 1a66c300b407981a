package input

// FrameID identifies a pending frame callback.
type FrameID uint64

// FrameScheduler is the animation-frame contract the poller runs on.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameClock is a FrameScheduler driven by the render loop: every Advance
// runs the callbacks requested before it started. Callbacks requested while
// a frame runs wait for the next Advance.
type FrameClock struct {
	next    FrameID
	pending []frameRequest
	running []frameRequest
	frame   uint64
}

type frameRequest struct {
	id FrameID
	fn func()
}

func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

func (c *FrameClock) RequestFrame(fn func()) FrameID {
	c.next++
	c.pending = append(c.pending, frameRequest{id: c.next, fn: fn})
	return c.next
}

func (c *FrameClock) CancelFrame(id FrameID) {
	for i, req := range c.pending {
		if req.id == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
	for i := range c.running {
		if c.running[i].id == id {
			c.running[i].fn = nil
			return
		}
	}
}

// Advance runs one frame.
func (c *FrameClock) Advance() {
	c.frame++
	c.running = c.pending
	c.pending = nil
	for i := range c.running {
		fn := c.running[i].fn
		if fn == nil {
			continue
		}
		c.running[i].fn = nil
		fn()
	}
	c.running = nil
}

// frameCount is the number of frames advanced so far.
func (c *FrameClock) frameCount() uint64 {
	return c.frame
}

// pendingCount is the number of callbacks waiting for the next frame.
func (c *FrameClock) pendingCount() int {
	return len(c.pending)
}
