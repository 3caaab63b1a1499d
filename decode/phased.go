package decode

// Handler decodes the argument of one logical operation.
type Handler interface {
	Handle(c *Context, req Request) Result
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(c *Context, req Request) Result

func (f HandlerFunc) Handle(c *Context, req Request) Result {
	return f(c, req)
}

// Immediate decodes the whole argument as soon as it is seen, in whichever
// phase that is.
func Immediate(fn func(c *Context, req Request)) Handler {
	return HandlerFunc(func(c *Context, req Request) Result {
		fn(c, req)
		return Handled
	})
}

// ExitOnly defers the whole decode to the exit phase, for arguments the
// kernel fills in. After a failed call only the address is printed.
func ExitOnly(fn func(c *Context, req Request)) Handler {
	return HandlerFunc(func(c *Context, req Request) Result {
		if req.Phase == PhaseEntry {
			return NeedExit
		}
		if req.Failed {
			c.w.Addr(req.Arg)
			return Handled
		}
		fn(c, req)
		return Handled
	})
}

// Phased splits a decode around the call. Entry prints the part the caller
// supplied and reports whether the exit half should run; Exit re-reads the
// argument from the address passed again and prints the rest.
//
// Phase is chosen by the caller on every invocation and no state is kept in
// between, so an exit without an entry, or an entry never followed by an
// exit, is safe.
type Phased struct {
	Entry func(c *Context, req Request) bool
	Exit  func(c *Context, req Request)
}

func (p Phased) Handle(c *Context, req Request) Result {
	if req.Phase == PhaseEntry {
		if p.Entry != nil && !p.Entry(c, req) {
			return Handled
		}
		return NeedExit
	}
	if p.Exit != nil {
		p.Exit(c, req)
	}
	return Handled
}
