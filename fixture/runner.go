package fixture

import (
	"go.uber.org/zap"

	"github.com/wippyai/tracedecode"
	"github.com/wippyai/tracedecode/decode"
	"github.com/wippyai/tracedecode/printer"
	"github.com/wippyai/tracedecode/xlat"
)

// Outcome is the result of rendering one call.
type Outcome struct {
	// Arg is the plain rendering of the argument alone.
	Arg    string
	Call   Call
	Result decode.Result
	// Match is false only when the call carries an expectation that Arg
	// does not equal.
	Match bool
}

// Runner renders the calls of a fixture against a memory.
type Runner struct {
	mem      tracedecode.Memory
	decoders map[*decode.Table]*decode.Decoder
	cfg      decode.Config
}

// NewRunner builds one decoder per table used by f. A nil mem reads the
// fixture's own memory image.
func NewRunner(f *Fixture, mem tracedecode.Memory) *Runner {
	if mem == nil {
		mem = f.Memory
	}
	r := &Runner{
		mem:      mem,
		cfg:      f.Config,
		decoders: make(map[*decode.Table]*decode.Decoder),
	}
	for _, c := range f.Calls {
		if _, ok := r.decoders[c.Table]; !ok {
			r.decoders[c.Table] = decode.NewWithConfig(c.Table, &r.cfg)
		}
	}
	return r
}

// Run writes one line for c to sink, without a trailing newline:
//
//	ioctl(PTP_CLOCK_GETCAPS, {max_adj=1, ...}) = 0
//
// A call the decoder leaves unhandled shows its argument in hex. A call
// whose phases stop before exit ends with "<unfinished ...>".
func (r *Runner) Run(c Call, sink tracedecode.Sink) Outcome {
	dec, ok := r.decoders[c.Table]
	if !ok {
		dec = decode.NewWithConfig(c.Table, &r.cfg)
		r.decoders[c.Table] = dec
	}

	arg := printer.NewText()
	tee := printer.Tee{sink, arg}

	w := decode.NewWriter(sink)
	w.Value(c.Subsystem)
	w.Punct("(")
	w.Value(c.Name)
	w.Punct(", ")

	res := decode.NotHandled
	for _, ph := range c.Phases {
		res = dec.Decode(r.mem, tee, decode.Request{
			Code:   c.Code,
			Arg:    c.Arg,
			Known:  c.Known,
			Len:    c.Len,
			Phase:  ph,
			Failed: ph == decode.PhaseExit && c.Failed,
		})
		if res != decode.NeedExit {
			break
		}
	}
	if res == decode.NotHandled {
		decode.NewWriter(tee).Value(xlat.Hex(c.Arg))
	}

	if res == decode.NeedExit {
		if arg.Len() > 0 {
			w.Punct(" ")
		}
		w.Value("<unfinished ...>")
	} else {
		w.Punct(") = ")
		if c.Failed {
			w.Value("-1")
		} else {
			w.Value("0")
		}
	}

	out := Outcome{Call: c, Result: res, Arg: arg.String(), Match: true}
	if c.Expect != nil && *c.Expect != out.Arg {
		out.Match = false
	}

	Logger().Debug("call rendered",
		zap.String("subsystem", c.Subsystem),
		zap.String("code", c.Name),
		zap.Stringer("result", res),
		zap.Bool("match", out.Match))
	return out
}

// Report summarizes a full run.
type Report struct {
	Outcomes []Outcome
	Failed   int
}

// Mismatches returns the outcomes whose expectation did not hold.
func (r Report) Mismatches() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Match {
			out = append(out, o)
		}
	}
	return out
}

// RunAll renders every call of f, ending each line with a newline token.
func (r *Runner) RunAll(f *Fixture, sink tracedecode.Sink) Report {
	rep := Report{Outcomes: make([]Outcome, 0, len(f.Calls))}
	for _, c := range f.Calls {
		o := r.Run(c, sink)
		sink.Emit(tracedecode.TokenPunct, "\n")
		if !o.Match {
			rep.Failed++
		}
		rep.Outcomes = append(rep.Outcomes, o)
	}
	return rep
}
