package ptp

import (
	"strconv"

	"github.com/wippyai/tracedecode/decode"
)

var table = decode.MustTable("ptp",
	decode.Entry{
		Tag:     "clock_caps",
		Codes:   []decode.Code{{Name: "PTP_CLOCK_GETCAPS", Value: ClockGetCaps}, {Name: "PTP_CLOCK_GETCAPS2", Value: ClockGetCaps2}},
		Handler: decode.ExitOnly(structArg(clockCaps)),
	},
	decode.Entry{
		Tag:     "extts_request",
		Codes:   []decode.Code{{Name: "PTP_EXTTS_REQUEST", Value: ExttsRequest}, {Name: "PTP_EXTTS_REQUEST2", Value: ExttsRequest2}},
		Handler: decode.Immediate(structArg(exttsRequest)),
	},
	decode.Entry{
		Tag:     "perout_request",
		Codes:   []decode.Code{{Name: "PTP_PEROUT_REQUEST", Value: PeroutRequest}, {Name: "PTP_PEROUT_REQUEST2", Value: PeroutRequest2}},
		Handler: decode.Immediate(structArg(peroutRequest)),
	},
	decode.Entry{
		Tag:     "enable_pps",
		Codes:   []decode.Code{{Name: "PTP_ENABLE_PPS", Value: EnablePPS}, {Name: "PTP_ENABLE_PPS2", Value: EnablePPS2}},
		Handler: decode.Immediate(enablePPS),
	},
	decode.Entry{
		Tag:     "sys_offset",
		Codes:   []decode.Code{{Name: "PTP_SYS_OFFSET", Value: SysOffset}, {Name: "PTP_SYS_OFFSET2", Value: SysOffset2}},
		Handler: samples(sysOffsetSamples),
	},
	decode.Entry{
		Tag:   "pin_getfunc",
		Codes: []decode.Code{{Name: "PTP_PIN_GETFUNC", Value: PinGetFunc}, {Name: "PTP_PIN_GETFUNC2", Value: PinGetFunc2}},
		Handler: decode.Phased{
			Entry: pinIndex,
			Exit: func(c *decode.Context, req decode.Request) {
				if !req.Failed {
					if rec, _ := c.Fetch(pinDesc, req.Arg, nil, 0); rec.Valid() > 0 {
						c.Fields(rec, ", ", "name", "func", "chan")
					}
				}
				c.Writer().Punct("}")
			},
		},
	},
	decode.Entry{
		Tag:   "pin_setfunc",
		Codes: []decode.Code{{Name: "PTP_PIN_SETFUNC", Value: PinSetFunc}, {Name: "PTP_PIN_SETFUNC2", Value: PinSetFunc2}},
		Handler: decode.Immediate(func(c *decode.Context, req decode.Request) {
			if rec, ok := c.Read(pinDesc, req.Arg); ok {
				c.Fields(rec, "{", "index", "func", "chan")
				c.Writer().Punct("}")
			}
		}),
	},
	decode.Entry{
		Tag:     "sys_offset_precise",
		Codes:   []decode.Code{{Name: "PTP_SYS_OFFSET_PRECISE", Value: SysOffsetPrecise}, {Name: "PTP_SYS_OFFSET_PRECISE2", Value: SysOffsetPrecise2}},
		Handler: decode.ExitOnly(structArg(sysOffsetPrecise)),
	},
	decode.Entry{
		Tag:     "sys_offset_extended",
		Codes:   []decode.Code{{Name: "PTP_SYS_OFFSET_EXTENDED", Value: SysOffsetExtended}, {Name: "PTP_SYS_OFFSET_EXTENDED2", Value: SysOffsetExtended2}},
		Handler: samples(extendedSamples),
	},
)

// Table returns the PTP clock ioctl table.
func Table() *decode.Table {
	return table
}

func structArg(s *decode.Struct) func(c *decode.Context, req decode.Request) {
	return func(c *decode.Context, req decode.Request) {
		c.Struct(s, req.Arg)
	}
}

// The argument is an int passed by value.
func enablePPS(c *decode.Context, req decode.Request) {
	c.Writer().Value(strconv.FormatInt(int64(req.Arg), 10))
}

// samples prints n_samples at entry and the clamped timestamp list at exit.
func samples(arr *decode.Array) decode.Phased {
	return decode.Phased{
		Entry: func(c *decode.Context, req decode.Request) bool {
			hdr, err := arr.FetchHeader(c, req.Arg)
			if err != nil && hdr.Valid() == 0 {
				c.Writer().Addr(req.Arg)
				return false
			}
			if !c.Fields(hdr, "{", arr.Count) {
				c.Writer().Punct("}")
				return false
			}
			return true
		},
		Exit: func(c *decode.Context, req decode.Request) {
			if !req.Failed {
				if hdr, _ := arr.FetchHeader(c, req.Arg); hdr.Has(arr.Count) {
					arr.Elements(c, ", ", hdr)
				}
			}
			c.Writer().Punct("}")
		},
	}
}

func pinIndex(c *decode.Context, req decode.Request) bool {
	rec, ok := c.Read(pinDesc, req.Arg)
	if !ok {
		return false
	}
	if !c.Fields(rec, "{", "index") {
		c.Writer().Punct("}")
		return false
	}
	return true
}
