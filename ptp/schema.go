package ptp

import (
	"time"

	"github.com/wippyai/tracedecode/decode"
	"github.com/wippyai/tracedecode/xlat"
)

const timeLayout = "2006-01-02T15:04:05.000000000-0700"

func exttsFlags(t *xlat.Tables) *xlat.Table  { return t.PTPExttsFlags }
func peroutFlags(t *xlat.Tables) *xlat.Table { return t.PTPPeroutFlags }
func pinFuncs(t *xlat.Tables) *xlat.Table    { return t.PTPPinFuncs }

// FormatTime renders a clock time as a local timestamp in loc. It returns ""
// for the zero time and for an out of range nanosecond count.
func FormatTime(sec int64, nsec uint64, loc *time.Location) string {
	if (sec == 0 && nsec == 0) || nsec >= uint64(time.Second) {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(sec, int64(nsec)).In(loc).Format(timeLayout)
}

func clockTimeComment(c *decode.Context, rec decode.Record) string {
	sec, ok := rec.Int("sec")
	if !ok {
		return ""
	}
	nsec, ok := rec.Uint("nsec")
	if !ok {
		return ""
	}
	return FormatTime(sec, nsec, c.Config().Location)
}

var clockTime = decode.MustStruct("ptp_clock_time",
	decode.S64("sec"),
	decode.U32("nsec"),
	decode.Reserved("reserved", decode.KindU32, 1),
).WithComment(clockTimeComment)

// Only the first five capabilities are printed; the rest were added by later
// kernels.
var clockCaps = decode.MustStruct("ptp_clock_caps",
	decode.S32("max_adj"),
	decode.S32("n_alarm"),
	decode.S32("n_ext_ts"),
	decode.S32("n_per_out"),
	decode.S32("pps"),
	decode.S32("n_pins").Hide(),
	decode.S32("cross_timestamping").Hide(),
	decode.S32("adjust_phase").Hide(),
	decode.S32("max_phase_adj").Hide(),
	decode.Reserved("rsv", decode.KindU32, 11),
)

var exttsRequest = decode.MustStruct("ptp_extts_request",
	decode.U32("index").Dec(),
	decode.U32("flags").Flags(exttsFlags, "PTP_???"),
	decode.Reserved("rsv", decode.KindU32, 2),
)

var peroutRequest = decode.MustStruct("ptp_perout_request",
	decode.Embed("start", clockTime),
	decode.Embed("period", clockTime),
	decode.U32("index").Dec(),
	decode.U32("flags").Flags(peroutFlags, "PTP_???"),
	decode.Reserved("rsv", decode.KindU32, 4),
)

var sysOffset = decode.MustStruct("ptp_sys_offset",
	decode.U32("n_samples"),
	decode.Reserved("rsv", decode.KindU32, 3),
	decode.Elems("ts", clockTime, 2*MaxSamples+1),
)

var pinDesc = decode.MustStruct("ptp_pin_desc",
	decode.Chars("name", 64),
	decode.U32("index"),
	decode.U32("func").XVal(pinFuncs, "PTP_PF_???"),
	decode.U32("chan"),
	decode.Reserved("rsv", decode.KindU32, 5),
)

var sysOffsetPrecise = decode.MustStruct("ptp_sys_offset_precise",
	decode.Embed("device", clockTime),
	decode.Embed("sys_realtime", clockTime),
	decode.Embed("sys_monoraw", clockTime),
	decode.Reserved("rsv", decode.KindU32, 4),
)

// ts is declared as [MaxSamples][3]; the triplets are contiguous, so it is
// walked as one flat array.
var sysOffsetExtended = decode.MustStruct("ptp_sys_offset_extended",
	decode.U32("n_samples"),
	decode.Reserved("rsv", decode.KindU32, 3),
	decode.Elems("ts", clockTime, 3*MaxSamples),
)

var (
	sysOffsetSamples = decode.NewArray(sysOffset, "n_samples", "ts", MaxSamples, 2, 1)
	extendedSamples  = decode.NewArray(sysOffsetExtended, "n_samples", "ts", MaxSamples, 3, 0)
)
