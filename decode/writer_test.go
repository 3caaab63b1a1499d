package decode

import (
	"testing"

	"github.com/wippyai/tracedecode/printer"
	"github.com/wippyai/tracedecode/xlat"
)

func TestWriterFields(t *testing.T) {
	resolve := func(idx int32) (string, bool) {
		if idx == 1 {
			return "lo", true
		}
		return "", false
	}

	tests := []struct {
		name  string
		write func(w *Writer)
		want  string
	}{
		{"d", func(w *Writer) { w.FieldD("{", "index", -1) }, "{index=-1"},
		{"u", func(w *Writer) { w.FieldU(", ", "n", 42) }, ", n=42"},
		{"x zero", func(w *Writer) { w.FieldX("", "change", 0) }, "change=0"},
		{"x", func(w *Writer) { w.FieldX("", "change", 0xffffffff) }, "change=0xffffffff"},
		{"flags", func(w *Writer) {
			w.FieldFlags("", "flags", 0x3, xlat.Default.PTPExttsFlags, "PTP_???")
		}, "flags=PTP_ENABLE_FEATURE|PTP_RISING_EDGE"},
		{"flags unknown", func(w *Writer) {
			w.FieldFlags("", "flags", 0x100, xlat.Default.PTPExttsFlags, "PTP_???")
		}, "flags=0x100 /* PTP_??? */"},
		{"xval", func(w *Writer) {
			w.FieldXVal("", "ifi_family", 10, xlat.Default.AddressFamilies, "AF_???")
		}, "ifi_family=AF_INET6"},
		{"string", func(w *Writer) { w.FieldString("", "name", []byte("eth0\x00junk")) }, `name="eth0"`},
		{"string unterminated", func(w *Writer) { w.FieldString("", "name", []byte("abcd")) }, `name="abcd"...`},
		{"string escapes", func(w *Writer) { w.FieldString("", "s", []byte("a\"\\\n\t\x01\xff\x00")) }, `s="a\"\\\n\t\001\377"`},
		{"ifindex named", func(w *Writer) { w.FieldIfIndex("", "ifi_index", 1, resolve) }, `ifi_index=if_nametoindex("lo")`},
		{"ifindex unknown", func(w *Writer) { w.FieldIfIndex("", "ifi_index", 7, resolve) }, "ifi_index=7"},
		{"ifindex no resolver", func(w *Writer) { w.FieldIfIndex("", "ifi_index", 1, nil) }, "ifi_index=1"},
		{"addr", func(w *Writer) { w.Addr(0x7ffc0000) }, "0x7ffc0000"},
		{"null", func(w *Writer) { w.Addr(0) }, "NULL"},
		{"marker", func(w *Writer) { w.Punct(", "); w.Marker() }, ", ..."},
		{"empty comment dropped", func(w *Writer) { w.Value("1"); w.Comment("") }, "1"},
		{"comment", func(w *Writer) { w.Value("1"); w.Comment("one") }, "1 /* one */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := printer.NewText()
			tt.write(NewWriter(out))
			if out.String() != tt.want {
				t.Errorf("got %q, want %q", out.String(), tt.want)
			}
		})
	}
}
