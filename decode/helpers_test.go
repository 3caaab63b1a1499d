package decode

import (
	"bytes"
	"encoding/binary"

	"github.com/wippyai/tracedecode"
	"github.com/wippyai/tracedecode/printer"
	"github.com/wippyai/tracedecode/xlat"
)

func le(vals ...any) []byte {
	var b bytes.Buffer
	for _, v := range vals {
		if err := binary.Write(&b, binary.LittleEndian, v); err != nil {
			panic(err)
		}
	}
	return b.Bytes()
}

func ifflags(t *xlat.Tables) *xlat.Table { return t.InterfaceFlags }

var (
	testPoint = MustStruct("point", S32("x"), S32("y"))

	testNode = MustStruct("node",
		U32("id"),
		U32("flags").Flags(ifflags, "IFF_???"),
		Ptr("next", testPoint),
		U64("cookie").Hex(),
	)

	testLink = MustStruct("link", U32("tag"), Ptr("node", testNode))
)

func nodeBytes(next uint64) []byte {
	return le(uint32(7), uint32(0x41), next, uint64(0xbeef))
}

func testConfig(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.ByteOrder = binary.LittleEndian
	out := cfg.withDefaults()
	return &out
}

// run invokes fn on a fresh context and returns the text it printed.
func run(mem tracedecode.Memory, cfg *Config, fn func(c *Context)) string {
	out := printer.NewText()
	fn(newContext(mem, out, testConfig(cfg)))
	return out.String()
}
