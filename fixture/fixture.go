package fixture

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/tracedecode/decode"
	"github.com/wippyai/tracedecode/errors"
	"github.com/wippyai/tracedecode/memory"
	"github.com/wippyai/tracedecode/ptp"
	"github.com/wippyai/tracedecode/rtnl"
)

// Scenario is the on-disk form of a fixture.
type Scenario struct {
	Config *ConfigSpec `yaml:"config"`
	Memory []Region    `yaml:"memory"`
	Calls  []CallSpec  `yaml:"calls"`
}

// ConfigSpec holds the decoder settings a scenario may override.
type ConfigSpec struct {
	Verbose   *bool  `yaml:"verbose"`
	ByteOrder string `yaml:"byte_order"`
	Timezone  string `yaml:"timezone"`
	MaxDepth  int    `yaml:"max_depth"`
}

// Region is one mapped range. Exactly one of Hex and Size is set; Size maps
// that many zero bytes.
type Region struct {
	Hex  string `yaml:"hex"`
	Addr uint64 `yaml:"addr"`
	Size uint32 `yaml:"size"`
}

// CallSpec is one traced call as written in a scenario.
type CallSpec struct {
	Expect    *string  `yaml:"expect"`
	Subsystem string   `yaml:"subsystem"`
	Code      string   `yaml:"code"`
	Known     string   `yaml:"known"`
	Phases    []string `yaml:"phases"`
	Arg       uint64   `yaml:"arg"`
	Len       uint32   `yaml:"len"`
	Failed    bool     `yaml:"failed"`
}

// Call is a resolved CallSpec.
type Call struct {
	Table     *decode.Table
	Expect    *string
	Subsystem string
	Name      string
	Known     []byte
	Phases    []decode.Phase
	Arg       uint64
	Code      uint32
	Len       uint32
	Failed    bool
}

// Fixture is a loaded scenario.
type Fixture struct {
	Memory *memory.Buffer
	Name   string
	Calls  []Call
	Config decode.Config
}

// Registry maps subsystem names to their decode tables.
type Registry map[string]*decode.Table

// DefaultRegistry knows the bundled decoders.
func DefaultRegistry() Registry {
	return Registry{
		"ioctl":         ptp.Table(),
		"netlink-route": rtnl.Table(),
	}
}

// Load reads and parses a scenario file. A nil reg uses DefaultRegistry.
func Load(path string, reg Registry) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load(fmt.Sprintf("read %s", path), err)
	}
	f, err := Parse(data, reg)
	if err != nil {
		return nil, err
	}
	f.Name = path
	Logger().Info("loaded scenario",
		zap.String("path", path),
		zap.Int("regions", len(f.Memory.Segments())),
		zap.Int("calls", len(f.Calls)))
	return f, nil
}

// Parse decodes and validates a scenario. A nil reg uses DefaultRegistry.
func Parse(data []byte, reg Registry) (*Fixture, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.ParseFailed("scenario", err)
	}

	cfg, err := sc.Config.resolve()
	if err != nil {
		return nil, err
	}

	mem := memory.NewBuffer()
	for i, r := range sc.Memory {
		b, err := r.bytes()
		if err != nil {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path("memory", strconv.Itoa(i)).
				Addr(r.Addr).
				Cause(err).
				Detail("bad region").
				Build()
		}
		if err := mem.Map(r.Addr, b); err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, fmt.Sprintf("memory %d", i))
		}
	}

	f := &Fixture{Memory: mem, Config: cfg, Calls: make([]Call, 0, len(sc.Calls))}
	for i, cs := range sc.Calls {
		c, err := cs.resolve(reg)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, fmt.Sprintf("call %d", i))
		}
		f.Calls = append(f.Calls, c)
	}
	return f, nil
}

func (c *ConfigSpec) resolve() (decode.Config, error) {
	var cfg decode.Config
	if c == nil {
		return cfg, nil
	}
	if c.Verbose != nil {
		cfg.Terse = !*c.Verbose
	}
	order, err := ParseByteOrder(c.ByteOrder)
	if err != nil {
		return cfg, err
	}
	cfg.ByteOrder = order
	if c.MaxDepth < 0 {
		return cfg, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("max_depth %d is negative", c.MaxDepth))
	}
	cfg.MaxDepth = c.MaxDepth
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return cfg, errors.Load("timezone "+c.Timezone, err)
		}
		cfg.Location = loc
	}
	return cfg, nil
}

// ParseByteOrder maps "little", "big" and "native" to a byte order. The
// empty string means native.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "native":
		return binary.NativeEndian, nil
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("unknown byte order %q", s))
	}
}

func (r Region) bytes() ([]byte, error) {
	switch {
	case r.Hex != "" && r.Size != 0:
		return nil, fmt.Errorf("both hex and size given")
	case r.Hex != "":
		return decodeHex(r.Hex)
	case r.Size != 0:
		return make([]byte, r.Size), nil
	default:
		return nil, fmt.Errorf("region needs hex or size")
	}
}

// decodeHex accepts whitespace between byte pairs.
func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.Join(strings.Fields(s), ""))
}

func (cs CallSpec) resolve(reg Registry) (Call, error) {
	tbl, ok := reg[cs.Subsystem]
	if !ok {
		return Call{}, errors.NotFound(errors.PhaseLoad, "subsystem", cs.Subsystem)
	}
	code, err := ResolveCode(tbl, cs.Code)
	if err != nil {
		return Call{}, err
	}

	c := Call{
		Table:     tbl,
		Subsystem: cs.Subsystem,
		Name:      code.Name,
		Code:      code.Value,
		Arg:       cs.Arg,
		Len:       cs.Len,
		Failed:    cs.Failed,
		Expect:    cs.Expect,
	}
	if cs.Known != "" {
		if c.Known, err = decodeHex(cs.Known); err != nil {
			return Call{}, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "known bytes")
		}
	}

	if len(cs.Phases) == 0 {
		c.Phases = []decode.Phase{decode.PhaseEntry, decode.PhaseExit}
	}
	for _, p := range cs.Phases {
		switch strings.ToLower(p) {
		case "entry":
			c.Phases = append(c.Phases, decode.PhaseEntry)
		case "exit":
			c.Phases = append(c.Phases, decode.PhaseExit)
		default:
			return Call{}, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("unknown phase %q", p))
		}
	}
	return c, nil
}

// ResolveCode finds a code by name, or accepts a number in any Go integer
// syntax. Numbers without a name in tbl are kept, named by their hex value.
func ResolveCode(tbl *decode.Table, s string) (decode.Code, error) {
	if s == "" {
		return decode.Code{}, errors.InvalidInput(errors.PhaseLoad, "missing code")
	}
	if c, ok := tbl.Resolve(s); ok {
		return c, nil
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return decode.Code{}, errors.NotFound(errors.PhaseLoad, "code", s)
	}
	if name, ok := tbl.CodeName(uint32(v)); ok {
		return decode.Code{Name: name, Value: uint32(v)}, nil
	}
	return decode.Code{Name: "0x" + strconv.FormatUint(v, 16), Value: uint32(v)}, nil
}

// MemoryWriter is an address space regions can be copied into.
type MemoryWriter interface {
	Write(addr uint64, data []byte) error
}

// CopyTo writes every region of the fixture into dst.
func (f *Fixture) CopyTo(dst MemoryWriter) error {
	for _, seg := range f.Memory.Segments() {
		if err := dst.Write(seg.Addr, seg.Data); err != nil {
			return err
		}
	}
	return nil
}
