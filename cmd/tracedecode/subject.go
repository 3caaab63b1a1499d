package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/wippyai/tracedecode"
	"github.com/wippyai/tracedecode/errors"
	"github.com/wippyai/tracedecode/fixture"
	"github.com/wippyai/tracedecode/memory"
	"github.com/wippyai/tracedecode/rtnl"
)

// subject is the address space calls are decoded against.
type subject struct {
	mem   tracedecode.Memory
	rt    wazero.Runtime
	label string
}

func (s *subject) Close(ctx context.Context) {
	if s.rt != nil {
		s.rt.Close(ctx)
	}
}

// openSubject picks the memory for f: a live process when pid is set, a
// wazero guest seeded with the scenario image when wasmPath is set, and the
// image itself otherwise.
func openSubject(ctx context.Context, f *fixture.Fixture, pid int, wasmPath string, ifnames bool) (*subject, error) {
	if ifnames || pid != 0 {
		f.Config.IfName = rtnl.SystemIfName
	}

	switch {
	case pid != 0:
		p, err := memory.OpenProcess(pid)
		if err != nil {
			return nil, err
		}
		return &subject{mem: p, label: fmt.Sprintf("pid %d", p.Pid())}, nil

	case wasmPath != "":
		g, err := openGuest(ctx, wasmPath)
		if err != nil {
			return nil, err
		}
		if err := f.CopyTo(g.mem.(*memory.Wasm)); err != nil {
			g.Close(ctx)
			return nil, fmt.Errorf("seed guest memory: %w", err)
		}
		return g, nil

	default:
		return &subject{mem: f.Memory, label: "scenario image"}, nil
	}
}

// openGuest instantiates a module without running its start function and
// returns its memory. WASI imports are satisfied so ordinary programs load.
func openGuest(ctx context.Context, path string) (*subject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read "+path, err)
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	compiled, err := rt.CompileModule(ctx, data)
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Load("compile "+path, err)
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithStartFunctions())
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Load("instantiate "+path, err)
	}

	mem := memory.WrapMemory(guestMemory(mod))
	if mem == nil {
		rt.Close(ctx)
		return nil, errors.NotFound(errors.PhaseLoad, "memory of module", path)
	}
	return &subject{
		mem:   mem,
		rt:    rt,
		label: fmt.Sprintf("%s (%d bytes)", path, mem.Size()),
	}, nil
}

func guestMemory(mod api.Module) api.Memory {
	if m := mod.ExportedMemory("memory"); m != nil {
		return m
	}
	return mod.Memory()
}
