// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23008

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

var errNACK = errors.New("fakeBus: NACK")

// fakeBus simulates the register file of one MCP23008. It counts
// transactions and can fail the Nth one.
type fakeBus struct {
	addr   uint16
	regs   Registers
	tx     int
	failAt int // 1-based transaction number to fail, 0 never fails.
	closed bool
}

func newFakeBus(addr uint16) *fakeBus {
	f := &fakeBus{addr: addr}
	// Power-on reset state.
	f.regs[IODIR] = 0xFF
	return f
}

func (f *fakeBus) String() string {
	return "fakeBus"
}

func (f *fakeBus) SetSpeed(physic.Frequency) error {
	return nil
}

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.tx++
	if f.tx == f.failAt || addr != f.addr {
		return errNACK
	}
	if len(w) == 0 || int(w[0]) >= NumRegisters {
		return fmt.Errorf("fakeBus: invalid register %v", w)
	}
	switch {
	case len(w) == 1 && len(r) == 1:
		r[0] = f.regs[w[0]]
	case len(w) == 2 && len(r) == 0:
		f.regs[w[0]] = w[1]
	default:
		return fmt.Errorf("fakeBus: unexpected Tx(%v, %d)", w, len(r))
	}
	return nil
}

func (f *fakeBus) Close() error {
	f.closed = true
	return nil
}

var _ i2c.BusCloser = &fakeBus{}
