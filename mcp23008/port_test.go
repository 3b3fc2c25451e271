// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23008

import (
	"errors"
	"reflect"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestPort_Tx(t *testing.T) {
	tests := []struct {
		description string
		ops         []i2ctest.IO
		w           []byte
		r           []byte
		expectErr   bool
	}{
		{
			description: "write 2 bytes",
			w:           []byte{0xa5, 0x5a},
			ops: []i2ctest.IO{
				{Addr: addr, W: []byte{0x09, 0xa5}},
				{Addr: addr, W: []byte{0x09, 0x5a}},
			},
		},
		{
			description: "read 2 bytes",
			r:           []byte{0xa5, 0x5a},
			ops: []i2ctest.IO{
				{Addr: addr, W: []byte{0x09}, R: []byte{0xa5}},
				{Addr: addr, W: []byte{0x09}, R: []byte{0x5a}},
			},
		},
		{
			description: "Invalid, only r or w may be set.",
			w:           []byte{0xa5},
			r:           []byte{0xa5},
			expectErr:   true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			bus := i2ctest.Playback{Ops: tc.ops}
			dev, err := New(&bus, addr)
			if err != nil {
				t.Fatal(err)
			}
			defer dev.Close()

			r := make([]byte, len(tc.r))
			err = dev.Port.Tx(tc.w, r)
			if tc.expectErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(tc.r, r) {
				t.Errorf("read %#v, expected %#v", r, tc.r)
			}
			if err = bus.Close(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestPort_busFailure(t *testing.T) {
	dev, bus := getFakeDev(t)
	bus.failAt = 2
	if err := dev.Port.Tx([]byte{1, 2, 3}, nil); !errors.Is(err, ErrBus) {
		t.Fatalf("expected ErrBus, got %v", err)
	}
	if bus.regs[GPIO] != 1 || bus.tx != 2 {
		t.Errorf("GPIO=0x%02X after %d transactions", bus.regs[GPIO], bus.tx)
	}
}

func TestPort_fixedValues(t *testing.T) {
	dev, _ := getFakeDev(t)
	if dev.Port.Duplex() != conn.Half {
		t.Errorf("Duplex() should return conn.Half")
	}
	if dev.Port.String() != "MCP23008_20_GPIO" {
		t.Errorf("String()=%q", dev.Port.String())
	}
}
