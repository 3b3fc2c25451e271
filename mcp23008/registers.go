// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23008

import (
	"fmt"
	"strings"
)

// Register is the offset of an 8-bit register inside the MCP23008.
type Register uint8

const (
	IODIR   Register = 0x00 // I/O direction, 1 = input.
	IPOL    Register = 0x01 // Input polarity, 1 = inverted.
	GPINTEN Register = 0x02 // Interrupt-on-change enable.
	DEFVAL  Register = 0x03 // Default compare value for interrupt-on-change.
	INTCON  Register = 0x04 // Interrupt control.
	IOCON   Register = 0x05 // Configuration.
	GPPU    Register = 0x06 // Pull-up resistor, 1 = enabled.
	INTF    Register = 0x07 // Interrupt flag.
	INTCAP  Register = 0x08 // Interrupt capture.
	GPIO    Register = 0x09 // Port, 1 = high.
	OLAT    Register = 0x0A // Output latch.

	// NumRegisters is the number of registers in the map.
	NumRegisters = 11
)

var registerNames = [NumRegisters]string{
	"IODIR", "IPOL", "GPINTEN", "DEFVAL", "INTCON", "IOCON",
	"GPPU", "INTF", "INTCAP", "GPIO", "OLAT",
}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(0x%02X)", uint8(r))
}

// Registers is the content of every register, indexed by Register.
type Registers [NumRegisters]uint8

// String returns the registers as NAME=0xVV pairs in offset order.
func (r Registers) String() string {
	var b strings.Builder
	for i, v := range r {
		if i != 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=0x%02X", Register(i), v)
	}
	return b.String()
}

func getBit(v, bit uint8) bool {
	return (v>>bit)&1 != 0
}

func setBit(v, bit uint8, value bool) uint8 {
	if value {
		return v | 1<<bit
	}
	return v &^ (1 << bit)
}
