// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp23008 provides a register level driver for the Microchip
// MCP23008 8-bit I²C GPIO expander.
//
// Every accessor goes to the chip. The driver keeps no shadow copy of any
// register, so a read always reflects the live hardware state.
//
// Bit setters are a read-modify-write of the whole register, done as two
// independent bus transactions. Another bus master writing the same register
// between the two can have its change silently overwritten. The driver does
// not lock; share a Dev between goroutines only with external serialization.
//
// The interrupt registers (GPINTEN, DEFVAL, INTCON, INTF, INTCAP) and the
// output latch (OLAT) are exposed as Register constants only.
//
// # Datasheet
//
// https://ww1.microchip.com/downloads/en/DeviceDoc/MCP23008-MCP23S08-Data-Sheet-20001919F.pdf
package mcp23008
