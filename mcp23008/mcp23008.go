// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23008

import (
	"errors"
	"fmt"
	"strconv"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

const (
	// DefaultAddress is the bus address with A0, A1 and A2 tied low.
	DefaultAddress uint16 = 0x20
	// MaxAddress is the bus address with A0, A1 and A2 tied high.
	MaxAddress uint16 = 0x27
)

var (
	// ErrBusUnavailable is returned by Open when the I²C bus can't be opened.
	ErrBusUnavailable = errors.New("mcp23008: bus unavailable")
	// ErrBus is returned when a register read or write transaction fails.
	ErrBus = errors.New("mcp23008: bus error")
)

// Opts holds the configuration used by Open.
type Opts struct {
	// Addr is the device address, 0x20 to 0x27. 0 selects DefaultAddress.
	Addr uint16
	// Bus is the name or number of the I²C bus, as understood by i2creg.Open.
	// "" selects DefaultOpts.Bus.
	Bus string
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr: DefaultAddress,
	Bus:  "1",
}

// Dev is a handle to one MCP23008 chip.
type Dev struct {
	// Pins are the eight GPIO pins GP0 to GP7 as gpio.PinIO.
	Pins [8]Pin
	// Port reads and writes the GPIO register as a whole.
	Port conn.Conn

	d          i2c.Dev
	name       string
	closer     i2c.BusCloser
	registered []string
}

// New returns a Dev talking to the chip at addr on an already opened bus.
//
// No bus transaction is done.
func New(bus i2c.Bus, addr uint16) (*Dev, error) {
	if isAddrInvalid(addr) {
		return nil, fmt.Errorf("mcp23008: address 0x%X not in 0x%X-0x%X", addr, DefaultAddress, MaxAddress)
	}
	d := &Dev{
		d:    i2c.Dev{Bus: bus, Addr: addr},
		name: "MCP23008_" + strconv.FormatInt(int64(addr), 16),
	}
	d.Port = &port{dev: d}
	for i := range d.Pins {
		p := &portpin{dev: d, pinbit: uint8(i)}
		d.Pins[i] = p
		// Ignore registration failure, another Dev may be at the same address.
		if gpioreg.Register(p) == nil {
			d.registered = append(d.registered, p.Name())
		}
	}
	return d, nil
}

// Open opens the I²C bus selected by opts and returns a Dev bound to it.
//
// host.Init() must have been called before. The returned Dev owns the bus
// and releases it on Close.
func Open(opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		if opts.Addr != 0 {
			o.Addr = opts.Addr
		}
		if opts.Bus != "" {
			o.Bus = opts.Bus
		}
	}
	bus, err := i2creg.Open(o.Bus)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBusUnavailable, o.Bus, err)
	}
	d, err := New(bus, o.Addr)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	d.closer = bus
	return d, nil
}

// String returns the device name, also used as the prefix of the pin names.
func (d *Dev) String() string {
	return d.name
}

// Halt implements conn.Resource. There is no ongoing operation to stop.
func (d *Dev) Halt() error {
	return nil
}

// Close unregisters the pins and closes the bus if Open opened it.
func (d *Dev) Close() error {
	var err error
	for _, name := range d.registered {
		if e := gpioreg.Unregister(name); e != nil && err == nil {
			err = e
		}
	}
	d.registered = nil
	if d.closer != nil {
		if e := d.closer.Close(); e != nil && err == nil {
			err = e
		}
		d.closer = nil
	}
	return err
}

// ReadRegister reads one register.
func (d *Dev) ReadRegister(reg Register) (uint8, error) {
	var rx [1]byte
	if err := d.d.Tx([]byte{uint8(reg)}, rx[:]); err != nil {
		return 0, fmt.Errorf("%w: read %s: %w", ErrBus, reg, err)
	}
	return rx[0], nil
}

// WriteRegister writes one register.
func (d *Dev) WriteRegister(reg Register, value uint8) error {
	if err := d.d.Tx([]byte{uint8(reg), value}, nil); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrBus, reg, err)
	}
	return nil
}

// ReadBit returns bit of reg. Bit 0 is the least significant bit.
func (d *Dev) ReadBit(reg Register, bit uint8) (bool, error) {
	v, err := d.ReadRegister(reg)
	if err != nil {
		return false, err
	}
	return getBit(v, bit), nil
}

// WriteBit sets or clears bit of reg and leaves the other bits as read.
//
// This is a read-modify-write done as two bus transactions. If the write
// fails the register keeps its previous value.
func (d *Dev) WriteBit(reg Register, bit uint8, value bool) error {
	v, err := d.ReadRegister(reg)
	if err != nil {
		return err
	}
	return d.WriteRegister(reg, setBit(v, bit, value))
}

// Snapshot reads every register, one transaction each. On error the zero
// Registers is returned.
func (d *Dev) Snapshot() (Registers, error) {
	var r Registers
	for i := range r {
		v, err := d.ReadRegister(Register(i))
		if err != nil {
			return Registers{}, err
		}
		r[i] = v
	}
	return r, nil
}

// PinDirection returns true if pin is an input, false if it's an output.
func (d *Dev) PinDirection(pin uint8) (bool, error) {
	return d.ReadBit(IODIR, pin)
}

// SetPinDirection configures pin as an input (true) or output (false).
func (d *Dev) SetPinDirection(pin uint8, input bool) error {
	return d.WriteBit(IODIR, pin, input)
}

// PinValue returns true if pin is high.
func (d *Dev) PinValue(pin uint8) (bool, error) {
	return d.ReadBit(GPIO, pin)
}

// SetPinValue drives pin high (true) or low (false).
func (d *Dev) SetPinValue(pin uint8, high bool) error {
	return d.WriteBit(GPIO, pin, high)
}

// InputPolarity returns true if the input of pin is inverted.
func (d *Dev) InputPolarity(pin uint8) (bool, error) {
	return d.ReadBit(IPOL, pin)
}

// SetInputPolarity inverts (true) or restores (false) the input of pin.
func (d *Dev) SetInputPolarity(pin uint8, inverted bool) error {
	return d.WriteBit(IPOL, pin, inverted)
}

// PullUp returns true if the pull-up resistor of pin is enabled.
func (d *Dev) PullUp(pin uint8) (bool, error) {
	return d.ReadBit(GPPU, pin)
}

// SetPullUp enables or disables the 100kΩ pull-up resistor of pin.
func (d *Dev) SetPullUp(pin uint8, enabled bool) error {
	return d.WriteBit(GPPU, pin, enabled)
}

// isAddrInvalid reports whether addr is outside the range selectable with
// the A0-A2 pins.
func isAddrInvalid(addr uint16) bool {
	return addr < DefaultAddress || MaxAddress < addr
}

var _ conn.Resource = &Dev{}
