// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23008

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

type pinGroup struct {
	dev         *Dev
	pins        []*portpin
	defaultMask gpio.GPIOValue
}

// Group returns a gpio.Group made of the specified pin numbers, in order.
// Offset i of a group value maps to pins[i]. nil is returned if a pin number
// is not in 0-7.
func (d *Dev) Group(pins ...int) gpio.Group {
	if len(pins) == 0 {
		return nil
	}
	grouppins := make([]*portpin, len(pins))
	for ix, number := range pins {
		if number < 0 || number >= len(d.Pins) {
			return nil
		}
		grouppins[ix] = d.Pins[number].(*portpin)
	}
	return &pinGroup{
		dev:         d,
		pins:        grouppins,
		defaultMask: gpio.GPIOValue(1<<len(pins)) - 1,
	}
}

// Pins returns the set of pin.Pin that make up that group.
func (pg *pinGroup) Pins() []pin.Pin {
	pins := make([]pin.Pin, len(pg.pins))
	for ix, p := range pg.pins {
		pins[ix] = p
	}
	return pins
}

// ByOffset returns the pin at offset within the group.
func (pg *pinGroup) ByOffset(offset int) pin.Pin {
	if offset < 0 || offset >= len(pg.pins) {
		return nil
	}
	return pg.pins[offset]
}

// ByName returns the pin with the given name, or nil.
func (pg *pinGroup) ByName(name string) pin.Pin {
	for _, p := range pg.pins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// ByNumber returns the pin with the given GP number, or nil.
func (pg *pinGroup) ByNumber(number int) pin.Pin {
	for _, p := range pg.pins {
		if p.Number() == number {
			return p
		}
	}
	return nil
}

// portMask converts a mask relative to the group into a mask of the port.
func (pg *pinGroup) portMask(mask gpio.GPIOValue) uint8 {
	var m uint8
	for ix, p := range pg.pins {
		if mask&(1<<ix) != 0 {
			m |= 1 << p.pinbit
		}
	}
	return m
}

func (pg *pinGroup) normalize(mask gpio.GPIOValue) gpio.GPIOValue {
	if mask == 0 {
		return pg.defaultMask
	}
	return mask & pg.defaultMask
}

// Out writes value to the pins selected by mask. A mask of 0 selects every
// pin of the group. Pins not yet configured as outputs are switched.
//
// The other bits are taken from GPIO, which reads the pin levels and not the
// output latch. A heavily loaded output outside mask whose level differs from
// its latch is written back with the level read.
func (pg *pinGroup) Out(value, mask gpio.GPIOValue) error {
	mask = pg.normalize(mask)
	wrMask := pg.portMask(mask)
	wr := pg.portMask(value & mask)

	iodir, err := pg.dev.ReadRegister(IODIR)
	if err != nil {
		return err
	}
	if iodir&wrMask != 0 {
		if err = pg.dev.WriteRegister(IODIR, iodir&^wrMask); err != nil {
			return err
		}
	}
	current, err := pg.dev.ReadRegister(GPIO)
	if err != nil {
		return err
	}
	return pg.dev.WriteRegister(GPIO, current&^wrMask|wr)
}

// Read returns the level of the pins selected by mask. A mask of 0 selects
// every pin of the group. Pins not yet configured as inputs are switched.
func (pg *pinGroup) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	mask = pg.normalize(mask)
	rmask := pg.portMask(mask)

	iodir, err := pg.dev.ReadRegister(IODIR)
	if err != nil {
		return 0, err
	}
	if iodir&rmask != rmask {
		if err = pg.dev.WriteRegister(IODIR, iodir|rmask); err != nil {
			return 0, err
		}
	}
	v, err := pg.dev.ReadRegister(GPIO)
	if err != nil {
		return 0, err
	}
	var result gpio.GPIOValue
	for ix, p := range pg.pins {
		if mask&(1<<ix) != 0 && getBit(v, p.pinbit) {
			result |= 1 << ix
		}
	}
	return result, nil
}

// WaitForEdge is not supported, the interrupt registers are not driven.
func (pg *pinGroup) WaitForEdge(timeout time.Duration) (number int, edge gpio.Edge, err error) {
	return -1, gpio.NoEdge, gpio.ErrGroupFeatureNotImplemented
}

// Halt implements conn.Resource.
func (pg *pinGroup) Halt() error {
	return nil
}

// String returns the device name and the pin numbers of the group.
func (pg *pinGroup) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - [ ", pg.dev)
	for _, p := range pg.pins {
		fmt.Fprintf(&b, "%d ", p.Number())
	}
	b.WriteString("]")
	return b.String()
}

var _ gpio.Group = &pinGroup{}
