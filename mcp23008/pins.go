// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23008

import (
	"errors"
	"strconv"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// Pin extends gpio.PinIO with the input polarity control of the MCP23008.
type Pin interface {
	gpio.PinIO
	// SetPolarityInverted inverts the logic level reported for the input pin.
	SetPolarityInverted(p bool) error
	// IsPolarityInverted returns true if the input pin reports inverted logic.
	IsPolarityInverted() (bool, error)
}

type portpin struct {
	dev    *Dev
	pinbit uint8
}

func (p *portpin) String() string {
	return p.Name()
}

// Halt turns the pin into an input so it stops driving the line.
func (p *portpin) Halt() error {
	return p.dev.SetPinDirection(p.pinbit, true)
}

func (p *portpin) Name() string {
	return p.dev.name + "_GP" + strconv.Itoa(int(p.pinbit))
}

func (p *portpin) Number() int {
	return int(p.pinbit)
}

func (p *portpin) Function() string {
	return string(p.Func())
}

func (p *portpin) In(pull gpio.Pull, edge gpio.Edge) error {
	// INT is not routed through the I²C bus.
	if edge != gpio.NoEdge {
		return errors.New("mcp23008: edge detection not supported")
	}
	switch pull {
	case gpio.PullDown:
		return errors.New("mcp23008: PullDown is not supported")
	case gpio.PullUp:
		if err := p.dev.SetPullUp(p.pinbit, true); err != nil {
			return err
		}
	case gpio.Float:
		if err := p.dev.SetPullUp(p.pinbit, false); err != nil {
			return err
		}
	case gpio.PullNoChange:
	}
	return p.dev.SetPinDirection(p.pinbit, true)
}

func (p *portpin) Read() gpio.Level {
	v, _ := p.dev.PinValue(p.pinbit)
	return gpio.Level(v)
}

func (p *portpin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *portpin) Pull() gpio.Pull {
	v, err := p.dev.PullUp(p.pinbit)
	if err != nil {
		return gpio.PullNoChange
	}
	if v {
		return gpio.PullUp
	}
	return gpio.Float
}

func (p *portpin) DefaultPull() gpio.Pull {
	return gpio.Float
}

func (p *portpin) Out(l gpio.Level) error {
	if err := p.dev.SetPinDirection(p.pinbit, false); err != nil {
		return err
	}
	return p.dev.SetPinValue(p.pinbit, bool(l))
}

func (p *portpin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.New("mcp23008: PWM is not supported")
}

func (p *portpin) Func() pin.Func {
	v, err := p.dev.PinDirection(p.pinbit)
	if err != nil {
		return pin.FuncNone
	}
	if v {
		return gpio.IN
	}
	return gpio.OUT
}

func (p *portpin) SupportedFuncs() []pin.Func {
	return supportedFuncs[:]
}

func (p *portpin) SetFunc(f pin.Func) error {
	var input bool
	switch f {
	case gpio.IN:
		input = true
	case gpio.OUT:
		input = false
	default:
		return errors.New("mcp23008: Function not supported: " + string(f))
	}
	return p.dev.SetPinDirection(p.pinbit, input)
}

func (p *portpin) SetPolarityInverted(pol bool) error {
	return p.dev.SetInputPolarity(p.pinbit, pol)
}

func (p *portpin) IsPolarityInverted() (bool, error) {
	return p.dev.InputPolarity(p.pinbit)
}

var supportedFuncs = [...]pin.Func{gpio.IN, gpio.OUT}

var _ Pin = &portpin{}
