// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pinview renders MCP23008 register values on a terminal (stdout by
// default) as rows of ANSI colored blocks, one block per pin.
//
// Useful to watch the expander state while wiring a board.
package pinview

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"

	"github.com/m-0x4ba/MCP23008/mcp23008"
)

// Opts represents the options available for the view.
type Opts struct {
	// W defaults to a colorable stdout.
	W       io.Writer
	Palette *ansi256.Palette
	// High and Low are the colors of set and cleared bits. The zero value
	// selects the DefaultOpts color.
	High color.NRGBA
	Low  color.NRGBA

	_ struct{}
}

// DefaultOpts draws set bits in green and cleared bits in dark gray.
var DefaultOpts = Opts{
	High: color.NRGBA{R: 0, G: 255, B: 0, A: 255},
	Low:  color.NRGBA{R: 64, G: 64, B: 64, A: 255},
}

// Dev writes register rows to a terminal.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	high    color.NRGBA
	low     color.NRGBA

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{
		w:       opts.W,
		palette: *p,
		high:    opts.High,
		low:     opts.Low,
	}
	if d.w == nil {
		d.w = colorable.NewColorableStdout()
	}
	if d.high == (color.NRGBA{}) {
		d.high = DefaultOpts.High
	}
	if d.low == (color.NRGBA{}) {
		d.low = DefaultOpts.Low
	}
	return d
}

func (d *Dev) String() string {
	return "PinView"
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

// Write writes one row: the label, bit 7 to bit 0 as blocks, then the value
// in hexadecimal.
func (d *Dev) Write(label string, v uint8) error {
	d.buf.Reset()
	_, _ = fmt.Fprintf(&d.buf, "\033[0m%-8s", label)
	for bit := 7; bit >= 0; bit-- {
		c := d.low
		if v&(1<<bit) != 0 {
			c = d.high
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = fmt.Fprintf(&d.buf, "\033[0m 0x%02X\n", v)
	_, err := d.buf.WriteTo(d.w)
	return err
}

// WriteRegisters writes one row per register, in offset order.
func (d *Dev) WriteRegisters(r mcp23008.Registers) error {
	for i, v := range r {
		if err := d.Write(mcp23008.Register(i).String(), v); err != nil {
			return err
		}
	}
	return nil
}

var _ conn.Resource = &Dev{}
