// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23008

import (
	"errors"

	"periph.io/x/conn/v3"
)

type port struct {
	dev *Dev
}

// Tx takes bytes to either read or write. Only half duplex is supported so it
// is an error to pass 2 buffers at once. Each byte is one GPIO register
// transaction. Directions are not changed, configure the pins first.
func (p *port) Tx(w, r []byte) error {
	if len(w) > 0 && len(r) > 0 {
		return errors.New("mcp23008: only conn.Half duplex is supported")
	}
	for _, b := range w {
		if err := p.dev.WriteRegister(GPIO, b); err != nil {
			return err
		}
	}
	for i := range r {
		v, err := p.dev.ReadRegister(GPIO)
		if err != nil {
			return err
		}
		r[i] = v
	}
	return nil
}

// Duplex returns that this is a half duplex connection.
func (p *port) Duplex() conn.Duplex {
	return conn.Half
}

// String provides the name of this connection.
func (p *port) String() string {
	return p.dev.name + "_GPIO"
}

var _ conn.Conn = &port{}
