// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the MCP23008 GPIO expander driver and
// its terminal register view.
//
// See subpackages mcp23008 and pinview.
package devices
