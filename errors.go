// Copyright 2026 The xelis-hash-go Authors
// This file is part of xelis-hash-go.
//
// xelis-hash-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// xelis-hash-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with xelis-hash-go. If not, see <http://www.gnu.org/licenses/>.

package xelishash

import "errors"

// ErrInvalidArguments is the single opaque error kind this package ever
// returns. It signals that the entry contract was not met: the input
// buffer is shorter than InputSize, or the input or scratchpad pointer is
// nil. A Scratchpad always holds ScratchpadWords words and an AlignedInput
// is always 8-byte aligned, so neither a short scratchpad nor a misaligned
// input can be passed in. No partial result is produced when this error is
// returned, and the scratchpad contents are left unspecified.
var ErrInvalidArguments = errors.New("xelishash: invalid input or scratchpad size")
