/*
Package runtime implements the interpreter runtime: values, stack machines,
the primitive table and a tracing evaluator.

Values

Values are immutable. Numbers and characters are stored inline, lists, sets
and captured quotes are shared by reference. Strings are lists of characters.
The zero value is Poison, the marker for a failed computation step.

VMs and Traces

A VM is a stack of values, optionally linked to a parent VM. The parent link
is used for display only: nested evaluations (e.g., the body of a "map") can
be shown in the context of their enclosing stack.

The evaluator walks a program with a cursor and records a snapshot of the VM
before and after every expression, keyed by the cursor's shape. Positions
visited more than once, e.g. inside a mapped quote, collect one snapshot per
visit, in execution order.

Failures

Evaluation never stops. A primitive either succeeds completely or leaves the
stack untouched and pushes a single Poison value instead of its result.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tacit.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("tacit.runtime")
}

// Errors wrapped by primitive rules. They never leave the evaluator; a failing
// rule results in a Poison value.
var (
	ErrUnderflow = errors.New("stack underflow")
	ErrType      = errors.New("type mismatch")
	ErrRange     = errors.New("out of range")
	ErrParse     = errors.New("cannot parse")
	ErrIO        = errors.New("input/output failure")
	ErrUnknown   = errors.New("unknown primitive")
)
