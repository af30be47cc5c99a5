/*
Package unistyle converts plain ASCII letters and digits into visually styled
Unicode glyphs and back.

Styled Glyphs

Unicode reserves a range of code points, the “Mathematical Alphanumeric
Symbols” (U+1D400 … U+1D7FF), for letters and digits in bold, italic, script,
fraktur, sans-serif and monospace variants. They are meant for mathematical
notation, but are widely used to carry apparent formatting into contexts which
allow plain text only, e.g. posts on social media:

    s, _ := unistyle.ConvertTo("Hello123", "bold")   // => "𝐇𝐞𝐥𝐥𝐨𝟏𝟐𝟑"
    unistyle.Normalize(s)                              // => "Hello123"
    unistyle.Classify(s).Bold                          // => true

Every style is backed by a contiguous block of 52 code points for the letters
A–Z, a–z, and optionally by a block of 10 code points for the digits 0–9.
Characters outside of A–Z, a–z, 0–9 always pass through unchanged. Styles are
identified by name (see StyleNames). The style table is built once and never
changes, so all functions of this package are safe for concurrent use.

This package does not perform general Unicode normalization (NFC/NFD), and it
knows nothing about scripts other than Latin and Arabic digits.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package unistyle

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
