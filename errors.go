// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package numlit

import (
	"errors"
	"fmt"
)

// ErrIllegalOffsetOrLength is returned when the caller's offset/length pair
// falls outside the buffer or exceeds MaxInputLength. It is reported
// eagerly, before any scanning, since it is a precondition violation rather
// than a property of the input text.
var ErrIllegalOffsetOrLength = errors.New("numlit: illegal offset or length")

// ErrSyntax is returned when the window does not match the literal's
// grammar.
var ErrSyntax = errors.New("numlit: syntax error")

// ErrValueExceedsLimits means the literal is grammatically well-formed but
// its digit count or exponent exceeds a grammar-defined ceiling. It is
// deliberately not chained through ErrSyntax: errors.Is(err, ErrSyntax)
// reports false for such an error, since the window did parse.
var ErrValueExceedsLimits = errors.New("numlit: value exceeds limits")

// parseError carries the offending offset/length alongside one of the
// sentinel errors above, so callers that want structured information can
// get it while everyone else can keep using plain errors.Is checks.
type parseError struct {
	offset, length int
	underlying     error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("numlit: offset=%d length=%d: %v", e.offset, e.length, e.underlying)
}

func (e *parseError) Unwrap() error {
	return e.underlying
}

// Offset and Length report the window that failed to parse.
func (e *parseError) Offset() int { return e.offset }
func (e *parseError) Length() int { return e.length }

func illegalOffsetOrLength(offset, length int) error {
	return &parseError{offset: offset, length: length, underlying: ErrIllegalOffsetOrLength}
}

func syntaxError(offset, length int) error {
	return &parseError{offset: offset, length: length, underlying: ErrSyntax}
}

func valueExceedsLimits(offset, length int) error {
	return &parseError{offset: offset, length: length, underlying: ErrValueExceedsLimits}
}
