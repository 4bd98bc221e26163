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

// Package numlit parses numeric literals out of a read-only buffer of
// bytes or 16-bit code units: decimal and hex
// floating-point, JSON numbers, and arbitrary-precision integer and
// decimal literals.
//
// Every entry point takes an explicit offset/length window rather than a
// whole string or slice, so callers can parse a literal embedded in a
// larger buffer (a source file, a network message) without slicing first.
// Scanning reads the buffer in place. The float entry points then copy the
// scanned digits into a string for strconv.ParseFloat, and the
// arbitrary-precision entry points allocate big.Int intermediates and can
// run their long-digit-range work on a bounded worker pool when the caller
// opts in.
package numlit
