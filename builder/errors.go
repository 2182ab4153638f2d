// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context as "<Method>: <detail>: %w".
//   • Constructors never panic; option constructors (WithX) panic on
//     meaningless input.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (sides, rows, cols, arity)
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadIndexBuffer indicates an index buffer that cannot be cut into faces:
// its length is not a multiple of the arity, or it holds a negative index.
var ErrBadIndexBuffer = errors.New("builder: malformed index buffer")

// ErrOptionViolation indicates an invalid enumerated parameter, such as an
// unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates a recipe that could not be realized, for
// example a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
