// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rpgerr

// Kind groups the existing Codes into the four failure categories the
// combat core's steps and loaders reason about: whether an error aborts an
// action without mutating state, merely logs and continues, or indicates a
// programmer mistake that should halt the simulation.
type Kind string

const (
	// KindValidation: malformed input data. Aborts the current action
	// before any state mutation.
	KindValidation Kind = "validation"
	// KindPrecondition: a rule prevented the action (empty slot, no
	// charges, already equipped). Leaves state unchanged, returns a
	// failed result.
	KindPrecondition Kind = "precondition"
	// KindDiagnostic: a step could not apply (missing component, no
	// position for AoE). Logged to the message collector; the pipeline
	// continues.
	KindDiagnostic Kind = "diagnostic"
	// KindInvariant: a programmer error (out-of-bounds write, negative
	// clamped health). Should halt the simulation.
	KindInvariant Kind = "invariant"
)

// codeKinds maps every Code this package defines to the Kind the combat
// core treats it as.
var codeKinds = map[Code]Kind{
	CodeInvalidArgument:     KindValidation,
	CodeNotFound:            KindValidation,
	CodeAlreadyExists:       KindValidation,
	CodeNotAllowed:          KindPrecondition,
	CodePrerequisiteNotMet:  KindPrecondition,
	CodeResourceExhausted:   KindPrecondition,
	CodeOutOfRange:          KindPrecondition,
	CodeInvalidTarget:       KindPrecondition,
	CodeConflictingState:    KindPrecondition,
	CodeTimingRestriction:   KindPrecondition,
	CodeCapacityExceeded:    KindPrecondition,
	CodeCooldownActive:      KindPrecondition,
	CodeImmune:              KindPrecondition,
	CodeBlocked:             KindDiagnostic,
	CodeInterrupted:         KindDiagnostic,
	CodeInvalidState:        KindDiagnostic,
	CodeInternal:            KindInvariant,
	CodeCanceled:            KindDiagnostic,
	CodeUnknown:             KindInvariant,
	CodeNil:                 KindInvariant,
}

// KindOf classifies err's Code into one of the four combat-core failure
// kinds. Unrecognized codes (e.g. from an unrelated error type) classify as
// KindInvariant, the most conservative choice.
func KindOf(err error) Kind {
	code := GetCode(err)
	if k, ok := codeKinds[code]; ok {
		return k
	}
	return KindInvariant
}

// Validationf constructs a KindValidation error with CodeInvalidArgument.
func Validationf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Preconditionf constructs a KindPrecondition error with CodeNotAllowed.
func Preconditionf(format string, args ...any) *Error {
	return Newf(CodeNotAllowed, format, args...)
}

// Diagnosticf constructs a KindDiagnostic error with CodeInvalidState.
func Diagnosticf(format string, args ...any) *Error {
	return Newf(CodeInvalidState, format, args...)
}

// Invariantf constructs a KindInvariant error with CodeInternal, for
// conditions the combat core considers a programmer mistake rather than a
// reachable game-rule failure.
func Invariantf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}
