/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package eddsa

import (
	"errors"
	"fmt"
)

// ErrInvalidVerificationMethod is returned when the resolved verification
// method does not carry the key half an operation needs.
var ErrInvalidVerificationMethod = errors.New("invalid verification method")

// ProofGenerationError reports a contract violation in the configure or
// serialize stage of proof creation.
type ProofGenerationError struct {
	Err error
}

func (e *ProofGenerationError) Error() string {
	return fmt.Sprintf("proof generation: %s", e.Err)
}

func (e *ProofGenerationError) Unwrap() error {
	return e.Err
}

// ProofTransformationError reports a contract violation in the transform
// stage.
type ProofTransformationError struct {
	Err error
}

func (e *ProofTransformationError) Error() string {
	return fmt.Sprintf("proof transformation: %s", e.Err)
}

func (e *ProofTransformationError) Unwrap() error {
	return e.Err
}

// ProofVerificationError reports a proof that fails verification before the
// signature is even checked, like a type or context mismatch.
type ProofVerificationError struct {
	Err error
}

func (e *ProofVerificationError) Error() string {
	return fmt.Sprintf("proof verification: %s", e.Err)
}

func (e *ProofVerificationError) Unwrap() error {
	return e.Err
}

func generationErrorf(format string, args ...interface{}) error {
	return &ProofGenerationError{Err: fmt.Errorf(format, args...)}
}

func transformationErrorf(format string, args ...interface{}) error {
	return &ProofTransformationError{Err: fmt.Errorf(format, args...)}
}

func verificationErrorf(format string, args ...interface{}) error {
	return &ProofVerificationError{Err: fmt.Errorf(format, args...)}
}
