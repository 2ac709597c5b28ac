// Package guardx provides fail-fast precondition checks.
//
// Guards catch programmer errors at API boundaries. Every guard returns the
// checked value together with a *tkerror.Error carrying code
// PRECONDITION_FAILED and a "parameter" detail, and the message names the
// parameter:
//
//	name, err := guardx.NotBlank(name, "name")
//	if err != nil {
//		return err // The given input name was null or empty.
//	}
//
// Must and Assert turn a failed guard into a panic for call sites where a
// violation is a bug. IsPrecondition recognizes guard errors anywhere in a
// wrap chain.
package guardx
