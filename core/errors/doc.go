// Package errors provides module-standard error constructors on top of
// core/error so that every textkit package reports failures with the same
// codes and the same "module" and "operation" details.
package errors
