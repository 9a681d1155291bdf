// Package kernel provides the shared domain primitives of the order lifecycle
// service. It currently holds the UUID value object used to identify investors
// and registrars across aggregates.
//
// Kernel types are immutable value objects: they are created through factory
// functions, validate themselves, and are safe to share between goroutines.
package kernel
