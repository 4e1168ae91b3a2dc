package domain

import "errors"

var (
	// ErrInvalidInput reports a malformed request: a city missing from the
	// graph, an empty candidate list, or an invalid weight or distance.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnreachable reports that no path connects a source to a destination.
	ErrUnreachable = errors.New("destination unreachable")

	// ErrNoRouteFound reports that the destination is unreachable from every
	// candidate distribution center.
	ErrNoRouteFound = errors.New("no route found")

	// ErrNetworkUnavailable reports that the network dataset could not be
	// loaded or is itself invalid. It is a server fault, never the caller's.
	ErrNetworkUnavailable = errors.New("network unavailable")
)
