package transportwatcher

import "errors"

var (
	// ErrNotConfigured means a required path or connection is missing; the
	// affected operation fails at startup and is not retried.
	ErrNotConfigured = errors.New("not configured")

	// ErrNoStationInRange means no walkable station exists near a query
	// point. A normal no-coverage outcome, reported to the caller.
	ErrNoStationInRange = errors.New("no station within walking range")

	// ErrNoRoute covers both unknown stations and disconnected components;
	// the detail string carries which one occurred.
	ErrNoRoute = errors.New("no route")
)
