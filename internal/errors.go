package internal

import "errors"

// ErrNoIncomingChannels is returned when a derived channel is constructed
// with an empty input list.
var ErrNoIncomingChannels = errors.New("derived channel has no incoming channels")
