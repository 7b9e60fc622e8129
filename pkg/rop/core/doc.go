// Package core contains the plumbing behind the channel flavor of the
// combinators: helpers that turn values into channels and back, the worker
// loop that drives a stage over a stream, and the worker and drain options
// carried by the context. It defines no combinators itself; package lite
// builds them on top of it.
package core
