// Package spectate connects a running match to the spectator transport.
// A Feed is installed as the frame observer; it keeps the latest snapshot for
// the REST API and publishes throttled updates plus every score change to the
// WebSocket hub.
package spectate
