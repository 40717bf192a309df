// Package api provides the read-only HTTP API for spectating a match.
//
// Endpoints:
//   - GET /api/health - liveness, match ID and spectator count
//   - GET /api/state - latest frame snapshot (503 before the first frame)
//   - GET /api/config - rules of the running match
//   - GET /api/configs - rule sets available on disk
//   - GET /api/configs/{name} - a single rule set
//   - GET /ws - WebSocket upgrade; streams state_update and score events
//
// Nothing here can change the simulation. Input only comes from the local
// keyboard or a headless script.
package api
