// Package websocket streams match snapshots to spectators.
//
// A central Hub owns every connection. Clients subscribe to a match by ID
// when they connect; the game loop calls Publish and the hub fans the JSON
// message out to that match's clients. Each connection has a read pump that
// only services pings and close frames, and a write pump that batches queued
// messages.
//
// Messages look like:
//
//	{"match_id":"3f2a9c1e","event":"state_update","state":{"score1":0,...}}
//
// Publish never blocks the caller. If the hub falls behind, messages are
// dropped, and a client whose send buffer fills up is disconnected.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, matchID)
//	})
package websocket
