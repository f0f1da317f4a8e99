package server

import "net/http"

// Performs quick check whether system is OK.
func (s *LockHubServer) ping(writer http.ResponseWriter, _ *http.Request) {
	respondOk(writer)
}

// Responds with the hub status.
func (s *LockHubServer) getStatus(writer http.ResponseWriter, _ *http.Request) {
	respond(writer, &struct {
		NodeID  string `json:"node_id"`
		Devices int    `json:"devices"`
	}{
		NodeID:  s.Settings.NodeID(),
		Devices: len(s.host.GetAllDevices()),
	})
}
