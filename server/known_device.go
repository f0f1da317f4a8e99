package server

import (
	"github.com/lockhub-io/server/plugins/device/enums"
)

// Known devices, reported by the device host.
type knownDevice struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Type     enums.DeviceType       `json:"type"`
	State    map[string]interface{} `json:"state"`
	LastSeen int64                  `json:"last_seen"`
	Commands []string               `json:"commands"`
	Features string                 `json:"features,omitempty"`
}
