package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/lockhub-io/server/plugins/common"
)

type wsCmd struct {
	ID  string      `json:"id"`
	Cmd string      `json:"cmd"`
	Val interface{} `json:"value"`
}

// Handles WS upgrade request.
func (s *LockHubServer) handleWS(writer http.ResponseWriter, request *http.Request) {
	c, err := s.wsSettings.Upgrade(writer, request, nil)
	if err != nil {
		s.Logger.Error("Failed to establish a WS connection", err, common.LogSystemToken, logSystem)
		return
	}

	go s.processWSConnection(c)
}

// Processes incoming WS connections.
//noinspection GoUnhandledErrorResult
func (s *LockHubServer) processWSConnection(conn *websocket.Conn) {
	stop := make(chan bool, 1)
	go s.processIncomingWSMessages(conn, stop)
	deviceSubID, deviceUpd := s.Settings.FanOut().SubscribeDeviceUpdates()
	defer s.Settings.FanOut().UnSubscribeDeviceUpdates(deviceSubID)

	for {
		select {
		case msg := <-stop:
			if msg {
				return
			}
		case msg, ok := <-deviceUpd:
			if !ok {
				return
			}

			kd := s.state.GetDevice(msg.ID)
			if nil == kd {
				continue
			}

			conn.WriteJSON(kd) // nolint: gosec, errcheck
		}
	}
}

// Processes incoming WS messages.
//noinspection GoUnhandledErrorResult
func (s *LockHubServer) processIncomingWSMessages(conn *websocket.Conn, stop chan bool) {
	defer conn.Close() // nolint: errcheck
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			s.Logger.Debug("Closing WS connection", common.LogSystemToken, logSystem)
			stop <- true
			return
		}

		// Ping request comes as a un-wrapped string
		if 4 == len(message) {
			conn.WriteMessage(mt, []byte("pong")) // nolint: gosec, errcheck
			continue
		}

		cmd := &wsCmd{}
		err = json.Unmarshal(message, cmd)
		if err != nil {
			s.Logger.Error("Failed to un-marshal WS command", err, common.LogSystemToken, logSystem)
			continue
		}

		data, err := json.Marshal(cmd.Val)
		if err != nil {
			s.Logger.Error("Failed to marshal WS command", err, common.LogSystemToken, logSystem)
			continue
		}

		s.commandInvokeDeviceCommand(cmd.ID, cmd.Cmd, data) // nolint: gosec, errcheck
	}
}
