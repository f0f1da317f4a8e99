package server

import (
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
)

// Returns all known devices.
func (s *LockHubServer) getDevices(writer http.ResponseWriter, request *http.Request) { //nolint: unparam
	respond(writer, s.state.GetAllDevices())
}

// Executes device command.
func (s *LockHubServer) deviceCommand(writer http.ResponseWriter, request *http.Request) { //nolint: unparam
	vars := mux.Vars(request)
	b, _ := ioutil.ReadAll(request.Body)
	respondOkError(writer, s.commandInvokeDeviceCommand(vars[string(urlDeviceSelector)],
		vars[string(urlCommandName)], b))
}
