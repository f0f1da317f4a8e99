package server

import (
	"encoding/json"

	"github.com/gobwas/glob"
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device/enums"
)

// Invokes a command on all devices matching the selector.
// A selector is either an exact device ID or a glob pattern. An exact
// match propagates all errors back, a pattern skips devices which
// don't advertise the command.
func (s *LockHubServer) commandInvokeDeviceCommand(selector string, opName string, data []byte) error {
	command, err := enums.CommandString(opName)
	if err != nil {
		s.Logger.Warn("Received unknown command", common.LogSystemToken, logSystem,
			common.LogDeviceNameToken, selector, common.LogDeviceCommandToken, opName)
		return &ErrUnknownCommand{Name: opName}
	}

	payload := make(map[string]interface{})
	if len(data) > 0 {
		err := json.Unmarshal(data, &payload)
		if err != nil {
			s.Logger.Error("Failed to unmarshal input request", err,
				common.LogSystemToken, logSystem)
			return &ErrBadRequest{}
		}
	}

	if wrapper := s.host.GetDevice(selector); nil != wrapper {
		return wrapper.InvokeCommand(command, payload)
	}

	matcher, err := glob.Compile(selector)
	if err != nil {
		s.Logger.Warn("Received broken device selector", common.LogSystemToken, logSystem,
			common.LogDeviceNameToken, selector)
		return &ErrBadSelector{Selector: selector}
	}

	matched := false
	var lastErr error
	for _, wrapper := range s.host.GetAllDevices() {
		if !matcher.Match(wrapper.ID()) {
			continue
		}

		if !enums.SliceContainsCommand(wrapper.Commands(), command) {
			continue
		}

		matched = true
		if err := wrapper.InvokeCommand(command, payload); err != nil {
			lastErr = err
		}
	}

	if !matched {
		return &ErrUnknownDevice{Selector: selector}
	}

	return lastErr
}
