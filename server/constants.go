package server

// muxKeys describes enum with known API tokens.
type muxKeys string

const (
	// urlDeviceSelector describes device selector URL param.
	urlDeviceSelector muxKeys = "deviceSelector"
	// urlCommandName describes device command name URL param.
	urlCommandName muxKeys = "commandName"
	// routeAPI describes base api prefix.
	routeAPI = "/api/v1"
)
