package worker

import (
	"testing"
	"time"

	_ "github.com/lockhub-io/server/integrations/virtual"
	"github.com/lockhub-io/server/mocks"
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device/enums"
	"github.com/lockhub-io/server/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(devices []*providers.RawDevice) (providers.IDeviceHostProvider, providers.IInternalFanOutProvider) {
	settings := mocks.FakeNewSettings(nil)
	settings.AddDevices(devices)
	fanOut := mocks.FakeNewFanOut()
	settings.AddFanOut(fanOut)
	return NewHost(settings), fanOut
}

func receiveUpdate(t *testing.T, fanOut providers.IInternalFanOutProvider) *common.MsgDeviceUpdate {
	_, updates := fanOut.SubscribeDeviceUpdates()
	select {
	case msg := <-updates:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no device update received")
		return nil
	}
}

// Tests loading devices from config.
func TestHostLoadsDevices(t *testing.T) {
	host, fanOut := newTestHost([]*providers.RawDevice{
		{
			Integration: "virtual",
			DeviceType:  enums.DevLock,
			Name:        "hallway",
			StrConfig:   "name: front door\ncodeFormat: '^\\d{4}$'",
		},
		{
			Integration: "no-such-integration",
			DeviceType:  enums.DevLock,
			Name:        "broken",
		},
		{
			Integration: "virtual",
			DeviceType:  enums.DevUnknown,
			Name:        "not a lock",
		},
	})

	host.Start()
	defer host.Stop()

	devices := host.GetAllDevices()
	require.Len(t, devices, 1, "only the valid lock is loaded")
	assert.Equal(t, "hallway.lock.front_door", devices[0].ID(), "device id")
	assert.NotNil(t, host.GetDevice("hallway.lock.front_door"), "lookup by id")
	assert.Nil(t, host.GetDevice("no.such.device"), "unknown id")

	msg := receiveUpdate(t, fanOut)
	assert.True(t, msg.FirstSeen, "initial update is first-seen")
	assert.Equal(t, "hallway.lock.front_door", msg.ID, "update id")
	assert.Equal(t, enums.StatusLocked.String(), msg.State["status"], "initial status")
}

// Tests command invocation through the host.
func TestHostInvokeCommand(t *testing.T) {
	host, fanOut := newTestHost([]*providers.RawDevice{
		{
			Integration: "virtual",
			DeviceType:  enums.DevLock,
			Name:        "hallway",
			StrConfig:   "name: front door",
		},
	})

	host.Start()
	defer host.Stop()
	receiveUpdate(t, fanOut)

	err := host.InvokeDeviceCommand("hallway.lock.front_door", enums.CmdUnlock, nil)
	require.NoError(t, err)

	msg := receiveUpdate(t, fanOut)
	assert.False(t, msg.FirstSeen, "regular update")
	assert.Equal(t, enums.StatusUnlocked.String(), msg.State["status"], "unlocked")

	err = host.InvokeDeviceCommand("no.such.device", enums.CmdLock, nil)
	require.Error(t, err)
	assert.IsType(t, &ErrUnknownDevice{}, err)
}

// Tests that open is rejected when the device doesn't support it.
func TestHostOpenGate(t *testing.T) {
	host, fanOut := newTestHost([]*providers.RawDevice{
		{
			Integration: "virtual",
			DeviceType:  enums.DevLock,
			Name:        "hallway",
			StrConfig:   "name: front door",
		},
	})

	host.Start()
	defer host.Stop()
	receiveUpdate(t, fanOut)

	err := host.InvokeDeviceCommand("hallway.lock.front_door", enums.CmdOpen, nil)
	assert.Error(t, err, "open requires the feature flag")
}
