//+build !release

package mocks

import (
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/providers"
)

type fakeFanOut struct {
	inDeviceUpdates  chan *common.MsgDeviceUpdate
	outDeviceUpdates map[int64]chan *common.MsgDeviceUpdate
}

func (f *fakeFanOut) SubscribeDeviceUpdates() (int64, chan *common.MsgDeviceUpdate) {
	return 1, f.inDeviceUpdates
}

func (f *fakeFanOut) UnSubscribeDeviceUpdates(int64) {
}

func (f *fakeFanOut) ChannelInDeviceUpdates() chan *common.MsgDeviceUpdate {
	return f.inDeviceUpdates
}

// FakeNewFanOut creates a fake fan-out provider.
func FakeNewFanOut() providers.IInternalFanOutProvider {
	return &fakeFanOut{
		inDeviceUpdates:  make(chan *common.MsgDeviceUpdate, 10),
		outDeviceUpdates: make(map[int64]chan *common.MsgDeviceUpdate),
	}
}
