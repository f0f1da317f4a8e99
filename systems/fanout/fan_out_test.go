package fanout

import (
	"testing"
	"time"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/stretchr/testify/assert"
)

// Tests devices updates channels.
func TestDeviceUpdates(t *testing.T) {
	fo := NewFanOut()
	idd1, d1 := fo.SubscribeDeviceUpdates()
	idd2, d2 := fo.SubscribeDeviceUpdates()
	var m1 *common.MsgDeviceUpdate
	var m2 *common.MsgDeviceUpdate
	d1Exited := false
	d2Exited := false

	go func() {
		for m := range d1 {
			m1 = m
		}

		d1Exited = true
	}()

	go func() {
		for m := range d2 {
			m2 = m
		}

		d2Exited = true
	}()

	fo.ChannelInDeviceUpdates() <- &common.MsgDeviceUpdate{}
	time.Sleep(1 * time.Second)
	assert.NotNil(t, m1, "channel 1")
	assert.NotNil(t, m2, "channel 2")

	m1 = nil
	m2 = nil

	fo.UnSubscribeDeviceUpdates(idd1)
	fo.ChannelInDeviceUpdates() <- &common.MsgDeviceUpdate{}
	time.Sleep(1 * time.Second)

	assert.Nil(t, m1, "unsubscribe channel 1")
	assert.NotNil(t, m2, "unsubscribe channel 2")
	assert.True(t, d1Exited, "exit channel 1")

	m1 = nil
	m2 = nil

	fo.UnSubscribeDeviceUpdates(idd2)
	fo.ChannelInDeviceUpdates() <- &common.MsgDeviceUpdate{}
	time.Sleep(1 * time.Second)

	assert.Nil(t, m1, "final channel 1")
	assert.Nil(t, m2, "final channel 2")
	assert.True(t, d2Exited, "exit channel 2")
}

// Tests that double un-subscribe doesn't panic.
func TestDoubleUnSubscribe(t *testing.T) {
	fo := NewFanOut()
	id, _ := fo.SubscribeDeviceUpdates()
	fo.UnSubscribeDeviceUpdates(id)
	fo.UnSubscribeDeviceUpdates(id)
}
