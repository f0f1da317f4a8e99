// Package fanout contains implementation of pub-sub fanout channels.
package fanout

import (
	"math/rand"
	"sync"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/providers"
)

// Implements IInternalFanOutProvider.
type provider struct {
	device sync.Mutex

	inDeviceUpdates  chan *common.MsgDeviceUpdate
	outDeviceUpdates map[int64]chan *common.MsgDeviceUpdate
}

// NewFanOut constructs new FanOut provider.
func NewFanOut() providers.IInternalFanOutProvider {
	p := &provider{
		inDeviceUpdates:  make(chan *common.MsgDeviceUpdate, 10),
		outDeviceUpdates: make(map[int64]chan *common.MsgDeviceUpdate),

		device: sync.Mutex{},
	}

	go p.internalCycle()
	return p
}

// SubscribeDeviceUpdates allows to subscribe to the devices updates.
func (p *provider) SubscribeDeviceUpdates() (int64, chan *common.MsgDeviceUpdate) {
	p.device.Lock()
	defer p.device.Unlock()

	c := make(chan *common.MsgDeviceUpdate, 10)
	rnd := p.getID()
	p.outDeviceUpdates[rnd] = c
	return rnd, c
}

// UnSubscribeDeviceUpdates allows to un-subscribe from the device updates.
func (p *provider) UnSubscribeDeviceUpdates(id int64) {
	p.device.Lock()
	defer p.device.Unlock()

	c, ok := p.outDeviceUpdates[id]
	if !ok {
		return
	}

	close(c)
	delete(p.outDeviceUpdates, id)
}

// ChannelInDeviceUpdates returns input channel for the device updates.
func (p *provider) ChannelInDeviceUpdates() chan *common.MsgDeviceUpdate {
	return p.inDeviceUpdates
}

// Internal update-distribution cycle.
func (p *provider) internalCycle() {
	for msg := range p.inDeviceUpdates {
		p.device.Lock()
		for _, v := range p.outDeviceUpdates {
			select {
			case v <- msg:
			default:
			}
		}
		p.device.Unlock()
	}
}

// Generates a new pseudo-unique subscription ID.
func (p *provider) getID() int64 {
	for {
		rnd := rand.Int63()
		if _, ok := p.outDeviceUpdates[rnd]; !ok {
			return rnd
		}
	}
}
