package lock

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device"
	"github.com/lockhub-io/server/plugins/device/enums"
	"github.com/lockhub-io/server/providers"
	"github.com/lockhub-io/server/utils"
	"github.com/pkg/errors"
)

// UpdateEvent is a type used for updates sent by a device.
type UpdateEvent struct {
	ID string
}

// Default poll interval for locks which didn't specify one.
const defaultUpdatePeriod = 30 * time.Second

// Data required for a new wrapper.
type ConstructWrapper struct {
	DeviceConfigName string
	Integration      string
	Device           device.ILock
	DeviceState      *device.LockState
	Logger           common.ILoggerProvider
	Cron             providers.ICronProvider
	Executor         providers.IExecutorProvider
	Registry         providers.IRegistryProvider
	Validator        providers.IValidatorProvider
	LoadData         *device.InitDataDevice

	StatusUpdatesChan chan *UpdateEvent
}

// Lock device wrapper implementation.
type lockWrapper struct {
	sync.Mutex

	Ctor *ConstructWrapper

	id          string
	spec        *device.Spec
	state       *device.LockState
	defaultCode string
	format      codeFormat

	jobID    int
	regSubID int64
}

// NewLockWrapper constructs a new lock device wrapper.
func NewLockWrapper(ctor *ConstructWrapper) providers.ILockWrapperProvider {
	w := &lockWrapper{
		Ctor: ctor,
	}

	w.spec = ctor.Device.GetSpec()
	if nil == w.spec {
		w.spec = &device.Spec{
			SupportedCommands: make([]enums.Command, 0),
		}
	}

	w.setState(ctor.DeviceState)

	interval := int(w.spec.UpdatePeriod / time.Second)
	if 0 == interval {
		interval = int(defaultUpdatePeriod / time.Second)
	}

	if interval > 0 {
		if interval < 10 {
			interval = 10
		}

		var err error
		w.jobID, err = ctor.Cron.AddFunc(fmt.Sprintf("@every %ds", interval), w.pullUpdate)
		if err != nil {
			ctor.Logger.Warn("Failed to schedule device updates",
				common.LogDeviceTypeToken, enums.DevLock.String(), common.LogDeviceNameToken, w.ID())
		}

		ctor.Logger.Debug(fmt.Sprintf("Polling rate for the device is %d seconds", interval),
			common.LogDeviceTypeToken, enums.DevLock.String(), common.LogDeviceNameToken, w.ID())
	}

	// Options are read on attach and on every registry update.
	w.readDeviceOptions(ctor.Registry.LockOptions(w.ID()))
	w.regSubID = ctor.Registry.Subscribe(w.ID(), func(opts *providers.LockOptions) {
		w.Lock()
		defer w.Unlock()
		w.readDeviceOptions(opts)
	})

	go w.startDeviceListeners()

	return w
}

// ID returns unique device ID.
// ID is normalized and contains config name, device type and name
// returned from the actual device.
func (w *lockWrapper) ID() string {
	if "" == w.id {
		w.id = fmt.Sprintf("%s.%s.%s", utils.NormalizeDeviceName(w.Ctor.DeviceConfigName),
			enums.DevLock.String(), utils.NormalizeDeviceName(w.Ctor.Device.GetName()))
	}
	return w.id
}

// Unload stops all background activities.
func (w *lockWrapper) Unload() {
	w.Ctor.Device.Unload()
	if 0 != w.jobID {
		w.Ctor.Cron.RemoveFunc(w.jobID)
	}

	w.Ctor.Registry.Unsubscribe(w.regSubID)
	close(w.Ctor.LoadData.DeviceStateUpdateChan)
}

// Commands returns commands advertised by the device, filtered by
// its feature flags. This is the declarative gate the registration
// layer relies on: a command which requires a missing feature is
// never exposed.
func (w *lockWrapper) Commands() []enums.Command {
	result := make([]enums.Command, 0, len(w.spec.SupportedCommands))
	for _, v := range w.spec.SupportedCommands {
		if !v.IsCommandAllowed(enums.DevLock) || !v.IsFeatureSupported(w.spec.SupportedFeatures) {
			continue
		}

		result = append(result, v)
	}

	return result
}

// Features returns feature flags advertised by the device.
func (w *lockWrapper) Features() enums.LockFeature {
	return w.spec.SupportedFeatures
}

// InvokeCommand performs a call to the device integration.
// The code is resolved and validated before the device is touched;
// the actual device operation runs on the executor pool so the
// caller's loop is never blocked by device I/O.
func (w *lockWrapper) InvokeCommand(cmd enums.Command, payload map[string]interface{}) error {
	w.Lock()
	defer w.Unlock()

	if !enums.SliceContainsCommand(w.spec.SupportedCommands, cmd) {
		w.Ctor.Logger.Warn("Device doesn't support this command",
			common.LogDeviceTypeToken, enums.DevLock.String(), common.LogDeviceNameToken, w.ID(),
			common.LogDeviceCommandToken, cmd.String())
		return &ErrUnsupportedCommand{Command: cmd.String()}
	}

	if !cmd.IsFeatureSupported(w.spec.SupportedFeatures) {
		w.Ctor.Logger.Warn("Device doesn't advertise a feature required by this command",
			common.LogDeviceTypeToken, enums.DevLock.String(), common.LogDeviceNameToken, w.ID(),
			common.LogDeviceCommandToken, cmd.String())
		return &ErrFeatureNotSupported{Command: cmd.String()}
	}

	data := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		data[k] = v
	}

	if err := w.resolveCode(data); err != nil {
		return err
	}

	request, err := w.prepareRequest(cmd, data)
	if err != nil {
		return err
	}

	w.Ctor.Logger.Debug("Invoking device command",
		common.LogDeviceTypeToken, enums.DevLock.String(), common.LogDeviceNameToken, w.ID(),
		common.LogDeviceCommandToken, cmd.String())

	method := w.commandMethod(cmd)
	err = <-w.Ctor.Executor.Submit(func() error {
		return method(request)
	})

	if err != nil {
		w.Ctor.Logger.Error("Got error while invoking device command", err,
			common.LogDeviceTypeToken, enums.DevLock.String(), common.LogDeviceNameToken, w.ID(),
			common.LogDeviceCommandToken, cmd.String())
		return err
	}

	if w.spec.PostCommandDeferUpdate > 0 {
		time.Sleep(w.spec.PostCommandDeferUpdate)
	}

	go w.pullUpdate()
	return nil
}

// GetUpdateMessage constructs device update message.
// Status is always derived from the raw signals, never stored, and
// an unknown status is represented by an absent field.
func (w *lockWrapper) GetUpdateMessage() *common.MsgDeviceUpdate {
	w.Lock()
	defer w.Unlock()

	state := make(map[string]interface{})
	if status := DetermineStatus(w.state); enums.StatusUnknown != status {
		state["status"] = status.String()
	}

	if nil != w.state && "" != w.state.ChangedBy {
		state["changed_by"] = w.state.ChangedBy
	}

	if pattern := w.codeFormatPattern(); "" != pattern {
		state["code_format"] = pattern
	}

	return &common.MsgDeviceUpdate{
		ID:    w.ID(),
		Name:  w.Ctor.Device.GetName(),
		Type:  enums.DevLock,
		State: state,
	}
}

// Current code format pattern reported by the device.
func (w *lockWrapper) codeFormatPattern() string {
	if nil == w.state {
		return ""
	}

	return w.state.CodeFormat
}

// Reads device options from the registry.
// A candidate default code is accepted only when it matches the
// current code format; anything else resets the default to empty.
// This path never fails: registry updates must not break the device.
func (w *lockWrapper) readDeviceOptions(opts *providers.LockOptions) {
	if nil == opts || "" == opts.DefaultCode {
		w.defaultCode = ""
		return
	}

	matcher, err := w.format.compile(w.codeFormatPattern())
	if err != nil || (nil != matcher && !matcher.MatchString(opts.DefaultCode)) {
		w.defaultCode = ""
		return
	}

	w.defaultCode = opts.DefaultCode
}

// Picks the integration method for the command.
func (w *lockWrapper) commandMethod(cmd enums.Command) func(common.LockRequest) error {
	switch cmd {
	case enums.CmdLock:
		return w.Ctor.Device.Lock
	case enums.CmdUnlock:
		return w.Ctor.Device.Unlock
	case enums.CmdOpen:
		return w.Ctor.Device.Open
	}

	return nil
}

// Converts resolved payload into a typed device request.
func (w *lockWrapper) prepareRequest(cmd enums.Command, data map[string]interface{}) (common.LockRequest, error) {
	request := common.LockRequest{}

	obj, err := json.Marshal(data)
	if err != nil {
		return request, errors.Wrap(err, "payload marshal failed")
	}

	if err := json.Unmarshal(obj, &request); err != nil {
		return request, errors.Wrap(err, "payload unmarshal failed")
	}

	if !w.Ctor.Validator.Validate(&request) {
		w.Ctor.Logger.Warn("Received incorrect command params",
			common.LogDeviceTypeToken, enums.DevLock.String(), common.LogDeviceNameToken, w.ID(),
			common.LogDeviceCommandToken, cmd.String())
		return request, &ErrUnsupportedCommand{Command: cmd.String()}
	}

	return request, nil
}

// Polls the device for a new state.
// The actual Update call may block on device I/O, so it goes
// through the executor as well.
func (w *lockWrapper) pullUpdate() {
	var state *device.LockState
	err := <-w.Ctor.Executor.Submit(func() error {
		var updErr error
		state, updErr = w.Ctor.Device.Update()
		return updErr
	})

	if err != nil {
		w.Ctor.Logger.Error("Failed to update device", err,
			common.LogDeviceTypeToken, enums.DevLock.String(), common.LogDeviceNameToken, w.ID())
		return
	}

	w.Lock()
	w.setState(state)
	w.Unlock()

	w.Ctor.StatusUpdatesChan <- &UpdateEvent{ID: w.ID()}
}

// Stores a new raw state. Derived status is never persisted here,
// it is recalculated from the signals on every read.
func (w *lockWrapper) setState(state *device.LockState) {
	if nil == state {
		return
	}

	w.state = state
}

// Listens to updates pushed by the device itself.
func (w *lockWrapper) startDeviceListeners() {
	for update := range w.Ctor.LoadData.DeviceStateUpdateChan {
		state, ok := update.State.(*device.LockState)
		if !ok {
			w.Ctor.Logger.Warn("Received unknown state type from the device",
				common.LogDeviceTypeToken, enums.DevLock.String(), common.LogDeviceNameToken, w.ID())
			continue
		}

		w.Lock()
		w.setState(state)
		w.Unlock()

		w.Ctor.StatusUpdatesChan <- &UpdateEvent{ID: w.ID()}
	}
}
