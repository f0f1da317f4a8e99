package lock

import (
	"fmt"
	"testing"

	"github.com/lockhub-io/server/plugins/device"
	"github.com/lockhub-io/server/plugins/device/enums"
	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool {
	return &v
}

func signalName(v *bool) string {
	if nil == v {
		return "nil"
	}

	return fmt.Sprintf("%t", *v)
}

// Tests status derivation priority over hand-picked combinations.
func TestDetermineStatus(t *testing.T) {
	data := []struct {
		name  string
		state *device.LockState
		want  enums.LockStatus
	}{
		{
			name:  "nil state",
			state: nil,
			want:  enums.StatusUnknown,
		},
		{
			name:  "empty state",
			state: &device.LockState{},
			want:  enums.StatusUnknown,
		},
		{
			name:  "jammed wins over locked",
			state: &device.LockState{IsJammed: boolPtr(true), IsLocked: boolPtr(true)},
			want:  enums.StatusJammed,
		},
		{
			name: "jammed wins over everything",
			state: &device.LockState{IsJammed: boolPtr(true), IsLocking: boolPtr(true),
				IsUnlocking: boolPtr(true), IsLocked: boolPtr(false)},
			want: enums.StatusJammed,
		},
		{
			name:  "locking wins over unlocking",
			state: &device.LockState{IsLocking: boolPtr(true), IsUnlocking: boolPtr(true)},
			want:  enums.StatusLocking,
		},
		{
			name: "false transitions fall through to locked",
			state: &device.LockState{IsJammed: boolPtr(false), IsLocking: boolPtr(false),
				IsUnlocking: boolPtr(false), IsLocked: boolPtr(true)},
			want: enums.StatusLocked,
		},
	}

	for _, v := range data {
		assert.Equal(t, v.want, DetermineStatus(v.state), v.name)
	}
}

// Tests status derivation over the full cross product of the four
// tri-state signals. Expected status follows the priority order:
// jammed, then locking, then unlocking, then the locked signal,
// with a nil locked signal meaning unknown.
func TestDetermineStatusExhaustive(t *testing.T) {
	signals := []*bool{nil, boolPtr(false), boolPtr(true)}
	isSet := func(v *bool) bool {
		return nil != v && *v
	}

	for _, jammed := range signals {
		for _, locking := range signals {
			for _, unlocking := range signals {
				for _, locked := range signals {
					state := &device.LockState{
						IsJammed:    jammed,
						IsLocking:   locking,
						IsUnlocking: unlocking,
						IsLocked:    locked,
					}

					var want enums.LockStatus
					switch {
					case isSet(jammed):
						want = enums.StatusJammed
					case isSet(locking):
						want = enums.StatusLocking
					case isSet(unlocking):
						want = enums.StatusUnlocking
					case nil == locked:
						want = enums.StatusUnknown
					case *locked:
						want = enums.StatusLocked
					default:
						want = enums.StatusUnlocked
					}

					name := fmt.Sprintf("jammed=%s locking=%s unlocking=%s locked=%s",
						signalName(jammed), signalName(locking), signalName(unlocking), signalName(locked))
					assert.Equal(t, want, DetermineStatus(state), name)
				}
			}
		}
	}
}
