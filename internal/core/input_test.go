package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFire) {
		t.Error("empty frame should not have Fire")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set(Fire) should make Has(Fire) true")
	}
	if f.IsHeld(ActionFire) {
		t.Error("triggered actions must not count as held")
	}
}

func TestInputFrameHold(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft)

	if !f.IsHeld(ActionLeft) {
		t.Error("Hold(Left) should make IsHeld(Left) true")
	}
	if f.Has(ActionLeft) {
		t.Error("held actions must not count as triggered")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.Hold(ActionUp)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionRestart) || f.IsHeld(ActionUp) {
		t.Error("Clear should remove triggered and held actions")
	}
	if !clone.Has(ActionRestart) || !clone.IsHeld(ActionUp) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionIsDirectional(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionFire, false},
		{ActionGodmode, false},
		{ActionRestart, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if tc.action.IsDirectional() != tc.expected {
				t.Errorf("%s.IsDirectional() = %v, expected %v", tc.action, !tc.expected, tc.expected)
			}
		})
	}
}
