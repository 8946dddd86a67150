package filter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_InitiallyEmpty(t *testing.T) {
	s := NewState()
	ov, ok := s.Override()
	assert.False(t, ok)
	assert.True(t, ov.IsZero())
}

func TestState_SetOverrideReplaces(t *testing.T) {
	s := NewState()
	s.SetOverride(KeyAcuityLevel, "Critical")
	s.SetOverride(KeyAdmissionSource, "ER")

	ov, ok := s.Override()
	assert.True(t, ok)
	assert.Equal(t, Override{Key: KeyAdmissionSource, Value: "ER"}, ov)
}

func TestState_Reset(t *testing.T) {
	s := NewState()
	s.SetOverride(KeyAcuityLevel, "Critical")
	s.Reset()

	_, ok := s.Override()
	assert.False(t, ok)
}

func TestState_ConcurrentAccess(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetOverride(KeyAcuityLevel, "High")
		}()
		go func() {
			defer wg.Done()
			ov, ok := s.Override()
			if ok {
				assert.Equal(t, KeyAcuityLevel, ov.Key)
			}
		}()
	}
	wg.Wait()
}

func TestIsDrillDownKey(t *testing.T) {
	assert.True(t, IsDrillDownKey(KeyAcuityLevel))
	assert.True(t, IsDrillDownKey(KeyAdmissionSource))
	assert.False(t, IsDrillDownKey(KeyUnit))
	assert.False(t, IsDrillDownKey(""))
}
