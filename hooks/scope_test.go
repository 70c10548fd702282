package hooks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============== Close 测试 ==============

func TestRemovableHandle_Close(t *testing.T) {
	d := NewDict[hookFunc]()

	func() {
		h := d.Add(named("a"))
		defer h.Close()
		assert.Equal(t, 1, d.Len())
	}()

	assert.Equal(t, 0, d.Len())
}

// ============== Scoped 测试 ==============

func TestScoped_NormalReturn(t *testing.T) {
	d := NewDict[hookFunc]()

	err := Scoped(d.Add(named("a")), func() error {
		assert.Equal(t, 1, d.Len())
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestScoped_Error(t *testing.T) {
	d := NewDict[hookFunc]()
	boom := errors.New("boom")

	err := Scoped(d.Add(named("a")), func() error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, d.Len())
}

func TestScoped_Panic(t *testing.T) {
	d := NewDict[hookFunc]()

	assert.PanicsWithValue(t, "boom", func() {
		_ = Scoped(d.Add(named("a")), func() error {
			panic("boom")
		})
	})
	assert.Equal(t, 0, d.Len())
}

func TestScoped_RegistryAlreadyClosed(t *testing.T) {
	d := NewDict[hookFunc]()
	h := d.Add(named("a"))
	d.Close()

	err := Scoped(h, func() error { return nil })

	assert.NoError(t, err)
}
