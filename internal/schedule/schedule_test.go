package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_RunsInDueOrder(t *testing.T) {
	m := NewManual()
	var got []string

	m.After(30*time.Millisecond, func() { got = append(got, "c") })
	m.After(10*time.Millisecond, func() { got = append(got, "a") })
	m.After(10*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(5 * time.Millisecond)
	assert.Empty(t, got)
	assert.Equal(t, 3, m.Pending())

	m.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got, "ties run in scheduling order")

	m.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, 1010*time.Millisecond, m.Now())
}

func TestManual_NestedScheduling(t *testing.T) {
	m := NewManual()
	var at []time.Duration

	m.After(10*time.Millisecond, func() {
		at = append(at, m.Now())
		m.After(10*time.Millisecond, func() { at = append(at, m.Now()) })
	})

	m.Advance(25 * time.Millisecond)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, at)
}

func TestManual_RunAll(t *testing.T) {
	m := NewManual()
	n := 0
	m.After(time.Hour, func() { n++ })
	m.After(-time.Second, func() { n++ })

	m.RunAll()
	assert.Equal(t, 2, n)
	assert.Equal(t, time.Hour, m.Now())
}

func TestImmediate(t *testing.T) {
	ran := false
	Immediate{}.After(time.Hour, func() { ran = true })
	assert.True(t, ran)
}

func TestFunc(t *testing.T) {
	var got time.Duration
	s := Func(func(d time.Duration, fn func()) { got = d; fn() })
	called := false
	s.After(3*time.Second, func() { called = true })
	assert.Equal(t, 3*time.Second, got)
	assert.True(t, called)
}
