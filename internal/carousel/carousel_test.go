package carousel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/clock"
)

func items(titles ...string) []Item {
	out := make([]Item, len(titles))
	for i, t := range titles {
		out[i] = Item(t)
	}
	return out
}

func mount(t *testing.T, titles ...string) (*Controller, *clock.Fake) {
	t.Helper()
	f := clock.NewFake()
	c, err := Mount(items(titles...), f)
	require.NoError(t, err)
	return c, f
}

func TestMountRejectsEmpty(t *testing.T) {
	_, err := Mount(nil, clock.NewFake())
	require.ErrorIs(t, err, ErrNoItems)
}

func TestMountArmsTimer(t *testing.T) {
	c, f := mount(t, "A")
	assert.Equal(t, 0, c.Selected())
	assert.Equal(t, Running, c.State())
	assert.True(t, c.Armed())
	assert.Equal(t, 1, f.Pending())
}

func TestWrapAroundScenario(t *testing.T) {
	c, _ := mount(t, "A", "B", "C")

	c.Next()
	assert.Equal(t, 1, c.Selected())
	assert.Equal(t, Item("B"), c.Current())

	c.Next()
	assert.Equal(t, Item("C"), c.Current())

	c.Next()
	assert.Equal(t, 0, c.Selected(), "next wraps to the first item")
	assert.Equal(t, Item("A"), c.Current())

	c.Previous()
	assert.Equal(t, 2, c.Selected(), "previous wraps to the last item")
	assert.Equal(t, Item("C"), c.Current())
}

func TestNextCyclesBackToStart(t *testing.T) {
	for n := 1; n <= 6; n++ {
		titles := make([]string, n)
		for i := range titles {
			titles[i] = string(rune('A' + i))
		}
		for start := 0; start < n; start++ {
			c, _ := mount(t, titles...)
			require.NoError(t, c.GoTo(start))
			for i := 0; i < n; i++ {
				c.Next()
			}
			assert.Equal(t, start, c.Selected(), "n=%d start=%d", n, start)
		}
	}
}

func TestPreviousInvertsNext(t *testing.T) {
	c, _ := mount(t, "A", "B", "C", "D")
	for start := 0; start < c.Len(); start++ {
		require.NoError(t, c.GoTo(start))
		c.Next()
		c.Previous()
		assert.Equal(t, start, c.Selected())
	}
}

func TestSingleItemNavigation(t *testing.T) {
	c, f := mount(t, "only")
	c.Next()
	c.Previous()
	assert.Equal(t, 0, c.Selected())

	f.Advance(20 * time.Second)
	assert.Equal(t, 0, c.Selected())
	assert.Equal(t, 1, f.Pending())
}

func TestGoToRejectsOutOfRange(t *testing.T) {
	c, _ := mount(t, "A", "B", "C")
	require.NoError(t, c.GoTo(1))

	for _, idx := range []int{-1, 3, 42} {
		err := c.GoTo(idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
		assert.Equal(t, 1, c.Selected(), "rejected index %d must not move the selection", idx)
	}
}

func TestAutoAdvanceBoundary(t *testing.T) {
	c, f := mount(t, "A", "B", "C")

	f.Advance(4999 * time.Millisecond)
	assert.Equal(t, 0, c.Selected())

	f.Advance(time.Millisecond)
	assert.Equal(t, 1, c.Selected())
	assert.Equal(t, 1, f.Pending(), "timer re-arms after firing")

	f.Advance(5 * time.Second)
	assert.Equal(t, 2, c.Selected())
	f.Advance(5 * time.Second)
	assert.Equal(t, 0, c.Selected())
}

func TestPausedNeverAdvances(t *testing.T) {
	c, f := mount(t, "A", "B", "C")
	c.SetHovered(true)
	assert.Equal(t, Paused, c.State())
	assert.False(t, c.AutoBadge())
	assert.Equal(t, 0, f.Pending())

	f.Advance(time.Hour)
	assert.Equal(t, 0, c.Selected())
}

func TestResumeWaitsFullInterval(t *testing.T) {
	c, f := mount(t, "A", "B", "C")

	c.SetHovered(true)
	f.Advance(2 * time.Second)
	c.SetHovered(false)

	due, ok := f.NextDue()
	require.True(t, ok)
	assert.Equal(t, 7*time.Second, due)

	f.Advance(3 * time.Second) // t=5000, the cancelled deadline
	assert.Equal(t, 0, c.Selected())

	f.Advance(1999 * time.Millisecond)
	assert.Equal(t, 0, c.Selected())

	f.Advance(time.Millisecond) // t=7000
	assert.Equal(t, 1, c.Selected())
}

func TestHoverTogglesKeepOneTimer(t *testing.T) {
	c, f := mount(t, "A", "B")
	seq := []bool{true, true, false, false, true, false, true, false, false}
	for _, h := range seq {
		c.SetHovered(h)
		assert.LessOrEqual(t, f.Pending(), 1)
		if c.Paused() {
			assert.Equal(t, 0, f.Pending())
		} else {
			assert.Equal(t, 1, f.Pending())
		}
	}
}

func TestRepeatedUnhoverDoesNotRearm(t *testing.T) {
	c, f := mount(t, "A", "B")
	f.Advance(3 * time.Second)
	c.SetHovered(false)

	f.Advance(2 * time.Second)
	assert.Equal(t, 1, c.Selected(), "original schedule kept")
}

func TestUnmountCancelsTimer(t *testing.T) {
	var states []State
	f := clock.NewFake()
	c, err := Mount(items("A", "B"), f, WithOnStateChange(func(s State) { states = append(states, s) }))
	require.NoError(t, err)

	f.Advance(time.Second)
	c.Unmount()
	assert.Equal(t, 0, f.Pending())

	f.Advance(5 * time.Second)
	assert.Equal(t, 0, c.Selected())
	assert.Equal(t, Stopped, c.State())

	c.Next()
	c.SetHovered(true)
	c.SetHovered(false)
	assert.Equal(t, 0, c.Selected())
	assert.Equal(t, 0, f.Pending(), "no timer after unmount")
	assert.ErrorIs(t, c.GoTo(1), ErrUnmounted)
	assert.Equal(t, []State{Stopped}, states)
}

func TestManualNavigationKeepsSchedule(t *testing.T) {
	c, f := mount(t, "A", "B", "C")
	f.Advance(4900 * time.Millisecond)
	c.Next()
	f.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, c.Selected(), "manual and automatic advances both apply")
}

func TestResetOnNavigate(t *testing.T) {
	f := clock.NewFake()
	c, err := Mount(items("A", "B", "C"), f, WithResetOnNavigate(true))
	require.NoError(t, err)

	f.Advance(4900 * time.Millisecond)
	c.Next()
	f.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, c.Selected())

	f.Advance(4900 * time.Millisecond)
	assert.Equal(t, 2, c.Selected())
	assert.Equal(t, 1, f.Pending())
}

func TestCustomInterval(t *testing.T) {
	f := clock.NewFake()
	c, err := Mount(items("A", "B"), f, WithInterval(250*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, c.Interval())

	f.Advance(250 * time.Millisecond)
	assert.Equal(t, 1, c.Selected())
}

func TestOnChangeReportsCause(t *testing.T) {
	var changes []Change
	f := clock.NewFake()
	c, err := Mount(items("A", "B", "C"), f, WithOnChange(func(ch Change) { changes = append(changes, ch) }))
	require.NoError(t, err)

	c.Next()
	c.Previous()
	require.NoError(t, c.GoTo(2))
	require.NoError(t, c.GoTo(2))
	f.Advance(5 * time.Second)

	assert.Equal(t, []Change{
		{From: 0, To: 1, Cause: CauseNext},
		{From: 1, To: 0, Cause: CausePrevious},
		{From: 0, To: 2, Cause: CauseGoTo},
		{From: 2, To: 0, Cause: CauseAuto},
	}, changes)
}

func TestItemsIsACopy(t *testing.T) {
	c, _ := mount(t, "A", "B")
	got := c.Items()
	got[0] = "mutated"
	assert.Equal(t, Item("A"), c.Current())
}
