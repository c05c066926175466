package dom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"golang.org/x/net/html"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDispatchBubblesToAncestors(t *testing.T) {
	doc := NewDocument(nil)
	card := Create("div", Options{Classes: []string{"card"}})
	title := Create("h2", Options{Text: "eevee"})
	Append(card, title)

	var got []*html.Node
	doc.Run(func() {
		doc.On(card, "click", func(target *html.Node) { got = append(got, target) })
	})

	assert.True(t, doc.Dispatch(title, "click"))
	assert.Equal(t, []*html.Node{title}, got)
	assert.False(t, doc.Dispatch(title, "mouseover"))
}

func TestClearForgetsListeners(t *testing.T) {
	doc := NewDocument(nil)
	portal := Create("div")
	modal := Create("div")
	button := Create("button", Options{Text: "Voltar"})
	Append(portal, Append(modal, button))

	doc.Run(func() {
		doc.On(modal, "click", func(*html.Node) {})
		doc.On(button, "click", func(*html.Node) {})
	})
	assert.Equal(t, 2, doc.ListenerCount())

	doc.Run(func() { doc.Clear(portal) })

	assert.Nil(t, portal.FirstChild)
	assert.Equal(t, 0, doc.ListenerCount())
	assert.False(t, doc.Dispatch(button, "click"))
}

func TestScheduleRunsOnEventLoop(t *testing.T) {
	doc := NewDocument(TimerScheduler{})
	done := make(chan struct{})

	doc.Schedule(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled callback did not run")
	}
}

func TestScheduleCancel(t *testing.T) {
	doc := NewDocument(TimerScheduler{})
	ran := make(chan struct{}, 1)

	task := doc.Schedule(20*time.Millisecond, func() { ran <- struct{}{} })
	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())

	select {
	case <-ran:
		t.Fatal("cancelled callback ran")
	case <-time.After(60 * time.Millisecond):
	}
}
