// internal/ui/event_feed.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/psiegel-series/zombiebunker/internal/component"
	"github.com/psiegel-series/zombiebunker/internal/event"
)

const (
	feedCapacity   = 5
	feedLifetime   = 3.0 // seconds a line stays visible
	feedLineHeight = 16
)

type feedLine struct {
	text string
	age  float64
}

// EventFeed is a short scrolling log of game events drawn over the field.
type EventFeed struct {
	X, Y     int
	Color    color.RGBA
	fontFace font.Face
	lines    []feedLine
}

func NewEventFeed(x, y int, face font.Face, clr color.RGBA) *EventFeed {
	return &EventFeed{X: x, Y: y, Color: clr, fontFace: face}
}

// Subscribe registers the feed for the events it reports.
func (f *EventFeed) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.EnemyKilled,
		event.EnemyReachedBunker,
		event.WaveStarted,
		event.WaveCompleted,
		event.BoardReshuffled,
		event.FireZoneCreated,
	} {
		d.Subscribe(t, f)
	}
}

// OnEvent implements event.Listener.
func (f *EventFeed) OnEvent(e event.Event) {
	var msg string
	switch e.Type {
	case event.EnemyKilled:
		if enemy, ok := e.Data.(*component.Enemy); ok {
			msg = fmt.Sprintf("%s down", enemy.Kind)
		}
	case event.EnemyReachedBunker:
		if enemy, ok := e.Data.(*component.Enemy); ok {
			msg = fmt.Sprintf("%s hit the bunker (-%.0f)", enemy.Kind, enemy.Damage)
		}
	case event.WaveStarted:
		msg = fmt.Sprintf("wave %v incoming", e.Data)
	case event.WaveCompleted:
		msg = fmt.Sprintf("wave %v cleared", e.Data)
	case event.BoardReshuffled:
		msg = "no moves, reshuffled"
	case event.FireZoneCreated:
		if z, ok := e.Data.(*component.FireZone); ok && z.Powered {
			msg = "napalm!"
		} else {
			msg = "fire!"
		}
	}
	if msg == "" {
		return
	}
	f.lines = append(f.lines, feedLine{text: msg})
	if len(f.lines) > feedCapacity {
		f.lines = f.lines[len(f.lines)-feedCapacity:]
	}
}

// Update ages lines and drops the expired ones.
func (f *EventFeed) Update(deltaTime float64) {
	kept := f.lines[:0]
	for _, l := range f.lines {
		l.age += deltaTime
		if l.age < feedLifetime {
			kept = append(kept, l)
		}
	}
	f.lines = kept
}

func (f *EventFeed) Draw(screen *ebiten.Image) {
	for i, l := range f.lines {
		clr := f.Color
		fade := 1 - l.age/feedLifetime
		clr.A = uint8(float64(clr.A) * fade)
		text.Draw(screen, l.text, f.fontFace, f.X, f.Y+i*feedLineHeight, clr)
	}
}
