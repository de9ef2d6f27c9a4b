//go:build mobile
// +build mobile

package view

import (
	"golang.org/x/mobile/app"
)

type mobileWindow struct {
	app.App
}

func (m *mobileWindow) Publish()                     { m.App.Publish() }
func (m *mobileWindow) RequiresViewportUpdate() bool { return false }

func (v *View) Start() {
	app.Main(func(a app.App) {
		v.loop(&mobileWindow{a}, a.Events(), a.Filter)
	})
}
