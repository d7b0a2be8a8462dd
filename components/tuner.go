package components

import (
	"github.com/yohamta/donburi"
)

// TunerData holds the state of the shake tuning overlay.
type TunerData struct {
	Visible bool
	Dirty   bool // tuning changed since last save
}

var Tuner = donburi.NewComponentType[TunerData]()
