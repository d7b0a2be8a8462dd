package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	DirectionX float64 // facing, -1 or 1
}

var Player = donburi.NewComponentType[PlayerData]()
