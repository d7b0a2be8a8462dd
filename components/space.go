package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the resolv collision space for the demo level.
var Space = donburi.NewComponentType[resolv.Space]()
