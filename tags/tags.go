package tags

import "github.com/yohamta/donburi"

var (
	Light = donburi.NewTag().SetName("Light")
	Panel = donburi.NewTag().SetName("Panel")
)
