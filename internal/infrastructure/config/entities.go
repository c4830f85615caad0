package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player PlayerConfig `json:"player"`
	Pickup PickupConfig `json:"pickup"`
}

type PlayerConfig struct {
	ID         string          `json:"id"`
	Sprite     SpriteConfig    `json:"sprite"`
	Size       SizeConfig      `json:"size"`
	Hitbox     Rect            `json:"hitbox"`
	CollectBox Rect            `json:"collectBox"`
	Run        AnimationConfig `json:"run"`
}

type SpriteConfig struct {
	Sheet       string `json:"sheet"`
	FrameWidth  int    `json:"frameWidth"`
	FrameHeight int    `json:"frameHeight"`
}

type SizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AnimationConfig lists sheet cells as [column, row] pairs
type AnimationConfig struct {
	FrameTime float64  `json:"frameTime"`
	Frames    [][2]int `json:"frames"`
}

type Rect struct {
	OffsetX int `json:"offsetX"`
	OffsetY int `json:"offsetY"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

type PickupConfig struct {
	ID     string       `json:"id"`
	Sprite SpriteConfig `json:"sprite"`
	Size   SizeConfig   `json:"size"`
	Hitbox Rect         `json:"hitbox"`
}
