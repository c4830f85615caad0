package session

import (
	"github.com/younwookim/spark/internal/domain/entity"
	"github.com/younwookim/spark/internal/infrastructure/config"
)

// NewPlayer builds a player from entities.json at (x, y)
func NewPlayer(cfg config.PlayerConfig, x, y float64) *entity.Player {
	frames := make([]entity.Frame, len(cfg.Run.Frames))
	for i, f := range cfg.Run.Frames {
		frames[i] = entity.Frame{X: f[0], Y: f[1]}
	}

	return entity.NewPlayer(x, y,
		size(cfg.Size),
		hitbox(cfg.Hitbox),
		hitbox(cfg.CollectBox),
		entity.NewAnimation(cfg.Run.FrameTime, frames...),
	)
}

func size(s config.SizeConfig) entity.Transform {
	return entity.Transform{Width: float64(s.Width), Height: float64(s.Height)}
}

func hitbox(r config.Rect) entity.Hitbox {
	return entity.Hitbox{
		X:      float64(r.OffsetX),
		Y:      float64(r.OffsetY),
		Width:  float64(r.Width),
		Height: float64(r.Height),
	}
}
