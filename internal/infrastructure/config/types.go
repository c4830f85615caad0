package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Physics   PhysicsSettings `json:"physics"`
	Movement  MovementConfig  `json:"movement"`
	Jump      JumpConfig      `json:"jump"`
	Wall      WallConfig      `json:"wall"`
	Collision CollisionConfig `json:"collision"`
	Feedback  FeedbackConfig  `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
}

// MovementConfig holds horizontal speeds (units/s) and accelerations (units/s²)
type MovementConfig struct {
	MaxSpeed     float64 `json:"maxSpeed"`
	WalkAccel    float64 `json:"walkAccel"`
	StopAccel    float64 `json:"stopAccel"`
	AirAccel     float64 `json:"airAccel"`
	AirStopAccel float64 `json:"airStopAccel"`
}

type JumpConfig struct {
	Velocity    float64 `json:"velocity"`
	SustainTime float64 `json:"sustainTime"` // seconds the launch velocity is held while jump stays pressed
}

type WallConfig struct {
	SlideAccel float64 `json:"slideAccel"`
	SlideSpeed float64 `json:"slideSpeed"`

	// Wall jump launch: horizontal speed is MaxSpeed*SpeedMultiplier,
	// vertical speed is Jump.Velocity*LiftMultiplier.
	SpeedMultiplier float64 `json:"speedMultiplier"`
	LiftMultiplier  float64 `json:"liftMultiplier"`
	CommitTime      float64 `json:"commitTime"` // horizontal input ignored for this long after a wall jump
}

type CollisionConfig struct {
	// FloorGapTiles is how many tiles of clearance a body needs under it
	// before wall contact counts. Zero selects the default.
	FloorGapTiles float64 `json:"floorGapTiles"`
}

type FeedbackConfig struct {
	DeathFade       float64 `json:"deathFade"`       // seconds
	StageClearDelay float64 `json:"stageClearDelay"` // seconds
}
