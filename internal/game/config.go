package game

// Window size (in pixels). The projection maps world units 1:1 to window
// pixels with the y axis pointing up, so these are also the playfield extents.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Playfield walls (in world units).
const (
	SquareSize    = 20.0
	WallThickness = 60.0
	// The background art draws the bottom rampart thinner than the other
	// three, so the legal area reaches below WallThickness by this much.
	BottomWallSlack = 17.0
)

// Simulation timing. The tick interval is wall-clock seconds between
// simulation steps; smaller = faster snake.
const (
	BaseTickInterval = 0.012
	FastTickInterval = 0.005 // while the fast key is held
	SlowTickStep     = 0.005 // added per distinct slow-key press
	MaxTickInterval  = 0.032 // slow ceiling: base + 4 steps
	MoveStride       = 2.5   // world units the head travels per tick
)

// Growth and scoring.
const (
	SmallFoodGrowth  = 25
	BigFoodGrowth    = 75
	SmallFoodScore   = 1
	BigFoodScore     = 2
	SmallFoodsPerBig = 3 // every third small food spawns a big one
)

// Food geometry. The radius is both the eat distance from the head and the
// drawn quad size.
const (
	SmallFoodRadius = SquareSize
	BigFoodRadius   = 2 * SquareSize
)

// Food placement. Candidates are sampled at integer positions inset from
// every wall by FoodInset; a candidate must clear every snake segment.
const (
	FoodInset         = WallThickness + 2*SquareSize // 100
	FoodMinSeparation = SquareSize
	MaxPlaceAttempts  = 64
)

// Font atlas layout (rasterized at startup, ASCII 32..126).
const (
	FontCellW  = 8
	FontCellH  = 16
	FontCols   = 32
	FontRows   = 3
	FontAtlasW = FontCellW * FontCols // 256
	FontAtlasH = FontCellH * FontRows // 48
)
