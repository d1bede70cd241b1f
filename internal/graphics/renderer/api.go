package renderer

// Renderable defines the lifecycle shared by GPU features.
//
// Initialize runs once on the GL thread. SetDimensions and Draw may then be
// called any number of times in any order. Destroy is terminal.
type Renderable interface {
	Initialize() error
	SetDimensions(width, height int)
	Draw()
	Destroy()
}
