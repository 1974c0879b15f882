package serpent_game

// MyGameAPI exposes game-specific actions and queries to game agents.
type MyGameAPI struct{}

// NewMyGameAPI constructs the game API.
func NewMyGameAPI() *MyGameAPI {
	return &MyGameAPI{}
}
