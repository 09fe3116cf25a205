package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// bindings lists the physical keys behind each game key.
var bindings = map[core.Key][]ebiten.Key{
	core.KeyW:          {ebiten.KeyW},
	core.KeyS:          {ebiten.KeyS},
	core.KeyUp:         {ebiten.KeyArrowUp},
	core.KeyDown:       {ebiten.KeyArrowDown},
	core.KeyEnter:      {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.KeyPause:      {ebiten.KeyP, ebiten.KeyEscape},
	core.KeyFullscreen: {ebiten.KeyF},
	core.KeyDebug:      {ebiten.KeyF3, ebiten.KeyBackquote},
}

// keyboard polls ebiten's keyboard state. Ebiten refreshes it once per
// tick, before Update runs.
type keyboard struct{}

// KeyDown implements core.Input.
func (keyboard) KeyDown(k core.Key) bool {
	for _, key := range bindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// KeyPressed implements core.Input.
func (keyboard) KeyPressed(k core.Key) bool {
	for _, key := range bindings[k] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
