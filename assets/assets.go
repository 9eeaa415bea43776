package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/tickblend/shared/leveldata"
)

var (
	//go:embed all:levels all:scripts
	assetFS embed.FS
)

// FS exposes the embedded levels and driver scripts.
func FS() fs.FS {
	return assetFS
}

// MustLoadArena loads an embedded arena or panics.
func MustLoadArena(levelPath string) *leveldata.ArenaData {
	data, err := leveldata.LoadArena(assetFS, levelPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load arena %s: %v", levelPath, err))
	}
	return data
}
