package assets

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// LevelImage renders every tile layer of the embedded level that carries
// the "render" property into one image the size of the map.
func LevelImage(levelPath string) (image.Image, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	out := image.NewNRGBA(image.Rect(0, 0,
		levelMap.Width*levelMap.TileWidth,
		levelMap.Height*levelMap.TileHeight))

	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("render layer %q: %w", layer.Name, err)
		}
		draw.Draw(out, out.Bounds(), renderer.Result, image.Point{}, draw.Over)
		renderer.Clear()
	}

	return out, nil
}
