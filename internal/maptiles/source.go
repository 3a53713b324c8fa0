package maptiles

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"hamview/internal/logger"
)

// ImageSource supplies the pixel data for a tile.
type ImageSource interface {
	Image(t Tile) (image.Image, error)
}

// LocalSource reads pre-rendered tiles from a zoom/x/y.png directory
// tree. Tiles missing on disk are replaced with a rendered placeholder
// so the map never has holes. Decoded tiles are cached in memory.
type LocalSource struct {
	dir string
	log logger.Logger

	mu    sync.Mutex
	cache map[Tile]image.Image
}

func NewLocalSource(dir string, log logger.Logger) *LocalSource {
	return &LocalSource{
		dir:   dir,
		log:   log,
		cache: make(map[Tile]image.Image),
	}
}

func (s *LocalSource) Image(t Tile) (image.Image, error) {
	s.mu.Lock()
	if img, ok := s.cache[t]; ok {
		s.mu.Unlock()
		return img, nil
	}
	s.mu.Unlock()

	img, err := s.load(t)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[t] = img
	s.mu.Unlock()
	return img, nil
}

func (s *LocalSource) load(t Tile) (image.Image, error) {
	path := filepath.Join(s.dir, t.Path())
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		s.log.Debug("TileSource", "tile not on disk, using placeholder", map[string]interface{}{
			"tile": t.String(),
		})
		return Placeholder(t), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open tile %s: %w", t, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode tile %s: %w", t, err)
	}
	return img, nil
}

// Clear drops all cached tile images, forcing reloads from disk.
func (s *LocalSource) Clear() {
	s.mu.Lock()
	s.cache = make(map[Tile]image.Image)
	s.mu.Unlock()
}
