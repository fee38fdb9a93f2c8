package mosaic

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions accepted as mosaic sources.
// Matching ignores case.
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// IsImageFile reports whether name carries one of the recognised extensions.
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Shuffler randomizes the order of n elements through swap.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewSeededRand returns a generator whose shuffles are reproducible.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Pool is the ordered sequence of source paths tiles are drawn from.
type Pool []string

// CollectImages lists the recognised image files directly inside folder.
//
// Subdirectories are not traversed and are never returned, even when their
// name ends in an image extension. Paths are joined with folder and come
// back in directory order, sorted by file name.
func CollectImages(folder string) (Pool, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryNotFound, folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryNotFound, folder, err)
	}

	var pool Pool
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		pool = append(pool, filepath.Join(folder, e.Name()))
	}

	if len(pool) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImagesFound, folder)
	}
	return pool, nil
}

// Shuffle returns a copy of the pool in an order chosen by r.
// The whole pool is shuffled, not only the part that will be selected.
func (p Pool) Shuffle(r Shuffler) Pool {
	out := make(Pool, len(p))
	copy(out, p)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Select returns the first required entries of the pool.
//
// A pool shorter than required is repeated verbatim, end to end, until it
// is long enough; padded reports whether that happened. Repetitions keep
// the pool's order, so with k entries every path is used floor(required/k)
// or ceil(required/k) times.
func (p Pool) Select(required int) (selected []string, padded bool) {
	if len(p) == 0 || required <= 0 {
		return nil, false
	}

	if len(p) >= required {
		selected = make([]string, required)
		copy(selected, p[:required])
		return selected, false
	}

	repeats := (required + len(p) - 1) / len(p)
	selected = make([]string, 0, repeats*len(p))
	for i := 0; i < repeats; i++ {
		selected = append(selected, p...)
	}
	return selected[:required], true
}
