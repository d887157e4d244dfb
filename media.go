package spritekit

import (
	"errors"
	"fmt"
)

// Asset pairs a texture with the image file it should load.
type Asset struct {
	Texture *Texture
	Path    string
}

// LoadFiles loads every asset, continuing past failures. It returns nil only
// when every load succeeded; otherwise the joined errors of all failures.
func LoadFiles(assets ...Asset) error {
	var errs []error
	for i, a := range assets {
		if a.Texture == nil {
			errs = append(errs, fmt.Errorf("spritekit: asset %d (%s): nil texture", i, a.Path))
			continue
		}
		if err := a.Texture.LoadFromFile(a.Path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
