package sdfatlas

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glyphtools/sdfatlas/tmpasset"
)

// WriteFiles writes the three run artifacts into dir, named after name
// (extensions and generated-asset suffixes are stripped first):
//
//	<name> SDF.json           font asset document
//	<name> SDF Atlas.png      atlas texture
//	<name> SDF Material.json  material document
//
// Raster-mode results use "Raster" in place of "SDF". Writing is
// all-or-nothing: every artifact is encoded in memory first, and if any
// file fails to write the ones already written are removed. Returns the
// written paths in the order above.
func (r *Result) WriteFiles(dir, name string) ([]string, error) {
	base := tmpasset.NormalizeName(name)
	suffix := "SDF"
	if r.Asset.AtlasRenderMode == tmpasset.RenderModeRaster {
		suffix = "Raster"
	}

	var assetBuf, atlasBuf, materialBuf bytes.Buffer
	if err := r.Asset.Encode(&assetBuf); err != nil {
		return nil, fmt.Errorf("sdfatlas: encoding font asset: %w", err)
	}
	if err := r.Atlas.EncodePNG(&atlasBuf); err != nil {
		return nil, fmt.Errorf("sdfatlas: encoding atlas: %w", err)
	}
	if err := r.Material.Encode(&materialBuf); err != nil {
		return nil, fmt.Errorf("sdfatlas: encoding material: %w", err)
	}

	files := []struct {
		path string
		data []byte
	}{
		{filepath.Join(dir, fmt.Sprintf("%s %s.json", base, suffix)), assetBuf.Bytes()},
		{filepath.Join(dir, fmt.Sprintf("%s %s Atlas.png", base, suffix)), atlasBuf.Bytes()},
		{filepath.Join(dir, fmt.Sprintf("%s %s Material.json", base, suffix)), materialBuf.Bytes()},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
			for _, p := range written {
				os.Remove(p)
			}
			return nil, fmt.Errorf("sdfatlas: writing %s: %w", f.path, err)
		}
		written = append(written, f.path)
	}
	return written, nil
}
