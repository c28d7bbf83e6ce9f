package generator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/formshape/formshape/internal/fileutil"
	"github.com/formshape/formshape/schemaerrors"
)

// WriteFiles writes all generated files under the specified output
// directory, one subdirectory per category, then reclaims stale outputs:
// any .json file in a category directory that this run did not produce is
// deleted, so documents for types removed or renamed between runs never
// linger. Reclaimed paths are recorded on the result's StaleRemoved list.
//
// Write failures are fatal and match [schemaerrors.ErrWrite].
func (r *GenerateResult) WriteFiles(outputDir string) error {
	if outputDir == "" {
		return &schemaerrors.WriteError{Message: "output directory not specified"}
	}

	keep := make(map[string]map[string]bool, len(r.Categories))
	for _, file := range r.Files {
		safeName := filepath.Base(file.Name)
		if safeName != file.Name {
			return &schemaerrors.WriteError{Path: file.Name,
				Message: "invalid file name: must not contain path separators"}
		}
		safeCategory := filepath.Base(file.Category)
		if safeCategory != file.Category || safeCategory == "." {
			return &schemaerrors.WriteError{Path: file.Category,
				Message: "invalid category key: must not contain path separators"}
		}

		dir := filepath.Join(outputDir, safeCategory)
		if keep[safeCategory] == nil {
			if err := os.MkdirAll(dir, fileutil.OwnerWritableDir); err != nil {
				return &schemaerrors.WriteError{Path: dir,
					Message: "failed to create category directory", Cause: err}
			}
			keep[safeCategory] = make(map[string]bool)
		}

		filePath := filepath.Join(dir, safeName)
		if err := os.WriteFile(filePath, file.Content, fileutil.ReadableByAll); err != nil {
			return &schemaerrors.WriteError{Path: filePath,
				Message: "failed to write file", Cause: err}
		}
		keep[safeCategory][safeName] = true
	}

	for _, cr := range r.Categories {
		names := keep[cr.Key]
		if names == nil {
			continue
		}
		removed, err := reclaimStale(filepath.Join(outputDir, cr.Key), names)
		if err != nil {
			return err
		}
		r.StaleRemoved = append(r.StaleRemoved, removed...)
	}

	return nil
}

// reclaimStale deletes .json files in dir that are not in the keep set and
// returns the deleted paths. Non-JSON files and subdirectories are left
// alone.
func reclaimStale(dir string, keep map[string]bool) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &schemaerrors.WriteError{Path: dir,
			Message: "failed to list category directory", Cause: err}
	}

	var removed []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") || keep[name] {
			continue
		}
		stale := filepath.Join(dir, name)
		if err := os.Remove(stale); err != nil {
			return removed, &schemaerrors.WriteError{Path: stale,
				Message: "failed to remove stale output", Cause: err}
		}
		removed = append(removed, stale)
	}
	return removed, nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, fileutil.OwnerWritableDir); err != nil {
		return &schemaerrors.WriteError{Path: dir,
			Message: "failed to create directory", Cause: err}
	}

	if err := os.WriteFile(path, f.Content, fileutil.ReadableByAll); err != nil {
		return &schemaerrors.WriteError{Path: path,
			Message: "failed to write file", Cause: err}
	}

	return nil
}
