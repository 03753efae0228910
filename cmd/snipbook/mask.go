package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/snipbook/pkg/render"
	"github.com/akeil/snipbook/pkg/shape"
)

// doMask cuts each photo to the shape and writes one transparent PNG per
// photo into the output directory. Photos are processed in parallel;
// masking is a pure function and needs no coordination.
func doMask(conf config, files []string, shapeName string, rotate, width int, outDir string) error {
	v, rot, width, err := maskArgs(conf, shapeName, rotate, width)
	if err != nil {
		return err
	}

	var group errgroup.Group
	for _, file := range files {
		file := file
		group.Go(func() error {
			return maskFile(file, v, rot, width, outDir)
		})
	}
	return group.Wait()
}

func maskFile(file string, v shape.Variant, rot render.Rotation, width int, outDir string) error {
	data, err := maskOne(file, v, rot, width)
	if err != nil {
		fmt.Printf("%v failed to mask %q: %v\n", crossmark, file, err)
		return err
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	path := filepath.Join(outDir, fmt.Sprintf("%v-%v.png", base, v))
	err = ioutil.WriteFile(path, data, 0644)
	if err != nil {
		return err
	}

	fmt.Printf("%v %q saved as %q\n", checkmark, file, path)
	return nil
}

func maskOne(file string, v shape.Variant, rot render.Rotation, width int) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return render.Mask(f, v, rot, width)
}

// maskArgs resolves shape, rotation and width from flags,
// falling back on the configured defaults.
func maskArgs(conf config, shapeName string, rotate, width int) (shape.Variant, render.Rotation, int, error) {
	if shapeName == "" {
		shapeName = conf.Shape
	}
	v, err := shape.FromName(shapeName)
	if err != nil {
		return v, 0, 0, err
	}

	if width == 0 {
		width = conf.Width
	}

	return v, render.Rotation(rotate), width, nil
}
