package main

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/akeil/snipbook"
	"github.com/akeil/snipbook/pkg/render"
)

func doExport(conf config, outPath string, check bool) error {
	s := snipbook.NewFilesystemStorage(conf.BookDir)
	b, err := s.ReadBook()
	if err != nil {
		return err
	}
	if len(b.Pages) == 0 {
		return fmt.Errorf("the book is empty, nothing to export")
	}

	fmt.Printf("%v render %q\n", ellipsis, b.Title)
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}

	err = render.RenderPDF(s, b, f)
	cerr := f.Close()
	if err != nil {
		return err
	}
	if cerr != nil {
		return cerr
	}

	if check {
		err = api.ValidateFile(outPath, pdfcpu.NewDefaultConfiguration())
		if err != nil {
			fmt.Printf("%v %q is not a valid PDF: %v\n", crossmark, outPath, err)
			return err
		}
		fmt.Printf("%v %q validates\n", checkmark, outPath)
	}

	fmt.Printf("%v book %q saved as %q\n", checkmark, b.Title, outPath)
	return nil
}
