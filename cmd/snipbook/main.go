package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/snipbook"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	app := kingpin.New("snipbook", "Cut photos to decorative shapes and collect them in a book")
	app.HelpFlag.Short('h')
	var (
		logLevel = app.Flag("log", "Log level (debug, info, warning, error)").Default("warning").String()
		dir      = app.Flag("dir", "Book directory (default from config)").Short('d').String()
	)

	initCmd := app.Command("init", "Create a new, empty book")
	var (
		initTitle    = initCmd.Arg("title", "Book title").Required().String()
		initCapacity = initCmd.Flag("capacity", "Items per page").Short('c').Int()
	)

	mask := app.Command("mask", "Cut photos to a shape and write transparent PNGs")
	var (
		maskShape  = mask.Flag("shape", "Cut-out shape").Short('s').String()
		maskRotate = mask.Flag("rotate", "Rotation in degrees, multiple of 90").Short('r').Int()
		maskWidth  = mask.Flag("width", "Output width in pixels").Short('w').Int()
		maskOut    = mask.Flag("output", "Output directory").Short('o').Default(".").String()
		maskFiles  = mask.Arg("photo", "Photo file(s)").Required().ExistingFiles()
	)

	add := app.Command("add", "Cut photos to a shape and append them to the book")
	var (
		addShape  = add.Flag("shape", "Cut-out shape").Short('s').String()
		addRotate = add.Flag("rotate", "Rotation in degrees, multiple of 90").Short('r').Int()
		addWidth  = add.Flag("width", "Output width in pixels").Short('w').Int()
		addLabel  = add.Flag("label", "Caption for the new item(s)").Short('l').String()
		addPlace  = add.Flag("place", "Place name for the new item(s)").String()
		addFiles  = add.Arg("photo", "Photo file(s)").Required().ExistingFiles()
	)

	replace := app.Command("replace", "Re-cut an existing item from a new photo or shape")
	var (
		replaceID     = replace.Arg("item", "Item ID (or unique prefix)").Required().String()
		replaceFile   = replace.Arg("photo", "Photo file").Required().ExistingFile()
		replaceShape  = replace.Flag("shape", "Cut-out shape (default: keep the item's shape)").Short('s').String()
		replaceRotate = replace.Flag("rotate", "Rotation in degrees, multiple of 90").Short('r').Int()
		replaceWidth  = replace.Flag("width", "Output width in pixels").Short('w').Int()
	)

	app.Command("ls", "Show the book's pages and items").Default()

	rm := app.Command("rm", "Remove an item from the book")
	rmID := rm.Arg("item", "Item ID (or unique prefix)").Required().String()

	reorder := app.Command("reorder", "Move an item to another position on its page")
	var (
		reorderPage = reorder.Arg("page", "Page number, starting at 1").Required().Int()
		reorderFrom = reorder.Arg("from", "Item position, starting at 1").Required().Int()
		reorderTo   = reorder.Arg("to", "New position, starting at 1").Required().Int()
	)

	capacity := app.Command("capacity", "Set the page capacity and re-pack all pages")
	capacityN := capacity.Arg("n", "Items per page").Required().Int()

	app.Command("rebalance", "Re-pack all items onto full pages")

	export := app.Command("export", "Export the book as a PDF document")
	var (
		exportOut   = export.Flag("output", "Output file").Short('o').Default("book.pdf").String()
		exportCheck = export.Flag("check", "Validate the PDF after writing it").Bool()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	snipbook.SetLogLevel(*logLevel)

	conf, err := loadConfig()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if *dir != "" {
		conf.BookDir = *dir
	}

	switch command {
	case "init":
		err = doInit(conf, *initTitle, *initCapacity)
	case "mask":
		err = doMask(conf, *maskFiles, *maskShape, *maskRotate, *maskWidth, *maskOut)
	case "add":
		err = doAdd(conf, *addFiles, *addShape, *addRotate, *addWidth, *addLabel, *addPlace)
	case "replace":
		err = doReplace(conf, *replaceID, *replaceFile, *replaceShape, *replaceRotate, *replaceWidth)
	case "ls":
		err = doLs(conf)
	case "rm":
		err = doRm(conf, *rmID)
	case "reorder":
		err = doReorder(conf, *reorderPage, *reorderFrom, *reorderTo)
	case "capacity":
		err = doCapacity(conf, *capacityN)
	case "rebalance":
		err = doRebalance(conf)
	case "export":
		err = doExport(conf, *exportOut, *exportCheck)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
