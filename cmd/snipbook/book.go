package main

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/snipbook"
)

func doInit(conf config, title string, capacity int) error {
	s := snipbook.NewFilesystemStorage(conf.BookDir)

	_, err := s.ReadBook()
	if err == nil {
		return fmt.Errorf("a book already exists in %q", conf.BookDir)
	} else if !snipbook.IsNotFound(err) {
		return err
	}

	if capacity == 0 {
		capacity = conf.Capacity
	}
	b := snipbook.NewBook(title, capacity)
	err = s.WriteBook(b)
	if err != nil {
		return err
	}

	fmt.Printf("%v created book %q in %q\n", checkmark, title, conf.BookDir)
	return nil
}

// doAdd masks all photos in parallel, then appends the results to the
// book in the order the photos were given.
func doAdd(conf config, files []string, shapeName string, rotate, width int, label, place string) error {
	v, rot, width, err := maskArgs(conf, shapeName, rotate, width)
	if err != nil {
		return err
	}

	s := snipbook.NewFilesystemStorage(conf.BookDir)
	b, err := s.ReadBook()
	if err != nil {
		return err
	}

	images := make([][]byte, len(files))
	var group errgroup.Group
	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			data, err := maskOne(file, v, rot, width)
			if err != nil {
				fmt.Printf("%v failed to mask %q: %v\n", crossmark, file, err)
				return err
			}
			images[i] = data
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return err
	}

	for i, data := range images {
		item := snipbook.NewItem(v, data)
		item.Label = label
		item.Place = place
		b.Append(item)
		fmt.Printf("%v added %q as item %v\n", checkmark, files[i], shortID(item.ID))
	}

	return s.WriteBook(b)
}

// doReplace re-masks an existing item from a new photo, keeping its
// position in the book. The shape may be changed along the way.
func doReplace(conf config, idOrPrefix, file, shapeName string, rotate, width int) error {
	s := snipbook.NewFilesystemStorage(conf.BookDir)
	b, err := s.ReadBook()
	if err != nil {
		return err
	}

	id, err := resolveID(b, idOrPrefix)
	if err != nil {
		return err
	}
	item := b.Find(id)

	if shapeName == "" {
		shapeName = item.Shape.String()
	}
	v, rot, width, err := maskArgs(conf, shapeName, rotate, width)
	if err != nil {
		return err
	}

	data, err := maskOne(file, v, rot, width)
	if err != nil {
		fmt.Printf("%v failed to mask %q: %v\n", crossmark, file, err)
		return err
	}

	item.Shape = v
	item.Image = data
	err = s.WriteBook(b)
	if err != nil {
		return err
	}

	fmt.Printf("%v item %v re-cut from %q\n", checkmark, shortID(item.ID), file)
	return nil
}

func doLs(conf config) error {
	s := snipbook.NewFilesystemStorage(conf.BookDir)
	b, err := s.ReadBook()
	if snipbook.IsNotFound(err) {
		fmt.Printf("No book in %q. Create one with 'snipbook init'.\n", conf.BookDir)
		return nil
	} else if err != nil {
		return err
	}

	fmt.Printf("%v\n", b.Title)
	fmt.Printf("%v\n", strings.Repeat("-", len(b.Title)))
	fmt.Printf("%v pages, %v snips, %v per page\n", len(b.Pages), b.Len(), b.Capacity)

	for _, p := range b.Pages {
		fmt.Printf("Page %v\n", p.Index+1)
		for _, item := range p.Items {
			fmt.Printf("  %v  %-12v %v", shortID(item.ID), item.Shape, item.CreatedAt.Local().Format("Jan 02 2006"))
			if item.Label != "" {
				fmt.Printf("  %q", item.Label)
			}
			if item.Place != "" {
				fmt.Printf("  @ %v", item.Place)
			}
			fmt.Println()
		}
	}

	return nil
}

func doRm(conf config, idOrPrefix string) error {
	s := snipbook.NewFilesystemStorage(conf.BookDir)
	b, err := s.ReadBook()
	if err != nil {
		return err
	}

	id, err := resolveID(b, idOrPrefix)
	if err != nil {
		return err
	}

	item, err := b.Remove(id)
	if err != nil {
		return err
	}

	err = s.RemoveImage(item.ID)
	if err != nil {
		return err
	}
	err = s.WriteBook(b)
	if err != nil {
		return err
	}

	fmt.Printf("%v removed item %v\n", checkmark, shortID(item.ID))
	return nil
}

func doReorder(conf config, page, from, to int) error {
	s := snipbook.NewFilesystemStorage(conf.BookDir)
	b, err := s.ReadBook()
	if err != nil {
		return err
	}

	// the CLI counts from 1, the allocator panics on bad indices
	if page < 1 || page > len(b.Pages) {
		return fmt.Errorf("no page %v", page)
	}
	n := len(b.Pages[page-1].Items)
	if from < 1 || from > n || to < 1 || to > n {
		return fmt.Errorf("positions must be between 1 and %v", n)
	}

	b.ReorderWithinPage(page-1, from-1, to-1)
	return s.WriteBook(b)
}

func doCapacity(conf config, n int) error {
	if n < 1 {
		return fmt.Errorf("capacity must be at least 1")
	}

	s := snipbook.NewFilesystemStorage(conf.BookDir)
	b, err := s.ReadBook()
	if err != nil {
		return err
	}

	b.SetCapacity(n)
	err = s.WriteBook(b)
	if err != nil {
		return err
	}

	fmt.Printf("%v capacity set to %v, book re-packed onto %v pages\n", checkmark, n, len(b.Pages))
	return nil
}

func doRebalance(conf config) error {
	s := snipbook.NewFilesystemStorage(conf.BookDir)
	b, err := s.ReadBook()
	if err != nil {
		return err
	}

	b.Rebalance()
	err = s.WriteBook(b)
	if err != nil {
		return err
	}

	fmt.Printf("%v book re-packed onto %v pages\n", checkmark, len(b.Pages))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID expands a unique item ID prefix to the full ID.
func resolveID(b *snipbook.Book, prefix string) (string, error) {
	var matches []string
	for _, p := range b.Pages {
		for _, item := range p.Items {
			if strings.HasPrefix(item.ID, prefix) {
				matches = append(matches, item.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", snipbook.NewNotFound("no item with ID %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous, matches %v items", prefix, len(matches))
	}
}
