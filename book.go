package snipbook

import (
	"fmt"
	"sync"

	"github.com/akeil/snipbook/internal/logging"
)

// DefaultCapacity is the number of items per page unless configured
// otherwise.
const DefaultCapacity = 4

// Page is an ordered, fixed-capacity run of items.
// A page that loses its last item is removed from the book.
type Page struct {
	Index int     `json:"index"`
	Items []*Item `json:"items"`
}

// Book is an ordered sequence of pages sharing one capacity setting.
//
// All mutating operations are serialized by an internal mutex
// (single-writer); readers between writes observe a consistent state.
type Book struct {
	Title      string  `json:"title"`
	Background string  `json:"background,omitempty"`
	Capacity   int     `json:"capacity"`
	Pages      []*Page `json:"pages"`

	mu sync.Mutex
}

// NewBook creates an empty book. A capacity below one falls back to
// DefaultCapacity.
func NewBook(title string, capacity int) *Book {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Book{
		Title:    title,
		Capacity: capacity,
		Pages:    make([]*Page, 0),
	}
}

// Append places the item on the last page, or on a newly created page if
// the last page is full or the book is empty.
func (b *Book) Append(item *Item) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var last *Page
	if len(b.Pages) != 0 {
		last = b.Pages[len(b.Pages)-1]
	}
	if last == nil || len(last.Items) >= b.Capacity {
		last = &Page{Index: len(b.Pages), Items: make([]*Item, 0, b.Capacity)}
		b.Pages = append(b.Pages, last)
	}

	item.Index = len(last.Items)
	last.Items = append(last.Items, item)
}

// Remove deletes the item with the given ID from its page and returns it.
// A page that becomes empty is removed; other pages are left untouched,
// gaps are only closed by a later Rebalance.
func (b *Book) Remove(id string) (*Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for pi, p := range b.Pages {
		for ii, item := range p.Items {
			if item.ID != id {
				continue
			}

			p.Items = append(p.Items[:ii], p.Items[ii+1:]...)
			renumberItems(p)
			if len(p.Items) == 0 {
				b.Pages = append(b.Pages[:pi], b.Pages[pi+1:]...)
				renumberPages(b.Pages)
			}
			return item, nil
		}
	}

	return nil, NewNotFound("no item with ID %q", id)
}

// Find returns the item with the given ID, or nil.
func (b *Book) Find(id string) *Item {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.Pages {
		for _, item := range p.Items {
			if item.ID == id {
				return item
			}
		}
	}
	return nil
}

// Len is the total number of items across all pages.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count()
}

func (b *Book) count() int {
	n := 0
	for _, p := range b.Pages {
		n += len(p.Items)
	}
	return n
}

// SetCapacity changes the per-page capacity and rebalances the book.
func (b *Book) SetCapacity(c int) {
	if c < 1 {
		panic(fmt.Sprintf("invalid page capacity %v", c))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.Capacity = c
	b.rebalance()
}

// Rebalance recomputes page membership from scratch: items are flattened
// in their current cross-page order and dealt onto fresh pages, each
// filled to capacity before the next is started. Only the last page may
// end up below capacity. Page and item indices are renumbered densely.
func (b *Book) Rebalance() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rebalance()
}

func (b *Book) rebalance() {
	items := make([]*Item, 0, b.count())
	for _, p := range b.Pages {
		items = append(items, p.Items...)
	}

	pages := make([]*Page, 0, (len(items)+b.Capacity-1)/b.Capacity)
	var page *Page
	for _, item := range items {
		if page == nil || len(page.Items) >= b.Capacity {
			page = &Page{Index: len(pages), Items: make([]*Item, 0, b.Capacity)}
			pages = append(pages, page)
		}
		item.Index = len(page.Items)
		page.Items = append(page.Items, item)
	}

	b.Pages = pages
	logging.Debug("Rebalanced %v items onto %v pages (capacity %v)",
		len(items), len(pages), b.Capacity)
}

// ReorderWithinPage moves one item to a new position in the same page and
// renumbers that page's items. Out-of-range indices are a programmer
// error and panic. Moving an item to a different page is a Remove
// followed by an Append.
func (b *Book) ReorderWithinPage(page, from, to int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if page < 0 || page >= len(b.Pages) {
		panic(fmt.Sprintf("page index %v out of range [0, %v)", page, len(b.Pages)))
	}
	p := b.Pages[page]
	if from < 0 || from >= len(p.Items) || to < 0 || to >= len(p.Items) {
		panic(fmt.Sprintf("item index out of range: %v -> %v on page with %v items",
			from, to, len(p.Items)))
	}
	if from == to {
		return
	}

	item := p.Items[from]
	p.Items = append(p.Items[:from], p.Items[from+1:]...)

	rest := append(make([]*Item, 0, len(p.Items)+1), p.Items[:to]...)
	rest = append(rest, item)
	p.Items = append(rest, p.Items[to:]...)

	renumberItems(p)
}

// Validate checks the allocator invariants: dense zero-based page and
// item indices matching iteration order and no page above capacity.
// A violation indicates a bookkeeping bug.
func (b *Book) Validate() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Capacity < 1 {
		return NewValidationError("invalid capacity %v", b.Capacity)
	}

	for pi, p := range b.Pages {
		if p.Index != pi {
			return NewValidationError("page at position %v has index %v", pi, p.Index)
		}
		if len(p.Items) == 0 {
			return NewValidationError("page %v is empty", pi)
		}
		if len(p.Items) > b.Capacity {
			return NewValidationError("page %v holds %v items, capacity is %v",
				pi, len(p.Items), b.Capacity)
		}
		for ii, item := range p.Items {
			if item.Index != ii {
				return NewValidationError("item at position %v on page %v has index %v",
					ii, pi, item.Index)
			}
			err := item.Validate()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func renumberItems(p *Page) {
	for i, item := range p.Items {
		item.Index = i
	}
}

func renumberPages(pages []*Page) {
	for i, p := range pages {
		p.Index = i
	}
}
