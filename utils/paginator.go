package utils

import "strconv"

const PageSize = 10

// Page is one window of an ordered listing. Offset/Limit are meant to be fed
// straight into the query that produced Total.
type Page struct {
	Number  int
	Count   int // total number of pages, at least 1
	Offset  int
	Limit   int
	HasPrev bool
	HasNext bool
}

// Paginate computes the page window for a listing of total items. The page
// parameter comes straight from the query string: anything non-numeric or
// below 1 means page 1, anything past the last page clamps to the last page.
// An empty listing yields an empty page 1.
func Paginate(total int64, pageParam string) Page {
	count := int((total + PageSize - 1) / PageSize)
	if count < 1 {
		count = 1
	}
	number, err := strconv.Atoi(pageParam)
	if err != nil || number < 1 {
		number = 1
	}
	if number > count {
		number = count
	}
	return Page{
		Number:  number,
		Count:   count,
		Offset:  (number - 1) * PageSize,
		Limit:   PageSize,
		HasPrev: number > 1,
		HasNext: number < count,
	}
}

func (p Page) Prev() int { return p.Number - 1 }
func (p Page) Next() int { return p.Number + 1 }
