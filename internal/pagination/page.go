package pagination

const (
	DefaultLimit = 20
	MaxLimit     = 100

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Params carries the sanitized paging inputs for a listing query.
type Params struct {
	Limit  int
	Sort   string
	Cursor string
}

// Normalize clamps the limit into [1,100] and defaults the sort direction.
func (p Params) Normalize() Params {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Sort != SortAsc {
		p.Sort = SortDesc
	}
	return p
}

// Meta is the paging envelope returned alongside a page of items.
//
// PrevCursor is populated from the first row of every non-empty page, even
// the first one; it does not signal "there is a previous page".
type Meta struct {
	Count      int     `json:"count"`
	Limit      int     `json:"limit"`
	NextCursor *string `json:"nextCursor"`
	PrevCursor *string `json:"prevCursor"`
	HasMore    bool    `json:"hasMore"`
}
