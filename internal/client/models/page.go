package models

// DefaultPageSize is the page size the backend uses for the admin listing.
const DefaultPageSize = 10

// UserPage is one page of the admin user listing, refetched on every page
// change or mutating action; it is never patched in place.
type UserPage struct {
	Results  []User
	Count    int
	Page     int
	PageSize int
}

// TotalPages returns the number of pages for count items at the given page
// size. It is never less than 1, so an empty listing still has one page.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	n := (count + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// TotalPages returns the page count for this listing.
func (p UserPage) TotalPages() int {
	return TotalPages(p.Count, p.PageSize)
}

// AccountAction is an admin mutation on another account's activation status.
type AccountAction string

const (
	ActionActivate   AccountAction = "activate"
	ActionDeactivate AccountAction = "deactivate"
)

// ConfirmRequest is a pending admin action awaiting explicit confirmation.
// It exists only between "requested" and "confirmed or cancelled"; at most
// one may be pending at a time.
type ConfirmRequest struct {
	UserID int64
	Action AccountAction
	Email  string
}
