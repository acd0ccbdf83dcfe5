package models

// MaxHistoryLimit is the largest page size the history endpoint accepts.
const MaxHistoryLimit = 500

// HistoryOptions controls a single history page request.
type HistoryOptions struct {
	Active bool
	Limit  int
	// Cursor is the opaque continuation token of the previous page.
	Cursor string
}

// HistoryPage is one page of the push history.
type HistoryPage struct {
	Pushes []Push `json:"pushes"`
	// Cursor is empty when there are no more pages.
	Cursor string `json:"cursor,omitempty"`
}

// FetchResult is what a filtered history fetch produced.
type FetchResult struct {
	// Pushes is the filtered display list.
	Pushes []Push
	// Rounds is the number of history pages requested.
	Rounds int
	// CommandHandled is true when the newest push was a command and was
	// routed to the command dispatcher instead of the display list.
	CommandHandled bool
	// Failed is true when the first history page could not be fetched.
	// Pushes is empty and the caller keeps what it already shows.
	Failed bool
}
