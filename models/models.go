package models

// Feed is a single feed entry as delivered by a data source.
// Immutable once constructed; there is no identity beyond the values.
type Feed struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	PublishedOn string `json:"publishedOn"`
}

// User holds the credentials handed to a data source.
// Both fields are required; construction happens in the interactor only.
type User struct {
	Email    string
	Password string
}

// FeedsFetchRequest is the transport record produced by a view. Both fields
// are optional on the wire; the interactor validates them.
type FeedsFetchRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// FeedsFetchResponse carries the typed result of one fetch cycle.
// At most one of Feeds and Err is populated.
type FeedsFetchResponse struct {
	Feeds []Feed
	Err   *FetchError
}

// FeedsViewModel is the display-shaped record consumed by a view.
type FeedsViewModel struct {
	Feeds []Feed  `json:"feeds"`
	Error *string `json:"error,omitempty"`
}

// FetchError is the single error variant the fetch use case produces.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string {
	return "cannot fetch feeds: " + e.Message
}

// CannotFetch wraps a message in a FetchError.
func CannotFetch(message string) *FetchError {
	return &FetchError{Message: message}
}
