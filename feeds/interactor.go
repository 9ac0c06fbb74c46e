package feeds

import (
	"context"

	"feedview/models"
)

// FeedsOutput receives the typed result of the fetch use case.
type FeedsOutput interface {
	PresentFeeds(response models.FeedsFetchResponse)
}

// Interactor orchestrates one fetch feeds cycle: validate the request,
// fetch through the worker, hand the response to the bound output.
type Interactor struct {
	worker *Worker
	output FeedsOutput
}

func NewInteractor(worker *Worker, output FeedsOutput) *Interactor {
	return &Interactor{worker: worker, output: output}
}

// FetchFeeds runs one request cycle. The output is invoked exactly once per
// call; a malformed request or a failed fetch is delivered as an error
// response, never swallowed.
func (i *Interactor) FetchFeeds(ctx context.Context, request models.FeedsFetchRequest) {
	user, validationErr := userFromRequest(request)
	if validationErr != nil {
		i.output.PresentFeeds(models.FeedsFetchResponse{Err: validationErr})
		return
	}

	feeds, err := i.worker.FetchFeeds(ctx, user)
	if err != nil {
		i.output.PresentFeeds(models.FeedsFetchResponse{Err: models.CannotFetch(err.Error())})
		return
	}

	i.output.PresentFeeds(models.FeedsFetchResponse{Feeds: feeds})
}

func userFromRequest(request models.FeedsFetchRequest) (models.User, *models.FetchError) {
	if request.Email == nil || *request.Email == "" {
		return models.User{}, models.CannotFetch("email is required")
	}
	if request.Password == nil || *request.Password == "" {
		return models.User{}, models.CannotFetch("password is required")
	}
	return models.User{Email: *request.Email, Password: *request.Password}, nil
}
