package feeds

import (
	"strings"

	"github.com/samber/lo"

	"feedview/models"
)

// FeedsDisplay renders view models produced by the presenter.
type FeedsDisplay interface {
	DisplayFeeds(viewModel models.FeedsViewModel)
	DisplayFeedsFetchError(message string)
}

// Presenter turns a domain response into a display-shaped view model and
// hands it to the bound display. Error responses take the error path.
type Presenter struct {
	output FeedsDisplay
}

func NewPresenter(output FeedsDisplay) *Presenter {
	return &Presenter{output: output}
}

func (p *Presenter) PresentFeeds(response models.FeedsFetchResponse) {
	if response.Err != nil {
		p.output.DisplayFeedsFetchError(response.Err.Message)
		return
	}

	feeds := lo.Map(response.Feeds, func(feed models.Feed, _ int) models.Feed {
		return displayFeed(feed)
	})

	p.output.DisplayFeeds(models.FeedsViewModel{Feeds: feeds})
}

// displayFeed normalizes an entry for display. Whitespace aside, values pass
// through untouched so each source stays in control of its content.
func displayFeed(feed models.Feed) models.Feed {
	return models.Feed{
		Title:       strings.TrimSpace(feed.Title),
		Author:      strings.TrimSpace(feed.Author),
		PublishedOn: strings.TrimSpace(feed.PublishedOn),
	}
}
