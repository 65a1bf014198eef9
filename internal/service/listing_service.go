package service

import (
	"context"

	"github.com/NoroffFEU/online-shop/internal/platform/logger"
	"github.com/NoroffFEU/online-shop/internal/query"
)

// ListingService drives the product list view: it pulls the catalog,
// runs the query pipeline over it and feeds the no-matches notifier.
type ListingService interface {
	Browse(ctx context.Context, state query.State) (query.Result, error)
}

type listingService struct {
	catalog  CatalogService
	notifier *NoMatchesNotifier
	opts     query.Options
	log      logger.Logger
}

func NewListingService(
	catalog CatalogService,
	notifier *NoMatchesNotifier,
	opts query.Options,
	log logger.Logger,
) ListingService {
	if log == nil {
		log = logger.NoOp()
	}
	return &listingService{
		catalog:  catalog,
		notifier: notifier,
		opts:     opts,
		log:      log,
	}
}

// Browse loads the catalog and runs the pipeline for one query state.
// A fetch failure is returned as-is; the caller renders the message and
// the session stays usable.
func (s *listingService) Browse(ctx context.Context, state query.State) (query.Result, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return query.Result{}, err
	}

	result := query.Run(products, state, s.opts)
	if result.NoProducts {
		s.log.Warn("catalog returned no products")
	}
	if s.notifier != nil {
		s.notifier.Observe(state.Term, result.NoMatches)
	}
	return result, nil
}
