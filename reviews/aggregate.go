package reviews

import "github.com/pagemark/go-catalog-client/catalog"

// Aggregate is the derived rating view for one book: the review list the
// cache currently holds and the average computed from it.
type Aggregate struct {
	Reviews      []catalog.Review
	AverageScore float64
}

// Aggregate derives the rating view from the book's current snapshot. It
// never fetches; pair it with Load or a subscription when freshness
// matters.
func (s *Service) Aggregate(bookID string) Aggregate {
	snapshot := s.Cache(bookID).Snapshot()
	return Aggregate{
		Reviews:      snapshot,
		AverageScore: AverageScore(snapshot),
	}
}

// AverageScore computes the mean review score. A book with no reviews
// averages to exactly 0, never NaN; it displays as unrated.
func AverageScore(reviews []catalog.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Score
	}
	return float64(sum) / float64(len(reviews))
}
