package domain

import (
	"math"
	"time"
)

// MaxRatingScore is the upper bound of every rating dimension.
const MaxRatingScore = 10

// Review is a guest's rating of a visit. Each dimension is scored 0..MaxRatingScore.
type Review struct {
	ReviewID      string    `json:"reviewID"`
	RestaurantID  string    `json:"restaurantID"`
	ReservationID string    `json:"reservationID,omitempty"`
	Food          int       `json:"food"`
	Service       int       `json:"service"`
	Price         int       `json:"price"`
	Ambience      int       `json:"ambience"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InRange reports whether every dimension is within the rating scale.
func (r Review) InRange() bool {
	for _, v := range []int{r.Food, r.Service, r.Price, r.Ambience} {
		if v < 0 || v > MaxRatingScore {
			return false
		}
	}
	return true
}

// RatingSums accumulates the per-dimension sums of a set of reviews.
type RatingSums struct {
	Food     int64
	Service  int64
	Price    int64
	Ambience int64
	Count    int
}

// Add folds a review into the sums.
func (s *RatingSums) Add(r Review) {
	s.Food += int64(r.Food)
	s.Service += int64(r.Service)
	s.Price += int64(r.Price)
	s.Ambience += int64(r.Ambience)
	s.Count++
}

// Total is the sum over all four dimensions.
func (s RatingSums) Total() int64 {
	return s.Food + s.Service + s.Price + s.Ambience
}

// CalculateRating returns round(total / (count * 4), 2), or 0 when there are no reviews.
func CalculateRating(sums RatingSums) float64 {
	if sums.Count <= 0 {
		return 0
	}
	return round2(float64(sums.Total()) / float64(sums.Count*4))
}

// averageOf returns round(sum / count, 2), or 0 when count is zero.
func averageOf(sum int64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return round2(float64(sum) / float64(count))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToBucket converts the sums into the per-dimension averages used by the ratings report.
func (s RatingSums) ToBucket() RatingBucket {
	return RatingBucket{
		Food:     averageOf(s.Food, s.Count),
		Service:  averageOf(s.Service, s.Count),
		Price:    averageOf(s.Price, s.Count),
		Ambience: averageOf(s.Ambience, s.Count),
		Overall:  CalculateRating(s),
		Reviews:  s.Count,
	}
}
