package domain

import "time"

const (
	MinRating = 1
	MaxRating = 10
)

type Rating struct {
	MovieID    int       `json:"movieId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	Review     string    `json:"review"`
	MovieTitle string    `json:"movieTitle"`
	RatedAt    time.Time `json:"timestamp"`
}

type RatingInput struct {
	MovieID    int
	UserID     string
	Rating     int
	Review     string
	MovieTitle string
}

type RatingSummary struct {
	MovieID       int         `json:"movieId"`
	TotalRatings  int         `json:"totalRatings"`
	AverageRating float64     `json:"averageRating"`
	Ratings       map[int]int `json:"ratings"`
}

func NewRatingSummary(movieID int) *RatingSummary {
	hist := make(map[int]int, MaxRating)
	for i := MinRating; i <= MaxRating; i++ {
		hist[i] = 0
	}
	return &RatingSummary{MovieID: movieID, Ratings: hist}
}
