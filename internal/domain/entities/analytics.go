package entities

// RatingTrendPoint is one calendar-month bucket of a doctor's reviews.
type RatingTrendPoint struct {
	Period        string  `json:"period" db:"period"`
	AverageRating float64 `json:"average_rating" db:"average_rating"`
	TotalRatings  int     `json:"total_ratings" db:"total_ratings"`
}

// ProductCount is the raw frequency of one product across a doctor's
// recommendation links.
type ProductCount struct {
	ProductID int64 `json:"product_id" db:"product_id"`
	Count     int   `json:"count" db:"recommendation_count"`
}

// RecommendedProduct is a ranked product with its catalog title resolved
// (or a fallback when the catalog is unavailable).
type RecommendedProduct struct {
	ProductID           int64  `json:"product_id"`
	ProductTitle        string `json:"product_title"`
	RecommendationCount int    `json:"recommendation_count"`
}

// SentimentBreakdown aggregates keyword-classified review comments.
// Percentages are over TotalAnalyzed and are all zero when no comment
// qualified for analysis.
type SentimentBreakdown struct {
	PositiveReviews    int     `json:"positive_reviews"`
	NeutralReviews     int     `json:"neutral_reviews"`
	NegativeReviews    int     `json:"negative_reviews"`
	TotalAnalyzed      int     `json:"total_analyzed"`
	PositivePercentage float64 `json:"positive_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
}

// DoctorAnalytics is the composed analytics view for one doctor's
// dashboard.
type DoctorAnalytics struct {
	OverallAverageRating     float64              `json:"overall_average_rating"`
	TotalReviews             int                  `json:"total_reviews"`
	TotalRecommendationsMade int                  `json:"total_recommendations_made"`
	TotalProductsRecommended int                  `json:"total_products_recommended"`
	RatingTrends             []RatingTrendPoint   `json:"rating_trends"`
	TopRecommendedProducts   []RecommendedProduct `json:"top_recommended_products"`
	ReviewSentimentBreakdown SentimentBreakdown   `json:"review_sentiment_breakdown"`
}
