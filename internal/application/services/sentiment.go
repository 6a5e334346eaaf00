package services

import "strings"

// Sentiment is the class assigned to a review comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Fixed keyword lists for the classifier. Matching is case-insensitive
// substring membership; each list entry contributes at most one point no
// matter how often it occurs in the text.
var positiveKeywords = []string{
	"good", "great", "excellent", "fantastic", "helpful", "positive",
	"love", "best", "amazing", "satisfied", "recommend", "pleased",
	"impressed", "wonderful", "effective",
}

var negativeKeywords = []string{
	"bad", "poor", "terrible", "awful", "negative", "hate", "worst",
	"avoid", "disappointed", "unhelpful", "rush", "problem", "issue",
	"concern", "not good",
}

// ClassifySentiment classifies free text as positive, negative, or
// neutral by counting keyword-list hits. Blank text and ties are
// neutral. The function is pure and deterministic.
func ClassifySentiment(text string) Sentiment {
	if strings.TrimSpace(text) == "" {
		return SentimentNeutral
	}

	lower := strings.ToLower(text)

	positiveScore := 0
	for _, keyword := range positiveKeywords {
		if strings.Contains(lower, keyword) {
			positiveScore++
		}
	}

	negativeScore := 0
	for _, keyword := range negativeKeywords {
		if strings.Contains(lower, keyword) {
			negativeScore++
		}
	}

	switch {
	case positiveScore > negativeScore:
		return SentimentPositive
	case negativeScore > positiveScore:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
