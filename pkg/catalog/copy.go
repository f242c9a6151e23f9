package catalog

// Quote is the bucket-dependent dashboard quote card.
type Quote struct {
	Title string
	Text  string
}

// Nudge is the copy shown by the one-shot reminder prompt.
type Nudge struct {
	Title          string
	Text           string
	PrimaryLabel   string
	SecondaryLabel string
}

// QuoteFor returns the quote for a bucket, falling back to the unknown
// copy for unmapped values.
func QuoteFor(b Bucket) Quote {
	if q, ok := quotes[b]; ok {
		return q
	}
	return quotes[BucketUnknown]
}

// NudgeFor returns the nudge copy for a bucket, falling back to the
// unknown copy for unmapped values.
func NudgeFor(b Bucket) Nudge {
	if n, ok := nudges[b]; ok {
		return n
	}
	return nudges[BucketUnknown]
}

var quotes = map[Bucket]Quote{
	BucketVeryLow: {
		Title: "Take It Slow",
		Text:  "Rest is productive too. Recharging now helps you stay focused later. Lean into calm activities that restore your energy.",
	},
	BucketLow: {
		Title: "Gentle Connections",
		Text:  "Light social moments can make a big difference. A short chat or quiet hangout can help lift your mood without draining you.",
	},
	BucketMedium: {
		Title: "Finding Your Balance",
		Text:  "Meaningful connections boost productivity and well-being. Even short moments with friends help recharge your mind.",
	},
	BucketMediumHigh: {
		Title: "Make the Most of Your Motivation",
		Text:  "You're energized — perfect for group activities or productive sessions with friends. Share the momentum!",
	},
	BucketHigh: {
		Title: "You're Fully Charged!",
		Text:  "Your high energy makes you the spark in your social circle. This is a great moment for dynamic activities and new experiences.",
	},
	BucketUnknown: {
		Title: "Welcome!",
		Text:  "Select your social energy level to get personalized recommendations tailored to how you're feeling today.",
	},
}

var nudges = map[Bucket]Nudge{
	BucketVeryLow: {
		Title:          "Tiny Steps Are Enough",
		Text:           "You've been at it for a while. How about a short, low-key break or a quiet check-in with someone you trust?",
		PrimaryLabel:   "Browse gentle events",
		SecondaryLabel: "Maybe later",
	},
	BucketLow: {
		Title:          "A Small Social Boost",
		Text:           "A quick coffee chat or short walk could gently lift your mood without overwhelming you.",
		PrimaryLabel:   "See low-key ideas",
		SecondaryLabel: "Keep focusing",
	},
	BucketMedium: {
		Title:          "Ready for a Little Break?",
		Text:           "You've been focused for a while. A short social break can help you come back with more energy.",
		PrimaryLabel:   "Check events",
		SecondaryLabel: "Stay here",
	},
	BucketMediumHigh: {
		Title:          "Channel Your Momentum",
		Text:           "You seem energized! This might be a great moment to join a group activity or plan something with friends.",
		PrimaryLabel:   "See group activities",
		SecondaryLabel: "Not now",
	},
	BucketHigh: {
		Title:          "Put Your Energy to Use",
		Text:           "You're fully charged! Perfect moment to join an event, invite friends, or start something fun.",
		PrimaryLabel:   "Open events",
		SecondaryLabel: "Maybe later",
	},
	BucketUnknown: {
		Title:          "How Are You Feeling?",
		Text:           "Tell me how you're feeling so we can suggest the right type of break or activity for you.",
		PrimaryLabel:   "Set my energy level",
		SecondaryLabel: "Skip for now",
	},
}
