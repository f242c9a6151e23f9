// Package catalog holds the static per-bucket event candidate lists and
// the bucket selector driven by the user's self-reported energy level.
package catalog

import "seplanner/pkg/event"

// Bucket is one of six discrete social-energy categories.
type Bucket string

const (
	BucketUnknown    Bucket = "unknown"
	BucketVeryLow    Bucket = "verylow"
	BucketLow        Bucket = "low"
	BucketMedium     Bucket = "medium"
	BucketMediumHigh Bucket = "mediumhigh"
	BucketHigh       Bucket = "high"
)

func (b Bucket) String() string {
	return string(b)
}

// BucketForLevel maps a 1-5 energy level to its bucket. hasLevel is false
// when no level has been stored yet.
func BucketForLevel(level int, hasLevel bool) Bucket {
	if !hasLevel {
		return BucketUnknown
	}
	switch level {
	case 1:
		return BucketVeryLow
	case 2:
		return BucketLow
	case 3:
		return BucketMedium
	case 4:
		return BucketMediumHigh
	case 5:
		return BucketHigh
	default:
		return BucketUnknown
	}
}

// Candidates returns the candidate event list for a bucket. The unknown
// bucket (and any unmapped value) falls back to the medium list.
func Candidates(b Bucket) []event.Event {
	switch b {
	case BucketVeryLow:
		return veryLowEvents
	case BucketLow:
		return lowEvents
	case BucketMedium:
		return mediumEvents
	case BucketMediumHigh:
		return mediumHighEvents
	case BucketHigh:
		return highEvents
	default:
		return mediumEvents
	}
}

// Friends is the user's static friends list, used for the social-overlap
// score and the advise flow.
func Friends() []string {
	return []string{
		"Elynn Lee",
		"Oscar Dum",
		"Carlo Emilion",
		"Daniel Jay Park",
		"Liam Cortez",
		"Sophia Nguyen",
		"Ethan Morales",
		"Ava Becker",
		"Noah Tanaka",
		"Chloe Ricci",
		"Mateo Alvarez",
		"Lucas Hwang",
		"Isabella Fontaine",
	}
}

// SeededItems are the hardcoded upcoming schedule entries that appear on
// the calendar and dashboard regardless of enrollment.
func SeededItems() []event.Event {
	return []event.Event{
		{Title: "Physics Problem Set", TimeLabel: "Tomorrow at 12:00 PM", DefaultVariant: event.VariantPriority},
		{Title: "Linear Algebra Lecture", TimeLabel: "Tomorrow at 8:00 AM", DefaultVariant: event.VariantPriority},
		{Title: "Coffee with Lucas", TimeLabel: "Tomorrow at 4:00 PM", DefaultVariant: event.VariantFlexible},
		{Title: "Group Project Meeting", TimeLabel: "Tomorrow at 6:00 PM", DefaultVariant: event.VariantFlexible},
	}
}

var veryLowEvents = []event.Event{
	{
		Title:       "Quiet Library Study",
		TimeLabel:   "Monday at 7:00 PM",
		Location:    "ETH Main Library",
		Attendees:   []string{"Ava Becker"},
		Image:       "/images/events/quiet-study.jpg",
		Description: "A peaceful study session in the quiet section of the main library.",
		Tags:        []string{"quiet", "study"},
		Rating:      4.6,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Short Walk & Talk",
		TimeLabel:   "Tuesday at 5:00 PM",
		Location:    "Polyterrasse",
		Attendees:   []string{"Sophia Nguyen"},
		Image:       "/images/events/polyterasse.jpg",
		Description: "A gentle stroll around Polyterrasse for fresh air and light conversation.",
		Tags:        []string{"outdoors"},
		Rating:      4.2,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Chill Tea Break",
		TimeLabel:   "Wednesday at 4:00 PM",
		Location:    "ETH Alumni Lounge",
		Attendees:   []string{"Lucas Hwang", "Carlo Emilion"},
		Image:       "/images/events/tea.jpg",
		Description: "A cozy tea break in the alumni lounge to unwind and chat casually.",
		Rating:      4.4,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Solo Reading Corner",
		TimeLabel:   "Thursday at 6:30 PM",
		Location:    "ETH Main Library, Reading Nook",
		Attendees:   []string{"Chloe Ricci"},
		Image:       "/images/events/reading.jpg",
		Description: "A super quiet reading session tucked away in a cozy corner of the library.",
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Late-Afternoon Headphone Study",
		TimeLabel:   "Sunday at 4:00 PM",
		Location:    "HG Lounge Area",
		Attendees:   []string{"Mateo Alvarez"},
		Image:       "/images/events/headphones.avif",
		Description: "A calm study meetup with headphones on, company without conversation.",
		IsNew:       true,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Mindful Breathing Break",
		TimeLabel:   "Today at 3:30 PM",
		Location:    "Polyterrasse, Quiet Corner",
		Attendees:   []string{"Ava Becker"},
		Image:       "/images/events/mindful.jpg",
		Description: "A short, low-key break to sit, breathe, and decompress together.",
		IsNew:       true,
		Rating:      4.8,
		Distance:    event.DistanceCampus,
	},
}

var lowEvents = []event.Event{
	{
		Title:       "Cozy Board Game Night",
		TimeLabel:   "Friday at 8:00 PM",
		Location:    "Friend's Flat, Kreis 6",
		Attendees:   []string{"Lucas Hwang", "Isabella Fontaine"},
		Image:       "/images/events/boardgames.jpg",
		Description: "A relaxed evening of board games in a cozy apartment setting.",
		Tags:        []string{"games"},
		Rating:      4.7,
		Distance:    event.DistanceCity,
	},
	{
		Title:       "Calm Study Meetup",
		TimeLabel:   "Monday at 3:00 PM",
		Location:    "CAB Silent Room",
		Attendees:   []string{"Chloe Ricci"},
		Image:       "/images/events/study.png",
		Description: "A peaceful study session in the silent room, working together quietly.",
		Rating:      4.1,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Evening Stroll",
		TimeLabel:   "Friday at 6:00 PM",
		Location:    "Zürich Central",
		Attendees:   []string{"Ethan Morales", "Ava Becker"},
		Image:       "/images/events/walk-night.jpg",
		Description: "A gentle evening walk through Zürich Central under the city lights.",
		Distance:    event.DistanceCity,
	},
	{
		Title:       "Quiet Library Study",
		TimeLabel:   "Tonight at 7:00 PM",
		Location:    "ETH Main Library",
		Attendees:   []string{"Ava Becker"},
		Image:       "/images/events/quiet-study.jpg",
		Description: "A focused study session in the main library's quiet section.",
		Rating:      4.6,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Gentle Yoga & Stretch",
		TimeLabel:   "Sunday at 10:00 AM",
		Location:    "ETH Hönggerberg Lawn",
		Attendees:   []string{"Sophia Nguyen", "Chloe Ricci"},
		Image:       "/images/events/yoga.jpg",
		Description: "A relaxed morning session of light stretching and beginner-friendly yoga.",
		IsNew:       true,
		Distance:    event.DistanceFar,
	},
	{
		Title:       "Quiet Café Work Session",
		TimeLabel:   "Thursday at 5:30 PM",
		Location:    "Café Galileo, ETH Zentrum",
		Attendees:   []string{"Lucas Hwang"},
		Image:       "/images/events/cafe-work.jpg",
		Description: "Grab a drink, find a quiet table, and work side by side.",
		Rating:      4.3,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Sunset Bench Hangout",
		TimeLabel:   "Tonight at 7:30 PM",
		Location:    "Polyterrasse Viewpoint",
		Attendees:   []string{"Ethan Morales", "Ava Becker"},
		Image:       "/images/events/sunset.jpg",
		Description: "A calm evening on a bench, watching the sunset over Zürich.",
		IsNew:       true,
		Rating:      4.9,
		Distance:    event.DistanceCampus,
	},
}

var mediumEvents = []event.Event{
	{
		Title:       "Coffee Chat",
		TimeLabel:   "Tuesday at 10:00 AM",
		Location:    "Einstein Cafe, ETH HG",
		Attendees:   []string{"Chloe Ricci", "Lucas Hwang"},
		Image:       "/images/events/coffee.jpg",
		Description: "A casual coffee meetup to catch up on classes, life, and everything between.",
		Tags:        []string{"coffee"},
		Rating:      4.5,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Lunch with Friends",
		TimeLabel:   "Wednesday at 12:30 PM",
		Location:    "ETH Mensa Polyterrasse",
		Attendees:   []string{"Mateo Alvarez", "Isabella Fontaine"},
		Image:       "/images/events/mensa.jpg",
		Description: "A relaxed lunch at the Polyterrasse Mensa with good food and conversation.",
		Rating:      4.2,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Study Together",
		TimeLabel:   "Saturday at 6:00 PM",
		Location:    "ETH CAB Building",
		Attendees:   []string{"Ava Becker", "Isabella Fontaine", "Mateo Alvarez", "Chloe Ricci"},
		Image:       "/images/events/study.png",
		Description: "A collaborative study session with breaks to chat and keep spirits up.",
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Lunch Crew",
		TimeLabel:   "Thursday at 12:30 PM",
		Location:    "ETH Mensa Polyterrasse",
		Attendees:   []string{"Mateo Alvarez", "Chloe Ricci", "Isabella Fontaine"},
		Image:       "/images/events/mensa2.jpg",
		Description: "The regular Thursday lunch meetup at the Mensa.",
		Rating:      4.4,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Problem-Solving Session",
		TimeLabel:   "Monday at 5:00 PM",
		Location:    "HG G Floor Study Area",
		Attendees:   []string{"Daniel Jay Park", "Chloe Ricci", "Ava Becker"},
		Image:       "/images/events/problem-solving.jpg",
		Description: "A focused but friendly meetup to work through problem sets together.",
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Mensa Dessert Break",
		TimeLabel:   "Friday at 2:30 PM",
		Location:    "ETH Mensa Polyterrasse",
		Attendees:   []string{"Isabella Fontaine", "Mateo Alvarez"},
		Image:       "/images/events/dessert.jpg",
		Description: "A short afternoon meetup for coffee, dessert, and a mid-day reset.",
		IsNew:       true,
		Rating:      4.0,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Campus Photo Walk",
		TimeLabel:   "Saturday at 3:00 PM",
		Location:    "ETH Zentrum Campus",
		Attendees:   []string{"Lucas Hwang", "Sophia Nguyen"},
		Image:       "/images/events/photo-walk.webp",
		Description: "A relaxed walk around campus to photograph cool spots and views.",
		IsNew:       true,
		Distance:    event.DistanceCampus,
	},
}

var mediumHighEvents = []event.Event{
	{
		Title:       "Group Study Sprint",
		TimeLabel:   "Today at 4:00 PM",
		Location:    "ETH HG E33",
		Attendees:   []string{"Ava Becker", "Isabella Fontaine", "Mateo Alvarez", "Chloe Ricci"},
		Image:       "/images/events/study.jpg",
		Description: "An energetic study sprint in focused blocks with short breaks.",
		Rating:      4.6,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Evening Jog Crew",
		TimeLabel:   "Tonight at 8:00 PM",
		Location:    "ETH Hönggerberg",
		Attendees:   []string{"Liam Cortez", "Ethan Morales", "Daniel Jay Park"},
		Image:       "/images/events/run.jpg",
		Description: "A fun evening jog around Hönggerberg campus at a comfortable pace.",
		Tags:        []string{"sport"},
		Rating:      4.3,
		Distance:    event.DistanceFar,
	},
	{
		Title:       "Casual Dinner Out",
		TimeLabel:   "Saturday at 7:00 PM",
		Location:    "Nooch Zurich",
		Attendees:   []string{"Oscar Dum", "Daniel Jay Park"},
		Image:       "/images/events/dinner.jpg",
		Description: "A relaxed dinner out with good Asian food and better conversation.",
		Rating:      4.5,
		Distance:    event.DistanceCity,
	},
	{
		Title:       "Big Study Group",
		TimeLabel:   "Tomorrow at 2:00 PM",
		Location:    "HG D1.2",
		Attendees:   []string{"Ava Becker", "Isabella Fontaine", "Mateo Alvarez", "Chloe Ricci"},
		Image:       "/images/events/study.png",
		Description: "A productive session with the whole group, tackling hard problems together.",
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Lunch Crew",
		TimeLabel:   "Thursday at 12:30 PM",
		Location:    "Mensa Polyterrasse",
		Attendees:   []string{"Chloe Ricci", "Mateo Alvarez"},
		Image:       "/images/events/mensa2.jpg",
		Description: "A lively lunch meetup at the Mensa to catch up on the week.",
		Rating:      4.4,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Brainstorm & Whiteboard Jam",
		TimeLabel:   "Wednesday at 5:00 PM",
		Location:    "ETH HG E Floor Seminar Room",
		Attendees:   []string{"Oscar Dum", "Daniel Jay Park", "Chloe Ricci", "Mateo Alvarez"},
		Image:       "/images/events/whiteboard.jpg",
		Description: "Grab a whiteboard and brainstorm projects, exams, and side ideas.",
		IsNew:       true,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "City Exploration Walk",
		TimeLabel:   "Sunday at 1:00 PM",
		Location:    "Zürich Old Town (Neumarkt)",
		Attendees:   []string{"Ava Becker", "Lucas Hwang", "Isabella Fontaine"},
		Image:       "/images/events/city-walk.jpg",
		Description: "A longer walk through the old town with snacks and hidden alleys.",
		IsNew:       true,
		Rating:      4.7,
		Distance:    event.DistanceCity,
	},
	{
		Title:       "Chill Games at CAB",
		TimeLabel:   "Friday at 7:00 PM",
		Location:    "CAB Common Room",
		Attendees:   []string{"Ethan Morales", "Liam Cortez", "Carlo Emilion", "Sophia Nguyen"},
		Image:       "/images/events/cardgames.webp",
		Description: "An evening of light card and party games, lively but not overwhelming.",
		Distance:    event.DistanceCampus,
	},
}

var highEvents = []event.Event{
	{
		Title:       "Drinks at BQM",
		TimeLabel:   "Friday at 9:00 PM",
		Location:    "BQM Bar",
		Attendees:   []string{"Lucas Hwang", "Ethan Morales", "Sophia Nguyen", "Daniel Jay Park"},
		Image:       "/images/events/drinks.jpg",
		Description: "A fun Friday night at BQM Bar to celebrate the end of the week.",
		Tags:        []string{"nightlife"},
		Rating:      4.8,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "ASVZ Group Workout",
		TimeLabel:   "Saturday at 6:00 PM",
		Location:    "ASVZ Polyterrasse",
		Attendees:   []string{"Carlo Emilion", "Oscar Dum", "Ethan Morales"},
		Image:       "/images/events/workout.jpg",
		Description: "An energetic group circuit session at ASVZ Polyterrasse.",
		Tags:        []string{"sport"},
		Rating:      4.5,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Volleyball Free Play",
		TimeLabel:   "Sunday at 3:00 PM",
		Location:    "ASVZ Höngg",
		Attendees:   []string{"Liam Cortez", "Ethan Morales", "Lucas Hwang"},
		Image:       "/images/events/volleyball.png",
		Description: "Friendly volleyball matches, everyone welcome.",
		Distance:    event.DistanceFar,
	},
	{
		Title:       "Big Study Group",
		TimeLabel:   "Tuesday at 2:00 PM",
		Location:    "ETH HG D1.2",
		Attendees:   []string{"Ava Becker", "Isabella Fontaine", "Mateo Alvarez", "Chloe Ricci"},
		Image:       "/images/events/study.png",
		Description: "An energetic, collaborative study session with the whole crew.",
		Rating:      4.2,
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Student Party Night",
		TimeLabel:   "Saturday at 10:00 PM",
		Location:    "StuZ Night Event",
		Attendees:   []string{"Lucas Hwang", "Isabella Fontaine", "Ethan Morales", "Sophia Nguyen", "Daniel Jay Park"},
		Image:       "/images/events/party.jpg",
		Description: "A loud, high-energy student party with music, dancing, and a big crowd.",
		IsNew:       true,
		Rating:      4.9,
		Distance:    event.DistanceCity,
	},
	{
		Title:       "Intense ASVZ HIIT Session",
		TimeLabel:   "Wednesday at 7:30 PM",
		Location:    "ASVZ Polyterrasse Gym",
		Attendees:   []string{"Carlo Emilion", "Liam Cortez", "Oscar Dum"},
		Image:       "/images/events/hiit.avif",
		Description: "A fast-paced HIIT workout with lots of energy and encouragement.",
		Distance:    event.DistanceCampus,
	},
	{
		Title:       "Bowling & Arcade Night",
		TimeLabel:   "Friday at 8:30 PM",
		Location:    "Bowling Center Zürich",
		Attendees:   []string{"Ava Becker", "Mateo Alvarez", "Chloe Ricci", "Daniel Jay Park", "Lucas Hwang"},
		Image:       "/images/events/bowling.jpg",
		Description: "A lively night of bowling, arcade games, and friendly trash talk.",
		IsNew:       true,
		Rating:      4.6,
		Distance:    event.DistanceFar,
	},
}
