package domain

// Activity is a named school offering with a display schedule and its current roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// seedActivities is the fixed catalog loaded into every new Directory. Capacity is
// advisory: signup never checks it.
var seedActivities = []Activity{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	{
		Name:            "Art Studio",
		Description:     "Painting, drawing, and mixed-media projects",
		Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{"amelia@mergington.edu"},
	},
	{
		Name:            "Tennis Club",
		Description:     "Singles and doubles practice on the school courts",
		Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 10,
		Participants:    []string{"lucas@mergington.edu"},
	},
	{
		Name:            "Drama Club",
		Description:     "Acting, stagecraft, and the spring theater production",
		Schedule:        "Mondays and Thursdays, 3:30 PM - 5:30 PM",
		MaxParticipants: 25,
		Participants:    []string{"ella@mergington.edu", "noah@mergington.edu"},
	},
	{
		Name:            "Debate Team",
		Description:     "Competitive debate and public speaking practice",
		Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 16,
		Participants:    []string{"charlotte@mergington.edu"},
	},
	{
		Name:            "Math Olympiad",
		Description:     "Problem-solving practice for regional math competitions",
		Schedule:        "Fridays, 3:30 PM - 4:30 PM",
		MaxParticipants: 18,
		Participants:    []string{"henry@mergington.edu"},
	},
	{
		Name:            "Science Club",
		Description:     "Hands-on experiments and science fair preparation",
		Schedule:        "Wednesdays, 4:00 PM - 5:00 PM",
		MaxParticipants: 20,
		Participants:    []string{"grace@mergington.edu", "liam@mergington.edu"},
	},
}
