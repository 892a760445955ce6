package store

import (
	"sort"
	"time"

	"campusevents/internal/model"
)

// Seed dataset used whenever a collection blob is absent or unreadable.
// One user per role, four events spaced over the coming weeks, and a few
// registrations so the dashboards are not empty on first run.

func seedUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "Rahul (Organizer)", Role: model.RoleOrganizer, Email: "organizer@campus.com", Password: "password123"},
		{ID: 2, Name: "Shivang (Student)", Role: model.RoleStudent, Email: "shivang@student.com", Password: "password123"},
		{ID: 4, Name: "Sanjay (Admin)", Role: model.RoleAdmin, Email: "admin@campus.com", Password: "password123"},
	}
}

func seedEvents() []model.Event {
	at := func(days, hour int) time.Time {
		d := time.Now().AddDate(0, 0, days)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.Local)
	}
	return []model.Event{
		{
			ID:              1,
			Title:           "Annual Tech Summit",
			Description:     "Exploring the future of technology and innovation.",
			LongDescription: "Join us for a full day of insightful talks, workshops, and networking opportunities with leaders from the tech industry. Topics include AI, blockchain, and sustainable tech.",
			Date:            at(30, 9),
			Location:        "Main Auditorium",
			Organizer:       "Tech Club",
			ImageURL:        "https://picsum.photos/seed/tech/600/400",
			MaxCapacity:     200,
		},
		{
			ID:              2,
			Title:           "Campus Music Festival",
			Description:     "A vibrant celebration of music and arts.",
			LongDescription: "Experience a fantastic lineup of student bands and local artists. Food trucks, art installations, and great vibes are guaranteed. Don't miss the biggest musical event of the year!",
			Date:            at(50, 14),
			Location:        "Central Lawn",
			Organizer:       "Arts Society",
			ImageURL:        "https://picsum.photos/seed/music/600/400",
			MaxCapacity:     500,
		},
		{
			ID:              3,
			Title:           "Career Fair & Networking Event",
			Description:     "Connect with top employers and kickstart your career.",
			LongDescription: "Meet representatives from leading companies in various fields. Bring your resume, dress professionally, and be prepared to network. An excellent opportunity for internships and full-time positions.",
			Date:            at(40, 10),
			Location:        "University Gymnasium",
			Organizer:       "Career Services",
			ImageURL:        "https://picsum.photos/seed/career/600/400",
			MaxCapacity:     300,
		},
		{
			ID:              4,
			Title:           "Hackathon: Code for Good",
			Description:     "A 24-hour coding competition to solve real-world problems.",
			LongDescription: "Team up and build innovative solutions for social good. Prizes, mentorship, and free food will be provided. All skill levels are welcome. Let's code a better future together!",
			Date:            at(66, 18),
			Location:        "Computer Science Building",
			Organizer:       "Coding Club",
			ImageURL:        "https://picsum.photos/seed/hackathon/600/400",
			MaxCapacity:     100,
		},
	}
}

func seedRegistrations() []model.Registration {
	return []model.Registration{
		{ID: 1, EventID: 1, UserID: 2, Status: model.StatusApproved},
		{ID: 2, EventID: 1, UserID: 3, Status: model.StatusPending},
		{ID: 3, EventID: 2, UserID: 2, Status: model.StatusApproved},
	}
}

func sortEventsByDate(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
