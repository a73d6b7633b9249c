package domain

import "time"

// SeedDataset returns the built-in example data used when no persisted state
// exists. Deadlines for open events are set relative to now so the seed is
// useful whenever it is first materialized.
func SeedDataset(now time.Time) Dataset {
	return Dataset{
		Events: []Event{
			{
				ID:                   "1",
				Title:                "Hackathon 2024",
				Description:          "A 24-hour coding challenge to solve real-world problems. Join us for a weekend of innovation, networking, and exciting prizes!",
				Date:                 "2024-12-15",
				Time:                 "09:00 AM",
				Location:             "Main Auditorium",
				Status:               StatusActive,
				Category:             "Technical",
				ImageURL:             "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?auto=format&fit=crop&q=80&w=800",
				RegistrationDeadline: now.AddDate(0, 0, 5),
			},
			{
				ID:                   "2",
				Title:                "Annual Cultural Fest",
				Description:          "Experience a vibrant display of talent including music, dance, and theater. A celebration of diversity and creativity.",
				Date:                 "2024-11-20",
				Time:                 "05:00 PM",
				Location:             "Open Air Theatre",
				Status:               StatusActive,
				Category:             "Cultural",
				ImageURL:             "https://images.unsplash.com/photo-1514525253361-bee8718a74a2?auto=format&fit=crop&q=80&w=800",
				RegistrationDeadline: now.AddDate(0, 0, 12),
			},
			{
				ID:                   "3",
				Title:                "Robotics Workshop",
				Description:          "Learn the fundamentals of building and programming autonomous robots. Hands-on experience with Arduino and sensors.",
				Date:                 "2024-10-05",
				Time:                 "10:00 AM",
				Location:             "Lab Room 102",
				Status:               StatusPaused,
				Category:             "Technical",
				ImageURL:             "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&q=80&w=800",
				RegistrationDeadline: now.AddDate(0, 0, 2),
			},
			{
				ID:                   "4",
				Title:                "Startup Pitch Deck",
				Description:          "Present your business ideas to a panel of investors and mentors. Win funding and incubation support.",
				Date:                 "2024-08-12",
				Time:                 "02:00 PM",
				Location:             "Seminar Hall",
				Status:               StatusEnded,
				Category:             "Entrepreneurship",
				ImageURL:             "https://images.unsplash.com/photo-1559136555-9303baea8ebd?auto=format&fit=crop&q=80&w=800",
				RegistrationDeadline: time.Date(2024, time.August, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		Registrations: []Registration{},
	}
}
