package services

import (
	"time"

	"techevents/internal/domain"
)

type catalogEntry struct {
	title, description, date, clock, address, image, category, capacity string
	target                                                              time.Time
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

var catalog = []catalogEntry{
	{
		title:       "Bangladesh National Programming Hackathon 2025",
		description: "Join 500+ developers for the biggest hackathon in South Asia. Build innovative solutions and win ৳10 lakh in prizes!",
		date:        "2025-02-15",
		clock:       "09:00 AM",
		address:     "Dhaka International Convention City, Bashundhara, Dhaka",
		image:       "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800&h=600&fit=crop",
		target:      at(2025, time.February, 15, 9, 0),
		category:    "hackathon",
		capacity:    "500",
	},
	{
		title:       "ICPC Programming Contest - Asia Region",
		description: "International Collegiate Programming Contest. Compete with the best teams from across Asia. Win scholarship opportunities!",
		date:        "2025-02-28",
		clock:       "10:00 AM",
		address:     "BRAC University, Mohakhali, Dhaka",
		image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop",
		target:      at(2025, time.February, 28, 10, 0),
		category:    "competition",
		capacity:    "200",
	},
	{
		title:       "Web Development Bootcamp - React & Node.js",
		description: "Intensive 5-day workshop on modern web development. Learn React, Node.js, and MongoDB from industry experts.",
		date:        "2025-03-10",
		clock:       "02:00 PM",
		address:     "Tech Park, Rajshahi, Bangladesh",
		image:       "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800&h=600&fit=crop",
		target:      at(2025, time.March, 10, 14, 0),
		category:    "workshop",
		capacity:    "100",
	},
	{
		title:       "AI & Machine Learning Summit 2025",
		description: "Discover the latest trends in AI and ML. Network with researchers and industry leaders. 30+ speakers, 2 days.",
		date:        "2025-03-15",
		clock:       "08:30 AM",
		address:     "Grand Ballroom, Sheraton Dhaka, Dhaka",
		image:       "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=600&fit=crop",
		target:      at(2025, time.March, 15, 8, 30),
		category:    "meetup",
		capacity:    "800",
	},
	{
		title:       "Startup Pitch Competition - TechBangla 2025",
		description: "৳50 lakh investment pool for promising startups. Pitch your idea and get funded! 3 rounds of competition.",
		date:        "2025-03-20",
		clock:       "11:00 AM",
		address:     "Innovation Hub, Kawran Bazar, Dhaka",
		image:       "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=600&fit=crop",
		target:      at(2025, time.March, 20, 11, 0),
		category:    "competition",
		capacity:    "150",
	},
	{
		title:       "Cloud Computing Workshop - AWS & Azure",
		description: "Learn cloud infrastructure with hands-on labs. AWS and Azure certified instructors. Get 30% discount on certifications!",
		date:        "2025-03-25",
		clock:       "03:00 PM",
		address:     "ICT Division, Agargaon, Dhaka",
		image:       "https://images.unsplash.com/photo-1559163499-641a923e0dea?w=800&h=600&fit=crop",
		target:      at(2025, time.March, 25, 15, 0),
		category:    "workshop",
		capacity:    "80",
	},
	{
		title:       "Cybersecurity Olympiad - Bangladesh",
		description: "National competition for cybersecurity talent. Solve real-world hacking challenges. Prize pool: ৳20 lakh.",
		date:        "2025-04-01",
		clock:       "10:00 AM",
		address:     "Bangladesh Police Academy, Dhaka",
		image:       "https://images.unsplash.com/photo-1531492746076-161ca9bcad58?w=800&h=600&fit=crop",
		target:      at(2025, time.April, 1, 10, 0),
		category:    "competition",
		capacity:    "250",
	},
	{
		title:       "DevOps & CI/CD Workshop - Docker & Kubernetes",
		description: "Master DevOps practices with Docker and Kubernetes. Build scalable applications. 3-day intensive training.",
		date:        "2025-04-10",
		clock:       "09:00 AM",
		address:     "TechHub Bangladesh, Banani, Dhaka",
		image:       "https://images.unsplash.com/photo-1549921917-beb694fb3f4e?w=800&h=600&fit=crop",
		target:      at(2025, time.April, 10, 9, 0),
		category:    "workshop",
		capacity:    "60",
	},
	{
		title:       "Tech Meetup - Bangladesh Developer Community",
		description: "Monthly meetup for developers, designers, and tech enthusiasts. Network, share knowledge, and have fun!",
		date:        "2025-04-05",
		clock:       "04:00 PM",
		address:     "Coffee Lab, Gulshan, Dhaka",
		image:       "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=600&fit=crop",
		target:      at(2025, time.April, 5, 16, 0),
		category:    "meetup",
		capacity:    "150",
	},
	{
		title:       "Mobile App Development Hackathon - Flutter",
		description: "Build the next big mobile app using Flutter. Prize pool: ৳15 lakh. 2-day intensive hackathon.",
		date:        "2025-04-15",
		clock:       "09:00 AM",
		address:     "Mobile First Hub, Mirpur, Dhaka",
		image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop",
		target:      at(2025, time.April, 15, 9, 0),
		category:    "hackathon",
		capacity:    "300",
	},
}

// demoEvents returns a fresh copy of the catalog as domain events with stable ids.
func demoEvents() []domain.Event {
	out := make([]domain.Event, 0, len(catalog))
	for _, c := range catalog {
		image, capacity := c.image, c.capacity
		out = append(out, domain.Event{
			ID:                 SeedEventID(c.title),
			Title:              c.title,
			Description:        c.description,
			Date:               c.date,
			Time:               c.clock,
			Address:            c.address,
			BackgroundImageURL: &image,
			TargetDate:         c.target,
			Creator:            SeedCreatorID,
			Category:           c.category,
			MaxRegistrations:   &capacity,
		})
	}
	return out
}
