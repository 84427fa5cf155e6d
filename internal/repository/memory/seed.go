package memory

import (
	"context"

	"github.com/jwalitptl/clinic-directory/internal/model"
)

const (
	// SeedClinicRating is the rating given to demonstration clinics (4.8 stars)
	SeedClinicRating = 48

	seedMinReviews      = 20
	seedReviewSpread    = 100
	seedMaxParticipants = 5
)

func strPtr(s string) *string { return &s }

// SeedClinics is the demonstration clinic dataset
var SeedClinics = []model.ClinicInput{
	{
		Name:         "Mindful Wellness Center",
		Description:  "Specializing in anxiety, depression, and stress management with evidence-based therapeutic approaches.",
		Location:     "Mumbai",
		Address:      "123 Bandra West, Mumbai, Maharashtra 400050",
		Phone:        "+91 98765 43210",
		Email:        "info@mindfulwellness.com",
		Website:      strPtr("https://mindfulwellness.com"),
		Specialties:  []string{"Anxiety Management", "Depression", "Stress Management", "CBT"},
		Services:     []string{"Individual Therapy", "Group Sessions", "Online Counseling"},
		Availability: "Mon-Sat: 9AM-7PM",
		PriceRange:   "₹1,500 - ₹3,000",
		Image:        "https://images.unsplash.com/photo-1631815589968-fdb09a223b1e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
	},
	{
		Name:         "Serene Mind Clinic",
		Description:  "Comprehensive mental health services including individual therapy, family counseling, and psychiatric care.",
		Location:     "Bangalore",
		Address:      "456 Koramangala, Bangalore, Karnataka 560034",
		Phone:        "+91 98765 43211",
		Email:        "contact@serenemind.com",
		Website:      strPtr("https://serenemind.com"),
		Specialties:  []string{"Family Counseling", "Trauma Therapy", "Child Psychology"},
		Services:     []string{"Individual Therapy", "Family Therapy", "Psychiatric Care"},
		Availability: "Mon-Sun: 8AM-8PM",
		PriceRange:   "₹1,200 - ₹2,800",
		Image:        "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
	},
	{
		Name:         "Harmony Psychology Hub",
		Description:  "Specialized in trauma therapy, addiction recovery, and relationship counseling with experienced psychologists.",
		Location:     "Delhi",
		Address:      "789 Connaught Place, New Delhi 110001",
		Phone:        "+91 98765 43212",
		Email:        "help@harmonypsych.com",
		Website:      strPtr("https://harmonypsych.com"),
		Specialties:  []string{"Trauma Therapy", "Addiction Recovery", "Relationship Counseling"},
		Services:     []string{"Individual Therapy", "Couples Therapy", "Support Groups"},
		Availability: "Tue-Sun: 10AM-6PM",
		PriceRange:   "₹1,800 - ₹3,500",
		Image:        "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
	},
}

// SeedWorkshops is the demonstration workshop dataset
var SeedWorkshops = []model.WorkshopInput{
	{
		Title:           "Managing Anxiety in Daily Life",
		Description:     "Learn practical techniques to manage anxiety and stress in your everyday routines.",
		Category:        "Anxiety Management",
		Instructor:      "Dr. Sarah Johnson",
		Date:            "2024-09-15",
		Time:            "10:00 AM - 12:00 PM",
		Duration:        "2 hours",
		Price:           799,
		MaxParticipants: 20,
		Location:        "Mumbai",
		Image:           "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
		Tags:            []string{"Anxiety", "Stress Management", "Coping Skills"},
	},
	{
		Title:           "Introduction to Meditation",
		Description:     "Discover the fundamentals of mindfulness meditation for inner peace and clarity.",
		Category:        "Mindfulness",
		Instructor:      "Priya Sharma",
		Date:            "2024-09-18",
		Time:            "6:00 PM - 7:30 PM",
		Duration:        "1.5 hours",
		Price:           599,
		MaxParticipants: 25,
		Location:        "Bangalore",
		Image:           "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
		Tags:            []string{"Meditation", "Mindfulness", "Relaxation"},
	},
	{
		Title:           "Healthy Communication in Relationships",
		Description:     "Build stronger relationships through effective communication strategies.",
		Category:        "Relationships",
		Instructor:      "Dr. Rajesh Kumar",
		Date:            "2024-09-20",
		Time:            "2:00 PM - 5:00 PM",
		Duration:        "3 hours",
		Price:           1199,
		MaxParticipants: 15,
		Location:        "Delhi",
		Image:           "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
		Tags:            []string{"Relationships", "Communication", "Couples"},
	},
	{
		Title:           "Stress Management Tools",
		Description:     "Comprehensive toolkit for managing stress and preventing burnout.",
		Category:        "Stress Relief",
		Instructor:      "Dr. Anita Desai",
		Date:            "2024-09-22",
		Time:            "11:00 AM - 1:30 PM",
		Duration:        "2.5 hours",
		Price:           899,
		MaxParticipants: 18,
		Location:        "Mumbai",
		Image:           "https://images.unsplash.com/photo-1552196563-55cd4e45efb3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
		Tags:            []string{"Stress Management", "Burnout Prevention", "Wellness"},
	},
}

// Seed loads the demonstration dataset. Seed entities get randomized review
// counts and participant counts from the store's random source; entities
// created through the public operations never do.
func Seed(_ context.Context, s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, in := range SeedClinics {
		s.insertClinic(in, SeedClinicRating, seedMinReviews+s.rnd.Intn(seedReviewSpread))
	}
	for _, in := range SeedWorkshops {
		s.insertWorkshop(in, s.rnd.Intn(seedMaxParticipants))
	}
}
