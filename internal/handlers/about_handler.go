package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type teamMember struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	LinkedIn string `json:"linkedin,omitempty"`
	Email    string `json:"email,omitempty"`
}

var aboutTeam = []teamMember{
	{
		ID:       "1",
		Name:     "Sarah Johnson",
		Position: "CEO & Founder",
		Bio:      "Sarah has over 15 years of experience in HR technology and is passionate about connecting people with their dream careers.",
		Image:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=400",
		LinkedIn: "https://linkedin.com/in/sarahjohnson",
		Email:    "sarah@jobportal.com",
	},
	{
		ID:       "2",
		Name:     "Michael Chen",
		Position: "CTO",
		Bio:      "Michael leads our technical team with expertise in scalable web applications and machine learning.",
		Image:    "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=400",
		LinkedIn: "https://linkedin.com/in/michaelchen",
		Email:    "michael@jobportal.com",
	},
	{
		ID:       "3",
		Name:     "Emily Rodriguez",
		Position: "Head of Product",
		Bio:      "Emily focuses on creating intuitive user experiences that make job searching and hiring seamless.",
		Image:    "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=400",
		LinkedIn: "https://linkedin.com/in/emilyrodriguez",
		Email:    "emily@jobportal.com",
	},
	{
		ID:       "4",
		Name:     "David Kim",
		Position: "Head of Marketing",
		Bio:      "David drives our growth strategy and helps connect our platform with job seekers and employers worldwide.",
		Image:    "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=400",
		LinkedIn: "https://linkedin.com/in/davidkim",
		Email:    "david@jobportal.com",
	},
}

// AboutHandler serves the static marketing content consumed by the frontend.
type AboutHandler struct{}

func NewAboutHandler() *AboutHandler { return &AboutHandler{} }

// Index is GET /about.
func (h *AboutHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"company": gin.H{
			"name":         "JobPortal",
			"tagline":      "Connecting talent with opportunities",
			"description":  "JobPortal is a leading job search platform that connects talented professionals with their dream careers. We believe that finding the right job should be simple, efficient, and rewarding for both job seekers and employers.",
			"founded":      "2024",
			"headquarters": "San Francisco, CA",
		},
		"mission": "To revolutionize the way people find jobs and companies find talent by creating meaningful connections through innovative technology and personalized experiences.",
		"vision":  "To become the world's most trusted platform for career advancement and talent acquisition.",
		"values": []gin.H{
			{"title": "Innovation", "description": "We continuously evolve our platform with cutting-edge technology to provide the best user experience."},
			{"title": "Transparency", "description": "We believe in honest communication and transparent processes for all our users."},
			{"title": "Diversity & Inclusion", "description": "We promote equal opportunities and celebrate diversity in all its forms."},
			{"title": "Excellence", "description": "We strive for excellence in everything we do, from our platform to our customer service."},
		},
		"team": aboutTeam,
		"stats": gin.H{
			"jobsPosted":           "10,000+",
			"companiesRegistered":  "2,500+",
			"successfulPlacements": "15,000+",
			"activeUsers":          "50,000+",
		},
		"features": []gin.H{
			{"title": "Smart Job Matching", "description": "Our AI-powered algorithm matches candidates with the most relevant job opportunities based on their skills, experience, and preferences."},
			{"title": "Company Insights", "description": "Get detailed information about companies, including culture, benefits, and employee reviews to make informed decisions."},
			{"title": "Application Tracking", "description": "Track your job applications in real-time and receive updates on your application status."},
			{"title": "Career Resources", "description": "Access resume builders, interview tips, salary guides, and career advice from industry experts."},
			{"title": "Employer Tools", "description": "Comprehensive hiring tools for employers including applicant tracking, candidate screening, and analytics."},
			{"title": "Mobile Experience", "description": "Search and apply for jobs on-the-go with our fully responsive mobile platform."},
		},
		"contact": gin.H{
			"email":   "hello@jobportal.com",
			"phone":   "+1 (555) 123-4567",
			"address": "123 Innovation Drive, San Francisco, CA 94105",
			"socialMedia": gin.H{
				"linkedin": "https://linkedin.com/company/jobportal",
				"twitter":  "https://twitter.com/jobportal",
				"facebook": "https://facebook.com/jobportal",
			},
		},
	})
}

// Stats is GET /about/stats.
func (h *AboutHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"jobsPosted":           "10,000+",
		"companiesRegistered":  "2,500+",
		"successfulPlacements": "15,000+",
		"activeUsers":          "50,000+",
		"averageTimeToHire":    "14 days",
		"satisfactionRate":     "96%",
	})
}

// Team is GET /about/team.
func (h *AboutHandler) Team(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"team": aboutTeam})
}
