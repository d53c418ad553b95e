package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"heritagepalace/internal/database"
	"heritagepalace/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "palace.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{
			Name:        "Deluxe Room",
			Slug:        "deluxe-room",
			Price:       "₹3,500",
			Image:       "https://images.unsplash.com/photo-1618773928121-c32242e63f39?auto=format&fit=crop&w=800&q=80",
			Description: "Elegant sanctuary with modern amenities and garden views.",
			Size:        "350 sq ft",
			Amenities:   []string{"Fast Wifi", "Smart TV", "Mini Bar"},
			IsActive:    true,
		},
		{
			Name:        "Super Deluxe",
			Slug:        "super-deluxe",
			Price:       "₹5,500",
			Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=800&q=80",
			Description: "Spacious luxury with a private balcony and premium bedding.",
			Size:        "450 sq ft",
			Amenities:   []string{"Fast Wifi", "Smart TV", "Mini Bar"},
			IsActive:    true,
		},
		{
			Name:        "Royal Suite",
			Slug:        "royal-suite",
			Price:       "₹8,500",
			Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?auto=format&fit=crop&w=800&q=80",
			Description: "The epitome of heritage luxury with panoramic temple views.",
			Size:        "650 sq ft",
			Amenities:   []string{"Fast Wifi", "Smart TV", "Mini Bar"},
			IsActive:    true,
		},
	}
	for i := range rooms {
		db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "image", "description", "size", "amenities", "is_active"}),
		}).Create(&rooms[i])
	}

	// ================== TESTIMONIALS ==================
	log.Println("Creating testimonials...")
	var count int64
	db.Model(&domain.Testimonial{}).Count(&count)
	if count == 0 {
		testimonials := []domain.Testimonial{
			{
				Name:     "Rajesh Kumar",
				Location: "Delhi",
				Rating:   5,
				Text:     "Stayed here during Phalguna Mela. The hospitality was exceptional and the proximity to the temple made our visit so convenient. Rooms were spotlessly clean and staff was very helpful.",
			},
			{
				Name:     "Priya Sharma",
				Location: "Jaipur",
				Rating:   5,
				Text:     "Beautiful hotel with traditional Rajasthani architecture. The food at their restaurant was absolutely delicious, especially the Dal Baati Churma. Highly recommend!",
			},
			{
				Name:     "Amit Patel",
				Location: "Mumbai",
				Rating:   5,
				Text:     "A perfect blend of luxury and spirituality. The rooms are spacious and well-maintained. The staff went above and beyond to ensure our comfort. Will definitely visit again.",
			},
		}
		for i := range testimonials {
			db.Create(&testimonials[i])
		}
	}

	// ================== DEMO USER ==================
	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := domain.User{
		Email:        "demo@shyamheritage.in",
		PasswordHash: string(hash),
		Name:         "Demo Guest",
	}
	db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "name"}),
	}).Create(&demo)

	log.Println("Seed completed")
	log.Println("Demo account: demo@shyamheritage.in / demo1234")
}
