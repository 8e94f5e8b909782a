package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookie/config"
	"bookie/database"
	bookingRepo "bookie/database/repository/booking"
	roomRepo "bookie/database/repository/room"
	"bookie/models"
)

const roomDescription = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

// Meeting rooms created on a fresh database.
var rooms = []struct {
	ID       string
	Capacity int
	Image    string
	Images   int
}{
	{"8af9ab04f6ea4d64b25358781c92e07b", 1, "/MeetingRoom1.jpeg", 5},
	{"7e1ad2e0a6d04be797176dd1bcdfc729", 5, "/MeetingRoom2.jpg", 5},
	{"9b5b442460cd46a9a51a62b0d2ed52d8", 5, "/MeetingRoom3.jpg", 5},
	{"e780777314124951bf42a97e7da89101", 10, "/MeetingRoom4.jpg", 5},
	{"4905ea67430c4167a287536157f87c00", 10, "/MeetingRoom5.jpeg", 5},
	{"7aa668c3af294b82b84a4c0160db7c6a", 20, "/MeetingRoom6.jpeg", 6},
	{"7fc5eadc5e954bfd97058866c91d32f9", 20, "/MeetingRoom7.jpg", 6},
	{"ace5281c531a44b38fa685359c502acc", 20, "/MeetingRoom8.jpg", 6},
}

func main() {
	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer database.Disconnect(ctx)

	roomStore := roomRepo.NewMongoRoomRepo()
	if err := roomStore.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create room indexes: %v", err)
	}
	if err := bookingRepo.NewMongoBookingRepo().EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create booking indexes: %v", err)
	}

	for i, r := range rooms {
		images := make([]string, r.Images)
		for j := range images {
			images[j] = r.Image
		}
		room := &models.Room{
			ID:          r.ID,
			Name:        fmt.Sprintf("Meeting Room %d", i+1),
			Description: roomDescription,
			Capacity:    r.Capacity,
			Images:      images,
		}
		if err := roomStore.Upsert(ctx, room); err != nil {
			log.Fatalf("Failed to seed room %s: %v", room.ID, err)
		}
	}
	log.Printf("Seeded %d rooms into %s", len(rooms), config.AppConfig.DatabaseName)
}
