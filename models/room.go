package models

// Room is a bookable meeting room.
type Room struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Capacity    int      `bson:"capacity" json:"capacity"`
	Images      []string `bson:"images" json:"images"`
}
