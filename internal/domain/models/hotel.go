package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hotel is a property listed by a business owner (collection "hotels").
type Hotel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OwnerID     primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Name        string             `bson:"name" json:"name"`
	Address     string             `bson:"address,omitempty" json:"address"`
	City        string             `bson:"city,omitempty" json:"city"`
	Description string             `bson:"description,omitempty" json:"description"`
	Amenities   []string           `bson:"amenities,omitempty" json:"amenities"`
	Images      []string           `bson:"images,omitempty" json:"images"`
	Rating      float64            `bson:"rating,omitempty" json:"rating"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	IsApproved  bool               `bson:"isApproved" json:"isApproved"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// Room belongs to exactly one hotel (collection "rooms").
// Only active rooms count towards occupancy.
type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	HotelID     primitive.ObjectID `bson:"hotelId" json:"hotelId"`
	Name        string             `bson:"name" json:"name"`
	Type        string             `bson:"type,omitempty" json:"type"`
	Capacity    int                `bson:"capacity,omitempty" json:"capacity"`
	Description string             `bson:"description,omitempty" json:"description"`
	Amenities   []string           `bson:"amenities,omitempty" json:"amenities"`
	BasePrice   int64              `bson:"basePrice" json:"basePrice"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
