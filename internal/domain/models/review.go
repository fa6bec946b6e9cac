package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewReply is the owner's answer to a review.
type ReviewReply struct {
	Content   string             `bson:"content" json:"content"`
	AuthorID  primitive.ObjectID `bson:"authorId" json:"authorId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Review is a guest rating of a hotel (collection "reviews").
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	HotelID    primitive.ObjectID `bson:"hotelId" json:"hotelId"`
	AuthorName string             `bson:"authorName" json:"authorName"`
	Rating     int                `bson:"rating" json:"rating"`
	Comment    string             `bson:"comment" json:"comment"`
	Reply      *ReviewReply       `bson:"reply,omitempty" json:"reply"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// ReviewWithHotel is a review joined with the parent hotel's name and owner,
// as needed by the review listing and the ownership check.
type ReviewWithHotel struct {
	Review       `bson:",inline"`
	HotelName    string             `bson:"hotelName"`
	HotelOwnerID primitive.ObjectID `bson:"hotelOwnerId"`
}
