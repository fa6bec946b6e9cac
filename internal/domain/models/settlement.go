package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settlement is one monthly payout statement for a business owner
// (collection "settlements"). It is computed elsewhere and only read here.
type Settlement struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BusinessUser primitive.ObjectID `bson:"businessUser" json:"businessUser"`
	Month        string             `bson:"month" json:"month"`
	TotalRevenue int64              `bson:"totalRevenue" json:"totalRevenue"`
	PlatformFee  int64              `bson:"platformFee" json:"platformFee"`
	Tax          int64              `bson:"tax" json:"tax"`
	FinalAmount  int64              `bson:"finalAmount" json:"finalAmount"`
	Status       string             `bson:"status" json:"status"`
	PaymentDate  *time.Time         `bson:"paymentDate,omitempty" json:"paymentDate"`
}
