package storage

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/hotelboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoSource implements ReportSource over the business MongoDB database.
type MongoSource struct {
	db *mongo.Database
}

// NewMongoSource returns a ReportSource reading from db.
func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{db: db}
}

func (s *MongoSource) coll(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func inHotels(ids []primitive.ObjectID) bson.E {
	return bson.E{Key: "hotelId", Value: bson.D{{Key: "$in", Value: ids}}}
}

// FindHotelIDsByOwner projects only the ids of the owner's hotels.
func (s *MongoSource) FindHotelIDsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.coll(HotelsCollection).Find(ctx, bson.D{{Key: "ownerId", Value: ownerID}}, opts)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// AggregateBookings sums totalPrice and counts bookings per bucket of
// createdAt, ascending by bucket key.
func (s *MongoSource) AggregateBookings(ctx context.Context, q BookingQuery) ([]models.BookingBucket, error) {
	if len(q.HotelIDs) == 0 {
		return nil, nil
	}
	cur, err := s.coll(BookingsCollection).Aggregate(ctx, bookingPipeline(q))
	if err != nil {
		return nil, err
	}
	var out []models.BookingBucket
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func bookingPipeline(q BookingQuery) mongo.Pipeline {
	match := bson.D{inHotels(q.HotelIDs)}
	if q.ExcludeStatus != "" {
		match = append(match, bson.E{Key: "status", Value: bson.D{{Key: "$ne", Value: q.ExcludeStatus}}})
	}
	if q.CreatedFrom != nil || q.CreatedTo != nil {
		created := bson.D{}
		if q.CreatedFrom != nil {
			created = append(created, bson.E{Key: "$gte", Value: *q.CreatedFrom})
		}
		if q.CreatedTo != nil {
			created = append(created, bson.E{Key: "$lt", Value: *q.CreatedTo})
		}
		match = append(match, bson.E{Key: "createdAt", Value: created})
	}

	var groupID any
	if format, ok := bucketFormats[q.GroupBy]; ok {
		groupID = bson.D{{Key: "$dateToString", Value: bson.D{
			{Key: "format", Value: format},
			{Key: "date", Value: "$createdAt"},
			{Key: "timezone", Value: zoneName(q.Location)},
		}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: groupID},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	if groupID == nil {
		return append(pipeline, bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}, {Key: "revenue", Value: 1}, {Key: "count", Value: 1}}}})
	}
	return append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}})
}

// AggregateReviews returns the raw average rating and review count.
func (s *MongoSource) AggregateReviews(ctx context.Context, hotelIDs []primitive.ObjectID) (models.ReviewAggregate, error) {
	var agg models.ReviewAggregate
	if len(hotelIDs) == 0 {
		return agg, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{inHotels(hotelIDs)}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}, {Key: "avgRating", Value: 1}, {Key: "count", Value: 1}}}},
	}
	cur, err := s.coll(ReviewsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return agg, err
	}
	var rows []models.ReviewAggregate
	if err := cur.All(ctx, &rows); err != nil {
		return agg, err
	}
	if len(rows) > 0 {
		agg = rows[0]
	}
	return agg, nil
}

// CountActiveRooms counts rooms with isActive=true.
func (s *MongoSource) CountActiveRooms(ctx context.Context, hotelIDs []primitive.ObjectID) (int64, error) {
	if len(hotelIDs) == 0 {
		return 0, nil
	}
	return s.coll(RoomsCollection).CountDocuments(ctx, bson.D{inHotels(hotelIDs), {Key: "isActive", Value: true}})
}

// CountDistinctRoomsCheckedInSince counts distinct rooms of non-cancelled
// bookings with checkIn >= since.
func (s *MongoSource) CountDistinctRoomsCheckedInSince(ctx context.Context, hotelIDs []primitive.ObjectID, since time.Time) (int64, error) {
	if len(hotelIDs) == 0 {
		return 0, nil
	}
	filter := bson.D{
		inHotels(hotelIDs),
		{Key: "status", Value: bson.D{{Key: "$ne", Value: models.BookingCancelled}}},
		{Key: "checkIn", Value: bson.D{{Key: "$gte", Value: since}}},
	}
	rooms, err := s.coll(BookingsCollection).Distinct(ctx, "roomId", filter)
	if err != nil {
		return 0, err
	}
	return int64(len(rooms)), nil
}

// CountBookingsSpanning counts bookings in one of statuses with
// checkIn <= day < checkOut.
func (s *MongoSource) CountBookingsSpanning(ctx context.Context, hotelIDs []primitive.ObjectID, day time.Time, statuses []string) (int64, error) {
	if len(hotelIDs) == 0 || len(statuses) == 0 {
		return 0, nil
	}
	filter := bson.D{
		inHotels(hotelIDs),
		{Key: "status", Value: bson.D{{Key: "$in", Value: statuses}}},
		{Key: "checkIn", Value: bson.D{{Key: "$lte", Value: day}}},
		{Key: "checkOut", Value: bson.D{{Key: "$gt", Value: day}}},
	}
	return s.coll(BookingsCollection).CountDocuments(ctx, filter)
}

func firstName(field string) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{
		bson.D{{Key: "$arrayElemAt", Value: bson.A{field, 0}}},
		"",
	}}}
}

func lookup(from, local, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: local},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}}
}

// FindRecentBookings returns the newest non-cancelled bookings joined with
// hotel and room names.
func (s *MongoSource) FindRecentBookings(ctx context.Context, hotelIDs []primitive.ObjectID, limit int) ([]models.RecentBooking, error) {
	if len(hotelIDs) == 0 || limit <= 0 {
		return nil, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{inHotels(hotelIDs), {Key: "status", Value: bson.D{{Key: "$ne", Value: models.BookingCancelled}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		lookup(HotelsCollection, "hotelId", "hotel"),
		lookup(RoomsCollection, "roomId", "room"),
		{{Key: "$project", Value: bson.D{
			{Key: "guestName", Value: 1},
			{Key: "checkIn", Value: 1},
			{Key: "checkOut", Value: 1},
			{Key: "totalPrice", Value: 1},
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "hotelName", Value: firstName("$hotel.name")},
			{Key: "roomName", Value: firstName("$room.name")},
		}}},
	}
	cur, err := s.coll(BookingsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []models.RecentBooking
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func reviewPipeline(match bson.D, limit int) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	return append(pipeline,
		lookup(HotelsCollection, "hotelId", "hotel"),
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "hotelName", Value: firstName("$hotel.name")},
			{Key: "hotelOwnerId", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$hotel.ownerId", 0}}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "hotel", Value: 0}}}},
	)
}

// FindRecentReviews returns the newest reviews joined with hotel names.
func (s *MongoSource) FindRecentReviews(ctx context.Context, hotelIDs []primitive.ObjectID, limit int) ([]models.RecentReview, error) {
	if len(hotelIDs) == 0 || limit <= 0 {
		return nil, nil
	}
	cur, err := s.coll(ReviewsCollection).Aggregate(ctx, reviewPipeline(bson.D{inHotels(hotelIDs)}, limit))
	if err != nil {
		return nil, err
	}
	var out []models.RecentReview
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindHotelsByOwner lists the owner's hotels, newest first.
func (s *MongoSource) FindHotelsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Hotel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll(HotelsCollection).Find(ctx, bson.D{{Key: "ownerId", Value: ownerID}}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Hotel
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindHotelByID loads one hotel.
func (s *MongoSource) FindHotelByID(ctx context.Context, id primitive.ObjectID) (*models.Hotel, error) {
	var h models.Hotel
	err := s.coll(HotelsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// FindRoomsByHotel lists every room of a hotel, active or not, newest first.
func (s *MongoSource) FindRoomsByHotel(ctx context.Context, hotelID primitive.ObjectID) ([]models.Room, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := s.coll(RoomsCollection).Find(ctx, bson.D{{Key: "hotelId", Value: hotelID}}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Room
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindRoomByID loads one room.
func (s *MongoSource) FindRoomByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	var r models.Room
	err := s.coll(RoomsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FindReviews lists all reviews of the hotels, newest first.
func (s *MongoSource) FindReviews(ctx context.Context, hotelIDs []primitive.ObjectID) ([]models.ReviewWithHotel, error) {
	if len(hotelIDs) == 0 {
		return nil, nil
	}
	cur, err := s.coll(ReviewsCollection).Aggregate(ctx, reviewPipeline(bson.D{inHotels(hotelIDs)}, 0))
	if err != nil {
		return nil, err
	}
	var out []models.ReviewWithHotel
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindReviewByID loads one review with its hotel name and owner.
func (s *MongoSource) FindReviewByID(ctx context.Context, id primitive.ObjectID) (*models.ReviewWithHotel, error) {
	cur, err := s.coll(ReviewsCollection).Aggregate(ctx, reviewPipeline(bson.D{{Key: "_id", Value: id}}, 1))
	if err != nil {
		return nil, err
	}
	var out []models.ReviewWithHotel
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

// FindSettlements lists the owner's settlements, latest month first.
func (s *MongoSource) FindSettlements(ctx context.Context, q SettlementQuery) ([]models.Settlement, error) {
	filter := bson.D{{Key: "businessUser", Value: q.BusinessUser}}
	if q.Month != "" {
		filter = append(filter, bson.E{Key: "month", Value: q.Month})
	}
	if q.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: q.Status})
	}
	opts := options.Find().SetSort(bson.D{{Key: "month", Value: -1}})
	cur, err := s.coll(SettlementsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Settlement
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping checks the primary is reachable.
func (s *MongoSource) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}
