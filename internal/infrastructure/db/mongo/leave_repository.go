package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/easyleave/leave-api/internal/core/domain"
)

const collectionLeaveRequests = "leave_requests"

// LeaveRepository implements ports.LeaveRepository over the leave_requests
// collection.
type LeaveRepository struct {
	col *mongo.Collection
}

func NewLeaveRepository(db *mongo.Database) *LeaveRepository {
	return &LeaveRepository{col: db.Collection(collectionLeaveRequests)}
}

type mongoLeaveRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	StartDate  time.Time          `bson:"start_date"`
	EndDate    time.Time          `bson:"end_date"`
	Category   string             `bson:"category"`
	Reason     string             `bson:"reason"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// Insert stores a new leave request and returns the stored row.
func (r *LeaveRepository) Insert(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLeaveRequest{
		EmployeeID: request.EmployeeID,
		StartDate:  request.StartDate.UTC(),
		EndDate:    request.EndDate.UTC(),
		Category:   string(request.Category),
		Reason:     request.Reason,
		Status:     string(request.Status),
		CreatedAt:  request.CreatedAt.UTC(),
		UpdatedAt:  request.UpdatedAt.UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert leave request: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// ListByEmployee returns the employee's requests with the given status,
// newest submission first.
func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID string, status domain.LeaveStatus) ([]*domain.LeaveRequest, error) {
	filter := bson.M{"employee_id": employeeID, "status": string(status)}
	return r.list(ctx, filter, bson.D{{Key: "created_at", Value: -1}})
}

// ListByStatus returns all requests with the given status, newest submission
// first.
func (r *LeaveRepository) ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]*domain.LeaveRequest, error) {
	filter := bson.M{"status": string(status)}
	return r.list(ctx, filter, bson.D{{Key: "created_at", Value: -1}})
}

// ListDecided returns all requests whose status is not pending, most recently
// decided first.
func (r *LeaveRepository) ListDecided(ctx context.Context) ([]*domain.LeaveRequest, error) {
	filter := bson.M{"status": bson.M{"$ne": string(domain.StatusPending)}}
	return r.list(ctx, filter, bson.D{{Key: "updated_at", Value: -1}})
}

// UpdateStatus sets status and updated_at on the request identified by id.
// The write is unconditional on the current status: concurrent deciders
// resolve by last write wins.
func (r *LeaveRepository) UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus, decidedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": decidedAt.UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update leave request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the dashboard list queries.
func (r *LeaveRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "updated_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *LeaveRepository) list(ctx context.Context, filter bson.M, sort bson.D) ([]*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer cur.Close(ctx)

	var requests []*domain.LeaveRequest
	for cur.Next(ctx) {
		var mr mongoLeaveRequest
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode leave request: %w", err)
		}
		requests = append(requests, mr.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate leave requests: %w", err)
	}
	return requests, nil
}

func (mr mongoLeaveRequest) toDomain() *domain.LeaveRequest {
	return &domain.LeaveRequest{
		ID:         mr.ID.Hex(),
		EmployeeID: mr.EmployeeID,
		StartDate:  mr.StartDate,
		EndDate:    mr.EndDate,
		Category:   domain.LeaveCategory(mr.Category),
		Reason:     mr.Reason,
		Status:     domain.LeaveStatus(mr.Status),
		CreatedAt:  mr.CreatedAt,
		UpdatedAt:  mr.UpdatedAt,
	}
}
