package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/easyleave/leave-api/internal/core/domain"
)

const (
	collectionEmployees = "employees"
	collectionManagers  = "managers"
)

// IdentityRepository implements ports.IdentityRepository over the employees
// and managers collections.
type IdentityRepository struct {
	db *mongo.Database
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{db: db}
}

type mongoIdentity struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID    string             `bson:"employee_id"`
	Name          string             `bson:"name"`
	Role          string             `bson:"role"`
	Email         string             `bson:"email"`
	Password      string             `bson:"password"`
	PhotoURL      string             `bson:"photo_url,omitempty"`
	DateOfJoining time.Time          `bson:"date_of_joining"`
	DateOfBirth   time.Time          `bson:"date_of_birth"`
}

func (r *IdentityRepository) collection(accountType domain.AccountType) *mongo.Collection {
	if accountType == domain.AccountManager {
		return r.db.Collection(collectionManagers)
	}
	return r.db.Collection(collectionEmployees)
}

// FindByCredentials performs the login point lookup: both equality predicates
// are part of the query, so zero matches never reveals which one failed.
func (r *IdentityRepository) FindByCredentials(ctx context.Context, accountType domain.AccountType, email, password string) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoIdentity
	err := r.collection(accountType).FindOne(ctx, bson.M{"email": email, "password": password}).Decode(&mi)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return mi.toDomain(), nil
}

// Insert stores a new identity and returns the stored row with its assigned
// ID. Unique index violations on email or employee_id surface as
// domain.ErrIdentityExists.
func (r *IdentityRepository) Insert(ctx context.Context, accountType domain.AccountType, identity *domain.Identity) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoIdentity{
		EmployeeID:    identity.EmployeeID,
		Name:          identity.Name,
		Role:          identity.Role,
		Email:         identity.Email,
		Password:      identity.Password,
		PhotoURL:      identity.PhotoURL,
		DateOfJoining: identity.DateOfJoining.UTC(),
		DateOfBirth:   identity.DateOfBirth.UTC(),
	}

	res, err := r.collection(accountType).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrIdentityExists
		}
		return nil, fmt.Errorf("insert identity: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindByIDs returns the identities whose store-assigned IDs are in ids.
// Malformed ids are skipped rather than failing the whole batch.
func (r *IdentityRepository) FindByIDs(ctx context.Context, accountType domain.AccountType, ids []string) ([]*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, oid)
	}
	if len(objectIDs) == 0 {
		return nil, nil
	}

	cur, err := r.collection(accountType).Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, fmt.Errorf("find identities: %w", err)
	}
	defer cur.Close(ctx)

	var identities []*domain.Identity
	for cur.Next(ctx) {
		var mi mongoIdentity
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode identity: %w", err)
		}
		identities = append(identities, mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate identities: %w", err)
	}
	return identities, nil
}

// EnsureIndexes creates the unique indexes backing the per-table uniqueness
// of employee_id and email.
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "employee_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	for _, accountType := range []domain.AccountType{domain.AccountEmployee, domain.AccountManager} {
		if _, err := r.collection(accountType).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", accountType, err)
		}
	}
	return nil
}

func (mi mongoIdentity) toDomain() *domain.Identity {
	return &domain.Identity{
		ID:            mi.ID.Hex(),
		EmployeeID:    mi.EmployeeID,
		Name:          mi.Name,
		Role:          mi.Role,
		Email:         mi.Email,
		Password:      mi.Password,
		PhotoURL:      mi.PhotoURL,
		DateOfJoining: mi.DateOfJoining,
		DateOfBirth:   mi.DateOfBirth,
	}
}
