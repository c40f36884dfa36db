package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inmobilia/housing-api/internal/core/domain"
	"github.com/inmobilia/housing-api/internal/core/ports"
)

const collectionDepartments = "departments"

type DepartmentRepository struct {
	col *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{col: db.Collection(collectionDepartments)}
}

func (r *DepartmentRepository) Insert(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}

	created := *d
	created.ID = res.InsertedID.(primitive.ObjectID)
	return &created, nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	var d domain.Department
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepository) ListActive(ctx context.Context) ([]domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, notRemoved())
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	departments := []domain.Department{}
	if err := cur.All(ctx, &departments); err != nil {
		return nil, fmt.Errorf("decode departments: %w", err)
	}
	return departments, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, id string, input ports.UpdateDepartmentInput) (*domain.Department, error) {
	set := bson.M{}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.Location != nil {
		set["location"] = *input.Location
	}
	if input.District != nil {
		set["district"] = *input.District
	}
	if input.Floor != nil {
		set["floor"] = *input.Floor
	}
	if input.Unit != nil {
		set["department"] = *input.Unit
	}
	if input.FlatRooms != nil {
		set["flat_rooms"] = *input.FlatRooms
	}
	if input.Removed != nil {
		set["removed"] = *input.Removed
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *DepartmentRepository) SoftDelete(ctx context.Context, id string) (*domain.Department, error) {
	return r.findOneAndSet(ctx, id, bson.M{"removed": true})
}

func (r *DepartmentRepository) findOneAndSet(ctx context.Context, id string, set bson.M) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d domain.Department
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("update department: %w", err)
	}
	return &d, nil
}
