package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inmobilia/housing-api/internal/core/domain"
	"github.com/inmobilia/housing-api/internal/core/ports"
)

const collectionUsers = "users"

// pageSize is the fixed listing page length when a page number is supplied.
const pageSize = 25

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// notRemoved is the single active-document predicate used by every list read.
// Explicit $ne keeps documents that never had a removed field.
func notRemoved() bson.M {
	return bson.M{"removed": bson.M{"$ne": true}}
}

// contains builds a case-preserving substring match. The value is quoted so
// caller input can never act as a regex.
func contains(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value)}
}

// buildListFilter translates the listing parameters into a single query
// document. Exact age and the range filter are attached independently: when
// both are present, both clauses apply.
func buildListFilter(f ports.ListUsersFilter) bson.M {
	clauses := []bson.M{notRemoved()}

	if f.Age != nil {
		clauses = append(clauses, bson.M{"age": *f.Age})
	}
	switch {
	case f.MinAge != nil && f.MaxAge != nil:
		clauses = append(clauses, bson.M{"age": bson.M{"$gte": *f.MinAge, "$lte": *f.MaxAge}})
	case f.MinAge != nil:
		clauses = append(clauses, bson.M{"age": bson.M{"$gte": *f.MinAge}})
	case f.MaxAge != nil:
		clauses = append(clauses, bson.M{"age": bson.M{"$lte": *f.MaxAge}})
	}

	for field, value := range f.Fields {
		clauses = append(clauses, bson.M{field: contains(value)})
	}

	if f.Search != "" {
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"name": contains(f.Search)},
			{"email": contains(f.Search)},
			{"surname": contains(f.Search)},
		}})
	}

	if len(clauses) == 1 {
		return clauses[0]
	}
	return bson.M{"$and": clauses}
}

// buildListOptions translates the sort and pagination parameters. With no
// SortBy the listing defaults to name ascending; with a SortBy but an order
// value other than asc/desc, no sort directive is applied at all.
func buildListOptions(f ports.ListUsersFilter) *options.FindOptions {
	opts := options.Find()

	if f.SortBy == "" {
		opts.SetSort(bson.D{{Key: "name", Value: 1}})
	} else if f.Order == "asc" || f.Order == "desc" {
		dir := 1
		if f.Order == "desc" {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: f.SortBy, Value: dir}})
	}

	if f.Page > 0 {
		opts.SetSkip(int64(f.Page-1) * pageSize)
		opts.SetLimit(pageSize)
	}

	return opts
}

func (r *UserRepository) Insert(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *u
	created.ID = res.InsertedID.(primitive.ObjectID)
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var u domain.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, buildListFilter(filter), buildListOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := []domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Surname != nil {
		set["surname"] = *input.Surname
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.DNI != nil {
		set["dni"] = *input.DNI
	}
	if input.Age != nil {
		set["age"] = *input.Age
	}
	if input.Picture != nil {
		set["picture"] = *input.Picture
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Removed != nil {
		set["removed"] = *input.Removed
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *UserRepository) SoftDelete(ctx context.Context, id string) (*domain.User, error) {
	return r.findOneAndSet(ctx, id, bson.M{"removed": true})
}

func (r *UserRepository) findOneAndSet(ctx context.Context, id string, set bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u domain.User
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

// EnsureIndexes creates the indexes the users collection relies on: unique
// email and dni, plus the default name sort.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "dni", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
