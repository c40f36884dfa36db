package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrNoResults = errors.New("no matching resources")
var ErrInvalidFilter = errors.New("invalid filter field")

// User is a registry record, not an authenticated account. Soft deleted via
// the removed flag; the field is omitted while false so documents that never
// had it stay active.
type User struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Surname     string               `json:"surname" bson:"surname"`
	Email       string               `json:"email" bson:"email"`
	DNI         string               `json:"dni" bson:"dni"`
	Age         int                  `json:"age" bson:"age"`
	Picture     string               `json:"picture,omitempty" bson:"picture,omitempty"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	Departments []primitive.ObjectID `json:"departments,omitempty" bson:"departments,omitempty"`
	Removed     bool                 `json:"removed,omitempty" bson:"removed,omitempty"`
}
