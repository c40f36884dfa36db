package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrDepartmentNotFound = errors.New("department not found")

// Department is a housing unit. Unit is the label of the flat inside the
// building ("3B"); District locates it within the city.
type Department struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type      string             `json:"type" bson:"type"`
	Location  string             `json:"location" bson:"location"`
	District  string             `json:"district" bson:"district"`
	Floor     string             `json:"floor,omitempty" bson:"floor,omitempty"`
	Unit      string             `json:"department,omitempty" bson:"department,omitempty"`
	FlatRooms int                `json:"flat_rooms,omitempty" bson:"flat_rooms,omitempty"`
	Removed   bool               `json:"removed,omitempty" bson:"removed,omitempty"`
}
