package domain

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a marketplace member profile keyed by email. Authentication
// itself happens on the frontend; this record only mirrors the profile.
type User struct {
	ID       primitive.ObjectID `json:"_id"                bson:"_id,omitempty"`
	Email    string             `json:"email"              bson:"email"              validate:"required"`
	Name     string             `json:"name,omitempty"     bson:"name,omitempty"`
	PhotoURL string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`

	Extra bson.M `json:"-" bson:",inline"`
}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	*u = User(p)
	u.Extra = extra
	return nil
}

// MarshalJSON writes the known fields followed by Extra.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return marshalWithExtra(plain(u), u.Extra)
}
