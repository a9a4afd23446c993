package domain

import (
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's rating of a service. ServiceID is the hex form of the
// service's identifier and is not checked against existing services.
type Review struct {
	ID           primitive.ObjectID `json:"_id"                    bson:"_id,omitempty"`
	ServiceID    string             `json:"serviceId"              bson:"serviceId"`
	ServiceTitle string             `json:"serviceTitle,omitempty" bson:"serviceTitle,omitempty"`
	UserEmail    string             `json:"userEmail"              bson:"userEmail"`
	UserName     string             `json:"userName,omitempty"     bson:"userName,omitempty"`
	UserPhoto    string             `json:"userPhoto,omitempty"    bson:"userPhoto,omitempty"`
	Rating       *float64           `json:"rating,omitempty"       bson:"rating,omitempty"       validate:"omitempty,gte=0,lte=5"`
	Comment      string             `json:"comment,omitempty"      bson:"comment,omitempty"`
	ReviewedAt   *time.Time         `json:"reviewedAt,omitempty"   bson:"reviewedAt,omitempty"`

	Extra bson.M `json:"-" bson:",inline"`
}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (r *Review) UnmarshalJSON(data []byte) error {
	type plain Review
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	*r = Review(p)
	r.Extra = extra
	return nil
}

// MarshalJSON writes the known fields followed by Extra.
func (r Review) MarshalJSON() ([]byte, error) {
	type plain Review
	return marshalWithExtra(plain(r), r.Extra)
}

// ReviewPatch carries the fields of a field-merge update on a review.
type ReviewPatch struct {
	ServiceID    *string    `json:"serviceId,omitempty"    bson:"serviceId,omitempty"`
	ServiceTitle *string    `json:"serviceTitle,omitempty" bson:"serviceTitle,omitempty"`
	UserEmail    *string    `json:"userEmail,omitempty"    bson:"userEmail,omitempty"`
	UserName     *string    `json:"userName,omitempty"     bson:"userName,omitempty"`
	UserPhoto    *string    `json:"userPhoto,omitempty"    bson:"userPhoto,omitempty"`
	Rating       *float64   `json:"rating,omitempty"       bson:"rating,omitempty"       validate:"omitempty,gte=0,lte=5"`
	Comment      *string    `json:"comment,omitempty"      bson:"comment,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"   bson:"reviewedAt,omitempty"`

	Extra bson.M `json:"-" bson:",inline"`
}

func (p *ReviewPatch) UnmarshalJSON(data []byte) error {
	type plain ReviewPatch
	var pp plain
	extra, err := unmarshalWithExtra(data, &pp)
	if err != nil {
		return err
	}
	delete(extra, "_id")
	*p = ReviewPatch(pp)
	if len(extra) > 0 {
		p.Extra = extra
	}
	return nil
}

// IsEmpty reports whether the patch sets no field at all.
func (p ReviewPatch) IsEmpty() bool {
	if len(p.Extra) > 0 {
		return false
	}
	p.Extra = nil
	return reflect.ValueOf(p).IsZero()
}

// Apply merges the non-nil fields of p into r.
func (p ReviewPatch) Apply(r *Review) {
	setString(&r.ServiceID, p.ServiceID)
	setString(&r.ServiceTitle, p.ServiceTitle)
	setString(&r.UserEmail, p.UserEmail)
	setString(&r.UserName, p.UserName)
	setString(&r.UserPhoto, p.UserPhoto)
	if p.Rating != nil {
		rating := *p.Rating
		r.Rating = &rating
	}
	setString(&r.Comment, p.Comment)
	if p.ReviewedAt != nil {
		at := *p.ReviewedAt
		r.ReviewedAt = &at
	}
	mergeExtra(&r.Extra, p.Extra)
}
