package domain

import (
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a listing offered on the marketplace. Ownership is the
// denormalized UserEmail of whoever created it.
type Service struct {
	ID          primitive.ObjectID `json:"_id"                   bson:"_id,omitempty"`
	Title       string             `json:"title"                 bson:"title"`
	Category    string             `json:"category"              bson:"category"`
	CompanyName string             `json:"companyName,omitempty" bson:"companyName,omitempty"`
	Company     string             `json:"company,omitempty"     bson:"company,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64           `json:"price,omitempty"       bson:"price,omitempty"       validate:"omitempty,gte=0"`
	Image       string             `json:"image,omitempty"       bson:"image,omitempty"`
	Website     string             `json:"website,omitempty"     bson:"website,omitempty"`
	UserEmail   string             `json:"userEmail"             bson:"userEmail"`
	UserName    string             `json:"userName,omitempty"    bson:"userName,omitempty"`
	UserPhoto   string             `json:"userPhoto,omitempty"   bson:"userPhoto,omitempty"`
	AddedAt     *time.Time         `json:"addedAt,omitempty"     bson:"addedAt,omitempty"`

	// Extra holds body fields outside the listing schema.
	Extra bson.M `json:"-" bson:",inline"`
}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (s *Service) UnmarshalJSON(data []byte) error {
	type plain Service
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	*s = Service(p)
	s.Extra = extra
	return nil
}

// MarshalJSON writes the known fields followed by Extra.
func (s Service) MarshalJSON() ([]byte, error) {
	type plain Service
	return marshalWithExtra(plain(s), s.Extra)
}

// ServicePatch carries the fields of a field-merge update. Nil fields are
// left untouched in storage. The identifier cannot be patched.
type ServicePatch struct {
	Title       *string    `json:"title,omitempty"       bson:"title,omitempty"`
	Category    *string    `json:"category,omitempty"    bson:"category,omitempty"`
	CompanyName *string    `json:"companyName,omitempty" bson:"companyName,omitempty"`
	Company     *string    `json:"company,omitempty"     bson:"company,omitempty"`
	Description *string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64   `json:"price,omitempty"       bson:"price,omitempty"       validate:"omitempty,gte=0"`
	Image       *string    `json:"image,omitempty"       bson:"image,omitempty"`
	Website     *string    `json:"website,omitempty"     bson:"website,omitempty"`
	UserEmail   *string    `json:"userEmail,omitempty"   bson:"userEmail,omitempty"`
	UserName    *string    `json:"userName,omitempty"    bson:"userName,omitempty"`
	UserPhoto   *string    `json:"userPhoto,omitempty"   bson:"userPhoto,omitempty"`
	AddedAt     *time.Time `json:"addedAt,omitempty"     bson:"addedAt,omitempty"`

	Extra bson.M `json:"-" bson:",inline"`
}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra,
// except the identifier.
func (p *ServicePatch) UnmarshalJSON(data []byte) error {
	type plain ServicePatch
	var pp plain
	extra, err := unmarshalWithExtra(data, &pp)
	if err != nil {
		return err
	}
	delete(extra, "_id")
	*p = ServicePatch(pp)
	if len(extra) > 0 {
		p.Extra = extra
	}
	return nil
}

// IsEmpty reports whether the patch sets no field at all.
func (p ServicePatch) IsEmpty() bool {
	if len(p.Extra) > 0 {
		return false
	}
	p.Extra = nil
	return reflect.ValueOf(p).IsZero()
}

// Apply merges the non-nil fields of p into s.
func (p ServicePatch) Apply(s *Service) {
	setString(&s.Title, p.Title)
	setString(&s.Category, p.Category)
	setString(&s.CompanyName, p.CompanyName)
	setString(&s.Company, p.Company)
	setString(&s.Description, p.Description)
	if p.Price != nil {
		price := *p.Price
		s.Price = &price
	}
	setString(&s.Image, p.Image)
	setString(&s.Website, p.Website)
	setString(&s.UserEmail, p.UserEmail)
	setString(&s.UserName, p.UserName)
	setString(&s.UserPhoto, p.UserPhoto)
	if p.AddedAt != nil {
		at := *p.AddedAt
		s.AddedAt = &at
	}
	mergeExtra(&s.Extra, p.Extra)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
