package server

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a member of a project. A copy is embedded in the project
// document at registration; the optional profile fields are only ever
// written to the standalone users collection.
type User struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`

	FacebookAuthenticateToken string     `bson:"facebook_authenticate_token,omitempty" json:"facebook_authenticate_token,omitempty"`
	FacebookAPITime           *time.Time `bson:"facebook_api_time,omitempty" json:"facebook_api_time,omitempty"`
	FacebookAccountID         string     `bson:"facebook_accountID,omitempty" json:"facebook_accountID,omitempty"`
	EWSInstanceURL            string     `bson:"ews_instance_url,omitempty" json:"ews_instance_url,omitempty"`
	SelectedCities            []string   `bson:"selectedCities,omitempty" json:"selectedCities,omitempty"`
}

// Project is the registration unit. The password is shared by all of the
// project's users; isAdmin is kept as a string flag for compatibility
// with the existing stored documents and frontend.
type Project struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectName      string             `bson:"project_name" json:"project_name"`
	CompanyName      string             `bson:"company_name" json:"company_name"`
	Password         []byte             `bson:"password" json:"-"`
	IsAdmin          string             `bson:"isAdmin" json:"isAdmin"`
	RegistrationTime time.Time          `bson:"registration_time" json:"registration_time"`
	Users            []User             `bson:"users" json:"users"`
}
