package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// updateProfileRequest carries the optional profile fields as untyped
// JSON values: a field only qualifies for the update when it is present,
// of the right type and non-blank. Anything else is silently skipped.
type updateProfileRequest struct {
	UserMail                  string `json:"user_mail"`
	FacebookAuthenticateToken any    `json:"facebook_authenticate_token"`
	EWSInstanceURL            any    `json:"ews_instance_url"`
	FacebookAccountID         any    `json:"facebook_accountID"`
	SelectedCities            any    `json:"selectedCities"`
}

// qualifiedString returns the value if it is a non-blank string.
func qualifiedString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// qualifiedList returns the value if it is a non-empty JSON array.
func qualifiedList(v any) ([]any, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	return list, true
}

// buildProfileUpdate assembles the sparse $set document. Setting the
// Facebook token also stamps facebook_api_time with the given time.
// The boolean reports whether any field qualified.
func buildProfileUpdate(req updateProfileRequest, now time.Time) (bson.M, bool) {
	update := bson.M{}

	if token, ok := qualifiedString(req.FacebookAuthenticateToken); ok {
		update["facebook_authenticate_token"] = token
		update["facebook_api_time"] = now
	}
	if accountID, ok := qualifiedString(req.FacebookAccountID); ok {
		update["facebook_accountID"] = accountID
	}
	if instanceURL, ok := qualifiedString(req.EWSInstanceURL); ok {
		update["ews_instance_url"] = instanceURL
	}
	if cities, ok := qualifiedList(req.SelectedCities); ok {
		update["selectedCities"] = cities
	}

	return update, len(update) > 0
}

// handleUpdateProfile patches a user document in the standalone users
// collection by email. The embedded copy inside the project document is
// deliberately left alone.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := s.store.Users().FindOne(ctx, bson.M{"email": req.UserMail}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, "User not found.")
			return
		}
		writeMessage(w, err.Error())
		return
	}

	update, ok := buildProfileUpdate(req, time.Now())
	if !ok {
		writeMessage(w, "No valid data provided to update")
		return
	}

	if _, err := s.store.Users().UpdateOne(ctx, bson.M{"email": req.UserMail}, bson.M{"$set": update}); err != nil {
		writeMessage(w, err.Error())
		return
	}

	writeMessage(w, "User updated successfully")
}
