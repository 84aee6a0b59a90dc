package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterRequest is the JSON payload for POST /api/register.
type RegisterRequest struct {
	ProjectName string `json:"project_name"`
	CompanyName string `json:"company_name"`
	Password    string `json:"password"`
	Users       []User `json:"users"`
}

// handleRegister creates a project document with a hashed shared
// password. Project-name uniqueness is checked, not enforced by an
// index, so two concurrent registrations can still race; the frontend
// treats the duplicate message as terminal either way.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := s.store.Projects().FindOne(ctx, bson.M{"project_name": req.ProjectName}).Err()
	if err == nil {
		writeMessage(w, "Project with the same name already exists")
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		writeMessage(w, err.Error())
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		writeMessage(w, err.Error())
		return
	}

	project := Project{
		ProjectName:      req.ProjectName,
		CompanyName:      req.CompanyName,
		Password:         hash,
		IsAdmin:          "false",
		RegistrationTime: time.Now(),
		Users:            req.Users,
	}
	if _, err := s.store.Projects().InsertOne(ctx, project); err != nil {
		writeMessage(w, err.Error())
		return
	}

	Info("project_registered", map[string]interface{}{
		"project_name": req.ProjectName,
		"users":        len(req.Users),
	})

	writeMessage(w, "Successfully Registered, Please login now.")
}
