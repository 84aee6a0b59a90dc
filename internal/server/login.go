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

// LoginRequest is the JSON payload for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the identity object returned on successful login. The
// project id and admin flag come from the enclosing project; name and
// email from the matching embedded user.
type LoginUser struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   string `json:"isAdmin"`
}

type loginResponse struct {
	Message string     `json:"message"`
	User    *LoginUser `json:"user,omitempty"`
}

// matchLoginUser composes the login identity from a project and the
// email that was used to find it. Returns nil when no embedded user
// carries the email.
func matchLoginUser(p *Project, email string) *LoginUser {
	for _, u := range p.Users {
		if u.Email == email {
			return &LoginUser{
				ProjectID: p.ID.Hex(),
				Name:      u.Name,
				Email:     u.Email,
				IsAdmin:   p.IsAdmin,
			}
		}
	}
	return nil
}

// handleLogin authenticates against the shared project password. The
// lookup key is the email of any user embedded in the project document.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var project Project
	err := s.store.Projects().FindOne(ctx, bson.M{"users.email": req.Email}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, "Invalid email")
			return
		}
		writeMessage(w, err.Error())
		return
	}

	if !verifyPassword(req.Password, project.Password) {
		writeMessage(w, "Invalid password")
		return
	}

	user := matchLoginUser(&project, req.Email)
	if user == nil {
		// The project matched on users.email, so this only happens if
		// the document changed between the two reads.
		writeMessage(w, "Invalid email")
		return
	}

	writeJSON(w, loginResponse{Message: "Login Successful", User: user})
}
