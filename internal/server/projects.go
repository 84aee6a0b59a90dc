package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// projectSummary is the reshaped project document returned by the
// listing endpoint. The password hash never leaves the store.
type projectSummary struct {
	ID               string    `json:"id"`
	ProjectName      string    `json:"project_name"`
	CompanyName      string    `json:"company_name"`
	RegistrationTime time.Time `json:"registration_time"`
	Users            []User    `json:"users"`
	IsAdmin          string    `json:"isAdmin"`
}

type listProjectsResponse struct {
	Projects []projectSummary `json:"projects"`
}

func summarizeProject(p Project) projectSummary {
	return projectSummary{
		ID:               p.ID.Hex(),
		ProjectName:      p.ProjectName,
		CompanyName:      p.CompanyName,
		RegistrationTime: p.RegistrationTime,
		Users:            p.Users,
		IsAdmin:          p.IsAdmin,
	}
}

// handleListProjects returns every stored project. Full collection scan,
// no pagination; the dashboard loads the whole list at once.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := s.store.Projects().Find(ctx, bson.D{})
	if err != nil {
		writeMessage(w, err.Error())
		return
	}

	var projects []Project
	if err := cursor.All(ctx, &projects); err != nil {
		writeMessage(w, err.Error())
		return
	}

	summaries := make([]projectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, summarizeProject(p))
	}

	writeJSON(w, listProjectsResponse{Projects: summaries})
}

// handleDeleteProject removes at most one project by id. There is no
// cascade into the users collection; profile rows for the project's
// members are left behind.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := s.store.Projects().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		writeMessage(w, err.Error())
		return
	}

	if result.DeletedCount > 0 {
		writeMessage(w, "Project deleted successfully")
		return
	}
	writeMessage(w, "Project not found")
}
