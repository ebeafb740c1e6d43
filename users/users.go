package users

import (
	"encoding/json"
	"net/http"
	"time"

	"bhromon/db"
	"bhromon/models"
	"bhromon/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service handles the user-account surface.
type Service struct {
	users *mongo.Collection
}

func NewService(d *db.Database) *Service {
	return &Service{users: d.Users}
}

// Create registers an account lazily on first sign-in.
// POST /users — 200 if the email already exists, 201 on insert.
func (s *Service) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		ProfilePic string `json:"profilePic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if body.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}

	ctx := r.Context()

	var existing models.User
	if err := s.users.FindOne(ctx, bson.M{"email": body.Email}).Decode(&existing); err == nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "User already exists", "user": existing})
		return
	}

	newUser := models.User{
		ID:         models.DocID(utils.GenerateID()),
		Name:       body.Name,
		Email:      body.Email,
		ProfilePic: body.ProfilePic,
		Role:       "user",
		CreatedAt:  time.Now(),
	}

	if _, err := s.users.InsertOne(ctx, newUser); err != nil {
		if db.IsDuplicateKey(err) {
			// lost a first-sign-in race; hand back the winner
			_ = s.users.FindOne(ctx, bson.M{"email": body.Email}).Decode(&existing)
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "User already exists", "user": existing})
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "User created", "user": newUser})
}

// Get returns a single normalized profile.
// GET /users/:email
func (s *Service) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}

	var user models.User
	if err := s.users.FindOne(r.Context(), bson.M{"email": email}).Decode(&user); err != nil {
		utils.RespondWithMessage(w, http.StatusNotFound, "User not found")
		return
	}

	role := user.Role
	if role == "" {
		role = "user"
	}
	createdAt := ""
	if !user.CreatedAt.IsZero() {
		createdAt = user.CreatedAt.UTC().Format(time.RFC3339)
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UserProfile{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Role:       role,
		ProfilePic: ResolveProfilePic(user.ProfilePic, user.PhotoURL, user.Email),
		CreatedAt:  createdAt,
	})
}

// List returns a page of accounts.
// GET /users?page&limit
func (s *Service) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r, 5)
	skip := int64((opts.Page - 1) * opts.Limit)
	limit := int64(opts.Limit)

	ctx := r.Context()
	cur, err := s.users.Find(ctx, bson.M{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer cur.Close(ctx)

	users := []models.UserSummary{}
	if err := cur.All(ctx, &users); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	total, err := s.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UserPage{
		Users: users,
		Total: total,
		Page:  opts.Page,
		Pages: utils.PageCount(total, opts.Limit),
	})
}

// UpdateRole promotes or demotes an account. Admin only.
// PUT /users/:email/role
func (s *Service) UpdateRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if body.Role != "user" && body.Role != "admin" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	res, err := s.users.UpdateOne(r.Context(), bson.M{"email": email}, bson.M{"$set": bson.M{"role": body.Role}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update role")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithMessage(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Role updated",
		"email":   email,
		"newRole": body.Role,
	})
}
