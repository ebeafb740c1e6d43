package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"bhromon/models"
	"bhromon/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePackage adds a vacation package.
// POST /packages
func (s *Service) CreatePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var pkg models.TravelPackage
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if pkg.Title == "" || pkg.Price <= 0 {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Title and Price required")
		return
	}

	pkg.ID = models.DocID(utils.GenerateID())
	pkg.Availability = true
	pkg.CreatedAt = time.Now()

	ctx := r.Context()
	if _, err := s.packages.InsertOne(ctx, pkg); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add package")
		return
	}
	s.invalidate(ctx, cacheKeyPackages)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Package created", "package": pkg})
}

// ListPackages returns packages newest-first. The full sorted list is
// cached; ?limit slices the cached copy.
// GET /packages?limit
func (s *Service) ListPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx := r.Context()

	var pkgs []models.TravelPackage
	if !s.cache.Get(ctx, cacheKeyPackages, &pkgs) {
		cur, err := s.packages.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch packages")
			return
		}
		defer cur.Close(ctx)
		pkgs = []models.TravelPackage{}
		if err := cur.All(ctx, &pkgs); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch packages")
			return
		}
		s.cache.Set(ctx, cacheKeyPackages, pkgs, listCacheTTL)
	}

	if limit > 0 && limit < len(pkgs) {
		pkgs = pkgs[:limit]
	}
	utils.RespondWithJSON(w, http.StatusOK, pkgs)
}

// GetPackage returns one package.
// GET /packages/:id
func (s *Service) GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var pkg models.TravelPackage
	err := s.packages.FindOne(r.Context(), utils.IDFilter(id)).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithMessage(w, http.StatusNotFound, "Package not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch package details")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, pkg)
}

// UpdatePackage applies a partial update.
// PUT /packages/:id
func (s *Service) UpdatePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var body bson.M
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update body")
		return
	}

	ctx := r.Context()
	res, err := s.packages.UpdateOne(ctx, utils.IDFilter(id), bson.M{"$set": updateFields(body)})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update package")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithMessage(w, http.StatusNotFound, "Package not found")
		return
	}
	s.invalidate(ctx, cacheKeyPackages)

	utils.RespondWithMessage(w, http.StatusOK, "Package updated successfully")
}

// DeletePackage removes a package.
// DELETE /packages/:id
func (s *Service) DeletePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx := r.Context()
	res, err := s.packages.DeleteOne(ctx, utils.IDFilter(id))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete package")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithMessage(w, http.StatusNotFound, "Package not found")
		return
	}
	s.invalidate(ctx, cacheKeyPackages)

	utils.RespondWithMessage(w, http.StatusOK, "Package deleted successfully")
}
