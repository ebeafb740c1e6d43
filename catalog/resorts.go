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

// CreateResort adds a resort listing.
// POST /resorts
func (s *Service) CreateResort(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var resort models.Resort
	if err := json.NewDecoder(r.Body).Decode(&resort); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if resort.Name == "" || resort.Location == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and Location required")
		return
	}

	resort.ID = models.DocID(utils.GenerateID())
	resort.Amenities = trimAmenities(resort.Amenities)
	resort.CreatedAt = time.Now()

	ctx := r.Context()
	if _, err := s.resorts.InsertOne(ctx, resort); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add resort")
		return
	}
	s.invalidate(ctx, cacheKeyResorts)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Resort added", "resort": resort})
}

// ListResorts returns resorts newest-first, amenities trimmed.
// GET /resorts?limit
func (s *Service) ListResorts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx := r.Context()

	var resorts []models.Resort
	if !s.cache.Get(ctx, cacheKeyResorts, &resorts) {
		cur, err := s.resorts.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch resorts")
			return
		}
		defer cur.Close(ctx)
		resorts = []models.Resort{}
		if err := cur.All(ctx, &resorts); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch resorts")
			return
		}
		for i := range resorts {
			resorts[i].Amenities = trimAmenities(resorts[i].Amenities)
		}
		s.cache.Set(ctx, cacheKeyResorts, resorts, listCacheTTL)
	}

	if limit > 0 && limit < len(resorts) {
		resorts = resorts[:limit]
	}
	utils.RespondWithJSON(w, http.StatusOK, resorts)
}

// GetResort returns one resort.
// GET /resorts/:id
func (s *Service) GetResort(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing resort id")
		return
	}

	var resort models.Resort
	err := s.resorts.FindOne(r.Context(), utils.IDFilter(id)).Decode(&resort)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithMessage(w, http.StatusNotFound, "Resort not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch resort")
		return
	}

	resort.Amenities = trimAmenities(resort.Amenities)
	utils.RespondWithJSON(w, http.StatusOK, resort)
}

// UpdateResort applies a partial update.
// PUT /resorts/:id
func (s *Service) UpdateResort(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var body bson.M
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update body")
		return
	}

	ctx := r.Context()
	res, err := s.resorts.UpdateOne(ctx, utils.IDFilter(id), bson.M{"$set": updateFields(body)})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update resort")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithMessage(w, http.StatusNotFound, "Resort not found")
		return
	}
	s.invalidate(ctx, cacheKeyResorts)

	utils.RespondWithMessage(w, http.StatusOK, "Resort updated successfully")
}

// DeleteResort removes a resort.
// DELETE /resorts/:id
func (s *Service) DeleteResort(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx := r.Context()
	res, err := s.resorts.DeleteOne(ctx, utils.IDFilter(id))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete resort")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithMessage(w, http.StatusNotFound, "Resort not found")
		return
	}
	s.invalidate(ctx, cacheKeyResorts)

	utils.RespondWithMessage(w, http.StatusOK, "Resort deleted successfully")
}
