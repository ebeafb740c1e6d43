package admin

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"bhromon/db"
	"bhromon/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service serves the admin analytics surface.
type Service struct {
	users    *mongo.Collection
	packages *mongo.Collection
	resorts  *mongo.Collection
	bookings *mongo.Collection
}

func NewService(d *db.Database) *Service {
	return &Service{
		users:    d.Users,
		packages: d.Packages,
		resorts:  d.Resorts,
		bookings: d.Bookings,
	}
}

// Overview reports entity counts for the trailing window plus the percent
// change against the window before it.
// GET /admin/overview?days
func (s *Service) Overview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if days <= 0 {
		days = 30
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	prevEnd := start
	prevStart := prevEnd.AddDate(0, 0, -days)

	ctx := r.Context()
	window := func(from, to time.Time) bson.M {
		return bson.M{"createdAt": bson.M{"$gte": from, "$lt": to}}
	}

	totalBookings := safeCount(ctx, s.bookings, window(start, end))
	prevBookings := safeCount(ctx, s.bookings, window(prevStart, prevEnd))

	totalUsers := safeCount(ctx, s.users, bson.M{})
	newUsers := safeCount(ctx, s.users, window(start, end))
	prevNewUsers := safeCount(ctx, s.users, window(prevStart, prevEnd))

	packagesCount := safeCount(ctx, s.packages, bson.M{})
	resortsCount := safeCount(ctx, s.resorts, bson.M{})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"totalBookings":         totalBookings,
		"bookingsChangePercent": PercentChange(totalBookings, prevBookings),
		"totalUsers":            totalUsers,
		"newUsers":              newUsers,
		"usersChangePercent":    PercentChange(newUsers, prevNewUsers),
		"packagesCount":         packagesCount,
		"resortsCount":          resortsCount,
	})
}

// PercentChange rounds the relative change to whole percent. A previous
// count of zero yields 0 when nothing changed and 100 otherwise.
func PercentChange(current, previous int64) int {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	ratio := float64(current-previous) / float64(previous) * 100
	if ratio >= 0 {
		return int(ratio + 0.5)
	}
	return int(ratio - 0.5)
}

func safeCount(ctx context.Context, coll *mongo.Collection, filter bson.M) int64 {
	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("countDocuments error: %v", err)
		return 0
	}
	return n
}
