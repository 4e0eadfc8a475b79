package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/database"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAddPanditValidatesRequiredFields(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c := postContext(w, "/api/pandits/add", map[string]interface{}{
		"name": "Incomplete Profile",
	})

	AddPandit(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpsertProfileCreatesThenUpdates(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c := postContext(w, "/api/pandits/profile", map[string]interface{}{
		"userId":         "pd_user1",
		"name":           "Pandit Mohan",
		"specialization": "Astrology",
		"location":       "Delhi",
	})
	UpsertProfile(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var profile models.Pandit
	assert.NoError(t, database.DB.First(&profile, "user_id = ?", "pd_user1").Error)
	assert.Equal(t, "Delhi", profile.Location)

	// Second upsert keeps the same row
	w = httptest.NewRecorder()
	c = postContext(w, "/api/pandits/profile", map[string]interface{}{
		"userId":         "pd_user1",
		"name":           "Pandit Mohan",
		"specialization": "Astrology",
		"location":       "Jaipur",
	})
	UpsertProfile(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.Pandit{}).Where("user_id = ?", "pd_user1").Count(&count)
	assert.Equal(t, int64(1), count)

	database.DB.First(&profile, "user_id = ?", "pd_user1")
	assert.Equal(t, "Jaipur", profile.Location)
}

func TestGetPanditReviewsAverage(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.Review{ID: "rv1", PanditID: "pd_rev1", Rating: 4})
	database.DB.Create(&models.Review{ID: "rv2", PanditID: "pd_rev1", Rating: 5})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/pandits/reviews/pd_rev1", nil)
	c.Params = gin.Params{{Key: "panditId", Value: "pd_rev1"}}

	GetPanditReviews(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reviews       []models.Review `json:"reviews"`
		AverageRating float64         `json:"averageRating"`
		TotalReviews  int             `json:"totalReviews"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 2, resp.TotalReviews)
	assert.InDelta(t, 4.5, resp.AverageRating, 0.001)
}

func TestGetPanditReviewsDefaultsToFive(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/pandits/reviews/pd_rev_none", nil)
	c.Params = gin.Params{{Key: "panditId", Value: "pd_rev_none"}}

	GetPanditReviews(c)

	var resp struct {
		AverageRating float64 `json:"averageRating"`
		TotalReviews  int     `json:"totalReviews"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 0, resp.TotalReviews)
	assert.InDelta(t, 5.0, resp.AverageRating, 0.001)
}
