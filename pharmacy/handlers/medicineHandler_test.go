package handlers

import (
	"Ensurance/cache"
	"Ensurance/pharmacy/models"
	"Ensurance/pharmacy/repositories"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMedicineRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := newTestDB(t)
	mr := miniredis.RunT(t)
	c, err := cache.NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	require.NoError(t, err)

	handler := NewMedicineHandler(repositories.NewMedicineRepository(db, c))
	router := newTestRouter()
	api := router.Group("/api2")
	handler.Register(api, "/medicines")
	api.GET("/search_medicines", handler.Search)
	api.GET("/medicines-xml", handler.GetXML)
	api.GET("/medicines-xml-static", handler.GetStaticXML)
	return router, db
}

func TestMedicinesXMLRendersRecords(t *testing.T) {
	router, db := newMedicineRouter(t)
	mustCreate(t, db, &models.Medicine{
		Name:          "Paracetamol",
		Concentration: "500 MG",
		Price:         60,
		Stock:         85,
	})

	rec := doJSON(t, router, http.MethodGet, "/api2/medicines-xml", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, body, "<medicines>")
	assert.Contains(t, body, "<name>Paracetamol</name>")
	assert.Contains(t, body, "<concentration>500 MG</concentration>")
	assert.Contains(t, body, "<price>60</price>")
}

func TestMedicinesXMLEscapesSpecialChars(t *testing.T) {
	router, db := newMedicineRouter(t)
	mustCreate(t, db, &models.Medicine{
		Name:        "Dolo & Gras <fuerte>",
		Description: `"comillas" y 'apostrofes'`,
		Price:       10,
	})

	rec := doJSON(t, router, http.MethodGet, "/api2/medicines-xml", nil)

	body := rec.Body.String()
	assert.Contains(t, body, "<name>Dolo &amp; Gras &lt;fuerte&gt;</name>")
	assert.Contains(t, body, "&quot;comillas&quot; y &apos;apostrofes&apos;")
	assert.NotContains(t, body, "<fuerte>")
}

func TestStaticMedicinesXML(t *testing.T) {
	router, _ := newMedicineRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api2/medicines-xml-static", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<name>Paracetamol</name>")
	assert.Contains(t, rec.Body.String(), "<brand>MK</brand>")
}

func TestSearchMedicinesByName(t *testing.T) {
	router, db := newMedicineRouter(t)
	mustCreate(t, db, &models.Medicine{Name: "Paracetamol", Price: 60})
	mustCreate(t, db, &models.Medicine{Name: "Ibuprofen", Price: 45})

	rec := doJSON(t, router, http.MethodGet, "/api2/search_medicines?name=Ibu", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var results []models.Medicine
	decodeJSON(t, rec, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "Ibuprofen", results[0].Name)
}

func TestMedicineCrudRoundTrip(t *testing.T) {
	router, _ := newMedicineRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api2/medicines", gin.H{
		"name":  "Amoxicillin",
		"price": 120.0,
		"stock": 40,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Medicine
	decodeJSON(t, rec, &created)
	require.NotZero(t, created.IDMedicine)

	rec = doJSON(t, router, http.MethodGet, "/api2/medicines?id=1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Medicine
	decodeJSON(t, rec, &fetched)
	assert.Equal(t, "Amoxicillin", fetched.Name)
	assert.Equal(t, 120.0, fetched.Price)
}
