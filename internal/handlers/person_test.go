package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/models"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/services"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/pkg/random"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedNameSource struct{}

func (fixedNameSource) RandomPersonName() (*models.PersonName, error) {
	return &models.PersonName{FirstName: "Anders", LastName: "Jensen", Gender: models.GenderMasculine}, nil
}

type fixedTownSource struct{}

func (fixedTownSource) RandomTown() (*models.Town, error) {
	return &models.Town{PostalCode: "2100", TownName: "København Ø"}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	personService := services.NewPersonService(fixedNameSource{}, fixedTownSource{}, random.NewSource())

	personHandler := NewPersonHandler(personService)
	healthHandler := NewHealthHandler()
	notFoundHandler := NewNotFoundHandler()

	router := gin.New()
	router.GET("/", notFoundHandler.NotFound)
	router.GET("/cpr", personHandler.GetCPR)
	router.GET("/name-gender", personHandler.GetNameGender)
	router.GET("/name-gender-dob", personHandler.GetNameGenderDOB)
	router.GET("/cpr-name-gender", personHandler.GetCPRNameGender)
	router.GET("/cpr-name-gender-dob", personHandler.GetCPRNameGenderDOB)
	router.GET("/address", personHandler.GetAddress)
	router.GET("/phone", personHandler.GetPhone)
	router.GET("/person", personHandler.GetPerson)
	router.GET("/health", healthHandler.HealthCheck)
	router.NoRoute(notFoundHandler.NotFound)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGetCPREndpoint(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, "/cpr")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Regexp(t, `^\d{10}$`, body["CPR"])
}

func TestPartialEndpoints(t *testing.T) {
	router := newTestRouter()

	testCases := []struct {
		path     string
		wantKeys []string
	}{
		{"/name-gender", []string{"firstName", "lastName", "gender"}},
		{"/name-gender-dob", []string{"firstName", "lastName", "gender", "birthDate"}},
		{"/cpr-name-gender", []string{"CPR", "firstName", "lastName", "gender"}},
		{"/cpr-name-gender-dob", []string{"CPR", "firstName", "lastName", "gender", "birthDate"}},
		{"/phone", []string{"phoneNumber"}},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			recorder := doRequest(t, router, tc.path)
			assert.Equal(t, http.StatusOK, recorder.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Len(t, body, len(tc.wantKeys))
			for _, key := range tc.wantKeys {
				assert.Contains(t, body, key)
				assert.NotEmpty(t, body[key])
			}
		})
	}
}

func TestGetAddressEndpoint(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, "/address")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Address models.Address `json:"address"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, []rune(body.Address.Street), 40)
	assert.Equal(t, "2100", body.Address.PostalCode)
	assert.Equal(t, "København Ø", body.Address.TownName)
}

func TestGetPersonEndpoint(t *testing.T) {
	router := newTestRouter()

	t.Run("Default returns a single person", func(t *testing.T) {
		recorder := doRequest(t, router, "/person")
		assert.Equal(t, http.StatusOK, recorder.Code)

		var person models.Person
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &person))
		assert.Equal(t, "Anders", person.FirstName)
		assert.Regexp(t, `^\d{10}$`, person.CPR)
	})

	t.Run("n=1 returns a single person", func(t *testing.T) {
		recorder := doRequest(t, router, "/person?n=1")
		assert.Equal(t, http.StatusOK, recorder.Code)

		var person models.Person
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &person))
		assert.NotEmpty(t, person.CPR)
	})

	t.Run("Valid bulk amounts return arrays", func(t *testing.T) {
		for _, amount := range []int{2, 5, 100} {
			recorder := doRequest(t, router, "/person?n="+strconv.Itoa(amount))
			assert.Equal(t, http.StatusOK, recorder.Code)

			var persons []models.Person
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &persons))
			assert.Len(t, persons, amount)
		}
	})

	t.Run("Invalid amounts are rejected", func(t *testing.T) {
		for _, amount := range []string{"0", "-1", "101", "abc", "1.5", ""} {
			recorder := doRequest(t, router, "/person?n="+amount)
			assert.Equal(t, http.StatusBadRequest, recorder.Code, "n=%q should be rejected", amount)

			var body map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, "Incorrect GET parameter value", body["error"])
		}
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, "/health")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestUnknownRoutes(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/", "/nope", "/persons"} {
		t.Run(path, func(t *testing.T) {
			recorder := doRequest(t, router, path)
			assert.Equal(t, http.StatusNotFound, recorder.Code)
			assert.JSONEq(t, `{"error":"Incorrect API endpoint"}`, recorder.Body.String())
		})
	}
}
