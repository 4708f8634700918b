package handlers

import (
	"net/http"
	"strconv"

	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/middleware"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/models"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/services"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	personService *services.PersonService
}

func NewPersonHandler(personService *services.PersonService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// GetCPR returns a fake CPR number
func (h *PersonHandler) GetCPR(c *gin.Context) {
	person, ok := h.generate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"CPR": person.CPR})
}

// GetNameGender returns a fake first name, last name and gender
func (h *PersonHandler) GetNameGender(c *gin.Context) {
	person, ok := h.generate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"firstName": person.FirstName,
		"lastName":  person.LastName,
		"gender":    person.Gender,
	})
}

// GetNameGenderDOB returns a fake name, gender and date of birth
func (h *PersonHandler) GetNameGenderDOB(c *gin.Context) {
	person, ok := h.generate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"firstName": person.FirstName,
		"lastName":  person.LastName,
		"gender":    person.Gender,
		"birthDate": person.BirthDate,
	})
}

// GetCPRNameGender returns a fake CPR, name and gender
func (h *PersonHandler) GetCPRNameGender(c *gin.Context) {
	person, ok := h.generate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"CPR":       person.CPR,
		"firstName": person.FirstName,
		"lastName":  person.LastName,
		"gender":    person.Gender,
	})
}

// GetCPRNameGenderDOB returns a fake CPR, name, gender and date of birth
func (h *PersonHandler) GetCPRNameGenderDOB(c *gin.Context) {
	person, ok := h.generate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"CPR":       person.CPR,
		"firstName": person.FirstName,
		"lastName":  person.LastName,
		"gender":    person.Gender,
		"birthDate": person.BirthDate,
	})
}

// GetAddress returns a fake address
func (h *PersonHandler) GetAddress(c *gin.Context) {
	person, ok := h.generate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": person.Address})
}

// GetPhone returns a fake mobile phone number
func (h *PersonHandler) GetPhone(c *gin.Context) {
	person, ok := h.generate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"phoneNumber": person.PhoneNumber})
}

// GetPerson returns one fake person, or a bulk list when ?n= is 2-100.
// An n outside [1,100] or non-numeric is rejected here; the generator itself
// never errors on the amount.
func (h *PersonHandler) GetPerson(c *gin.Context) {
	amountParam := c.DefaultQuery("n", "1")

	amount, err := strconv.Atoi(amountParam)
	if err != nil || amount < 1 || amount > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect GET parameter value"})
		return
	}

	if amount == 1 {
		person, ok := h.generate(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, person)
		return
	}

	persons, err := h.personService.GeneratePersons(amount)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, persons)
}

// generate produces a single person and writes the error response on failure.
func (h *PersonHandler) generate(c *gin.Context) (*models.Person, bool) {
	person, err := h.personService.GeneratePerson()
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return person, true
}

func (h *PersonHandler) fail(c *gin.Context, err error) {
	logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Error("Failed to generate person data")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate person data"})
}
