package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/metrics"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/models"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/pkg/random"
	"golang.org/x/sync/errgroup"
)

// NameSource supplies random entries from the name corpus.
type NameSource interface {
	RandomPersonName() (*models.PersonName, error)
}

// TownSource supplies random postal-code/town pairs.
type TownSource interface {
	RandomTown() (*models.Town, error)
}

const (
	minBirthYear = 1900

	streetLength = 40
	phoneLength  = 8

	minBulkAmount = 2
	maxBulkAmount = 100
)

// phonePrefixes are the valid Danish mobile number prefixes. A generated
// phone number is one of these followed by random digits up to 8 in total.
var phonePrefixes = []string{
	"2", "30", "31", "40", "41", "42", "50", "51", "52", "53", "60", "61", "71", "81", "91", "92", "93", "342",
	"344", "345", "346", "347", "348", "349", "356", "357", "359", "362", "365", "366", "389", "398", "431",
	"441", "462", "466", "468", "472", "474", "476", "478", "485", "486", "488", "489", "493", "494", "495",
	"496", "498", "499", "542", "543", "545", "551", "552", "556", "571", "572", "573", "574", "577", "579",
	"584", "586", "587", "589", "597", "598", "627", "629", "641", "649", "658", "662", "663", "664", "665",
	"667", "692", "693", "694", "697", "771", "772", "782", "783", "785", "786", "788", "789", "826", "827", "829",
}

var (
	upperLetters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	doorLetters  = []rune("abcdefghijklmnopqrstuvwxyzøæå")

	// streetChars is the full street alphabet; streetFirstChars is the same
	// alphabet without the space, used for position 0 only.
	streetChars      = []rune(" abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZæøåÆØÅ")
	streetFirstChars = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZæøåÆØÅ")
)

// PersonService generates fake Danish person records. It is stateless between
// calls; all randomness goes through the injected random.Source.
type PersonService struct {
	names NameSource
	towns TownSource
	rng   random.Source
}

func NewPersonService(names NameSource, towns TownSource, rng random.Source) *PersonService {
	return &PersonService{
		names: names,
		towns: towns,
		rng:   rng,
	}
}

// GeneratePerson builds one fake person. Fields are drawn in dependency
// order: the CPR encodes the birth date and gender, so those come first;
// address and phone are independent. A person is all-or-nothing: if a
// collaborator fails, no partial record is returned.
func (s *PersonService) GeneratePerson() (*models.Person, error) {
	name, err := s.names.RandomPersonName()
	if err != nil {
		return nil, fmt.Errorf("failed to pick person name: %w", err)
	}

	birthDate := s.generateBirthDate()
	cpr := s.generateCPR(birthDate, name.Gender)

	address, err := s.generateAddress()
	if err != nil {
		return nil, err
	}

	person := &models.Person{
		CPR:         cpr,
		FirstName:   name.FirstName,
		LastName:    name.LastName,
		Gender:      name.Gender,
		BirthDate:   birthDate,
		Address:     *address,
		PhoneNumber: s.generatePhoneNumber(),
	}

	metrics.PersonsGenerated.Inc()

	return person, nil
}

// GeneratePersons builds an ordered batch of independently generated persons.
// The amount is silently clamped to [2, 100]; out-of-range input is not an
// error here, the HTTP layer decides whether to reject it up front. Records
// share no mutable state, so they are generated concurrently.
func (s *PersonService) GeneratePersons(amount int) ([]*models.Person, error) {
	if amount < minBulkAmount {
		amount = minBulkAmount
	}
	if amount > maxBulkAmount {
		amount = maxBulkAmount
	}

	persons := make([]*models.Person, amount)

	var g errgroup.Group
	for i := range persons {
		i := i
		g.Go(func() error {
			person, err := s.GeneratePerson()
			if err != nil {
				return err
			}
			persons[i] = person
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return persons, nil
}

// generateBirthDate draws a date between 1900 and the current year. Month
// lengths use a fixed table: February is always capped at 28 days. Leap years
// are deliberately ignored; consumers depend on this simplified behavior.
func (s *PersonService) generateBirthDate() string {
	year := s.rng.IntInRange(minBirthYear, time.Now().Year())
	month := s.rng.IntInRange(1, 12)
	day := s.rng.IntInRange(1, daysInMonth(month))

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func daysInMonth(month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		return 28
	}
}

// generateCPR composes the 10-digit CPR: day, month and two-digit year from
// the birth date, three random digits, and a final digit whose parity encodes
// gender (even for female, odd for male). A wrong-parity draw is fixed by
// incrementing mod 10, so 9 wraps to 0 rather than dropping to 8.
func (s *PersonService) generateCPR(birthDate string, gender models.Gender) string {
	date, _ := time.Parse("2006-01-02", birthDate)

	finalDigit := s.rng.IntInRange(0, 9)
	if gender == models.GenderFeminine && finalDigit%2 == 1 {
		finalDigit = (finalDigit + 1) % 10
	} else if gender == models.GenderMasculine && finalDigit%2 == 0 {
		finalDigit = (finalDigit + 1) % 10
	}

	var middleDigits strings.Builder
	for i := 0; i < 3; i++ {
		middleDigits.WriteString(strconv.Itoa(s.rng.IntInRange(0, 9)))
	}

	return fmt.Sprintf("%s%s%d", date.Format("020106"), middleDigits.String(), finalDigit)
}

// generateAddress draws the four street sub-fields independently and pairs
// them with a real postal-code/town row from the lookup store.
func (s *PersonService) generateAddress() (*models.Address, error) {
	street := s.generateStreet()
	number := s.generateNumber()
	floor := s.generateFloor()
	door := s.generateDoor()

	town, err := s.towns.RandomTown()
	if err != nil {
		return nil, fmt.Errorf("failed to pick town: %w", err)
	}

	return &models.Address{
		Street:     street,
		Number:     number,
		Floor:      floor,
		Door:       door,
		PostalCode: town.PostalCode,
		TownName:   town.TownName,
	}, nil
}

// generateStreet builds a 40-character street name over the Danish alphabet.
// The first character is never a space.
func (s *PersonService) generateStreet() string {
	street := make([]rune, 0, streetLength)
	street = append(street, streetFirstChars[s.rng.Pick(len(streetFirstChars))])
	for len(street) < streetLength {
		street = append(street, streetChars[s.rng.Pick(len(streetChars))])
	}
	return string(street)
}

// generateNumber draws a house number 1-999 with a 2/10 chance of an
// uppercase letter suffix.
func (s *PersonService) generateNumber() string {
	number := strconv.Itoa(s.rng.IntInRange(1, 999))
	if s.rng.IntInRange(1, 10) < 3 {
		number += string(upperLetters[s.rng.Pick(len(upperLetters))])
	}
	return number
}

// generateFloor returns "st" (ground floor) with a 3/10 chance, otherwise a
// floor number 1-99.
func (s *PersonService) generateFloor() string {
	if s.rng.IntInRange(1, 10) < 4 {
		return "st"
	}
	return strconv.Itoa(s.rng.IntInRange(1, 99))
}

// generateDoor picks one of the five Danish door designations. The 1-20 scale
// sets the odds: th 35%, tv 35%, mf 10%, numbered 10%, lettered 10% (half of
// the lettered doors carry a dash before the number).
func (s *PersonService) generateDoor() string {
	doorType := s.rng.IntInRange(1, 20)
	switch {
	case doorType < 8:
		return "th"
	case doorType < 15:
		return "tv"
	case doorType < 17:
		return "mf"
	case doorType < 19:
		return strconv.Itoa(s.rng.IntInRange(1, 50))
	default:
		door := string(doorLetters[s.rng.Pick(len(doorLetters))])
		if doorType == 20 {
			door += "-"
		}
		return door + strconv.Itoa(s.rng.IntInRange(1, 999))
	}
}

// generatePhoneNumber draws a valid Danish prefix and pads it with random
// digits to exactly 8 characters.
func (s *PersonService) generatePhoneNumber() string {
	var number strings.Builder
	number.WriteString(phonePrefixes[s.rng.Pick(len(phonePrefixes))])
	for number.Len() < phoneLength {
		number.WriteString(strconv.Itoa(s.rng.IntInRange(0, 9)))
	}
	return number.String()
}
