package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator produces realistic values for integration fixtures.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator with an optional seed.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s)), seed: s}
}

// Seed returns the seed the generator was built with.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// UserName returns a unique, already normalised login name.
func (g *TestDataGenerator) UserName() string {
	return fmt.Sprintf("%s_%s", g.faker.Username(), g.faker.LetterN(6))
}

// Password returns a password long enough to pass validation.
func (g *TestDataGenerator) Password() string {
	return g.faker.Password(true, true, true, false, false, 16)
}

// GroupName returns a ward or team name.
func (g *TestDataGenerator) GroupName() string {
	return fmt.Sprintf("%s %s", g.faker.Company(), g.faker.LetterN(4))
}

// Reference returns a case reference such as "MRN-482913".
func (g *TestDataGenerator) Reference() string {
	return g.faker.Numerify("MRN-######")
}

// Diagnosis returns a candidate diagnosis name.
func (g *TestDataGenerator) Diagnosis() string {
	return g.faker.RandomString([]string{
		"pulmonary embolism", "pneumonia", "acute coronary syndrome", "sepsis",
		"appendicitis", "migraine", "pyelonephritis", "aortic dissection",
	}) + " " + g.faker.LetterN(3)
}

// Confidence returns a value in 0..100.
func (g *TestDataGenerator) Confidence() int {
	return g.faker.Number(0, 100)
}

// Comment returns a short free-text note.
func (g *TestDataGenerator) Comment() string {
	return g.faker.Phrase()
}
