package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupInput struct {
	Username string `json:"username" validate:"required,alpha_dash,max=32"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Stars    *int   `json:"stars"    validate:"nullable,gte=1,lte=5"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

func TestStructValid(t *testing.T) {
	stars := 4
	errs := Struct(&signupInput{
		Username: "alice_green",
		Email:    "alice@soil.example",
		Password: "secret123",
		Stars:    &stars,
		Quantity: 3,
	})
	assert.False(t, HasErrors(errs))
}

func TestStructRequired(t *testing.T) {
	errs := Struct(&signupInput{Email: "alice@soil.example", Password: "secret123"})
	assert.Equal(t, "The username field is required.", errs["username"])
}

func TestStructEmail(t *testing.T) {
	errs := Struct(&signupInput{Username: "alice", Email: "not-an-email", Password: "secret123"})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestStructAlphaDash(t *testing.T) {
	errs := Struct(&signupInput{Username: "alice green!", Email: "a@b.co", Password: "secret123"})
	assert.Contains(t, errs["username"], "letters, numbers, dashes")
}

func TestStructMinLength(t *testing.T) {
	errs := Struct(&signupInput{Username: "alice", Email: "a@b.co", Password: "abc"})
	assert.Equal(t, "The password must be at least 6 characters.", errs["password"])
}

func TestStructNullablePointer(t *testing.T) {
	// A nil nullable pointer skips the numeric rules entirely.
	errs := Struct(&signupInput{Username: "alice", Email: "a@b.co", Password: "secret123"})
	assert.NotContains(t, errs, "stars")

	// A non-nil pointer is validated against its pointee.
	bad := 9
	errs = Struct(&signupInput{
		Username: "alice", Email: "a@b.co", Password: "secret123", Stars: &bad,
	})
	assert.Equal(t, "The stars must be less than or equal to 5.", errs["stars"])
}

func TestStructNumericBounds(t *testing.T) {
	errs := Struct(&signupInput{
		Username: "alice", Email: "a@b.co", Password: "secret123", Quantity: -1,
	})
	assert.Equal(t, "The quantity must be greater than or equal to 0.", errs["quantity"])
}

func TestStructFirstFailingRuleWins(t *testing.T) {
	// username fails required; alpha_dash and max must not overwrite it.
	errs := Struct(&signupInput{Email: "a@b.co", Password: "secret123"})
	assert.Equal(t, "The username field is required.", errs["username"])
}

func TestStructNonStructInput(t *testing.T) {
	assert.Empty(t, Struct(42))
	assert.Empty(t, Struct("nope"))
}
