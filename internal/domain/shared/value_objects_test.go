package shared_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"registro/internal/domain/shared"
)

type ValueObjectsSuite struct {
	suite.Suite
}

func TestValueObjectsSuite(t *testing.T) {
	suite.Run(t, new(ValueObjectsSuite))
}

func (s *ValueObjectsSuite) TestEmailConstruction() {
	s.Run("accepts a plain address", func() {
		email, err := shared.NewEmail("a@b.com")
		s.Require().NoError(err)
		s.Equal("a@b.com", email.String())
	})

	s.Run("normalizes case and whitespace", func() {
		email, err := shared.NewEmail("  Company1@Example.COM ")
		s.Require().NoError(err)
		s.Equal("company1@example.com", email.String())
	})

	s.Run("rejects address without TLD", func() {
		_, err := shared.NewEmail("a@b")
		s.Require().Error(err)
		s.ErrorIs(err, shared.ErrInvalidEmail)
	})

	s.Run("rejects address without local part", func() {
		_, err := shared.NewEmail("@example.com")
		s.ErrorIs(err, shared.ErrInvalidEmail)
	})

	s.Run("rejects address over the length cap", func() {
		local := strings.Repeat("a", shared.MaxEmailLength)
		_, err := shared.NewEmail(local + "@example.com")
		s.ErrorIs(err, shared.ErrInvalidEmail)
	})

	s.Run("restore skips validation", func() {
		email := shared.RestoreEmail("stored@example.com")
		s.Equal("stored@example.com", email.String())
		s.False(email.IsZero())
	})
}

func (s *ValueObjectsSuite) TestPhoneConstruction() {
	s.Run("accepts bare digits", func() {
		phone, err := shared.NewPhone("5511988899090")
		s.Require().NoError(err)
		s.Equal("5511988899090", phone.String())
	})

	s.Run("strips formatting", func() {
		phone, err := shared.NewPhone("+55 (11) 98889-9090")
		s.Require().NoError(err)
		s.Equal("5511988899090", phone.String())
	})

	s.Run("rejects numbers under ten digits", func() {
		_, err := shared.NewPhone("551198889")
		s.ErrorIs(err, shared.ErrInvalidPhone)
	})

	s.Run("rejects numbers over sixteen digits", func() {
		_, err := shared.NewPhone(strings.Repeat("9", 17))
		s.ErrorIs(err, shared.ErrInvalidPhone)
	})

	s.Run("rejects letters", func() {
		_, err := shared.NewPhone("55119888990ab")
		s.ErrorIs(err, shared.ErrInvalidPhone)
	})
}

func (s *ValueObjectsSuite) TestLandlineConstruction() {
	s.Run("accepts a valid number with its own type", func() {
		landline, err := shared.NewLandline("551135211980")
		s.Require().NoError(err)
		s.Equal("551135211980", landline.String())
	})

	s.Run("rejects short numbers with the landline error", func() {
		_, err := shared.NewLandline("12345")
		s.Require().Error(err)
		s.ErrorIs(err, shared.ErrInvalidLandline)
	})
}

func (s *ValueObjectsSuite) TestCompanyAddressBounds() {
	s.Run("accepts an address inside the bounds", func() {
		addr, err := shared.NewCompanyAddress("123 Main Street, Downtown")
		s.Require().NoError(err)
		s.Equal("123 Main Street, Downtown", addr.String())
	})

	s.Run("rejects a short address", func() {
		_, err := shared.NewCompanyAddress("123 Main St")
		s.ErrorIs(err, shared.ErrCompanyAddressTooShort)
	})

	s.Run("rejects an address over the cap", func() {
		_, err := shared.NewCompanyAddress(strings.Repeat("x", shared.MaxCompanyAddressLength+1))
		s.ErrorIs(err, shared.ErrCompanyAddressTooLong)
	})

	s.Run("trims before measuring", func() {
		_, err := shared.NewCompanyAddress("  123 Main St       ")
		s.ErrorIs(err, shared.ErrCompanyAddressTooShort)
	})
}

func (s *ValueObjectsSuite) TestCompanyDescriptionBounds() {
	s.Run("accepts a description inside the bounds", func() {
		desc, err := shared.NewCompanyDescription("Company 1 description is valid!")
		s.Require().NoError(err)
		s.False(desc.IsZero())
	})

	s.Run("rejects a short description", func() {
		_, err := shared.NewCompanyDescription("too short")
		s.ErrorIs(err, shared.ErrCompanyDescriptionTooShort)
	})

	s.Run("rejects a description over the cap", func() {
		_, err := shared.NewCompanyDescription(strings.Repeat("x", shared.MaxCompanyDescriptionLength+1))
		s.ErrorIs(err, shared.ErrCompanyDescriptionTooLong)
	})
}

// acceptAllValidator approves every code; rejectAllValidator rejects every code.
type acceptAllValidator struct{}

func (acceptAllValidator) Validate(_, _ string) bool { return true }

type rejectAllValidator struct{}

func (rejectAllValidator) Validate(_, _ string) bool { return false }

func (s *ValueObjectsSuite) TestTaxIDConstruction() {
	s.Run("accepts when the country validator approves", func() {
		taxID, err := shared.NewTaxID("01894147000135", "br", acceptAllValidator{})
		s.Require().NoError(err)
		s.Equal("01894147000135", taxID.String())
		s.Equal("BR", taxID.CountryCode())
	})

	s.Run("requires a code", func() {
		_, err := shared.NewTaxID("", "BR", acceptAllValidator{})
		s.ErrorIs(err, shared.ErrTaxIDRequired)
	})

	s.Run("requires a country code", func() {
		_, err := shared.NewTaxID("01894147000135", "  ", acceptAllValidator{})
		s.ErrorIs(err, shared.ErrTaxIDRequired)
	})

	s.Run("rejects when the country validator declines", func() {
		_, err := shared.NewTaxID("01894147000135", "BR", rejectAllValidator{})
		s.ErrorIs(err, shared.ErrTaxIDInvalid)
	})

	s.Run("restore skips the validator", func() {
		taxID := shared.RestoreTaxID("01894147000135", "BR")
		s.False(taxID.IsZero())
	})
}

func (s *ValueObjectsSuite) TestZipCodeConstruction() {
	s.Run("accepts when the country validator approves", func() {
		zip, err := shared.NewZipCode("89160306", "BR", acceptAllValidator{})
		s.Require().NoError(err)
		s.Equal("89160306", zip.String())
	})

	s.Run("requires a code", func() {
		_, err := shared.NewZipCode("   ", "BR", acceptAllValidator{})
		s.ErrorIs(err, shared.ErrZipCodeRequired)
	})

	s.Run("rejects when the country validator declines", func() {
		_, err := shared.NewZipCode("89160306", "BR", rejectAllValidator{})
		s.ErrorIs(err, shared.ErrZipCodeInvalid)
	})
}
