package validation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"registro/internal/validation"
)

type ZipCodeSuite struct {
	suite.Suite
	registry *validation.ZipCodeRegistry
}

func (s *ZipCodeSuite) SetupTest() {
	s.registry = validation.NewZipCodeRegistry()
}

func TestZipCodeSuite(t *testing.T) {
	suite.Run(t, new(ZipCodeSuite))
}

func (s *ZipCodeSuite) TestBrazilianCEP() {
	s.Run("accepts eight digits", func() {
		s.True(s.registry.Validate("89160306", "BR"))
	})

	s.Run("accepts dashed form", func() {
		s.True(s.registry.Validate("89160-306", "BR"))
	})

	s.Run("rejects wrong lengths", func() {
		s.False(s.registry.Validate("8916030", "BR"))
		s.False(s.registry.Validate("891603060", "BR"))
	})
}

func (s *ZipCodeSuite) TestUnitedStatesZIP() {
	s.Run("accepts five digits", func() {
		s.True(s.registry.Validate("90210", "US"))
	})

	s.Run("accepts ZIP+4", func() {
		s.True(s.registry.Validate("90210-1234", "US"))
	})

	s.Run("rejects letters", func() {
		s.False(s.registry.Validate("9021A", "US"))
	})
}

func (s *ZipCodeSuite) TestUnitedKingdomPostcode() {
	s.Run("accepts standard shapes", func() {
		s.True(s.registry.Validate("SW1A 1AA", "GB"))
		s.True(s.registry.Validate("m1 1ae", "GB"))
		s.True(s.registry.Validate("B338TH", "GB"))
	})

	s.Run("rejects malformed codes", func() {
		s.False(s.registry.Validate("12345", "GB"))
		s.False(s.registry.Validate("SW1A1", "GB"))
	})
}

func (s *ZipCodeSuite) TestFallback() {
	s.Run("unconfigured countries use the generic rule", func() {
		s.True(s.registry.Validate("1012 AB", "NL"))
		s.False(s.registry.Validate("x", "NL"))
	})

	s.Run("registered rules override the fallback", func() {
		s.registry.Register("NL", func(code string) bool { return false })
		s.False(s.registry.Validate("1012 AB", "NL"))
	})
}
