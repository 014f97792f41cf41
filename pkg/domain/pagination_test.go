package domain_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"registro/pkg/domain"
)

type PaginationSuite struct {
	suite.Suite
}

func TestPaginationSuite(t *testing.T) {
	suite.Run(t, new(PaginationSuite))
}

func (s *PaginationSuite) TestOffsetPaginationClamp() {
	s.Run("applies the default limit when unset", func() {
		p := domain.NewOffsetPagination(0, 1)
		s.Equal(domain.DefaultPageLimit, p.Limit())
	})

	s.Run("clamps limits above the maximum", func() {
		for _, limit := range []int{71, 100, 1000} {
			p := domain.NewOffsetPagination(limit, 1)
			s.Equal(domain.MaxPageLimit, p.Limit())
		}
	})

	s.Run("keeps limits inside the bounds", func() {
		p := domain.NewOffsetPagination(25, 1)
		s.Equal(25, p.Limit())
	})

	s.Run("accepts the maximum exactly", func() {
		p := domain.NewOffsetPagination(domain.MaxPageLimit, 1)
		s.Equal(domain.MaxPageLimit, p.Limit())
	})
}

func (s *PaginationSuite) TestOffsetComputation() {
	s.Run("first page starts at zero", func() {
		p := domain.NewOffsetPagination(15, 1)
		s.Equal(0, p.Offset())
	})

	s.Run("offset is pages times limit", func() {
		p := domain.NewOffsetPagination(20, 3)
		s.Equal(40, p.Offset())
	})

	s.Run("offset uses the clamped limit", func() {
		p := domain.NewOffsetPagination(500, 2)
		s.Equal(domain.MaxPageLimit, p.Offset())
	})

	s.Run("page below one is coerced to one", func() {
		p := domain.NewOffsetPagination(15, 0)
		s.Equal(1, p.Page())
		s.Equal(0, p.Offset())
	})
}
