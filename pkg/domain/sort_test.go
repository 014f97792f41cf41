package domain_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"registro/pkg/domain"
	dErrors "registro/pkg/domain-errors"
)

type SortSuite struct {
	suite.Suite
}

func TestSortSuite(t *testing.T) {
	suite.Run(t, new(SortSuite))
}

var sortable = []string{"name", "city", "createdAt"}

func (s *SortSuite) TestNewSort() {
	s.Run("preserves expression order", func() {
		sort, err := domain.NewSort([]string{"city:desc", "name"}, sortable)
		s.Require().NoError(err)
		s.Require().Len(sort, 2)
		s.Equal("city", sort[0].Field)
		s.Equal(domain.Desc, sort[0].Direction)
		s.Equal("name", sort[1].Field)
		s.Equal(domain.Asc, sort[1].Direction)
	})

	s.Run("canonicalizes field case", func() {
		sort, err := domain.NewSort([]string{"CREATEDAT:desc"}, sortable)
		s.Require().NoError(err)
		s.Equal("createdAt", sort[0].Field)
	})

	s.Run("rejects unknown fields", func() {
		_, err := domain.NewSort([]string{"password"}, sortable)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects unknown directions", func() {
		_, err := domain.NewSort([]string{"name:sideways"}, sortable)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("empty input yields empty sort", func() {
		sort, err := domain.NewSort(nil, sortable)
		s.Require().NoError(err)
		s.Empty(sort)
	})
}
