package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spiritwiki/loadout-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderWithNoErrors() {
	err := errors.NewValidationBuilder().Build()
	s.Assert().NoError(err)
}

func (s *ValidationTestSuite) TestRequiredField() {
	err := errors.NewValidationBuilder().
		RequiredField("ownerID").
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "ownerID: is required")
}

func (s *ValidationTestSuite) TestMultipleFields() {
	err := errors.NewValidationBuilder().
		RequiredField("name").
		InvalidField("maxSlots", "must be positive").
		Build()

	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "maxSlots: is invalid: must be positive")
	s.Assert().Contains(err.Error(), "name: is required")

	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Len(fields, 2)
}

func (s *ValidationTestSuite) TestFieldOrderIsStable() {
	build := func() string {
		return errors.NewValidationBuilder().
			RequiredField("b").
			RequiredField("a").
			RequiredField("c").
			Build().Error()
	}

	first := build()
	for i := 0; i < 5; i++ {
		s.Assert().Equal(first, build())
	}
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", "  ", vb)
	errors.ValidateRequired("name", "My Build", vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "ownerID: is required")
	s.Assert().NotContains(err.Error(), "name")
}
