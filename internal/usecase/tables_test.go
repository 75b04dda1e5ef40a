//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase"
	"tablebook/internal/usecase/readmodel"
	usecasemock "tablebook/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TablesUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	tableRepo *usecasemock.MockTableRepository
	uc        usecase.TablesUseCase
}

func (s *TablesUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.tableRepo = usecasemock.NewMockTableRepository(s.mockCtrl)
	s.uc = usecase.NewTablesUseCase(s.tableRepo, 5*time.Second)
}

func TestTablesUseCaseSuite(t *testing.T) {
	suite.Run(t, new(TablesUseCaseTestSuite))
}

func validTableParams() usecase.CreateTableParams {
	return usecase.CreateTableParams{ID: 1, Number: 5, Places: 4, IsVip: false}
}

func (s *TablesUseCaseTestSuite) TestCreate() {
	s.Run("success", func() {
		s.SetupTest()
		s.tableRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		id, err := s.uc.Create(context.Background(), validTableParams())
		s.NoError(err)
		s.Equal(1, id)
	})

	s.Run("error: duplicate id maps to already-exists", func() {
		s.SetupTest()
		s.tableRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate id", nil, infra.KindDuplicateKey))

		_, err := s.uc.Create(context.Background(), validTableParams())
		s.True(errs.Is(err, usecase.ErrTableAlreadyExists))
	})

	s.Run("error: invalid fields rejected with no store calls", func() {
		cases := []struct {
			name   string
			mutate func(*usecase.CreateTableParams)
			field  string
		}{
			{name: "zero id", mutate: func(p *usecase.CreateTableParams) { p.ID = 0 }, field: "id"},
			{name: "zero number", mutate: func(p *usecase.CreateTableParams) { p.Number = 0 }, field: "number"},
			{name: "zero places", mutate: func(p *usecase.CreateTableParams) { p.Places = 0 }, field: "places"},
			{name: "negative minOrder", mutate: func(p *usecase.CreateTableParams) { m := -1; p.MinOrder = &m }, field: "minOrder"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				params := validTableParams()
				tc.mutate(&params)

				_, err := s.uc.Create(context.Background(), params)
				s.True(errs.Is(err, usecase.ErrValidation))
				s.Contains(err.Error(), tc.field)
			})
		}
	})
}

func (s *TablesUseCaseTestSuite) TestGetByNumber() {
	s.Run("success", func() {
		s.SetupTest()
		expected := &readmodel.TableRM{ID: 1, Number: 5, Places: 4}
		s.tableRepo.EXPECT().FindByNumber(gomock.Any(), 5).Return(expected, nil)

		got, err := s.uc.GetByNumber(context.Background(), 5)
		s.NoError(err)
		s.Equal(expected, got)
	})

	s.Run("error: unknown number maps to not-found", func() {
		s.SetupTest()
		s.tableRepo.EXPECT().FindByNumber(gomock.Any(), 99).
			Return(nil, infra.WrapRepoErr("table not found", nil, infra.KindNotFound))

		_, err := s.uc.GetByNumber(context.Background(), 99)
		s.True(errs.Is(err, usecase.ErrTableNotFound))
	})
}

func (s *TablesUseCaseTestSuite) TestList() {
	s.Run("success", func() {
		s.SetupTest()
		expected := []*readmodel.TableRM{{ID: 1, Number: 5, Places: 4}}
		s.tableRepo.EXPECT().List(gomock.Any()).Return(expected, nil)

		got, err := s.uc.List(context.Background())
		s.NoError(err)
		s.Equal(expected, got)
	})
}
