package player

import (
	"io"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/monosim/internal/catalog"
	diceMocks "github.com/KirkDiggler/monosim/internal/dice/mocks"
	"github.com/KirkDiggler/monosim/internal/models"
	"github.com/KirkDiggler/monosim/internal/strategy"
	strategyMocks "github.com/KirkDiggler/monosim/internal/strategy/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlayerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRoller   *diceMocks.MockRoller
	mockStrategy *strategyMocks.MockStrategy

	table    *Table
	player   *Player
	opponent *Player
}

func (s *PlayerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockStrategy = strategyMocks.NewMockStrategy(s.mockCtrl)

	cat, err := catalog.Load()
	s.Require().NoError(err)

	s.table, err = NewTable(&TableConfig{Catalog: cat})
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.player, err = New(&Config{
		ID:         1,
		Name:       "alice",
		DiceRoller: s.mockRoller,
		Strategy:   s.mockStrategy,
		Logger:     logger,
	})
	s.Require().NoError(err)

	s.opponent, err = New(&Config{
		ID:         2,
		Name:       "bob",
		DiceRoller: s.mockRoller,
		Strategy:   s.mockStrategy,
		Logger:     logger,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.table.Seat(s.player))
	s.Require().NoError(s.table.Seat(s.opponent))
}

func (s *PlayerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PlayerTestSuite) asset(name string) *models.Asset {
	if a, ok := s.table.Catalog.Roads[name]; ok {
		return a
	}
	if a, ok := s.table.Catalog.Stations[name]; ok {
		return a
	}
	a, ok := s.table.Catalog.Utilities[name]
	s.Require().True(ok, "unknown asset %q", name)
	return a
}

func (s *PlayerTestSuite) buy(p *Player, names ...string) {
	for _, name := range names {
		s.Require().NoError(p.Buy(s.table, s.asset(name)))
	}
}

func (s *PlayerTestSuite) roll(first, second int) {
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(6).Return(first),
		s.mockRoller.EXPECT().Roll(6).Return(second),
	)
}

// assertInvariants recomputes the mortgage capacity and checks the
// mortgaged lists against the asset flags
func (s *PlayerTestSuite) assertInvariants(p *Player) {
	capacity := 0
	for _, kind := range []models.AssetKind{models.AssetRoad, models.AssetStation, models.AssetUtility} {
		mortgaged := 0
		for _, a := range *p.owned(kind) {
			s.Equal(p.ID(), a.Owner, a.Name)
			if a.Mortgaged {
				mortgaged++
				s.GreaterOrEqual(indexOf(*p.mortgaged(kind), a), 0, a.Name)
			} else {
				capacity += a.MortgageValue
			}
		}
		s.Len(*p.mortgaged(kind), mortgaged)
	}
	s.Equal(capacity, p.MortgageableAmount())
}

func (s *PlayerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{ID: 1})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{DiceRoller: s.mockRoller})
	s.ErrorIs(err, ErrInvalidPlayerID)

	p, err := New(&Config{ID: 3, Name: "carol", DiceRoller: s.mockRoller})
	s.Require().NoError(err)
	s.Equal(StartingCash, p.Cash())
	s.Equal(0, p.Position())
	s.False(p.HasLost())
}

func (s *PlayerTestSuite) TestSeatRejectsDuplicate() {
	s.ErrorIs(s.table.Seat(s.player), ErrDuplicateSeat)

	_, err := s.table.Player(9)
	s.ErrorIs(err, ErrUnknownPlayer)
}

func (s *PlayerTestSuite) TestBuyMortgageUnmortgageRoad() {
	road := s.asset("old kent road")

	s.Require().NoError(s.player.BuyRoad(s.table, road))
	s.Equal(1440, s.player.Cash())
	s.Equal(30, s.player.MortgageableAmount())
	s.Equal(5060, s.table.Bank.Cash)
	s.Equal(s.player.ID(), road.Owner)

	s.Require().NoError(s.player.Mortgage(s.table, road))
	s.Equal(1470, s.player.Cash())
	s.Equal(0, s.player.MortgageableAmount())
	s.True(road.Mortgaged)
	s.assertInvariants(s.player)

	s.Require().NoError(s.player.Unmortgage(s.table, road))
	s.Equal(1437, s.player.Cash())
	s.Equal(30, s.player.MortgageableAmount())
	s.Equal(5093, s.table.Bank.Cash)
	s.False(road.Mortgaged)
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestBuyStationAndUtility() {
	s.Require().NoError(s.player.BuyProperty(s.table, s.asset("kings cross station")))
	s.Require().NoError(s.player.BuyProperty(s.table, s.asset("electric company")))
	s.Equal(1150, s.player.Cash())
	s.Equal(175, s.player.MortgageableAmount())

	s.Require().NoError(s.player.Mortgage(s.table, s.asset("kings cross station")))
	s.Require().NoError(s.player.Mortgage(s.table, s.asset("electric company")))
	s.Equal(1325, s.player.Cash())
	s.Equal(0, s.player.MortgageableAmount())

	s.Require().NoError(s.player.UnmortgageAffordable(s.table))
	s.Equal(1132, s.player.Cash())
	s.Equal(175, s.player.MortgageableAmount())
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestBuyErrors() {
	s.ErrorIs(s.player.BuyRoad(s.table, s.asset("kings cross station")), ErrInvalidState)
	s.ErrorIs(s.player.BuyProperty(s.table, s.asset("mayfair")), ErrInvalidState)

	s.buy(s.opponent, "mayfair")
	s.ErrorIs(s.player.BuyRoad(s.table, s.asset("mayfair")), ErrInvalidOwnership)

	s.player.cash = 100
	s.ErrorIs(s.player.BuyRoad(s.table, s.asset("park lane")), ErrInsufficientFunds)
	s.Equal(100, s.player.Cash())
	s.Equal(models.NoOwner, s.asset("park lane").Owner)
}

func (s *PlayerTestSuite) TestMortgageErrors() {
	road := s.asset("old kent road")
	s.ErrorIs(s.player.Mortgage(s.table, road), ErrInvalidOwnership)

	s.buy(s.opponent, "old kent road")
	s.ErrorIs(s.player.Mortgage(s.table, road), ErrInvalidOwnership)
	s.ErrorIs(s.player.Unmortgage(s.table, road), ErrInvalidOwnership)

	s.Require().NoError(s.opponent.Mortgage(s.table, road))
	s.ErrorIs(s.opponent.Mortgage(s.table, road), ErrInvalidState)

	s.Require().NoError(s.opponent.Unmortgage(s.table, road))
	s.ErrorIs(s.opponent.Unmortgage(s.table, road), ErrInvalidState)
}

func (s *PlayerTestSuite) TestUnmortgageNeedsCash() {
	road := s.asset("old kent road")
	s.buy(s.player, "old kent road")
	s.Require().NoError(s.player.Mortgage(s.table, road))

	s.player.cash = 10
	s.ErrorIs(s.player.Unmortgage(s.table, road), ErrInsufficientFunds)
	s.True(road.Mortgaged)
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestColorGroupDetection() {
	s.buy(s.player, "old kent road")
	s.False(s.player.HasColorGroup(models.ColorBrown))

	s.buy(s.player, "whitechapel road")
	s.True(s.player.HasColorGroup(models.ColorBrown))

	s.buy(s.player, "the angel islington", "euston road")
	s.False(s.player.HasColorGroup(models.ColorLightBlue))

	s.buy(s.player, "pentonville road")
	s.True(s.player.HasColorGroup(models.ColorLightBlue))

	s.Require().NoError(s.player.Mortgage(s.table, s.asset("old kent road")))
	s.True(s.player.HasColorGroup(models.ColorBrown))
}

func (s *PlayerTestSuite) TestChooseMortgageCandidates() {
	_, err := s.player.ChooseMortgageCandidates(10)
	s.ErrorIs(err, ErrUnsatisfiableLiquidity)

	s.buy(s.player, "electric company", "kings cross station")

	chosen, err := s.player.ChooseMortgageCandidates(100)
	s.Require().NoError(err)
	s.Equal([]string{"kings cross station"}, names(chosen))

	chosen, err = s.player.ChooseMortgageCandidates(140)
	s.Require().NoError(err)
	s.Equal([]string{"kings cross station", "electric company"}, names(chosen))

	_, err = s.player.ChooseMortgageCandidates(176)
	s.ErrorIs(err, ErrUnsatisfiableLiquidity)

	s.buy(s.player, "old kent road")
	chosen, err = s.player.ChooseMortgageCandidates(120)
	s.Require().NoError(err)
	s.Equal([]string{"old kent road", "kings cross station"}, names(chosen))
}

func (s *PlayerTestSuite) TestRaiseFunds() {
	s.buy(s.player, "kings cross station", "electric company")
	cash := s.player.Cash()

	s.Require().NoError(s.player.RaiseFunds(s.table, 140))
	s.Equal(cash+175, s.player.Cash())
	s.True(s.asset("kings cross station").Mortgaged)
	s.True(s.asset("electric company").Mortgaged)
	s.assertInvariants(s.player)

	s.ErrorIs(s.player.RaiseFunds(s.table, 1), ErrUnsatisfiableLiquidity)
}

func (s *PlayerTestSuite) TestChooseUnmortgageCandidatesIsStrict() {
	road := s.asset("old kent road")
	s.buy(s.player, "old kent road")
	s.Require().NoError(s.player.Mortgage(s.table, road))

	s.player.cash = 33
	s.Empty(s.player.ChooseUnmortgageCandidates())

	s.player.cash = 34
	s.Equal([]string{"old kent road"}, names(s.player.ChooseUnmortgageCandidates()))
}

func (s *PlayerTestSuite) TestChooseUnmortgageCandidatesSkipsExpensive() {
	s.buy(s.player, "mayfair", "old kent road", "kings cross station")
	s.Require().NoError(s.player.RaiseFunds(s.table, 330))

	s.player.cash = 200
	s.Equal([]string{"old kent road", "kings cross station"}, names(s.player.ChooseUnmortgageCandidates()))
}

func (s *PlayerTestSuite) TestMortgageAndBuy() {
	s.buy(s.player, "kings cross station")
	s.player.cash = 100

	s.Require().NoError(s.player.MortgageAndBuy(s.table, s.asset("pall mall")))
	s.Equal(60, s.player.Cash())
	s.Equal(s.player.ID(), s.asset("pall mall").Owner)
	s.True(s.asset("kings cross station").Mortgaged)
	s.Equal(70, s.player.MortgageableAmount())
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestIsBankruptIsSticky() {
	s.player.cash = 10
	s.False(s.player.IsBankrupt(10))
	s.True(s.player.IsBankrupt(11))

	s.player.cash = 1000
	s.True(s.player.IsBankrupt(1))
	s.True(s.player.HasLost())
}

func (s *PlayerTestSuite) TestPayTaxLiquidatesShortfall() {
	s.buy(s.player, "old kent road")
	s.player.cash = 10

	s.Require().NoError(s.player.PayTax(s.table, 20, models.TransactionTax, "income tax"))
	s.Equal(20, s.player.Cash())
	s.True(s.asset("old kent road").Mortgaged)
	s.False(s.player.HasLost())

	s.Require().NoError(s.player.PayTax(s.table, 50, models.TransactionTax, "income tax"))
	s.True(s.player.HasLost())
	s.Equal(20, s.player.Cash())
}

func (s *PlayerTestSuite) TestEstimateRentRoad() {
	road := s.asset("old kent road")
	_, err := s.player.EstimateRent(s.table, road)
	s.ErrorIs(err, ErrInvalidOwnership)

	s.buy(s.opponent, "old kent road")
	rent, err := s.player.EstimateRent(s.table, road)
	s.Require().NoError(err)
	s.Equal(2, rent)

	s.buy(s.opponent, "whitechapel road")
	rent, err = s.player.EstimateRent(s.table, road)
	s.Require().NoError(err)
	s.Equal(4, rent)

	for houses := 1; houses <= models.MaxHouses; houses++ {
		s.Require().NoError(s.opponent.BuyHouse(s.table, "old kent road"))
		rent, err = s.player.EstimateRent(s.table, road)
		s.Require().NoError(err)
		s.Equal(road.RentWithHouses[houses-1], rent)
	}

	s.Require().NoError(s.opponent.BuyHotel(s.table, "old kent road"))
	rent, err = s.player.EstimateRent(s.table, road)
	s.Require().NoError(err)
	s.Equal(250, rent)
}

func (s *PlayerTestSuite) TestEstimateRentStation() {
	stations := []string{"kings cross station", "marylebone station", "fenchurch st. station", "liverpool st. station"}
	expected := []int{25, 50, 100, 200}

	for i, name := range stations {
		s.buy(s.opponent, name)
		rent, err := s.player.EstimateRent(s.table, s.asset(name))
		s.Require().NoError(err)
		s.Equal(expected[i], rent)
	}
}

func (s *PlayerTestSuite) TestEstimateRentUtility() {
	s.buy(s.opponent, "electric company")
	s.player.diceTotal = 6
	rent, err := s.player.EstimateRent(s.table, s.asset("electric company"))
	s.Require().NoError(err)
	s.Equal(24, rent)

	s.buy(s.opponent, "water works")
	s.player.diceTotal = 10
	rent, err = s.player.EstimateRent(s.table, s.asset("water works"))
	s.Require().NoError(err)
	s.Equal(100, rent)
}

func (s *PlayerTestSuite) TestRentStepFunctionsRejectImpossibleCounts() {
	_, err := stationRent(5)
	s.ErrorIs(err, ErrInvalidState)

	_, err = utilityRent(3, 7)
	s.ErrorIs(err, ErrInvalidState)
}

func (s *PlayerTestSuite) TestPayRentLiquidates() {
	s.buy(s.opponent, "mayfair", "park lane")
	s.buy(s.player, "kings cross station")
	s.player.cash = 10
	opponentCash := s.opponent.Cash()

	s.Require().NoError(s.player.PayRent(s.table, s.asset("mayfair")))
	s.Equal(10+100-100, s.player.Cash())
	s.Equal(opponentCash+100, s.opponent.Cash())
	s.True(s.asset("kings cross station").Mortgaged)
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestChooseBuildTarget() {
	_, _, ok := s.player.ChooseBuildTarget(s.table)
	s.False(ok)

	s.buy(s.player, "old kent road", "whitechapel road")
	road, building, ok := s.player.ChooseBuildTarget(s.table)
	s.Require().True(ok)
	s.Equal("old kent road", road)
	s.Equal(strategy.BuildingHouse, building)

	s.Require().NoError(s.player.BuyHouse(s.table, "old kent road"))
	road, _, _ = s.player.ChooseBuildTarget(s.table)
	s.Equal("whitechapel road", road)

	s.player.improvements["old kent road"] = models.Improvements{Houses: 4}
	s.player.improvements["whitechapel road"] = models.Improvements{Houses: 4}
	road, building, ok = s.player.ChooseBuildTarget(s.table)
	s.Require().True(ok)
	s.Equal("old kent road", road)
	s.Equal(strategy.BuildingHotel, building)

	s.player.improvements["old kent road"] = models.Improvements{Houses: 4, Hotels: 1}
	s.player.improvements["whitechapel road"] = models.Improvements{Houses: 4, Hotels: 1}
	_, _, ok = s.player.ChooseBuildTarget(s.table)
	s.False(ok)
}

func (s *PlayerTestSuite) TestChooseBuildTargetPriority() {
	s.buy(s.player, "old kent road", "whitechapel road", "park lane", "mayfair")

	road, _, ok := s.player.ChooseBuildTarget(s.table)
	s.Require().True(ok)
	s.Equal("park lane", road)

	s.player.improvements["park lane"] = models.Improvements{Houses: 4, Hotels: 1}
	s.player.improvements["mayfair"] = models.Improvements{Houses: 4, Hotels: 1}
	road, _, ok = s.player.ChooseBuildTarget(s.table)
	s.Require().True(ok)
	s.Equal("old kent road", road)
}

func (s *PlayerTestSuite) TestBuyHouseAndHotelErrors() {
	s.ErrorIs(s.player.BuyHouse(s.table, "old kent road"), ErrInvalidOwnership)
	s.ErrorIs(s.player.BuyHouse(s.table, "nowhere"), ErrInvalidState)

	s.buy(s.player, "old kent road", "whitechapel road")
	s.ErrorIs(s.player.BuyHotel(s.table, "old kent road"), ErrInvalidState)

	s.table.Bank.Houses = 0
	s.ErrorIs(s.player.BuyHouse(s.table, "old kent road"), ErrInvalidState)
	s.table.Bank.Houses = 32

	s.player.cash = 49
	s.ErrorIs(s.player.BuyHouse(s.table, "old kent road"), ErrInsufficientFunds)
	s.player.cash = 1000

	for i := 0; i < models.MaxHouses; i++ {
		s.Require().NoError(s.player.BuyHouse(s.table, "old kent road"))
	}
	s.ErrorIs(s.player.BuyHouse(s.table, "old kent road"), ErrInvalidState)
	s.Equal(28, s.table.Bank.Houses)

	s.Require().NoError(s.player.BuyHotel(s.table, "old kent road"))
	s.ErrorIs(s.player.BuyHotel(s.table, "old kent road"), ErrInvalidState)
	s.Equal(models.Improvements{Houses: 4, Hotels: 1}, s.player.Improvements("old kent road"))
	s.Equal(11, s.table.Bank.Hotels)
	s.Equal(1000-5*50, s.player.Cash())
}

func (s *PlayerTestSuite) TestStreetRepair() {
	s.buy(s.player, "old kent road", "whitechapel road", "the angel islington", "euston road", "pentonville road")
	s.player.cash = 900

	s.Require().NoError(s.player.BuyHouse(s.table, "old kent road"))
	s.Equal(850, s.player.Cash())
	s.Require().NoError(s.player.StreetRepair(s.table))
	s.Equal(810, s.player.Cash())

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.player.BuyHouse(s.table, "old kent road"))
	}
	s.Require().NoError(s.player.BuyHotel(s.table, "old kent road"))
	s.Equal(610, s.player.Cash())
	s.Require().NoError(s.player.StreetRepair(s.table))
	s.Equal(335, s.player.Cash())

	for i := 0; i < 4; i++ {
		s.Require().NoError(s.player.BuyHouse(s.table, "whitechapel road"))
	}
	s.Require().NoError(s.player.BuyHotel(s.table, "whitechapel road"))
	s.Equal(85, s.player.Cash())

	// 8 houses and 2 hotels cost 550 against 85 cash and 220 of mortgages
	s.Require().NoError(s.player.StreetRepair(s.table))
	s.True(s.player.HasLost())
	s.Equal(85, s.player.Cash())
	s.Equal(220, s.player.MortgageableAmount())
}

func (s *PlayerTestSuite) TestStreetRepairWithoutBuildings() {
	s.buy(s.player, "old kent road", "whitechapel road")
	cash := s.player.Cash()
	s.Require().NoError(s.player.StreetRepair(s.table))
	s.Equal(cash, s.player.Cash())
}

func (s *PlayerTestSuite) TestCommunityChestRotates() {
	s.Require().NoError(s.player.PlayCommunityChest(s.table))
	s.Equal(StartingCash, s.player.Cash())
	s.Equal(models.CardStreetRepair, s.table.Deck.Cards[len(s.table.Deck.Cards)-1])

	s.Require().NoError(s.player.PlayCommunityChest(s.table))
	s.Equal(StartingCash+50, s.player.Cash())
	s.Equal(models.CardHolidayFund, s.table.Deck.Cards[0])
}

func (s *PlayerTestSuite) TestCommunityChestCards() {
	tests := []struct {
		card     models.CardID
		cash     int
		position int
	}{
		{card: models.CardBankError, cash: StartingCash + 200, position: 2},
		{card: models.CardIncomeTax, cash: StartingCash + 20, position: 2},
		{card: models.CardHospitalFees, cash: StartingCash - 100, position: 2},
		{card: models.CardDoctorFees, cash: StartingCash - 50, position: 2},
		{card: models.CardToGo, cash: StartingCash + 200, position: 0},
		{card: models.CardJail, cash: StartingCash, position: 10},
	}

	for _, tt := range tests {
		s.Run(string(tt.card), func() {
			s.player.cash = StartingCash
			s.player.position = 2
			s.table.Deck = models.NewDeck([]models.CardID{tt.card})

			s.Require().NoError(s.player.PlayCommunityChest(s.table))
			s.Equal(tt.cash, s.player.Cash())
			s.Equal(tt.position, s.player.Position())
		})
	}
}

func (s *PlayerTestSuite) TestCommunityChestUnknownCard() {
	s.table.Deck = models.NewDeck([]models.CardID{"lottery"})
	s.ErrorIs(s.player.PlayCommunityChest(s.table), ErrInvalidState)
}

func (s *PlayerTestSuite) TestTakeTurnBuysUnownedRoad() {
	s.roll(2, 1)
	s.mockStrategy.EXPECT().BuyOrBid(gomock.Any(), gomock.Any()).Return(strategy.DecisionBuy)
	s.mockStrategy.EXPECT().WantsToUnmortgage(gomock.Any()).Return(false)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(3, s.player.Position())
	s.Equal(3, s.player.DiceTotal())
	s.Equal(1440, s.player.Cash())
	s.Equal(s.player.ID(), s.asset("whitechapel road").Owner)

	journal := s.table.Drain()
	s.Require().Len(journal, 1)
	s.Equal(models.TransactionPurchase, journal[0].Reason)
	s.Equal(60, journal[0].Amount)
	s.Empty(s.table.Drain())
}

func (s *PlayerTestSuite) TestTakeTurnMortgagesToBuy() {
	s.buy(s.player, "kings cross station")
	s.player.cash = 300
	s.player.position = 36

	s.roll(1, 2)
	s.mockStrategy.EXPECT().MortgageOrBid(gomock.Any(), gomock.Any()).Return(strategy.DecisionMortgage)
	s.mockStrategy.EXPECT().WantsToUnmortgage(gomock.Any()).Return(false)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(39, s.player.Position())
	s.Equal(0, s.player.Cash())
	s.Equal(s.player.ID(), s.asset("mayfair").Owner)
	s.True(s.asset("kings cross station").Mortgaged)
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestTakeTurnCannotAffordGoesToBid() {
	s.player.cash = 300
	s.player.position = 36

	// Only the dice are expected: no strategy is asked about the purchase
	s.roll(1, 2)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(39, s.player.Position())
	s.Equal(300, s.player.Cash())
	s.Equal(models.NoOwner, s.asset("mayfair").Owner)
	s.Empty(s.table.Drain())
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestTakeTurnCannotAffordEvenWithMortgagesGoesToBid() {
	s.buy(s.player, "kings cross station")
	s.table.Drain()
	s.player.cash = 250
	s.player.position = 36
	s.Less(s.player.Cash()+s.player.MortgageableAmount(), s.asset("mayfair").Price)

	s.roll(1, 2)
	s.mockStrategy.EXPECT().WantsToUnmortgage(gomock.Any()).Return(false)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(39, s.player.Position())
	s.Equal(250, s.player.Cash())
	s.Equal(models.NoOwner, s.asset("mayfair").Owner)
	s.False(s.asset("kings cross station").Mortgaged)
	s.Empty(s.table.Drain())
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestTakeTurnPassesGo() {
	s.player.position = 38
	s.roll(2, 3)
	s.mockStrategy.EXPECT().BuyOrBid(gomock.Any(), gomock.Any()).Return(strategy.DecisionBid)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(3, s.player.Position())
	s.Equal(StartingCash+PassGoBonus, s.player.Cash())
	s.Equal(models.NoOwner, s.asset("whitechapel road").Owner)
}

func (s *PlayerTestSuite) TestTakeTurnGoToJailThenWait() {
	s.player.position = 25
	s.roll(2, 3)
	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(10, s.player.Position())
	s.Equal(StartingCash, s.player.Cash())

	s.roll(1, 2)
	s.mockStrategy.EXPECT().PayOrWait(gomock.Any()).Return(strategy.JailWait)
	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(10, s.player.Position())
	s.Equal(1, s.player.JailCount())
}

func (s *PlayerTestSuite) TestTakeTurnJailPay() {
	s.player.GoToJail(s.table)
	s.roll(1, 2)
	s.mockStrategy.EXPECT().PayOrWait(gomock.Any()).Return(strategy.JailPay)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(13, s.player.Position())
	s.Equal(StartingCash-JailFee, s.player.Cash())
	s.Equal(0, s.player.JailCount())
}

func (s *PlayerTestSuite) TestTakeTurnJailDoubleReleases() {
	s.player.GoToJail(s.table)
	s.player.jailCount = 2
	s.roll(3, 3)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(16, s.player.Position())
	s.Equal(0, s.player.JailCount())
	s.Equal(StartingCash, s.player.Cash())
	s.Equal(models.NoOwner, s.asset("bow street").Owner)
}

func (s *PlayerTestSuite) TestTakeTurnStuckPays() {
	s.player.GoToJail(s.table)
	s.player.jailCount = MaxJailRounds
	s.roll(1, 2)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(13, s.player.Position())
	s.Equal(StartingCash-JailFee, s.player.Cash())
	s.Equal(0, s.player.JailCount())
}

func (s *PlayerTestSuite) TestTakeTurnStuckBankrupt() {
	s.player.GoToJail(s.table)
	s.player.jailCount = MaxJailRounds
	s.player.cash = 20
	s.roll(1, 2)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.True(s.player.HasLost())
	s.Equal(10, s.player.Position())
	s.Equal(20, s.player.Cash())

	// frozen: no further rolls
	s.Require().NoError(s.player.TakeTurn(s.table))
}

func (s *PlayerTestSuite) TestPayOrWaitInLastRoundIsInvalid() {
	s.player.jailCount = MaxJailRounds
	_, err := s.player.PayOrWait()
	s.ErrorIs(err, ErrInvalidState)
}

func (s *PlayerTestSuite) TestTakeTurnFreeVisit() {
	s.player.position = 7
	s.roll(1, 2)
	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(10, s.player.Position())
	s.True(s.player.freeVisit)

	s.roll(2, 3)
	s.mockStrategy.EXPECT().BuyOrBid(gomock.Any(), gomock.Any()).Return(strategy.DecisionBid)
	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(15, s.player.Position())
	s.False(s.player.freeVisit)
}

func (s *PlayerTestSuite) TestTakeTurnPaysRent() {
	s.buy(s.opponent, "kings cross station")
	opponentCash := s.opponent.Cash()

	s.roll(2, 3)
	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(StartingCash-25, s.player.Cash())
	s.Equal(opponentCash+25, s.opponent.Cash())
}

func (s *PlayerTestSuite) TestTakeTurnMortgagedAssetChargesNothing() {
	s.buy(s.opponent, "kings cross station")
	s.Require().NoError(s.opponent.Mortgage(s.table, s.asset("kings cross station")))

	s.roll(2, 3)
	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(StartingCash, s.player.Cash())
}

func (s *PlayerTestSuite) TestTakeTurnPaysIncomeTax() {
	s.roll(1, 3)
	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(StartingCash-200, s.player.Cash())
	s.Equal(5200, s.table.Bank.Cash)
}

func (s *PlayerTestSuite) TestTakeTurnBuildsAndUnmortgages() {
	s.buy(s.player, "old kent road", "whitechapel road", "kings cross station")
	s.Require().NoError(s.player.Mortgage(s.table, s.asset("kings cross station")))
	s.player.position = 17
	cash := s.player.Cash()

	// lands on free parking
	s.roll(1, 2)
	s.mockStrategy.EXPECT().WantsToBuild(gomock.Any()).Return(true)
	s.mockStrategy.EXPECT().WantsToUnmortgage(gomock.Any()).Return(true)

	s.Require().NoError(s.player.TakeTurn(s.table))
	s.Equal(models.Improvements{Houses: 1}, s.player.Improvements("old kent road"))
	s.False(s.asset("kings cross station").Mortgaged)
	s.Equal(cash-50-110, s.player.Cash())
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestBuildMortgagesOnlyWhenAllowed() {
	s.buy(s.player, "old kent road", "whitechapel road")
	s.player.cash = 10

	s.mockStrategy.EXPECT().MortgageToBuild(gomock.Any(), strategy.BuildingHouse).Return(false)
	s.Require().NoError(s.player.build(s.table))
	s.Equal(models.Improvements{}, s.player.Improvements("old kent road"))

	s.mockStrategy.EXPECT().MortgageToBuild(gomock.Any(), strategy.BuildingHouse).Return(true)
	s.Require().NoError(s.player.build(s.table))
	s.Equal(models.Improvements{Houses: 1}, s.player.Improvements("old kent road"))
	s.Equal(10+60-50, s.player.Cash())
	s.assertInvariants(s.player)
}

func (s *PlayerTestSuite) TestSnapshot() {
	s.buy(s.player, "old kent road", "whitechapel road", "water works")
	s.Require().NoError(s.player.Mortgage(s.table, s.asset("water works")))
	s.Require().NoError(s.player.BuyHouse(s.table, "old kent road"))

	state := s.player.Snapshot(s.table)
	s.Equal(models.PlayerID(1), state.ID)
	s.Equal("alice", state.Name)
	s.Equal([]string{"old kent road", "whitechapel road"}, state.OwnedRoads)
	s.Equal([]string{"water works"}, state.OwnedUtilities)
	s.Equal([]string{"water works"}, state.MortgagedUtilities)
	s.Empty(state.MortgagedRoads)
	s.True(state.OwnedColors[models.ColorBrown])
	s.Equal(1, state.Improvements["old kent road"].Houses)
	s.Equal(60, state.MortgageableAmount)
	s.Equal(s.table.Bank.Cash, state.BankCash)

	state.Improvements["old kent road"] = models.Improvements{}
	s.Equal(1, s.player.Improvements("old kent road").Houses)
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerTestSuite))
}
