package maplib_test

import (
	"testing"

	"github.com/9seconds/ipmapper/maplib"
	"github.com/stretchr/testify/suite"
)

type MapViewTestSuite struct {
	suite.Suite

	origin  maplib.Record
	records []maplib.Record
}

func (suite *MapViewTestSuite) SetupTest() {
	suite.origin = maplib.Record{
		IP:        "203.0.113.1",
		Latitude:  50,
		Longitude: 10,
		Country:   "Germany",
		Origin:    true,
	}
	suite.records = []maplib.Record{
		{
			IP:        "8.8.8.8",
			Latitude:  40,
			Longitude: -100,
			City:      "Mountain View",
			Region:    "California",
			Country:   "US",
			Service:   "ipinfo.io",
		},
		{
			IP:        "1.1.1.1",
			Latitude:  -30,
			Longitude: 150,
			City:      "Sydney",
			Region:    "New South Wales",
			Country:   "DE",
			Service:   "ipinfo.io",
		},
	}
}

func (suite *MapViewTestSuite) TestNoRecords() {
	_, err := maplib.NewMapView(nil, &suite.origin, 0)

	suite.ErrorIs(err, maplib.ErrNoData)
}

func (suite *MapViewTestSuite) TestWithOrigin() {
	view, err := maplib.NewMapView(suite.records, &suite.origin, 0)

	suite.NoError(err)
	suite.Len(view.Points, 2)
	suite.Len(view.Lines, 2)
	suite.NotNil(view.Origin)
	suite.Equal("203.0.113.1", view.Origin.IP)
	suite.Equal(maplib.OriginIcon, view.Origin.Icon)

	for i, v := range view.Lines {
		suite.EqualValues(50, v.StartLatitude)
		suite.EqualValues(10, v.StartLongitude)
		suite.Equal(suite.records[i].Latitude, v.EndLatitude)
		suite.Equal(suite.records[i].Longitude, v.EndLongitude)
	}

	suite.InDelta(5, view.View.Latitude, 0.0001)
	suite.InDelta(25, view.View.Longitude, 0.0001)
	suite.Equal(maplib.DefaultZoom, view.View.Zoom)
}

func (suite *MapViewTestSuite) TestWithoutOrigin() {
	view, err := maplib.NewMapView(suite.records, nil, 5)

	suite.NoError(err)
	suite.Len(view.Points, 2)
	suite.Empty(view.Lines)
	suite.Nil(view.Origin)
	suite.Equal(5, view.View.Zoom)
}

func (suite *MapViewTestSuite) TestOriginRecordIsNotAPoint() {
	records := append([]maplib.Record{suite.origin}, suite.records...)
	view, err := maplib.NewMapView(records, &suite.origin, 0)

	suite.NoError(err)
	suite.Len(view.Points, 2)
	suite.Len(view.Lines, 2)
	suite.InDelta(20.0, view.View.Latitude, 0.0001)
	suite.InDelta(20.0, view.View.Longitude, 0.0001)

	for _, v := range view.Points {
		suite.NotEqual(suite.origin.IP, v.IP)
	}
}

func (suite *MapViewTestSuite) TestCountryNames() {
	view, err := maplib.NewMapView(suite.records, nil, 0)

	suite.NoError(err)
	suite.Equal("US", view.Points[0].Country)
	suite.Equal("DE", view.Points[1].Country)
	suite.Equal("Germany", view.Points[1].CountryName)
}

func TestMapView(t *testing.T) {
	suite.Run(t, &MapViewTestSuite{})
}
