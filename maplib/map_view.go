package maplib

import (
	"github.com/samber/lo"
)

const (
	DefaultZoom = 2

	// OriginIcon is a marker drawn at the viewer location.
	OriginIcon = "https://upload.wikimedia.org/wikipedia/commons/e/ec/RedDot.svg"
)

type MapPoint struct {
	IP          string  `json:"ip"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	CountryName string  `json:"country_name"`
	Org         string  `json:"org"`
	Service     string  `json:"service"`
}

type MapLine struct {
	StartLatitude  float64 `json:"start_lat"`
	StartLongitude float64 `json:"start_lon"`
	EndLatitude    float64 `json:"end_lat"`
	EndLongitude   float64 `json:"end_lon"`
}

type MapMarker struct {
	IP        string  `json:"ip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Icon      string  `json:"icon"`
}

type MapViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// MapView is everything a frontend needs to draw a map.
type MapView struct {
	Points []MapPoint   `json:"points"`
	Lines  []MapLine    `json:"lines"`
	Origin *MapMarker   `json:"origin"`
	View   MapViewState `json:"view"`
}

// NewMapView builds a view from geolocated records. origin may be nil:
// in that case there are no lines and no origin marker. Records with
// Origin flag are not drawn as points, the marker stands for them.
//
// Camera is centered at the mean coordinates of all records.
func NewMapView(records []Record, origin *Record, zoom int) (MapView, error) {
	if len(records) == 0 {
		return MapView{}, ErrNoData
	}

	if zoom <= 0 {
		zoom = DefaultZoom
	}

	rv := MapView{
		Points: []MapPoint{},
		Lines:  []MapLine{},
		View: MapViewState{
			Latitude:  lo.SumBy(records, func(r Record) float64 { return r.Latitude }) / float64(len(records)),
			Longitude: lo.SumBy(records, func(r Record) float64 { return r.Longitude }) / float64(len(records)),
			Zoom:      zoom,
		},
	}

	if origin != nil {
		rv.Origin = &MapMarker{
			IP:        origin.IP,
			Latitude:  origin.Latitude,
			Longitude: origin.Longitude,
			Icon:      OriginIcon,
		}
	}

	for _, v := range records {
		if v.Origin {
			continue
		}

		rv.Points = append(rv.Points, MapPoint{
			IP:          v.IP,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			City:        v.City,
			Region:      v.Region,
			Country:     v.Country,
			CountryName: CountryName(v.Country),
			Org:         v.Org,
			Service:     v.Service,
		})

		if origin != nil {
			rv.Lines = append(rv.Lines, MapLine{
				StartLatitude:  origin.Latitude,
				StartLongitude: origin.Longitude,
				EndLatitude:    v.Latitude,
				EndLongitude:   v.Longitude,
			})
		}
	}

	return rv, nil
}
