// Package catalog holds the built-in reference dataset used to seed a
// development database: the city catalog, per-month base sub-scores,
// and season calendars. Production deployments replace the scores via
// the offline normalization pipeline.
package catalog

import (
	"github.com/bangtaeuk/whereorwhen/internal/database"
)

// Cities is the fixed city catalog in display order.
var Cities = []database.CityRow{
	{ID: "tokyo", Name: "Tokyo", NameLocal: "東京", CountryCode: "JP", CurrencyCode: "JPY", Lat: 35.6762, Lon: 139.6503, SortOrder: 1},
	{ID: "osaka", Name: "Osaka", NameLocal: "大阪", CountryCode: "JP", CurrencyCode: "JPY", Lat: 34.6937, Lon: 135.5023, SortOrder: 2},
	{ID: "fukuoka", Name: "Fukuoka", NameLocal: "福岡", CountryCode: "JP", CurrencyCode: "JPY", Lat: 33.5904, Lon: 130.4017, SortOrder: 3},
	{ID: "taipei", Name: "Taipei", NameLocal: "台北", CountryCode: "TW", CurrencyCode: "TWD", Lat: 25.0330, Lon: 121.5654, SortOrder: 4},
	{ID: "bangkok", Name: "Bangkok", NameLocal: "กรุงเทพฯ", CountryCode: "TH", CurrencyCode: "THB", Lat: 13.7563, Lon: 100.5018, SortOrder: 5},
	{ID: "danang", Name: "Da Nang", NameLocal: "Đà Nẵng", CountryCode: "VN", CurrencyCode: "VND", Lat: 16.0545, Lon: 108.2022, SortOrder: 6},
	{ID: "singapore", Name: "Singapore", NameLocal: "Singapore", CountryCode: "SG", CurrencyCode: "SGD", Lat: 1.3521, Lon: 103.8198, SortOrder: 7},
	{ID: "paris", Name: "Paris", NameLocal: "Paris", CountryCode: "FR", CurrencyCode: "EUR", Lat: 48.8566, Lon: 2.3522, SortOrder: 8},
	{ID: "barcelona", Name: "Barcelona", NameLocal: "Barcelona", CountryCode: "ES", CurrencyCode: "EUR", Lat: 41.3874, Lon: 2.1686, SortOrder: 9},
	{ID: "sydney", Name: "Sydney", NameLocal: "Sydney", CountryCode: "AU", CurrencyCode: "AUD", Lat: -33.8688, Lon: 151.2093, SortOrder: 10},
}

// MonthlySubScores maps city id to twelve months of normalized
// sub-scores in {weather, cost, crowd, buzz} order, January first.
// Values come from the offline normalization of climate, price-level,
// holiday-density, and search-trend data.
var MonthlySubScores = map[string][12][4]float64{
	"tokyo": {
		{6.0, 7.5, 7.0, 6.5}, {6.5, 7.5, 7.5, 6.5}, {8.0, 6.5, 5.5, 8.5},
		{9.0, 6.0, 4.5, 9.5}, {8.5, 6.5, 6.0, 7.5}, {5.5, 7.5, 7.5, 6.0},
		{4.5, 7.0, 6.0, 6.5}, {4.0, 6.5, 5.0, 6.5}, {6.5, 7.0, 6.5, 6.5},
		{8.5, 6.5, 5.5, 8.0}, {8.5, 6.0, 5.0, 8.5}, {7.0, 6.5, 5.5, 7.5},
	},
	"osaka": {
		{6.0, 7.5, 7.5, 6.0}, {6.5, 7.5, 7.5, 6.0}, {8.0, 6.5, 6.0, 8.0},
		{9.0, 6.0, 5.0, 9.0}, {8.5, 6.5, 6.5, 7.0}, {5.5, 7.5, 7.5, 5.5},
		{4.5, 7.0, 6.5, 6.0}, {4.5, 6.5, 5.5, 6.0}, {6.5, 7.0, 7.0, 6.0},
		{8.5, 6.5, 6.0, 7.5}, {8.5, 6.0, 5.5, 8.0}, {7.0, 6.5, 6.0, 7.0},
	},
	"fukuoka": {
		{6.0, 8.0, 8.0, 5.5}, {6.5, 8.0, 8.0, 5.5}, {8.0, 7.0, 7.0, 7.0},
		{8.5, 6.5, 6.0, 7.5}, {8.5, 7.0, 7.0, 6.5}, {5.5, 7.5, 8.0, 5.5},
		{4.5, 7.5, 7.0, 5.5}, {4.5, 7.0, 6.5, 5.5}, {6.5, 7.5, 7.5, 5.5},
		{8.0, 7.0, 7.0, 6.5}, {8.0, 7.0, 6.5, 7.0}, {6.5, 7.5, 7.0, 6.0},
	},
	"taipei": {
		{6.5, 7.5, 7.0, 6.0}, {6.0, 7.0, 6.0, 6.5}, {7.0, 7.5, 7.0, 6.5},
		{7.5, 7.5, 7.0, 6.5}, {7.0, 7.5, 7.5, 6.0}, {5.5, 7.5, 7.5, 5.5},
		{5.0, 7.0, 7.0, 6.0}, {5.0, 7.0, 7.0, 5.5}, {6.0, 7.5, 7.5, 5.5},
		{7.5, 7.5, 7.0, 6.5}, {8.0, 7.5, 7.0, 6.5}, {7.0, 7.0, 6.5, 6.5},
	},
	"bangkok": {
		{8.5, 8.0, 5.5, 7.5}, {8.0, 8.0, 6.5, 7.0}, {6.5, 8.5, 7.0, 6.5},
		{5.0, 8.0, 5.5, 7.5}, {5.0, 8.5, 8.0, 6.0}, {4.5, 8.5, 8.5, 5.5},
		{4.5, 8.5, 8.0, 5.5}, {4.5, 8.5, 8.0, 5.5}, {4.5, 8.5, 8.5, 5.5},
		{5.5, 8.5, 8.0, 6.0}, {7.5, 8.0, 7.0, 7.0}, {8.5, 7.5, 5.0, 8.0},
	},
	"danang": {
		{7.0, 9.0, 7.5, 6.5}, {7.5, 9.0, 7.0, 7.0}, {8.0, 9.0, 7.5, 7.0},
		{8.5, 8.5, 7.0, 7.5}, {8.5, 8.5, 7.0, 7.0}, {8.0, 8.5, 6.5, 7.0},
		{7.5, 8.5, 6.0, 7.0}, {7.5, 8.5, 6.5, 6.5}, {6.0, 9.0, 8.0, 6.0},
		{4.5, 9.0, 8.5, 5.5}, {4.0, 9.0, 8.5, 5.5}, {5.5, 9.0, 8.0, 6.0},
	},
	"singapore": {
		{6.0, 5.5, 6.5, 6.5}, {6.5, 5.5, 6.5, 6.5}, {6.5, 5.5, 7.0, 6.5},
		{6.5, 5.5, 7.0, 6.5}, {6.5, 5.5, 7.0, 6.5}, {6.5, 5.5, 6.0, 7.0},
		{6.5, 5.0, 6.0, 7.0}, {6.5, 5.0, 6.5, 7.0}, {6.5, 5.5, 7.0, 6.5},
		{6.5, 5.5, 7.0, 6.5}, {6.0, 5.5, 6.5, 6.5}, {6.0, 5.0, 5.5, 7.0},
	},
	"paris": {
		{4.5, 6.5, 7.5, 6.0}, {5.0, 6.5, 7.5, 6.0}, {6.0, 6.0, 7.0, 6.5},
		{7.0, 6.0, 6.5, 7.5}, {8.0, 5.5, 5.5, 8.0}, {8.5, 5.0, 4.5, 8.5},
		{8.0, 4.5, 4.0, 8.0}, {7.5, 4.5, 4.5, 7.5}, {8.0, 5.5, 5.5, 7.5},
		{7.0, 6.0, 6.5, 7.0}, {5.5, 6.5, 7.5, 6.5}, {5.0, 6.0, 6.0, 7.5},
	},
	"barcelona": {
		{5.5, 7.0, 8.0, 5.5}, {6.0, 7.0, 8.0, 5.5}, {7.0, 6.5, 7.5, 6.5},
		{7.5, 6.5, 7.0, 7.0}, {8.5, 6.0, 6.0, 7.5}, {9.0, 5.5, 5.0, 8.0},
		{8.5, 5.0, 4.0, 8.0}, {8.5, 5.0, 4.0, 7.5}, {8.5, 6.0, 5.5, 7.5},
		{7.5, 6.5, 6.5, 7.0}, {6.5, 7.0, 7.5, 6.0}, {5.5, 6.5, 7.0, 6.0},
	},
	"sydney": {
		{8.0, 5.0, 4.5, 8.0}, {8.0, 5.0, 5.0, 7.5}, {7.5, 5.5, 6.0, 7.0},
		{7.0, 6.0, 6.5, 6.5}, {6.0, 6.5, 7.5, 6.0}, {5.0, 6.5, 7.5, 5.5},
		{5.0, 6.5, 7.0, 6.0}, {5.5, 6.5, 7.0, 6.0}, {6.5, 6.0, 6.5, 6.5},
		{7.5, 5.5, 6.0, 7.0}, {8.0, 5.5, 5.5, 7.5}, {8.5, 5.0, 4.5, 8.0},
	},
}

// Seasons lists the named local periods per city.
var Seasons = []database.SeasonRow{
	{CityID: "tokyo", Name: "cherry blossom", StartMonth: 3, StartDay: 20, EndMonth: 4, EndDay: 10},
	{CityID: "tokyo", Name: "autumn foliage", StartMonth: 11, StartDay: 15, EndMonth: 12, EndDay: 5},
	{CityID: "osaka", Name: "cherry blossom", StartMonth: 3, StartDay: 25, EndMonth: 4, EndDay: 12},
	{CityID: "fukuoka", Name: "cherry blossom", StartMonth: 3, StartDay: 22, EndMonth: 4, EndDay: 8},
	{CityID: "taipei", Name: "lantern festival", StartMonth: 2, StartDay: 5, EndMonth: 2, EndDay: 20},
	{CityID: "bangkok", Name: "songkran", StartMonth: 4, StartDay: 13, EndMonth: 4, EndDay: 15},
	{CityID: "bangkok", Name: "cool season", StartMonth: 11, StartDay: 1, EndMonth: 2, EndDay: 15},
	{CityID: "danang", Name: "dry season", StartMonth: 2, StartDay: 1, EndMonth: 5, EndDay: 31},
	{CityID: "paris", Name: "christmas markets", StartMonth: 11, StartDay: 25, EndMonth: 12, EndDay: 26},
	{CityID: "barcelona", Name: "la merce festival", StartMonth: 9, StartDay: 20, EndMonth: 9, EndDay: 25},
	{CityID: "sydney", Name: "jacaranda bloom", StartMonth: 10, StartDay: 20, EndMonth: 11, EndDay: 20},
}
