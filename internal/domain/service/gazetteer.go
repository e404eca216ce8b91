package service

import (
	"strings"

	"LocalLoop-App/internal/domain/model"
)

// GazetteerEntry maps a known place-name substring to a fixed city-center
// coordinate.
type GazetteerEntry struct {
	Place    string
	Location model.LatLng
}

// DefaultGazetteer is the last-resort lookup table for addresses no provider
// could resolve. Entries are scanned in declaration order and the first
// substring match wins, so more specific names come before broader ones.
var DefaultGazetteer = []GazetteerEntry{
	{Place: "oakville", Location: model.LatLng{Lat: 43.4675, Lng: -79.6877}},
	{Place: "burlington", Location: model.LatLng{Lat: 43.3255, Lng: -79.7990}},
	{Place: "mississauga", Location: model.LatLng{Lat: 43.5890, Lng: -79.6441}},
	{Place: "milton", Location: model.LatLng{Lat: 43.5183, Lng: -79.8774}},
	{Place: "hamilton", Location: model.LatLng{Lat: 43.2557, Lng: -79.8711}},
	{Place: "brampton", Location: model.LatLng{Lat: 43.7315, Lng: -79.7624}},
	{Place: "etobicoke", Location: model.LatLng{Lat: 43.6205, Lng: -79.5132}},
	{Place: "north york", Location: model.LatLng{Lat: 43.7615, Lng: -79.4111}},
	{Place: "scarborough", Location: model.LatLng{Lat: 43.7764, Lng: -79.2318}},
	{Place: "toronto", Location: model.LatLng{Lat: 43.6532, Lng: -79.3832}},
}

// LookupGazetteer scans the address for a known place-name substring
// (case-insensitive) and returns the fixed coordinate of the first match.
func LookupGazetteer(gazetteer []GazetteerEntry, address string) *model.LatLng {
	lowered := strings.ToLower(address)
	for _, entry := range gazetteer {
		if strings.Contains(lowered, entry.Place) {
			location := entry.Location
			return &location
		}
	}
	return nil
}
