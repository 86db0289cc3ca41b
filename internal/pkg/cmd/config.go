package cmd

import (
	"github.com/placemarks-app/placemarks/internal/placemark/infra/places"
	"github.com/placemarks-app/placemarks/internal/session/infra/gotrue"
	"github.com/placemarks-app/placemarks/pkg/env"
)

const defaultSessionKeyPrefix = "placemarks/"

func MustAuthConfig() gotrue.Config {
	return gotrue.Config{
		BaseURL:   env.Must(env.ParseString("AUTH_BASE_URL")),
		APIKey:    env.Must(env.ParseString("AUTH_API_KEY")),
		KeyPrefix: env.ParseStringDefault("SESSION_KEY_PREFIX", defaultSessionKeyPrefix),
	}
}

func MustPlacesConfig() places.Config {
	return places.Config{
		BaseURL: env.Must(env.ParseString("PLACES_BASE_URL")),
		APIKey:  env.Must(env.ParseString("PLACES_API_KEY")),
	}
}
