// Package tool provides the data-API tools that geoagents demos register
// with their agents.
//
// Every tool implements the langchaingo tools.Tool interface
// (Name/Description/Call) so it can be handed directly to the langgraphgo
// prebuilt agents. Tool input arrives as a single string chosen by the
// model; tools with more than one argument accept either a JSON object or
// a simple comma/semicolon delimited form, parsed leniently.
//
// # Available tools
//
//   - Elevation: point elevation in meters from the USGS EPQS service
//   - StaticMap: rendered map image from the Google Static Maps API
//   - SoilGrids: soil property rasters (soil pH) from the ISRIC WCS service
//   - Geocode: forward geocoding via Nominatim
//   - Weather: daily historical weather from the Open-Meteo archive
//   - Wikipedia: search plus intro extract from the MediaWiki API
//   - WebPage: fetch a URL and reduce it to readable text
//
// # Caching
//
// Any tool can be wrapped with Cached to memoize results in Redis:
//
//	client := redis.NewClient(&redis.Options{Addr: addr})
//	cached := tool.Cached(elevTool, client, 15*time.Minute)
//
// # Configuration
//
// Tools that talk to keyed services read their keys from the environment
// (GOOGLE_MAPS_API_KEY). Base URLs are overridable through functional
// options, which the package tests use to point tools at httptest servers.
package tool
