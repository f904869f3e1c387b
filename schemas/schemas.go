// Package schemas embeds the JSON Schema documents that describe the
// static catalog files. The catalog loader validates every embedded
// catalog document against its schema at startup.
package schemas

import _ "embed"

//go:embed jobs.schema.json
var Jobs []byte

//go:embed skills.schema.json
var Skills []byte

//go:embed roles.schema.json
var Roles []byte

//go:embed chat.schema.json
var Chat []byte

//go:embed personality.schema.json
var Personality []byte

//go:embed forecasts.schema.json
var Forecasts []byte

// All maps schema file names to their embedded contents.
var All = map[string][]byte{
	"jobs.schema.json":        Jobs,
	"skills.schema.json":      Skills,
	"roles.schema.json":       Roles,
	"chat.schema.json":        Chat,
	"personality.schema.json": Personality,
	"forecasts.schema.json":   Forecasts,
}
