// Package schemas embeds the JSON Schemas for the CLI's input files.
package schemas

import _ "embed"

// AssetManifest is the JSON Schema for placeholder asset manifests.
//
//go:embed asset_manifest.schema.json
var AssetManifest string
